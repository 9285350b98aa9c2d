//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_handle_test
package order_handle

import (
	"context"

	"shipment-service/internal/entities"
)

type ShipmentService interface {
	CreateShipmentIdempotent(ctx context.Context, key string, create entities.ShipmentCreate) (*entities.Shipment, bool, error)
	CancelByOrderID(ctx context.Context, orderID int64) (*entities.Shipment, error)
}
