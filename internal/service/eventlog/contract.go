//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=eventlog_test
package eventlog

import (
	"context"

	"shipment-service/internal/entities"
)

type Repository interface {
	Append(ctx context.Context, eventModify entities.ShipmentEventModify) (*entities.ShipmentEvent, error)
	ListForShipment(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error)
}
