//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"shipment-service/internal/entities"
)

type (
	ExecuteFn      func(ctx context.Context, change entities.OrderStatusChange) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
