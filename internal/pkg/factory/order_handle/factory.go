package order_handle

import (
	"context"
	"errors"
	"fmt"

	"shipment-service/internal/entities"
	"shipment-service/internal/service/order"
	"shipment-service/internal/service/shipment"
)

type StatusHandlerFactory struct {
	shipmentService ShipmentService
}

func NewStatusHandlerFactory(shipmentService ShipmentService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		shipmentService: shipmentService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (order.ExecuteFn, error) {
	switch status {
	case entities.OrderCreated:
		return f.createdHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", order.ErrUndefinedStatus, status)
	}
}

// createdHandler создает отправление под ключом order-created:<id>;
// отправление, созданное раньше через REST, считается успехом.
func (f *StatusHandlerFactory) createdHandler(ctx context.Context, change entities.OrderStatusChange) error {
	create := entities.ShipmentCreate{
		OrderID: change.OrderID,
		Address: change.Address,
	}
	if change.Carrier != nil {
		create.Carrier = *change.Carrier
	}

	_, _, err := f.shipmentService.CreateShipmentIdempotent(ctx, order.CreatedIdempotencyKey(change.OrderID), create)
	if err != nil && !errors.Is(err, shipment.ErrDuplicateOrder) {
		return fmt.Errorf("create shipment for created order %d: %w", change.OrderID, err)
	}
	return nil
}

// cancelledHandler отменяет отправление заказа; заказ без отправления пропускается.
func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, change entities.OrderStatusChange) error {
	_, err := f.shipmentService.CancelByOrderID(ctx, change.OrderID)
	if err != nil && !errors.Is(err, shipment.ErrShipmentNotFound) {
		return fmt.Errorf("cancel shipment for cancelled order %d: %w", change.OrderID, err)
	}
	return nil
}
