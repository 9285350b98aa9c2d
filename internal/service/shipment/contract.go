//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"encoding/json"

	"shipment-service/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipmentModify entities.ShipmentModify) (*entities.Shipment, error)

	GetByID(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*entities.Shipment, error)
	GetByOrderID(ctx context.Context, orderID int64) (*entities.Shipment, error)
	GetByOrderIDForUpdate(ctx context.Context, orderID int64) (*entities.Shipment, error)
	GetByTrackingNo(ctx context.Context, trackingNo string) (*entities.Shipment, error)
	List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, error)

	UpdateStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Shipment, error)
}

type EventLog interface {
	Append(ctx context.Context, eventModify entities.ShipmentEventModify) (*entities.ShipmentEvent, error)
	ListForShipment(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error)
}

type IdempotencyStore interface {
	Fingerprint(request any) (string, error)
	CheckAndReserve(ctx context.Context, key, fingerprint string) (*entities.IdempotencyCheck, error)
	Record(ctx context.Context, key string, response json.RawMessage) error
}

type TrackingNumberFactory interface {
	GenerateTrackingNumber(carrier entities.Carrier) (string, error)
}

// StatusNotifier и InventoryNotifier вызываются после коммита, их ошибки
// не откатывают переход.
type StatusNotifier interface {
	NotifyStatusChanged(ctx context.Context, transition entities.StatusTransition)
}

type InventoryNotifier interface {
	ReleaseInventory(ctx context.Context, shipment entities.Shipment)
}

type TrackingCache interface {
	Get(ctx context.Context, trackingNo string) (*entities.ShipmentDetails, bool)
	Set(ctx context.Context, details entities.ShipmentDetails)
	Delete(ctx context.Context, trackingNo string)
}

type Retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
