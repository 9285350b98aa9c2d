package shipment

import "time"

type ShipmentDB struct {
	ID          int64
	OrderID     int64
	Carrier     string
	Status      string
	TrackingNo  string
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ShipmentModifyDB struct {
	OrderID    *int64
	Carrier    *string
	Status     *string
	TrackingNo *string
	CreatedAt  *time.Time
}

type StatusCountDB struct {
	Status string
	Count  int64
}
