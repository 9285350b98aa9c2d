package entities

import "time"

type Shipment struct {
	ID          int64
	OrderID     int64
	Carrier     Carrier
	Status      ShipmentStatus
	TrackingNo  string
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ShipmentDetails - отправление вместе с историей событий (от старых к новым).
type ShipmentDetails struct {
	Shipment Shipment
	Events   []ShipmentEvent
}

type Address struct {
	Name       string
	Line1      string
	Line2      string
	City       string
	State      string
	PostalCode string
	Country    string
	Phone      string
}

// ShipmentCreate - входные данные создания отправления.
type ShipmentCreate struct {
	OrderID int64
	Carrier Carrier
	Address *Address
}

type ShipmentModify struct {
	ID         *int64
	OrderID    *int64
	Carrier    *Carrier
	Status     *ShipmentStatus
	TrackingNo *string
	CreatedAt  *time.Time
}

// StatusUpdate - смена статуса, вычисленная сервисом и применяемая репозиторием.
// ShippedAt/DeliveredAt заполняются только при первом достижении статуса.
type StatusUpdate struct {
	ShipmentID  int64
	Status      ShipmentStatus
	ShippedAt   *time.Time
	DeliveredAt *time.Time
	UpdatedAt   time.Time
}

type ShipmentFilter struct {
	Status  *ShipmentStatus
	Carrier *Carrier
	Skip    int
	Limit   int
}

// StatusTransition - результат успешной смены статуса, отдается уведомителям.
type StatusTransition struct {
	Shipment   Shipment
	FromStatus ShipmentStatus
	Event      ShipmentEvent
}

// StatusChange - запрос на смену статуса.
type StatusChange struct {
	ShipmentID  int64
	Status      ShipmentStatus
	Location    *string
	Description *string
}
