package entities

import "time"

type ShipmentEvent struct {
	ID          int64
	ShipmentID  int64
	Status      ShipmentStatus
	Location    *string
	Description *string
	CreatedAt   time.Time
}

type ShipmentEventModify struct {
	ShipmentID  *int64
	Status      *ShipmentStatus
	Location    *string
	Description *string
	CreatedAt   *time.Time
}
