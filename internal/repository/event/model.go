package event

import "time"

type EventDB struct {
	ID          int64
	ShipmentID  int64
	Status      string
	Location    *string
	Description *string
	CreatedAt   time.Time
}

type EventModifyDB struct {
	ShipmentID  *int64
	Status      *string
	Location    *string
	Description *string
	CreatedAt   *time.Time
}
