package event

import "shipment-service/internal/entities"

func ToDomain(e *EventDB) *entities.ShipmentEvent {
	if e == nil {
		return nil
	}
	return &entities.ShipmentEvent{
		ID:          e.ID,
		ShipmentID:  e.ShipmentID,
		Status:      entities.ShipmentStatus(e.Status),
		Location:    e.Location,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
}

func ToDomainList(models []EventDB) []entities.ShipmentEvent {
	events := make([]entities.ShipmentEvent, 0, len(models))
	for i := range models {
		events = append(events, *ToDomain(&models[i]))
	}
	return events
}

func FromDomainModify(e *entities.ShipmentEventModify) *EventModifyDB {
	if e == nil {
		return nil
	}
	modifyDB := &EventModifyDB{
		ShipmentID:  e.ShipmentID,
		Location:    e.Location,
		Description: e.Description,
		CreatedAt:   e.CreatedAt,
	}
	if e.Status != nil {
		status := e.Status.String()
		modifyDB.Status = &status
	}
	return modifyDB
}
