package dto

import "shipment-service/internal/entities"

func FromShipment(s entities.Shipment) Shipment {
	return Shipment{
		ShipmentID:  s.ID,
		OrderID:     s.OrderID,
		Carrier:     s.Carrier.String(),
		Status:      s.Status.String(),
		TrackingNo:  s.TrackingNo,
		ShippedAt:   s.ShippedAt,
		DeliveredAt: s.DeliveredAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func FromShipments(shipments []entities.Shipment) []Shipment {
	res := make([]Shipment, len(shipments))
	for i, s := range shipments {
		res[i] = FromShipment(s)
	}
	return res
}

func FromEvents(events []entities.ShipmentEvent) []ShipmentEvent {
	res := make([]ShipmentEvent, len(events))
	for i, e := range events {
		res[i] = ShipmentEvent{
			EventID:     e.ID,
			Status:      e.Status.String(),
			Location:    e.Location,
			Description: e.Description,
			CreatedAt:   e.CreatedAt,
		}
	}
	return res
}

func FromDetails(d entities.ShipmentDetails) ShipmentDetails {
	return ShipmentDetails{
		Shipment: FromShipment(d.Shipment),
		Events:   FromEvents(d.Events),
	}
}

func ToAddress(a *Address) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		Name:       a.Name,
		Line1:      a.Line1,
		Line2:      a.Line2,
		City:       a.City,
		State:      a.State,
		PostalCode: a.PostalCode,
		Country:    a.Country,
		Phone:      a.Phone,
	}
}
