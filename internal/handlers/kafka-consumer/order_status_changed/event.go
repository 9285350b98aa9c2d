package order_status_changed

import (
	"fmt"

	"shipment-service/internal/entities"
)

type orderStatusChangedEvent struct {
	OrderID         int64         `json:"order_id"`
	Status          string        `json:"status"`
	Carrier         *string       `json:"carrier,omitempty"`
	ShippingAddress *eventAddress `json:"shipping_address,omitempty"`
}

type eventAddress struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func (e orderStatusChangedEvent) toChange() (entities.OrderStatusChange, error) {
	change := entities.OrderStatusChange{
		OrderID: e.OrderID,
		Status:  entities.OrderStatusType(e.Status),
	}

	if e.Carrier != nil && *e.Carrier != "" {
		carrier, err := entities.ParseCarrier(*e.Carrier)
		if err != nil {
			return change, fmt.Errorf("parse carrier: %w", err)
		}
		change.Carrier = &carrier
	}

	if a := e.ShippingAddress; a != nil {
		change.Address = &entities.Address{
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

	return change, nil
}
