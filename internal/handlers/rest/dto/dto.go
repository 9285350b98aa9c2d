package dto

import "time"

type Address struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

type ShipmentCreate struct {
	OrderID         int64    `json:"order_id"`
	Carrier         string   `json:"carrier,omitempty"`
	ShippingAddress *Address `json:"shipping_address,omitempty"`
}

type StatusUpdate struct {
	Status      string  `json:"status"`
	Location    *string `json:"location,omitempty"`
	Description *string `json:"description,omitempty"`
}

type Shipment struct {
	ShipmentID  int64      `json:"shipment_id"`
	OrderID     int64      `json:"order_id"`
	Carrier     string     `json:"carrier"`
	Status      string     `json:"status"`
	TrackingNo  string     `json:"tracking_no"`
	ShippedAt   *time.Time `json:"shipped_at"`
	DeliveredAt *time.Time `json:"delivered_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ShipmentEvent struct {
	EventID     int64     `json:"event_id"`
	Status      string    `json:"status"`
	Location    *string   `json:"location"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ShipmentDetails - отправление и его история одним объектом.
type ShipmentDetails struct {
	Shipment
	Events []ShipmentEvent `json:"events"`
}

type TrackingResponse struct {
	Shipment Shipment        `json:"shipment"`
	Events   []ShipmentEvent `json:"events"`
}

type CancelResponse struct {
	Message    string `json:"message"`
	ShipmentID int64  `json:"shipment_id"`
	Status     string `json:"status"`
}

type ErrorResponse struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

type PingResponse struct {
	Message string    `json:"message"`
	Service string    `json:"service"`
	Time    time.Time `json:"time"`
}
