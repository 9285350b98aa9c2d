package shipment

import (
	"encoding/json"
	"time"

	"shipment-service/internal/entities"
)

// createFingerprint - нормализованный запрос создания, по нему считается
// отпечаток для ключа идемпотентности.
type createFingerprint struct {
	OrderID int64            `json:"order_id"`
	Carrier string           `json:"carrier"`
	Address *addressSnapshot `json:"address,omitempty"`
}

type addressSnapshot struct {
	Name       string `json:"name"`
	Line1      string `json:"line1"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
	Phone      string `json:"phone,omitempty"`
}

func newCreateFingerprint(create entities.ShipmentCreate) createFingerprint {
	fp := createFingerprint{
		OrderID: create.OrderID,
		Carrier: create.Carrier.String(),
	}
	if a := create.Address; a != nil {
		fp.Address = &addressSnapshot{
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
	return fp
}

// shipmentSnapshot - сохраненный ответ на создание, отдается при повторе как есть.
type shipmentSnapshot struct {
	ID          int64      `json:"shipment_id"`
	OrderID     int64      `json:"order_id"`
	Carrier     string     `json:"carrier"`
	Status      string     `json:"status"`
	TrackingNo  string     `json:"tracking_no"`
	ShippedAt   *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func encodeSnapshot(s *entities.Shipment) (json.RawMessage, error) {
	return json.Marshal(shipmentSnapshot{
		ID:          s.ID,
		OrderID:     s.OrderID,
		Carrier:     s.Carrier.String(),
		Status:      s.Status.String(),
		TrackingNo:  s.TrackingNo,
		ShippedAt:   s.ShippedAt,
		DeliveredAt: s.DeliveredAt,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	})
}

func decodeSnapshot(data json.RawMessage) (*entities.Shipment, error) {
	var snapshot shipmentSnapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, err
	}
	return &entities.Shipment{
		ID:          snapshot.ID,
		OrderID:     snapshot.OrderID,
		Carrier:     entities.Carrier(snapshot.Carrier),
		Status:      entities.ShipmentStatus(snapshot.Status),
		TrackingNo:  snapshot.TrackingNo,
		ShippedAt:   snapshot.ShippedAt,
		DeliveredAt: snapshot.DeliveredAt,
		CreatedAt:   snapshot.CreatedAt,
		UpdatedAt:   snapshot.UpdatedAt,
	}, nil
}
