package notification

import (
	"strconv"
	"time"

	"shipment-service/internal/entities"
)

const reasonShipmentCancelled = "shipment_cancelled"

type statusChangedMessage struct {
	ShipmentID  int64     `json:"shipment_id"`
	OrderID     int64     `json:"order_id"`
	TrackingNo  string    `json:"tracking_no"`
	Carrier     string    `json:"carrier"`
	FromStatus  string    `json:"from_status"`
	ToStatus    string    `json:"to_status"`
	Location    *string   `json:"location,omitempty"`
	Description *string   `json:"description,omitempty"`
	ChangedAt   time.Time `json:"changed_at"`
}

type inventoryReleaseMessage struct {
	ShipmentID  int64     `json:"shipment_id"`
	OrderID     int64     `json:"order_id"`
	Reason      string    `json:"reason"`
	CancelledAt time.Time `json:"cancelled_at"`
}

func toStatusChangedMessage(transition entities.StatusTransition) statusChangedMessage {
	return statusChangedMessage{
		ShipmentID:  transition.Shipment.ID,
		OrderID:     transition.Shipment.OrderID,
		TrackingNo:  transition.Shipment.TrackingNo,
		Carrier:     transition.Shipment.Carrier.String(),
		FromStatus:  transition.FromStatus.String(),
		ToStatus:    transition.Shipment.Status.String(),
		Location:    transition.Event.Location,
		Description: transition.Event.Description,
		ChangedAt:   transition.Event.CreatedAt,
	}
}

func toInventoryReleaseMessage(shipment entities.Shipment) inventoryReleaseMessage {
	return inventoryReleaseMessage{
		ShipmentID:  shipment.ID,
		OrderID:     shipment.OrderID,
		Reason:      reasonShipmentCancelled,
		CancelledAt: shipment.UpdatedAt,
	}
}

func orderKey(orderID int64) string {
	return strconv.FormatInt(orderID, 10)
}
