package entities

import (
	"fmt"
	"strings"
)

type ShipmentStatus string

const (
	StatusPending        ShipmentStatus = "PENDING"
	StatusPacked         ShipmentStatus = "PACKED"
	StatusShipped        ShipmentStatus = "SHIPPED"
	StatusInTransit      ShipmentStatus = "IN_TRANSIT"
	StatusOutForDelivery ShipmentStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      ShipmentStatus = "DELIVERED"
	StatusFailed         ShipmentStatus = "FAILED"
	StatusCancelled      ShipmentStatus = "CANCELLED"
)

const InitialStatus = StatusPending

// forwardRank задает порядок прямого движения по жизненному циклу.
// FAILED и CANCELLED в него не входят.
var forwardRank = map[ShipmentStatus]int{
	StatusPending:        1,
	StatusPacked:         2,
	StatusShipped:        3,
	StatusInTransit:      4,
	StatusOutForDelivery: 5,
	StatusDelivered:      6,
}

var allStatuses = []ShipmentStatus{
	StatusPending,
	StatusPacked,
	StatusShipped,
	StatusInTransit,
	StatusOutForDelivery,
	StatusDelivered,
	StatusFailed,
	StatusCancelled,
}

func AllStatuses() []ShipmentStatus {
	out := make([]ShipmentStatus, len(allStatuses))
	copy(out, allStatuses)
	return out
}

func ParseShipmentStatus(s string) (ShipmentStatus, error) {
	status := ShipmentStatus(strings.ToUpper(strings.TrimSpace(s)))
	if !status.IsValid() {
		return "", fmt.Errorf("unknown shipment status %q", s)
	}
	return status, nil
}

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusPacked, StatusShipped, StatusInTransit,
		StatusOutForDelivery, StatusDelivered, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusDelivered || s == StatusCancelled || s == StatusFailed
}

// IsForwardOf: s стоит строго дальше from в прямой последовательности.
func (s ShipmentStatus) IsForwardOf(from ShipmentStatus) bool {
	to, ok := forwardRank[s]
	if !ok {
		return false
	}
	cur, ok := forwardRank[from]
	if !ok {
		return false
	}
	return to > cur
}

// CanFail - из каких статусов допустим переход в FAILED.
func (s ShipmentStatus) CanFail() bool {
	switch s {
	case StatusPending, StatusPacked, StatusShipped, StatusInTransit:
		return true
	default:
		return false
	}
}

// IsNotifiable - ключевые статусы, о которых уведомляется получатель.
func (s ShipmentStatus) IsNotifiable() bool {
	switch s {
	case StatusShipped, StatusOutForDelivery, StatusDelivered, StatusFailed, StatusCancelled:
		return true
	default:
		return false
	}
}

// IsInTransit - отгружено, но еще не доставлено.
func (s ShipmentStatus) IsInTransit() bool {
	return s == StatusShipped || s == StatusInTransit || s == StatusOutForDelivery
}
