package entities

import (
	"fmt"
	"strings"
)

// CancellationPolicy определяет, из каких статусов отправление можно отменить.
// Это единственное правило для переходов в CANCELLED: им пользуются и Cancel,
// и UpdateStatus(CANCELLED).
type CancellationPolicy string

const (
	// CancelPendingOnly - только до упаковки.
	CancelPendingOnly CancellationPolicy = "pending_only"
	// CancelBeforeShipping - PENDING, PACKED, SHIPPED.
	CancelBeforeShipping CancellationPolicy = "before_shipping"
	// CancelBeforeDelivery - PENDING, PACKED, SHIPPED, IN_TRANSIT.
	CancelBeforeDelivery CancellationPolicy = "before_delivery"
)

const DefaultCancellationPolicy = CancelBeforeDelivery

func ParseCancellationPolicy(s string) (CancellationPolicy, error) {
	if strings.TrimSpace(s) == "" {
		return DefaultCancellationPolicy, nil
	}
	p := CancellationPolicy(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case CancelPendingOnly, CancelBeforeShipping, CancelBeforeDelivery:
		return p, nil
	default:
		return "", fmt.Errorf("unknown cancellation policy %q", s)
	}
}

func (p CancellationPolicy) String() string {
	return string(p)
}

// Allows сообщает, можно ли отменить отправление в статусе s.
// OUT_FOR_DELIVERY и терминальные статусы не отменяются ни при какой политике.
func (p CancellationPolicy) Allows(s ShipmentStatus) bool {
	switch s {
	case StatusPending:
		return true
	case StatusPacked, StatusShipped:
		return p == CancelBeforeShipping || p == CancelBeforeDelivery
	case StatusInTransit:
		return p == CancelBeforeDelivery
	default:
		return false
	}
}
