package shipment

import (
	"errors"

	"shipment-service/internal/service/eventlog"
	"shipment-service/internal/service/idempotency"
)

var (
	ErrInvalidOrderID    = errors.New("invalid order id")
	ErrInvalidShipmentID = errors.New("invalid shipment id")
	ErrInvalidCarrier    = errors.New("invalid carrier")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidAddress    = errors.New("invalid address")
	ErrInvalidTrackingNo = errors.New("invalid tracking number")
	ErrInvalidPagination = errors.New("invalid pagination")

	ErrShipmentNotFound    = errors.New("shipment not found")
	ErrDuplicateOrder      = errors.New("shipment for order already exists")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrTrackingNumberTaken = errors.New("tracking number already taken")
)

var validationErrors = []error{
	ErrInvalidOrderID,
	ErrInvalidShipmentID,
	ErrInvalidCarrier,
	ErrInvalidStatus,
	ErrInvalidAddress,
	ErrInvalidTrackingNo,
	ErrInvalidPagination,
	eventlog.ErrInvalidText,
	idempotency.ErrInvalidKey,
}

// IsValidationError - ошибка вызвана некорректным вводом, а не состоянием системы.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
