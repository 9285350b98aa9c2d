package eventlog

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidShipmentID     = errors.New("invalid shipment id")
	ErrInvalidStatus         = errors.New("invalid event status")
	ErrInvalidText           = errors.New("invalid event text")

	ErrShipmentNotFound = errors.New("shipment not found")
)
