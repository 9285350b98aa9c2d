package eventlog

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"shipment-service/internal/entities"
)

const maxTextLength = 500

func validateEvent(e entities.ShipmentEventModify) error {
	if e.ShipmentID == nil || e.Status == nil {
		return ErrMissingRequiredFields
	}
	if *e.ShipmentID <= 0 {
		return ErrInvalidShipmentID
	}
	if !e.Status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, *e.Status)
	}

	err := validation.Errors{
		"location":    validation.Validate(e.Location, validation.NilOrNotEmpty, validation.Length(1, maxTextLength)),
		"description": validation.Validate(e.Description, validation.NilOrNotEmpty, validation.Length(1, maxTextLength)),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidText, err)
	}
	return nil
}
