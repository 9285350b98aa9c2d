package shipment

import (
	"fmt"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"shipment-service/internal/entities"
)

const (
	DefaultListLimit = 100
	MaxListLimit     = 1000

	maxTrackingNoLength = 64
)

var (
	postalCodeRegexp = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9 \-]{1,10}[A-Za-z0-9]$`)
	phoneRegexp      = regexp.MustCompile(`^\+?[0-9][0-9 \-]{5,18}[0-9]$`)
)

// normalizeCreate проверяет запрос и подставляет перевозчика по умолчанию.
func normalizeCreate(create entities.ShipmentCreate) (entities.ShipmentCreate, error) {
	if create.OrderID <= 0 {
		return create, ErrInvalidOrderID
	}

	if create.Carrier == "" {
		create.Carrier = entities.DefaultCarrier
	}
	if !create.Carrier.IsValid() {
		return create, fmt.Errorf("%w: %s", ErrInvalidCarrier, create.Carrier)
	}

	if create.Address != nil {
		address := trimAddress(*create.Address)
		if err := validateAddress(address); err != nil {
			return create, fmt.Errorf("%w: %v", ErrInvalidAddress, err)
		}
		create.Address = &address
	}

	return create, nil
}

func trimAddress(a entities.Address) entities.Address {
	return entities.Address{
		Name:       strings.TrimSpace(a.Name),
		Line1:      strings.TrimSpace(a.Line1),
		Line2:      strings.TrimSpace(a.Line2),
		City:       strings.TrimSpace(a.City),
		State:      strings.TrimSpace(a.State),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Country:    strings.TrimSpace(a.Country),
		Phone:      strings.TrimSpace(a.Phone),
	}
}

func validateAddress(a entities.Address) error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.Line1, validation.Required, validation.Length(1, 200)),
		validation.Field(&a.Line2, validation.Length(0, 200)),
		validation.Field(&a.City, validation.Required, validation.Length(1, 100)),
		validation.Field(&a.State, validation.Length(0, 100)),
		validation.Field(&a.PostalCode, validation.Required, validation.Match(postalCodeRegexp)),
		validation.Field(&a.Country, validation.Required, validation.Length(2, 56)),
		validation.Field(&a.Phone, validation.Match(phoneRegexp)),
	)
}

func validateStatusChange(change entities.StatusChange) error {
	if change.ShipmentID <= 0 {
		return ErrInvalidShipmentID
	}
	if !change.Status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, change.Status)
	}
	return nil
}

func validateFilter(filter entities.ShipmentFilter) error {
	err := validation.Errors{
		"skip":  validation.Validate(filter.Skip, validation.Min(0)),
		"limit": validation.Validate(filter.Limit, validation.Required, validation.Min(1), validation.Max(MaxListLimit)),
	}.Filter()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidPagination, err)
	}

	if filter.Status != nil && !filter.Status.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidStatus, *filter.Status)
	}
	if filter.Carrier != nil && !filter.Carrier.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidCarrier, *filter.Carrier)
	}
	return nil
}

func validateTrackingNo(trackingNo string) error {
	return validation.Validate(strings.TrimSpace(trackingNo),
		validation.Required,
		validation.Length(1, maxTrackingNoLength),
	)
}
