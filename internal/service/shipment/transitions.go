package shipment

import (
	"fmt"

	"shipment-service/internal/entities"
)

// validateTransition - единственное правило допустимости смены статуса:
//   - из терминальных статусов переходов нет;
//   - в CANCELLED только из статусов, разрешенных политикой отмены;
//   - в FAILED из PENDING, PACKED, SHIPPED, IN_TRANSIT;
//   - иначе только строго вперед по жизненному циклу, пропуски допустимы.
func validateTransition(policy entities.CancellationPolicy, from, to entities.ShipmentStatus) error {
	if from.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrInvalidTransition, from)
	}

	switch to {
	case entities.StatusCancelled:
		if !policy.Allows(from) {
			return fmt.Errorf("%w: %s cannot be cancelled under %s policy", ErrInvalidTransition, from, policy)
		}
	case entities.StatusFailed:
		if !from.CanFail() {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
	default:
		if !to.IsForwardOf(from) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
		}
	}
	return nil
}

// reachedShipping - статус означает, что отправление уже отгружено.
func reachedShipping(s entities.ShipmentStatus) bool {
	return s == entities.StatusShipped || s.IsForwardOf(entities.StatusShipped)
}
