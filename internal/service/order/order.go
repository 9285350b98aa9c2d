package order

import (
	"context"
	"errors"
	"strconv"

	"shipment-service/internal/entities"
)

const createdKeyPrefix = "order-created:"

type Service struct {
	statusFactory HandlerFactory
}

func New(statusFactory HandlerFactory) *Service {
	return &Service{
		statusFactory: statusFactory,
	}
}

// ProcessOrderStatusChange применяет событие заказа к отправлению.
// Первый результат false - статус заказа не касается отправлений и пропущен.
func (s *Service) ProcessOrderStatusChange(ctx context.Context, change entities.OrderStatusChange) (bool, error) {
	if change.OrderID <= 0 || change.Status == "" {
		return false, ErrInvalidEvent
	}

	executeFn, err := s.statusFactory.GetHandler(change.Status)
	if err != nil {
		// необрабатываемые статусы просто пропускаем
		if errors.Is(err, ErrUndefinedStatus) {
			return false, nil
		}
		return false, err
	}

	if err := executeFn(ctx, change); err != nil {
		return false, err
	}

	return true, nil
}

// CreatedIdempotencyKey - ключ идемпотентности создания отправления по событию
// created: повторная доставка сообщения не создаст второе отправление.
func CreatedIdempotencyKey(orderID int64) string {
	return createdKeyPrefix + strconv.FormatInt(orderID, 10)
}
