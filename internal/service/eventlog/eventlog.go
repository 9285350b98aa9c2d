package eventlog

import (
	"context"
	"fmt"
	"time"

	"shipment-service/internal/entities"
)

// Log - журнал событий отправления, только добавление. Допустимость перехода
// здесь не проверяется, это делает вызывающий.
type Log struct {
	repository Repository
}

func New(repository Repository) *Log {
	return &Log{
		repository: repository,
	}
}

// Append пишет событие. Если CreatedAt не задан, берется текущее время,
// хранилище поднимает его до времени последнего события отправления.
func (l *Log) Append(ctx context.Context, eventModify entities.ShipmentEventModify) (*entities.ShipmentEvent, error) {
	if err := validateEvent(eventModify); err != nil {
		return nil, err
	}

	if eventModify.CreatedAt == nil {
		now := time.Now().UTC()
		eventModify.CreatedAt = &now
	}

	event, err := l.repository.Append(ctx, eventModify)
	if err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}
	return event, nil
}

func (l *Log) ListForShipment(ctx context.Context, shipmentID int64) ([]entities.ShipmentEvent, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	events, err := l.repository.ListForShipment(ctx, shipmentID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	return events, nil
}
