package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shipment-service/internal/entities"
)

const (
	descriptionCreated   = "Shipment created"
	descriptionCancelled = "Shipment cancelled"
)

// Ledger владеет отправлениями и их жизненным циклом. Статус отправления и
// событие журнала всегда пишутся в одной транзакции.
type Ledger struct {
	repository      Repository
	eventLog        EventLog
	idempotency     IdempotencyStore
	trackingNumbers TrackingNumberFactory
	statusNotifier  StatusNotifier
	inventory       InventoryNotifier
	cache           TrackingCache
	retrier         Retrier
	txManager       TxManager
	policy          entities.CancellationPolicy
	now             func() time.Time
}

func New(
	repository Repository,
	eventLog EventLog,
	idempotency IdempotencyStore,
	trackingNumbers TrackingNumberFactory,
	statusNotifier StatusNotifier,
	inventory InventoryNotifier,
	cache TrackingCache,
	retrier Retrier,
	txManager TxManager,
	policy entities.CancellationPolicy,
) *Ledger {
	return &Ledger{
		repository:      repository,
		eventLog:        eventLog,
		idempotency:     idempotency,
		trackingNumbers: trackingNumbers,
		statusNotifier:  statusNotifier,
		inventory:       inventory,
		cache:           cache,
		retrier:         retrier,
		txManager:       txManager,
		policy:          policy,
		now:             func() time.Time { return time.Now().UTC() },
	}
}

func (l *Ledger) Policy() entities.CancellationPolicy {
	return l.policy
}

func (l *Ledger) CreateShipment(ctx context.Context, create entities.ShipmentCreate) (*entities.Shipment, error) {
	create, err := normalizeCreate(create)
	if err != nil {
		return nil, err
	}

	var shipment *entities.Shipment
	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err = l.createInTx(ctx, create)
		return err
	})
	if err != nil {
		return nil, err
	}

	ShipmentsCreatedTotal.Inc()
	return shipment, nil
}

// CreateShipmentIdempotent создает отправление под ключом идемпотентности.
// Второй результат - ответ взят из хранилища ключей, операция не выполнялась.
// Резерв ключа, создание и сохранение ответа идут в одной транзакции, поэтому
// неуспешное создание ключ не занимает.
func (l *Ledger) CreateShipmentIdempotent(
	ctx context.Context,
	key string,
	create entities.ShipmentCreate,
) (*entities.Shipment, bool, error) {
	if key == "" {
		shipment, err := l.CreateShipment(ctx, create)
		return shipment, false, err
	}

	create, err := normalizeCreate(create)
	if err != nil {
		return nil, false, err
	}

	fingerprint, err := l.idempotency.Fingerprint(newCreateFingerprint(create))
	if err != nil {
		return nil, false, fmt.Errorf("fingerprint request: %w", err)
	}

	var (
		shipment *entities.Shipment
		replayed bool
	)
	err = l.txManager.Do(ctx, func(ctx context.Context) error {
		// повтор транзакции не должен унаследовать состояние прошлой попытки
		shipment, replayed = nil, false

		check, err := l.idempotency.CheckAndReserve(ctx, key, fingerprint)
		if err != nil {
			return fmt.Errorf("check idempotency key: %w", err)
		}

		if check.Replayed {
			shipment, err = decodeSnapshot(check.ResponseData)
			if err != nil {
				return fmt.Errorf("decode cached response: %w", err)
			}
			replayed = true
			return nil
		}

		shipment, err = l.createInTx(ctx, create)
		if err != nil {
			return err
		}

		response, err := encodeSnapshot(shipment)
		if err != nil {
			return fmt.Errorf("encode response: %w", err)
		}

		if err := l.idempotency.Record(ctx, key, response); err != nil {
			return fmt.Errorf("record idempotency key: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}

	if replayed {
		IdempotentReplaysTotal.Inc()
	} else {
		ShipmentsCreatedTotal.Inc()
	}
	return shipment, replayed, nil
}

// createInTx пишет отправление и первое событие. Коллизия трек-номера
// повторяется с новым номером через retrier.
func (l *Ledger) createInTx(ctx context.Context, create entities.ShipmentCreate) (*entities.Shipment, error) {
	createdAt := l.now()
	status := entities.InitialStatus

	var shipment *entities.Shipment
	err := l.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		trackingNo, err := l.trackingNumbers.GenerateTrackingNumber(create.Carrier)
		if err != nil {
			return fmt.Errorf("generate tracking number: %w", err)
		}

		shipment, err = l.repository.Create(ctx, entities.ShipmentModify{
			OrderID:    &create.OrderID,
			Carrier:    &create.Carrier,
			Status:     &status,
			TrackingNo: &trackingNo,
			CreatedAt:  &createdAt,
		})
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("create shipment: %w", err)
	}

	description := descriptionCreated
	_, err = l.eventLog.Append(ctx, entities.ShipmentEventModify{
		ShipmentID:  &shipment.ID,
		Status:      &status,
		Description: &description,
		CreatedAt:   &createdAt,
	})
	if err != nil {
		return nil, fmt.Errorf("append initial event: %w", err)
	}

	return shipment, nil
}

func (l *Ledger) UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Shipment, error) {
	if err := validateStatusChange(change); err != nil {
		return nil, err
	}

	return l.changeStatus(ctx, func(ctx context.Context) (*entities.Shipment, error) {
		return l.repository.GetByIDForUpdate(ctx, change.ShipmentID)
	}, change)
}

// Cancel - смена статуса на CANCELLED по тому же правилу политики отмены.
func (l *Ledger) Cancel(ctx context.Context, shipmentID int64) (*entities.Shipment, error) {
	if shipmentID <= 0 {
		return nil, ErrInvalidShipmentID
	}

	description := descriptionCancelled
	return l.changeStatus(ctx, func(ctx context.Context) (*entities.Shipment, error) {
		return l.repository.GetByIDForUpdate(ctx, shipmentID)
	}, entities.StatusChange{
		ShipmentID:  shipmentID,
		Status:      entities.StatusCancelled,
		Description: &description,
	})
}

func (l *Ledger) CancelByOrderID(ctx context.Context, orderID int64) (*entities.Shipment, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	description := descriptionCancelled
	return l.changeStatus(ctx, func(ctx context.Context) (*entities.Shipment, error) {
		return l.repository.GetByOrderIDForUpdate(ctx, orderID)
	}, entities.StatusChange{
		Status:      entities.StatusCancelled,
		Description: &description,
	})
}

func (l *Ledger) changeStatus(
	ctx context.Context,
	lock func(ctx context.Context) (*entities.Shipment, error),
	change entities.StatusChange,
) (*entities.Shipment, error) {
	var transition entities.StatusTransition
	err := l.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := lock(ctx)
		if err != nil {
			return fmt.Errorf("lock shipment: %w", err)
		}

		if err := validateTransition(l.policy, current.Status, change.Status); err != nil {
			return err
		}

		now := l.now()
		update := entities.StatusUpdate{
			ShipmentID: current.ID,
			Status:     change.Status,
			UpdatedAt:  now,
		}
		if current.ShippedAt == nil && reachedShipping(change.Status) {
			update.ShippedAt = &now
		}
		if current.DeliveredAt == nil && change.Status == entities.StatusDelivered {
			update.DeliveredAt = &now
		}

		updated, err := l.repository.UpdateStatus(ctx, update)
		if err != nil {
			return fmt.Errorf("update status: %w", err)
		}

		description := change.Description
		if description == nil {
			defaultDescription := fmt.Sprintf("Status updated from %s to %s", current.Status, change.Status)
			description = &defaultDescription
		}

		event, err := l.eventLog.Append(ctx, entities.ShipmentEventModify{
			ShipmentID:  &updated.ID,
			Status:      &change.Status,
			Location:    change.Location,
			Description: description,
			CreatedAt:   &now,
		})
		if err != nil {
			return fmt.Errorf("append event: %w", err)
		}

		transition = entities.StatusTransition{
			Shipment:   *updated,
			FromStatus: current.Status,
			Event:      *event,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	l.afterTransition(ctx, transition)
	return &transition.Shipment, nil
}

// afterTransition выполняется только после коммита.
func (l *Ledger) afterTransition(ctx context.Context, transition entities.StatusTransition) {
	status := transition.Shipment.Status

	StatusUpdatesTotal.WithLabelValues(status.String()).Inc()
	switch status {
	case entities.StatusDelivered:
		ShipmentsDeliveredTotal.Inc()
	case entities.StatusCancelled:
		ShipmentsCancelledTotal.Inc()
	case entities.StatusFailed:
		ShipmentsFailedTotal.Inc()
	}

	l.cache.Delete(ctx, transition.Shipment.TrackingNo)

	if status.IsNotifiable() {
		l.statusNotifier.NotifyStatusChanged(ctx, transition)
	}
	if status == entities.StatusCancelled {
		l.inventory.ReleaseInventory(ctx, transition.Shipment)
	}
}

func (l *Ledger) GetByID(ctx context.Context, id int64) (*entities.ShipmentDetails, error) {
	if id <= 0 {
		return nil, ErrInvalidShipmentID
	}

	shipment, err := l.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return l.withEvents(ctx, shipment)
}

func (l *Ledger) GetByOrderID(ctx context.Context, orderID int64) (*entities.ShipmentDetails, error) {
	if orderID <= 0 {
		return nil, ErrInvalidOrderID
	}

	shipment, err := l.repository.GetByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get shipment by order: %w", err)
	}
	return l.withEvents(ctx, shipment)
}

// GetByTrackingNo читает через кэш, кэш сбрасывается при каждой смене статуса.
func (l *Ledger) GetByTrackingNo(ctx context.Context, trackingNo string) (*entities.ShipmentDetails, error) {
	if err := validateTrackingNo(trackingNo); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidTrackingNo, err)
	}

	if details, ok := l.cache.Get(ctx, trackingNo); ok {
		return details, nil
	}

	shipment, err := l.repository.GetByTrackingNo(ctx, trackingNo)
	if err != nil {
		return nil, fmt.Errorf("get shipment by tracking number: %w", err)
	}

	details, err := l.withEvents(ctx, shipment)
	if err != nil {
		return nil, err
	}

	l.cache.Set(ctx, *details)
	return details, nil
}

func (l *Ledger) List(ctx context.Context, filter entities.ShipmentFilter) ([]entities.Shipment, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	shipments, err := l.repository.List(ctx, filter)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("list shipments timed out: %w", err)
		}
		return nil, fmt.Errorf("list shipments: %w", err)
	}
	return shipments, nil
}

func (l *Ledger) withEvents(ctx context.Context, shipment *entities.Shipment) (*entities.ShipmentDetails, error) {
	events, err := l.eventLog.ListForShipment(ctx, shipment.ID)
	if err != nil {
		return nil, fmt.Errorf("list shipment events: %w", err)
	}
	return &entities.ShipmentDetails{
		Shipment: *shipment,
		Events:   events,
	}, nil
}
