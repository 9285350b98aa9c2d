package app

import (
	"context"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipment-service/internal/gateway/kafka/notification"
	"shipment-service/internal/handlers/tasks/idempotency_cleanup"
	"shipment-service/internal/handlers/tasks/shipment_stats"
	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/factory/order_handle"
	"shipment-service/internal/pkg/factory/tracking_number"
	eventRepo "shipment-service/internal/repository/event"
	idempotencyRepo "shipment-service/internal/repository/idempotency"
	shipmentRepo "shipment-service/internal/repository/shipment"
	eventlogService "shipment-service/internal/service/eventlog"
	idempotencyService "shipment-service/internal/service/idempotency"
	orderService "shipment-service/internal/service/order"
	shipmentService "shipment-service/internal/service/shipment"
	"shipment-service/pkg/background"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/querier"
	"shipment-service/pkg/retrier"
	"shipment-service/pkg/retrier/backoff_adapter"
	"shipment-service/pkg/tx"
)

// коллизия трек-номера - редкое событие, повтор почти сразу
const (
	trackingRetryInitialInterval = 5 * time.Millisecond
	trackingRetryMaxInterval     = 50 * time.Millisecond
	trackingRetryMaxElapsedTime  = 2 * time.Second
	trackingRetryRandomization   = 0.5
	trackingRetryMultiplier      = 2

	txRetryInitialInterval = 10 * time.Millisecond
	txRetryMaxInterval     = 200 * time.Millisecond
	txRetryMaxElapsedTime  = 3 * time.Second
	txRetryMaxRetries      = 3
)

type (
	IdempotencyCleanupInterval time.Duration
	ShipmentStatsInterval      time.Duration
)

// provideTxManager повторяет транзакцию после deadlock и serialization failure.
func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool, backoff_adapter.New(retrier.Config{
		InitialInterval: txRetryInitialInterval,
		MaxInterval:     txRetryMaxInterval,
		MaxElapsedTime:  txRetryMaxElapsedTime,
		Randomization:   trackingRetryRandomization,
		Multiplier:      trackingRetryMultiplier,
		MaxRetries:      txRetryMaxRetries,
		ShouldRetry:     tx.IsTransient,
	}))
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func provideEventRepository(querier *querier.Querier) *eventRepo.Repository {
	return eventRepo.New(querier)
}

func provideIdempotencyRepository(querier *querier.Querier) *idempotencyRepo.Repository {
	return idempotencyRepo.New(querier)
}

func provideEventLog(repository eventlogService.Repository) *eventlogService.Log {
	return eventlogService.New(repository)
}

func provideIdempotencyStore(repository idempotencyService.Repository, cfg *config.Config) *idempotencyService.Store {
	return idempotencyService.New(repository, cfg.Shipment.IdempotencyTTL)
}

// provideTrackingRetrier повторяет только коллизию трек-номера, остальные
// ошибки вставки сразу уходят наверх.
func provideTrackingRetrier(cfg *config.Config) *backoff_adapter.Retrier {
	var maxRetries uint64
	if cfg.Shipment.TrackingNumberMaxAttempts > 1 {
		maxRetries = uint64(cfg.Shipment.TrackingNumberMaxAttempts - 1)
	}

	return backoff_adapter.New(retrier.Config{
		InitialInterval: trackingRetryInitialInterval,
		MaxInterval:     trackingRetryMaxInterval,
		MaxElapsedTime:  trackingRetryMaxElapsedTime,
		Randomization:   trackingRetryRandomization,
		Multiplier:      trackingRetryMultiplier,
		MaxRetries:      maxRetries,
		ShouldRetry: func(err error) bool {
			return errors.Is(err, shipmentService.ErrTrackingNumberTaken)
		},
	})
}

func provideNotifier(producer sarama.AsyncProducer, log logger.Logger, cfg *config.Config) *notification.Notifier {
	return notification.New(
		producer,
		log.With(logger.NewField("component", "notifier")),
		cfg.Kafka.Producer.StatusChangedTopic,
		cfg.Kafka.Producer.InventoryReleaseTopic,
		cfg.Kafka.Producer.SendTimeout,
	)
}

func provideLedger(
	repository shipmentService.Repository,
	eventLog shipmentService.EventLog,
	idempotency shipmentService.IdempotencyStore,
	trackingNumbers shipmentService.TrackingNumberFactory,
	notifier *notification.Notifier,
	cache shipmentService.TrackingCache,
	retrier shipmentService.Retrier,
	txManager shipmentService.TxManager,
	cfg *config.Config,
) *shipmentService.Ledger {
	return shipmentService.New(
		repository,
		eventLog,
		idempotency,
		trackingNumbers,
		notifier,
		notifier,
		cache,
		retrier,
		txManager,
		cfg.Shipment.CancellationPolicy,
	)
}

func provideTrackingNumberFactory() *tracking_number.Factory {
	return tracking_number.New()
}

func provideStatusHandlerFactory(shipments order_handle.ShipmentService) *order_handle.StatusHandlerFactory {
	return order_handle.NewStatusHandlerFactory(shipments)
}

func provideOrderService(handlerFactory orderService.HandlerFactory) *orderService.Service {
	return orderService.New(handlerFactory)
}

func provideIdempotencyCleanupInterval(cfg *config.Config) IdempotencyCleanupInterval {
	return IdempotencyCleanupInterval(cfg.Tasks.IdempotencyCleanupInterval)
}

func provideShipmentStatsInterval(cfg *config.Config) ShipmentStatsInterval {
	return ShipmentStatsInterval(cfg.Tasks.ShipmentStatsInterval)
}

func provideIdempotencyCleanupTask(
	log logger.Logger,
	service idempotency_cleanup.Service,
	interval IdempotencyCleanupInterval,
) *idempotency_cleanup.IdempotencyCleanup {
	return idempotency_cleanup.NewIdempotencyCleanup(log, service, time.Duration(interval))
}

func provideShipmentStatsTask(
	repository shipment_stats.Repository,
	interval ShipmentStatsInterval,
) *shipment_stats.ShipmentStats {
	return shipment_stats.NewShipmentStats(repository, time.Duration(interval))
}

func provideTaskList(
	idempotencyCleanupTask *idempotency_cleanup.IdempotencyCleanup,
	shipmentStatsTask *shipment_stats.ShipmentStats,
) []background.Task {
	return []background.Task{
		idempotencyCleanupTask,
		shipmentStatsTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
