//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
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
	"shipment-service/pkg/logger"
	"shipment-service/pkg/retrier/backoff_adapter"
	"shipment-service/pkg/tx"
)

var ledgerSet = wire.NewSet(
	provideTxManager,
	provideQuerier,

	provideShipmentRepository,
	provideEventRepository,
	provideIdempotencyRepository,

	provideEventLog,
	provideIdempotencyStore,
	provideTrackingNumberFactory,
	provideTrackingRetrier,
	provideNotifier,
	provideLedger,

	wire.Bind(new(eventlogService.Repository), new(*eventRepo.Repository)),
	wire.Bind(new(idempotencyService.Repository), new(*idempotencyRepo.Repository)),

	wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
	wire.Bind(new(shipmentService.EventLog), new(*eventlogService.Log)),
	wire.Bind(new(shipmentService.IdempotencyStore), new(*idempotencyService.Store)),
	wire.Bind(new(shipmentService.TrackingNumberFactory), new(*tracking_number.Factory)),
	wire.Bind(new(shipmentService.Retrier), new(*backoff_adapter.Retrier)),
	wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.AsyncProducer,
	cache shipmentService.TrackingCache,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		ledgerSet,

		provideIdempotencyCleanupInterval,
		provideShipmentStatsInterval,
		provideIdempotencyCleanupTask,
		provideShipmentStatsTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ShipmentService), new(*shipmentService.Ledger)),
		wire.Bind(new(idempotency_cleanup.Service), new(*idempotencyService.Store)),
		wire.Bind(new(shipment_stats.Repository), new(*shipmentRepo.Repository)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer sarama.AsyncProducer,
	cache shipmentService.TrackingCache,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		ledgerSet,

		provideStatusHandlerFactory,
		provideOrderService,

		wire.Bind(new(order_handle.ShipmentService), new(*shipmentService.Ledger)),
		wire.Bind(new(orderService.HandlerFactory), new(*order_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return &KafkaWorkerApp{}, nil
}
