package main

import (
	"context"
	"errors"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "shipment-service/internal/app"
	"shipment-service/internal/handlers/rest/healthcheck_head"
	"shipment-service/internal/handlers/rest/ping_get"
	"shipment-service/internal/handlers/rest/shipment_by_order_get"
	"shipment-service/internal/handlers/rest/shipment_delete"
	"shipment-service/internal/handlers/rest/shipment_get"
	"shipment-service/internal/handlers/rest/shipment_post"
	"shipment-service/internal/handlers/rest/shipment_status_patch"
	"shipment-service/internal/handlers/rest/shipment_tracking_get"
	"shipment-service/internal/handlers/rest/shipments_get"
	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/dotenv"
	"shipment-service/internal/pkg/grpcserver"
	"shipment-service/internal/pkg/kafka"
	metrics_system "shipment-service/internal/pkg/metrics"
	"shipment-service/internal/pkg/middlewares/graceful_shutdown"
	"shipment-service/internal/pkg/middlewares/metrics"
	"shipment-service/internal/pkg/middlewares/rate_limiter"
	"shipment-service/internal/pkg/middlewares/request_id"
	"shipment-service/internal/pkg/middlewares/timeout"
	"shipment-service/internal/pkg/postgres"
	"shipment-service/migrations"
	"shipment-service/pkg/logger"
	"shipment-service/pkg/logger/zap_adapter"
	"shipment-service/pkg/token_bucket"
)

const serviceName = "shipment-service"

func main() {
	// .env читается до логгера, чтобы LOG_LEVEL из него тоже применился
	envLoaded, dotenvErr := dotenv.Load(".env", os.Args[1:])

	zapLogger, err := zap_adapter.NewZapAdapter(serviceName, os.Getenv("LOG_LEVEL"))
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting shipment-service application")

	switch {
	case dotenvErr != nil:
		mainLog.Error("failed to load .env file", logger.NewField("error", dotenvErr))
		return
	case !envLoaded:
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background() для graceful shutdown
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	// isShuttingDown гасит readiness, rejectRequests включается после паузы
	// на переключение балансировщика
	var isShuttingDown, rejectRequests atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrationsAutoApply {
		if err := migrations.Up(ctx, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
		runLog.Info("migrations applied")
	}

	producer, err := kafka.NewProducer(ctx, log, cfg.Kafka.Sarama.Version, kafka.ParseBrokers(cfg.Kafka.Brokers))
	if err != nil {
		return fmt.Errorf("kafka producer: %w", err)
	}

	cache, closeCache, err := application.NewTrackingCache(ctx, log, cfg)
	if err != nil {
		return fmt.Errorf("tracking cache: %w", err)
	}
	defer closeCache()

	// ctx задач отменяется вместе с сигналом остановки
	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, producer, cache, cfg)
	if err != nil {
		if closeErr := producer.Close(); closeErr != nil {
			runLog.Error("failed to close kafka producer", logger.NewField("error", closeErr))
		}
		return fmt.Errorf("business logic: %w", err)
	}
	defer func() {
		if err := businessApp.Notifier.Close(); err != nil {
			runLog.Error("failed to close notifier", logger.NewField("error", err))
		}
	}()

	metrics_system.StartSystemMetricsCollector(ctx, metrics_system.PgxPoolStats(pool))

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(log, &isShuttingDown, &rejectRequests, pool, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting", logger.NewField("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// gRPC health
	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.GRPC.Port))
	if err != nil {
		return fmt.Errorf("grpc listen: %w", err)
	}
	healthServer := grpcserver.NewHealthServer(log)

	grpcServerErr := make(chan error, 1)
	go func() {
		defer close(grpcServerErr)
		if err := healthServer.Serve(grpcListener); err != nil {
			grpcServerErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting", logger.NewField("port", cfg.Server.PprofPort))
			if err := pprofServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-grpcServerErr:
		return fmt.Errorf("grpc health server: %w", err)
	case err := <-pprofServerErr: // nil канал при выключенном pprof, кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)
	healthServer.SetNotServing()

	time.Sleep(readinessDrainDelay)
	rejectRequests.Store(true)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}
	healthServer.GracefulStop()

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

// newTrackingCache без REDIS_ADDR возвращает пустой кэш, чтение идет в базу.
func initRouter(
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	rejectRequests *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg config.HTTPServer,
) http.Handler {
	router := mux.NewRouter()

	router.Use(request_id.Middleware())
	router.Use(graceful_shutdown.Middleware(rejectRequests))

	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterBurst, float64(cfg.RateLimiterQPS))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods(http.MethodHead)
	router.Handle("/ping", ping_get.New(log, serviceName, ping_get.SystemClock{})).Methods(http.MethodGet)

	v1 := router.PathPrefix("/v1").Subrouter()
	v1.Handle("/shipments", shipment_post.New(log, app.ShipmentService)).Methods(http.MethodPost)
	v1.Handle("/shipments", shipments_get.New(log, app.ShipmentService)).Methods(http.MethodGet)
	v1.Handle("/shipments/order/{order_id}", shipment_by_order_get.New(log, app.ShipmentService)).Methods(http.MethodGet)
	v1.Handle("/shipments/tracking/{tracking_no}", shipment_tracking_get.New(log, app.ShipmentService)).Methods(http.MethodGet)
	v1.Handle("/shipments/{id}", shipment_get.New(log, app.ShipmentService)).Methods(http.MethodGet)
	v1.Handle("/shipments/{id}/status", shipment_status_patch.New(log, app.ShipmentService)).Methods(http.MethodPatch)
	v1.Handle("/shipments/{id}", shipment_delete.New(log, app.ShipmentService)).Methods(http.MethodDelete)

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods(http.MethodHead)
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
