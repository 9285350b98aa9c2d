package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"shipment-service/internal/entities"
)

const (
	defaultIdempotencyTTL            = 24 * time.Hour
	defaultTrackingNumberMaxAttempts = 5
	defaultTrackingCacheTTL          = 5 * time.Minute

	maxPoolConns = 1000
)

type (
	Tasks struct {
		IdempotencyCleanupInterval time.Duration
		ShipmentStatsInterval      time.Duration
	}

	HTTPServer struct {
		Port             string
		RequestTimeout   time.Duration // middleware timeout
		RateLimiterQPS   int           // middleware  rate limiter capacity
		RateLimiterBurst int           // middlewarerate limiter burst/refill
		PprofEnabled     bool
		PprofPort        string
	}

	GRPCServer struct {
		Port string
	}

	Database struct {
		Host                string
		Port                string
		User                string
		Password            string
		DBName              string
		SSLMode             string
		MigrationsAutoApply bool
		MaxConns            int // 0 - значение по умолчанию пула
		MinConns            int
	}

	Redis struct {
		Addr     string // пустой адрес - кэш трекинга выключен
		Password string
		DB       int
		TTL      time.Duration
	}

	Shipment struct {
		CancellationPolicy        entities.CancellationPolicy
		IdempotencyTTL            time.Duration
		TrackingNumberMaxAttempts int
	}

	Kafka struct {
		PortHealthcheck string
		Brokers         string
		Topic           string
		ConsumerGroup   string
		Sarama          Sarama
		Producer        Producer
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string
		ConsumerOffsetsAutocommit bool
	}

	Producer struct {
		StatusChangedTopic    string
		InventoryReleaseTopic string
		SendTimeout           time.Duration
	}

	KafkaHandlers struct {
		OrderStatusChanged OrderStatusChanged
	}

	OrderStatusChanged struct {
		ProcessTimeout time.Duration
	}

	Log struct {
		Level string
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		GRPC     GRPCServer
		Database Database
		Redis    Redis
		Shipment Shipment
		Kafka    Kafka
		Log      Log
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	idempotencyCleanupInterval, err := osGetEnvDuration("BACKGROUND_IDEMPOTENCY_CLEANUP_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	shipmentStatsInterval, err := osGetEnvDuration("BACKGROUND_SHIPMENT_STATS_INTERVAL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	saramaOffsetsAutocommit, err := osGetBool("KAFKA_SARAMA_OFFSETS_AUTOCOMMIT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	orderStatusChangedTimeout, err := osGetEnvDuration("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	producerSendTimeout, err := osGetEnvDuration("KAFKA_PRODUCER_SEND_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	migrationsAutoApply, err := osGetBool("MIGRATIONS_AUTO_APPLY")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMaxConns, err := osGetInt("POSTGRES_MAX_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	dbMinConns, err := osGetInt("POSTGRES_MIN_CONNS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisDB, err := osGetInt("REDIS_DB")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	redisTTL, err := osGetEnvDuration("REDIS_TRACKING_CACHE_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if redisTTL == 0 {
		redisTTL = defaultTrackingCacheTTL
	}

	policy, err := entities.ParseCancellationPolicy(os.Getenv("SHIPMENT_CANCELLATION_POLICY"))
	if err != nil {
		return nil, fmt.Errorf("loading config: SHIPMENT_CANCELLATION_POLICY: %w", err)
	}

	idempotencyTTL, err := osGetEnvDuration("IDEMPOTENCY_TTL")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if idempotencyTTL == 0 {
		idempotencyTTL = defaultIdempotencyTTL
	}

	trackingMaxAttempts, err := osGetInt("TRACKING_NUMBER_MAX_ATTEMPTS")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if trackingMaxAttempts == 0 {
		trackingMaxAttempts = defaultTrackingNumberMaxAttempts
	}

	return &Config{
		Tasks: Tasks{
			IdempotencyCleanupInterval: idempotencyCleanupInterval,
			ShipmentStatsInterval:      shipmentStatsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		GRPC: GRPCServer{
			Port: os.Getenv("GRPC_PORT"),
		},
		Database: Database{
			Host:                os.Getenv("POSTGRES_HOST"),
			Port:                os.Getenv("POSTGRES_PORT"),
			User:                os.Getenv("POSTGRES_USER"),
			Password:            os.Getenv("POSTGRES_PASSWORD"),
			DBName:              os.Getenv("POSTGRES_DB"),
			SSLMode:             os.Getenv("POSTGRES_SSLMODE"),
			MigrationsAutoApply: migrationsAutoApply,
			MaxConns:            dbMaxConns,
			MinConns:            dbMinConns,
		},
		Redis: Redis{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       redisDB,
			TTL:      redisTTL,
		},
		Shipment: Shipment{
			CancellationPolicy:        policy,
			IdempotencyTTL:            idempotencyTTL,
			TrackingNumberMaxAttempts: trackingMaxAttempts,
		},
		Kafka: Kafka{
			Brokers:         os.Getenv("KAFKA_BROKERS"),
			Topic:           os.Getenv("KAFKA_TOPIC"),
			ConsumerGroup:   os.Getenv("KAFKA_CONSUMER_GROUP"),
			PortHealthcheck: os.Getenv("KAFKA_HTTP_HEALTHCHECK_PORT"),
			Sarama: Sarama{
				Version:                   os.Getenv("KAFKA_SARAMA_VERSION"),
				ConsumerOffsetsAutocommit: saramaOffsetsAutocommit,
			},
			Producer: Producer{
				StatusChangedTopic:    os.Getenv("KAFKA_TOPIC_SHIPMENT_STATUS_CHANGED"),
				InventoryReleaseTopic: os.Getenv("KAFKA_TOPIC_INVENTORY_RELEASE"),
				SendTimeout:           producerSendTimeout,
			},
			Handlers: KafkaHandlers{
				OrderStatusChanged: OrderStatusChanged{
					ProcessTimeout: orderStatusChangedTimeout,
				},
			},
		},
		Log: Log{
			Level: os.Getenv("LOG_LEVEL"),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout == time.Duration(0) {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst == 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}
	if cfg.GRPC.Port == "" {
		return errors.New("GRPC_PORT is required")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Database.MaxConns < 0 || cfg.Database.MaxConns > maxPoolConns {
		return fmt.Errorf("POSTGRES_MAX_CONNS must be in [0, %d]", maxPoolConns)
	}
	if cfg.Database.MinConns < 0 || (cfg.Database.MaxConns > 0 && cfg.Database.MinConns > cfg.Database.MaxConns) {
		return errors.New("POSTGRES_MIN_CONNS must be in [0, POSTGRES_MAX_CONNS]")
	}

	if cfg.Tasks.IdempotencyCleanupInterval == time.Duration(0) {
		return errors.New("BACKGROUND_IDEMPOTENCY_CLEANUP_INTERVAL is required")
	}
	if cfg.Tasks.ShipmentStatsInterval == time.Duration(0) {
		return errors.New("BACKGROUND_SHIPMENT_STATS_INTERVAL is required")
	}

	if cfg.Shipment.TrackingNumberMaxAttempts < 1 {
		return errors.New("TRACKING_NUMBER_MAX_ATTEMPTS must be positive")
	}
	if cfg.Shipment.IdempotencyTTL < 0 {
		return errors.New("IDEMPOTENCY_TTL must be positive")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}

	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}

	if cfg.Kafka.Producer.StatusChangedTopic == "" {
		return errors.New("KAFKA_TOPIC_SHIPMENT_STATUS_CHANGED is required")
	}
	if cfg.Kafka.Producer.InventoryReleaseTopic == "" {
		return errors.New("KAFKA_TOPIC_INVENTORY_RELEASE is required")
	}

	if cfg.Kafka.Handlers.OrderStatusChanged.ProcessTimeout == time.Duration(0) {
		return errors.New("KAFKA_HANDLER_ORDER_STATUS_CHANGED_PROCESS_TIMEOUT is required")
	}

	return nil
}

func osGetInt(s string) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return 0, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return time.Duration(0), nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}
