//go:build integration

package integration_test

import (
	"context"
	"log"
	"net"
	"net/url"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/postgres"
	"shipment-service/migrations"
	"shipment-service/pkg/logger/zap_adapter"
	"shipment-service/pkg/querier"
)

const postgresImage = "postgres:16-alpine"

var (
	poolInstance    *pgxpool.Pool
	querierInstance *querier.Querier
	suiteOnce       sync.Once
)

func setup() {
	ctx := context.Background()

	zapLogger, err := zap_adapter.NewZapAdapter("shipment-service-integration", "warn")
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		_ = zapLogger.Sync()
	}()

	// POSTGRES_* подгружает Makefile, без них поднимается контейнер
	cfg := &config.Database{
		Host:     os.Getenv("POSTGRES_HOST"),
		Port:     os.Getenv("POSTGRES_PORT"),
		User:     os.Getenv("POSTGRES_USER"),
		Password: os.Getenv("POSTGRES_PASSWORD"),
		DBName:   os.Getenv("POSTGRES_DB"),
		SSLMode:  os.Getenv("POSTGRES_SSLMODE"),
	}
	if cfg.Host == "" {
		cfg, err = startContainer(ctx)
		if err != nil {
			log.Fatalf("failed to start postgres container: %v", err)
		}
	}

	pool, err := postgres.NewConnPool(ctx, zapLogger, cfg)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}

	if err := migrations.Up(ctx, pool); err != nil {
		log.Fatalf("failed to apply migrations: %v", err)
	}

	poolInstance = pool
	querierInstance = querier.New(pool, pgxv5.DefaultCtxGetter)
}

// startContainer живет до конца процесса тестов, ryuk testcontainers удалит его сам.
func startContainer(ctx context.Context) (*config.Database, error) {
	container, err := tcpostgres.Run(ctx,
		postgresImage,
		tcpostgres.WithDatabase("shipments"),
		tcpostgres.WithUsername("shipments"),
		tcpostgres.WithPassword("shipments"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, err
	}

	u, err := url.Parse(dsn)
	if err != nil {
		return nil, err
	}
	host, port, err := net.SplitHostPort(u.Host)
	if err != nil {
		return nil, err
	}
	password, _ := u.User.Password()

	return &config.Database{
		Host:     host,
		Port:     port,
		User:     u.User.Username(),
		Password: password,
		DBName:   "shipments",
		SSLMode:  "disable",
	}, nil
}

func GetQuerier() *querier.Querier {
	suiteOnce.Do(setup)
	return querierInstance
}

func GetPool() *pgxpool.Pool {
	suiteOnce.Do(setup)
	return poolInstance
}

func SetupDB(t *testing.T, setupSql string) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, setupSql)
	require.NoError(t, err)
}

func TeardownDB(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := GetQuerier().Exec(ctx, `
		TRUNCATE TABLE shipment_events, shipments, idempotency_keys RESTART IDENTITY CASCADE;
	`)
	require.NoError(t, err)
}
