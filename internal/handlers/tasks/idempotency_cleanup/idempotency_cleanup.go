//go:generate mockgen -source=idempotency_cleanup.go -destination=./idempotency_cleanup_mocks_test.go -package=idempotency_cleanup_test
package idempotency_cleanup

import (
	"context"
	"time"

	"shipment-service/pkg/logger"
)

type Service interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
}

// IdempotencyCleanup удаляет ключи идемпотентности с истекшим expires_at.
type IdempotencyCleanup struct {
	log      taskLogger
	service  Service
	interval time.Duration
}

func NewIdempotencyCleanup(log taskLogger, service Service, interval time.Duration) *IdempotencyCleanup {
	return &IdempotencyCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *IdempotencyCleanup) TTL() time.Duration {
	return c.interval
}

func (c *IdempotencyCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	purged, err := c.service.PurgeExpired(ctxWithTimeout)
	if purged > 0 {
		c.log.Info("idempotency cleanup", logger.NewField("purged_keys", purged))
	}

	return err
}

func (c *IdempotencyCleanup) Info() string {
	return "idempotency cleanup"
}
