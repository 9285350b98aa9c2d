//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=idempotency_test
package idempotency

import (
	"context"
	"encoding/json"
	"time"

	"shipment-service/internal/entities"
)

type Repository interface {
	Reserve(ctx context.Context, key, requestHash string, createdAt, expiresAt time.Time) (bool, error)
	GetForUpdate(ctx context.Context, key string) (*entities.IdempotencyRecord, error)
	Reclaim(ctx context.Context, key, requestHash string, createdAt, expiresAt time.Time) error
	Complete(ctx context.Context, key string, response json.RawMessage, expiresAt time.Time) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}
