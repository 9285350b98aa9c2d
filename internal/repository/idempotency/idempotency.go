package idempotency

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"shipment-service/internal/entities"
	"shipment-service/internal/service/idempotency"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Reserve занимает ключ вставкой в уникальный индекс. Конкурент с тем же
// ключом ждет на вставке, пока держатель не закоммитит или не откатит транзакцию.
// false означает, что запись с таким ключом уже есть.
func (r *Repository) Reserve(ctx context.Context, key, requestHash string, createdAt, expiresAt time.Time) (bool, error) {
	if !r.querier.InTransaction(ctx) {
		return false, errors.New("idempotency repository: reserve requested outside of transaction")
	}

	query := `
		INSERT INTO idempotency_keys (key, request_hash, created_at, expires_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (key) DO NOTHING
		RETURNING id
	`

	var id int64
	err := r.querier.QueryRow(ctx, query, key, requestHash, createdAt, expiresAt).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("unexpected idempotency repository reserve error: %w", err)
	}

	return true, nil
}

// GetForUpdate читает и блокирует запись до конца транзакции.
func (r *Repository) GetForUpdate(ctx context.Context, key string) (*entities.IdempotencyRecord, error) {
	query := `
		SELECT id, key, request_hash, response_data, created_at, expires_at
		FROM idempotency_keys
		WHERE key = $1
		FOR UPDATE
	`

	var recordDB RecordDB
	err := r.querier.QueryRow(ctx, query, key).Scan(
		&recordDB.ID,
		&recordDB.Key,
		&recordDB.RequestHash,
		&recordDB.ResponseData,
		&recordDB.CreatedAt,
		&recordDB.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, idempotency.ErrRecordNotFound
		}
		return nil, fmt.Errorf("unexpected idempotency repository get error: %w", err)
	}

	return ToDomain(&recordDB), nil
}

// Reclaim переиспользует просроченную (или незавершенную) запись под новый запрос.
func (r *Repository) Reclaim(ctx context.Context, key, requestHash string, createdAt, expiresAt time.Time) error {
	query := `
		UPDATE idempotency_keys
		SET request_hash = $2,
			response_data = NULL,
			created_at = $3,
			expires_at = $4
		WHERE key = $1
	`

	result, err := r.querier.Exec(ctx, query, key, requestHash, createdAt, expiresAt)
	if err != nil {
		return fmt.Errorf("unexpected idempotency repository reclaim error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return idempotency.ErrRecordNotFound
	}
	return nil
}

// Complete сохраняет ответ и продлевает срок жизни записи.
func (r *Repository) Complete(ctx context.Context, key string, response json.RawMessage, expiresAt time.Time) error {
	query := `
		UPDATE idempotency_keys
		SET response_data = $2,
			expires_at = $3
		WHERE key = $1
	`

	result, err := r.querier.Exec(ctx, query, key, []byte(response), expiresAt)
	if err != nil {
		return fmt.Errorf("unexpected idempotency repository complete error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return idempotency.ErrRecordNotFound
	}
	return nil
}

func (r *Repository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	query := `
		DELETE FROM idempotency_keys
		WHERE expires_at <= $1
	`

	result, err := r.querier.Exec(ctx, query, now)
	if err != nil {
		return 0, fmt.Errorf("unexpected idempotency repository delete expired error: %w", err)
	}

	return result.RowsAffected(), nil
}
