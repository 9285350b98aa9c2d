package idempotency

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"shipment-service/internal/entities"
)

const (
	DefaultTTL = 24 * time.Hour

	// запись может исчезнуть (чистка) между неудачной вставкой и чтением
	reserveAttempts = 2
)

// Store хранит ключи идемпотентности. CheckAndReserve и Record должны
// вызываться в одной транзакции вместе с защищаемой операцией.
type Store struct {
	repository Repository
	ttl        time.Duration
	now        func() time.Time
}

func New(repository Repository, ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store{
		repository: repository,
		ttl:        ttl,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// Fingerprint - SHA-256 от канонического JSON запроса. Поля структур
// сериализуются в порядке объявления, ключи map сортируются.
func Fingerprint(request any) (string, error) {
	payload, err := json.Marshal(request)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:]), nil
}

func (s *Store) Fingerprint(request any) (string, error) {
	return Fingerprint(request)
}

func (s *Store) CheckAndReserve(ctx context.Context, key, fingerprint string) (*entities.IdempotencyCheck, error) {
	if err := validateKey(key); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKey, err)
	}

	for attempt := 1; ; attempt++ {
		check, err := s.checkAndReserve(ctx, key, fingerprint)
		if errors.Is(err, ErrRecordNotFound) && attempt < reserveAttempts {
			continue
		}
		return check, err
	}
}

func (s *Store) checkAndReserve(ctx context.Context, key, fingerprint string) (*entities.IdempotencyCheck, error) {
	now := s.now()

	reserved, err := s.repository.Reserve(ctx, key, fingerprint, now, now.Add(s.ttl))
	if err != nil {
		return nil, fmt.Errorf("reserve key: %w", err)
	}
	if reserved {
		return &entities.IdempotencyCheck{}, nil
	}

	record, err := s.repository.GetForUpdate(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	// просроченная запись считается отсутствующей
	if record.IsExpired(now) || !record.IsCompleted() {
		if err := s.repository.Reclaim(ctx, key, fingerprint, now, now.Add(s.ttl)); err != nil {
			return nil, fmt.Errorf("reclaim key: %w", err)
		}
		return &entities.IdempotencyCheck{}, nil
	}

	if record.RequestHash != fingerprint {
		return nil, ErrIdempotencyConflict
	}

	return &entities.IdempotencyCheck{
		Replayed:     true,
		ResponseData: record.ResponseData,
	}, nil
}

// Record сохраняет ответ для ключа, зарезервированного в этой же транзакции.
func (s *Store) Record(ctx context.Context, key string, response json.RawMessage) error {
	if len(response) == 0 {
		return ErrEmptyResponse
	}

	if err := s.repository.Complete(ctx, key, response, s.now().Add(s.ttl)); err != nil {
		return fmt.Errorf("complete key: %w", err)
	}
	return nil
}

func (s *Store) PurgeExpired(ctx context.Context) (int64, error) {
	deleted, err := s.repository.DeleteExpired(ctx, s.now())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return 0, fmt.Errorf("purge timed out: %w", err)
		}
		return 0, fmt.Errorf("purge: %w", err)
	}
	return deleted, nil
}
