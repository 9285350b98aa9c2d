package entities

import (
	"encoding/json"
	"time"
)

type IdempotencyRecord struct {
	ID           int64
	Key          string
	RequestHash  string
	ResponseData json.RawMessage
	CreatedAt    time.Time
	ExpiresAt    time.Time
}

func (r *IdempotencyRecord) IsExpired(now time.Time) bool {
	return !now.Before(r.ExpiresAt)
}

// IsCompleted - ответ уже сохранен и может быть отдан повторно.
func (r *IdempotencyRecord) IsCompleted() bool {
	return len(r.ResponseData) > 0
}

// IdempotencyCheck - результат CheckAndReserve. Replayed=false означает, что
// ключ зарезервирован и операцию нужно выполнить.
type IdempotencyCheck struct {
	Replayed     bool
	ResponseData json.RawMessage
}
