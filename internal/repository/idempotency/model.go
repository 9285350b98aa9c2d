package idempotency

import "time"

type RecordDB struct {
	ID           int64
	Key          string
	RequestHash  string
	ResponseData []byte
	CreatedAt    time.Time
	ExpiresAt    time.Time
}
