package idempotency

import "errors"

var (
	ErrInvalidKey          = errors.New("invalid idempotency key")
	ErrIdempotencyConflict = errors.New("idempotency key reused with a different request")
	ErrRecordNotFound      = errors.New("idempotency record not found")
	ErrEmptyResponse       = errors.New("empty idempotency response")
)
