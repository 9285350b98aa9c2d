//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rate_limiter_test
package rate_limiter

import (
	"time"

	"shipment-service/pkg/logger"
)

type Limiter interface {
	Allow() bool
	RetryAfter() time.Duration
}

type handlerLogger interface {
	Warn(msg string, fields ...logger.Field)
}
