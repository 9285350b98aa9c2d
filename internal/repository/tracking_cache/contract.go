//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=tracking_cache_test
package tracking_cache

import "shipment-service/pkg/logger"

type cacheLogger interface {
	Warn(msg string, fields ...logger.Field)
}
