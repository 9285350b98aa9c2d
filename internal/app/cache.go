package app

import (
	"context"
	"fmt"

	"shipment-service/internal/pkg/config"
	"shipment-service/internal/pkg/redis"
	"shipment-service/internal/repository/tracking_cache"
	shipmentService "shipment-service/internal/service/shipment"
	"shipment-service/pkg/logger"
)

// NewTrackingCache поднимает redis кэш трекинга, пустой REDIS_ADDR - кэш
// выключен. closeFn всегда не nil.
func NewTrackingCache(ctx context.Context, log logger.Logger, cfg *config.Config) (shipmentService.TrackingCache, func(), error) {
	if cfg.Redis.Addr == "" {
		log.Info("REDIS_ADDR is empty, tracking cache disabled")
		return tracking_cache.Nop{}, func() {}, nil
	}

	client, err := redis.NewClient(ctx, log, &cfg.Redis)
	if err != nil {
		return nil, nil, fmt.Errorf("redis client: %w", err)
	}

	closeFn := func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", logger.NewField("error", err))
		}
	}
	return tracking_cache.New(client, cfg.Redis.TTL, log), closeFn, nil
}
