package tracking_cache

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/cache/v9"
	goredis "github.com/redis/go-redis/v9"
	"shipment-service/internal/entities"
	"shipment-service/pkg/logger"
)

const (
	keyPrefix  = "shipment:tracking:"
	DefaultTTL = 5 * time.Minute
)

// Cache хранит карточку отслеживания (отправление + события) в Redis.
// Ошибки Redis не пробрасываются: промах кэша ведет в базу.
type Cache struct {
	cache *cache.Cache
	ttl   time.Duration
	log   cacheLogger
}

func New(client goredis.UniversalClient, ttl time.Duration, log cacheLogger) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Cache{
		cache: cache.New(&cache.Options{
			Redis: client,
		}),
		ttl: ttl,
		log: log,
	}
}

func (c *Cache) Get(ctx context.Context, trackingNo string) (*entities.ShipmentDetails, bool) {
	var details entities.ShipmentDetails

	err := c.cache.Get(ctx, cacheKey(trackingNo), &details)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			c.log.Warn("tracking cache get failed",
				logger.NewField("tracking_no", trackingNo),
				logger.NewField("error", err),
			)
		}
		return nil, false
	}

	return &details, true
}

func (c *Cache) Set(ctx context.Context, details entities.ShipmentDetails) {
	err := c.cache.Set(&cache.Item{
		Ctx:   ctx,
		Key:   cacheKey(details.Shipment.TrackingNo),
		Value: details,
		TTL:   c.ttl,
	})
	if err != nil {
		c.log.Warn("tracking cache set failed",
			logger.NewField("tracking_no", details.Shipment.TrackingNo),
			logger.NewField("error", err),
		)
	}
}

func (c *Cache) Delete(ctx context.Context, trackingNo string) {
	err := c.cache.Delete(ctx, cacheKey(trackingNo))
	if err != nil && !errors.Is(err, cache.ErrCacheMiss) {
		c.log.Warn("tracking cache delete failed",
			logger.NewField("tracking_no", trackingNo),
			logger.NewField("error", err),
		)
	}
}

func cacheKey(trackingNo string) string {
	return keyPrefix + trackingNo
}

// Nop используется когда REDIS_ADDR не задан.
type Nop struct{}

func (Nop) Get(context.Context, string) (*entities.ShipmentDetails, bool) { return nil, false }
func (Nop) Set(context.Context, entities.ShipmentDetails)                 {}
func (Nop) Delete(context.Context, string)                                {}
