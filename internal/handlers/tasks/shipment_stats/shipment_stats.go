//go:generate mockgen -source=shipment_stats.go -destination=./shipment_stats_mocks_test.go -package=shipment_stats_test
package shipment_stats

import (
	"context"
	"fmt"
	"time"

	"shipment-service/internal/entities"
)

type Repository interface {
	CountByStatus(ctx context.Context) (map[entities.ShipmentStatus]int64, error)
}

// ShipmentStats периодически переносит количество отправлений по статусам в гауги.
type ShipmentStats struct {
	repository Repository
	interval   time.Duration
}

func NewShipmentStats(repository Repository, interval time.Duration) *ShipmentStats {
	return &ShipmentStats{
		repository: repository,
		interval:   interval,
	}
}

func (s *ShipmentStats) TTL() time.Duration {
	return s.interval
}

func (s *ShipmentStats) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.repository.CountByStatus(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("count shipments by status: %w", err)
	}

	var total, inTransit int64
	// статусы без отправлений обнуляются, иначе гауг застрянет на старом значении
	for _, status := range entities.AllStatuses() {
		count := counts[status]
		ShipmentsByStatus.WithLabelValues(status.String()).Set(float64(count))

		total += count
		if status.IsInTransit() {
			inTransit += count
		}
	}

	ShipmentsTotal.Set(float64(total))
	ShipmentsInTransit.Set(float64(inTransit))
	return nil
}

func (s *ShipmentStats) Info() string {
	return "shipment stats"
}
