//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_tracking_get_test
package shipment_tracking_get

import (
	"context"

	"shipment-service/internal/entities"
	"shipment-service/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetByTrackingNo(ctx context.Context, trackingNo string) (*entities.ShipmentDetails, error)
}
