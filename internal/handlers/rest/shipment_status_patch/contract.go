//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_status_patch_test
package shipment_status_patch

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
	UpdateStatus(ctx context.Context, change entities.StatusChange) (*entities.Shipment, error)
}
