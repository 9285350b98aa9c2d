package app

import (
	"shipment-service/internal/gateway/kafka/notification"
	"shipment-service/internal/handlers/rest/shipment_by_order_get"
	"shipment-service/internal/handlers/rest/shipment_delete"
	"shipment-service/internal/handlers/rest/shipment_get"
	"shipment-service/internal/handlers/rest/shipment_post"
	"shipment-service/internal/handlers/rest/shipment_status_patch"
	"shipment-service/internal/handlers/rest/shipment_tracking_get"
	"shipment-service/internal/handlers/rest/shipments_get"
	orderService "shipment-service/internal/service/order"
	"shipment-service/pkg/background"
)

type Application struct {
	ShipmentService   ShipmentService
	Notifier          *notification.Notifier
	BackgroundWorkers *background.Worker
}

type ShipmentService interface {
	shipment_post.Service
	shipment_get.Service
	shipment_by_order_get.Service
	shipment_tracking_get.Service
	shipment_status_patch.Service
	shipment_delete.Service
	shipments_get.Service
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
	Notifier     *notification.Notifier
}
