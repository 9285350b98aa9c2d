package shipment

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsCreatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipments_created_total",
			Help: "Total number of shipments created",
		},
	)

	ShipmentsDeliveredTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipments_delivered_total",
			Help: "Total number of shipments delivered",
		},
	)

	ShipmentsCancelledTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipments_cancelled_total",
			Help: "Total number of shipments cancelled",
		},
	)

	ShipmentsFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipments_failed_total",
			Help: "Total number of failed shipments",
		},
	)

	StatusUpdatesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "status_updates_total",
			Help: "Total number of shipment status updates",
		},
		[]string{"status"},
	)

	IdempotentReplaysTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "shipments_idempotent_replays_total",
			Help: "Total number of create requests answered from the idempotency store",
		},
	)
)
