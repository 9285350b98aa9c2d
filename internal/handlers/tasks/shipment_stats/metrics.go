package shipment_stats

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ShipmentsByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "shipments_by_status",
			Help: "Current number of shipments per status",
		},
		[]string{"status"},
	)

	ShipmentsTotal = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shipments_total",
			Help: "Current number of shipments",
		},
	)

	ShipmentsInTransit = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "shipments_in_transit",
			Help: "Current number of shipments in SHIPPED, IN_TRANSIT or OUT_FOR_DELIVERY",
		},
	)
)
