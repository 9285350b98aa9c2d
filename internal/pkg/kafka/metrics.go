package kafka

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ConsumerErrorsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kafka_consumer_group_errors_total",
			Help: "Asynchronous consumer group errors",
		},
	)

	ConsumerRebalancesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "kafka_consumer_group_rebalances_total",
			Help: "Consume sessions restarted after a rebalance",
		},
	)
)
