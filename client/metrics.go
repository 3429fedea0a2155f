package client

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "bird_client",
			Name:      "requests_total",
			Help:      "Client operations by outcome (ok, validation, unauthorized, transport).",
		},
		[]string{"op", "outcome"},
	)

	requestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "bird_client",
			Name:      "request_duration_seconds",
			Help:      "Wall time of client operations, including rejected ones.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"op"},
	)
)
