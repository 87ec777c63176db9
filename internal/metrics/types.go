package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
type Service struct {
	Mutations          *prometheus.CounterVec
	Rejected           *prometheus.CounterVec
	SaveDuration       prometheus.Histogram
	StartupTimeSeconds prometheus.Gauge
}
