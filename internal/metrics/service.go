package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		Mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "club_mutations_total",
			Help: "The total number of committed changes, by entity and operation.",
		}, []string{"entity", "op"}),
		Rejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "club_rejected_operations_total",
			Help: "The total number of operations rejected by validation or integrity checks.",
		}, []string{"entity", "kind"}),
		SaveDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "club_document_save_duration_seconds",
			Help:    "The duration of persisting the club document.",
			Buckets: []float64{0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "club_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.Mutations,
		s.Rejected,
		s.SaveDuration,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncMutation(entity, op string) {
	s.Mutations.WithLabelValues(entity, op).Inc()
}

func (s *Service) IncRejected(entity, kind string) {
	s.Rejected.WithLabelValues(entity, kind).Inc()
}

func (s *Service) ObserveSaveDuration(seconds float64) {
	s.SaveDuration.Observe(seconds)
}

func (s *Service) SetStartupTime(seconds float64) {
	s.StartupTimeSeconds.Set(seconds)
}
