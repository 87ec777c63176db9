package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the club core from the Prometheus implementation.
type Metrics interface {
	IncMutation(entity, op string)
	IncRejected(entity, kind string)
	ObserveSaveDuration(seconds float64)
	SetStartupTime(seconds float64)
}
