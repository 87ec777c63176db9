package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu            sync.Mutex
	mutations     map[string]int
	rejected      map[string]int
	saveDurations []float64
	startupTime   float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		mutations:     make(map[string]int),
		rejected:      make(map[string]int),
		saveDurations: make([]float64, 0),
	}
}

func (m *Mock) IncMutation(entity, op string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.mutations[entity+"."+op]++
}

func (m *Mock) IncRejected(entity, kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected[entity+"."+kind]++
}

func (m *Mock) ObserveSaveDuration(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.saveDurations = append(m.saveDurations, seconds)
}

func (m *Mock) SetStartupTime(seconds float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = seconds
}

// Mutations returns how often IncMutation was called for entity and op.
func (m *Mock) Mutations(entity, op string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mutations[entity+"."+op]
}

// Rejected returns how often IncRejected was called for entity and kind.
func (m *Mock) Rejected(entity, kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.rejected[entity+"."+kind]
}

// Saves returns the number of observed document saves.
func (m *Mock) Saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.saveDurations)
}
