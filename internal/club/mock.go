package club

import (
	"sync"

	"github.com/vilacaiz/clubhouse/internal/models"
)

// MockStore is a mock implementation of the ClubStore interface for testing.
// It is safe for concurrent use. Scope returning methods yield a zero Scope
// unless a Func is set, so repository calls need a real Club behind them.
type MockStore struct {
	mu sync.Mutex

	// Spies for method calls
	ListSeasonsFunc  func() []models.Season
	ActiveSeasonFunc func() models.Season
	CreateSeasonFunc func(in SeasonInput) (models.Season, error)
	SetActiveFunc    func(label string) (models.Season, error)
	UpdateSeasonFunc func(label string, patch SeasonPatch) (models.Season, error)
	DeleteSeasonFunc func(label string) error
	ActiveFunc       func() Scope
	SeasonFunc       func(label string) (Scope, error)
	ReloadFunc       func() error

	// Call records
	CreateSeasonCalls []SeasonInput
	SetActiveCalls    []string
	UpdateSeasonCalls []struct {
		Label string
		Patch SeasonPatch
	}
	DeleteSeasonCalls []string
	SeasonCalls       []string
	ReloadCalls       int
}

// NewMock creates a new mock instance.
func NewMock() *MockStore {
	return &MockStore{}
}

// Reset clears all call records.
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateSeasonCalls = nil
	m.SetActiveCalls = nil
	m.UpdateSeasonCalls = nil
	m.DeleteSeasonCalls = nil
	m.SeasonCalls = nil
	m.ReloadCalls = 0
}

func (m *MockStore) ListSeasons() []models.Season {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ListSeasonsFunc != nil {
		return m.ListSeasonsFunc()
	}
	return []models.Season{}
}

func (m *MockStore) ActiveSeason() models.Season {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ActiveSeasonFunc != nil {
		return m.ActiveSeasonFunc()
	}
	return models.Season{}
}

func (m *MockStore) CreateSeason(in SeasonInput) (models.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateSeasonCalls = append(m.CreateSeasonCalls, in)
	if m.CreateSeasonFunc != nil {
		return m.CreateSeasonFunc(in)
	}
	return models.Season{Label: in.Label, StartDate: in.StartDate, EndDate: in.EndDate, Notes: in.Notes}, nil
}

func (m *MockStore) SetActive(label string) (models.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SetActiveCalls = append(m.SetActiveCalls, label)
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(label)
	}
	return models.Season{Label: label, IsActive: true}, nil
}

func (m *MockStore) UpdateSeason(label string, patch SeasonPatch) (models.Season, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateSeasonCalls = append(m.UpdateSeasonCalls, struct {
		Label string
		Patch SeasonPatch
	}{label, patch})
	if m.UpdateSeasonFunc != nil {
		return m.UpdateSeasonFunc(label, patch)
	}
	return models.Season{Label: label}, nil
}

func (m *MockStore) DeleteSeason(label string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteSeasonCalls = append(m.DeleteSeasonCalls, label)
	if m.DeleteSeasonFunc != nil {
		return m.DeleteSeasonFunc(label)
	}
	return nil
}

func (m *MockStore) Active() Scope {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.ActiveFunc != nil {
		return m.ActiveFunc()
	}
	return Scope{}
}

func (m *MockStore) Season(label string) (Scope, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SeasonCalls = append(m.SeasonCalls, label)
	if m.SeasonFunc != nil {
		return m.SeasonFunc(label)
	}
	return Scope{}, &UnknownSeasonError{Label: label}
}

func (m *MockStore) Reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReloadCalls++
	if m.ReloadFunc != nil {
		return m.ReloadFunc()
	}
	return nil
}
