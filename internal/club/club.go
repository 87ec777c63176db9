// Package club is the season-scoped data layer of the club: the season
// index, the entity repositories with their validation and referential
// checks, and the derived summaries.
package club

import (
	"fmt"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/vilacaiz/clubhouse/internal/metrics"
	"github.com/vilacaiz/clubhouse/internal/models"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

// Club holds the loaded club document and the backend it is persisted to.
// Every mutation is applied to a working copy, persisted, and only then
// made visible, so a failed call leaves memory and storage unchanged.
type Club struct {
	backend storage.Backend
	clock   clockwork.Clock
	metrics metrics.Metrics

	mu  sync.RWMutex
	doc *models.Document
}

// Option configures a Club.
type Option func(*Club)

// WithClock sets the clock used for "today" (treatment availability,
// default dates).
func WithClock(clock clockwork.Clock) Option {
	return func(c *Club) { c.clock = clock }
}

// WithMetrics records committed and rejected operations.
func WithMetrics(m metrics.Metrics) Option {
	return func(c *Club) { c.metrics = m }
}

// New loads the document from backend. When the document has no season a
// default one is created and activated.
func New(backend storage.Backend, opts ...Option) (*Club, error) {
	c := &Club{
		backend: backend,
		clock:   clockwork.NewRealClock(),
		metrics: noopMetrics{},
	}
	for _, opt := range opts {
		opt(c)
	}

	doc, err := backend.Load()
	if err != nil {
		return nil, err
	}
	doc.Normalize()
	c.doc = doc

	if err := c.ensureActiveSeason(); err != nil {
		return nil, err
	}
	log.Info("Club data loaded", "source", backend.Name(), "seasons", len(c.doc.Seasons), "active_season", c.doc.ActiveSeason)
	return c, nil
}

// Reload discards the in-memory document and reads it again from storage.
func (c *Club) Reload() error {
	doc, err := c.backend.Load()
	if err != nil {
		return err
	}
	doc.Normalize()
	c.mu.Lock()
	c.doc = doc
	c.mu.Unlock()
	return c.ensureActiveSeason()
}

// Document returns a deep copy of the current document.
func (c *Club) Document() (*models.Document, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.doc.Clone()
}

// Today is the current calendar day according to the club's clock.
func (c *Club) Today() models.Date {
	return models.DateOf(c.clock.Now())
}

func (c *Club) ensureActiveSeason() error {
	c.mu.RLock()
	hasSeasons := len(c.doc.Seasons) > 0
	_, activeKnown := findSeason(c.doc, c.doc.ActiveSeason)
	c.mu.RUnlock()
	if hasSeasons && activeKnown {
		return nil
	}

	return c.commit("season", "bootstrap", func(doc *models.Document) error {
		if len(doc.Seasons) == 0 {
			season := defaultSeason(c.Today())
			doc.Seasons = append(doc.Seasons, season)
			log.Info("Created default season", "season", season.Label)
		}
		if _, ok := findSeason(doc, doc.ActiveSeason); !ok {
			doc.ActiveSeason = doc.Seasons[0].Label
		}
		return nil
	})
}

// defaultSeason is the football season containing today; seasons run from
// July 1st to June 30th.
func defaultSeason(today models.Date) models.Season {
	start := today.Year()
	if today.Month() < 7 {
		start--
	}
	return models.Season{
		Label:     fmt.Sprintf("%d/%d", start, start+1),
		StartDate: models.NewDate(start, 7, 1),
		EndDate:   models.NewDate(start+1, 6, 30),
	}
}

// commit runs fn against a working copy of the document, saves the result
// and swaps it in. On any error the current document is kept.
func (c *Club) commit(entity, op string, fn func(doc *models.Document) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	work, err := c.doc.Clone()
	if err != nil {
		return fmt.Errorf("failed to copy club document: %w", err)
	}
	if err := fn(work); err != nil {
		c.reject(entity, op, err)
		return err
	}
	work.Normalize()

	start := c.clock.Now()
	if err := c.backend.Save(work); err != nil {
		c.reject(entity, op, err)
		return err
	}
	c.metrics.ObserveSaveDuration(c.clock.Since(start).Seconds())
	c.doc = work
	c.metrics.IncMutation(entity, op)
	log.Debug("Committed club change", "entity", entity, "op", op)
	return nil
}

func (c *Club) reject(entity, op string, err error) {
	kind := errorKind(err)
	c.metrics.IncRejected(entity, kind)
	if kind == "io" || kind == "internal" {
		log.Error("Club change failed", "entity", entity, "op", op, "error", err)
		return
	}
	log.Debug("Club change rejected", "entity", entity, "op", op, "kind", kind, "error", err)
}

// Scope binds repository calls to one season. The zero season means the
// season that is active when the call is made.
type Scope struct {
	club   *Club
	season string
}

// Active returns a scope following the active season.
func (c *Club) Active() Scope {
	return Scope{club: c}
}

// Season returns a scope pinned to the season with the given label.
func (c *Club) Season(label string) (Scope, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if _, ok := findSeason(c.doc, label); !ok {
		return Scope{}, &UnknownSeasonError{Label: label}
	}
	return Scope{club: c, season: label}, nil
}

// Label returns the season the scope currently resolves to.
func (s Scope) Label() string {
	if s.season != "" {
		return s.season
	}
	s.club.mu.RLock()
	defer s.club.mu.RUnlock()
	return s.club.doc.ActiveSeason
}

func resolve(doc *models.Document, season string) (*models.SeasonData, error) {
	label := season
	if label == "" {
		label = doc.ActiveSeason
	}
	if _, ok := findSeason(doc, label); !ok {
		return nil, &UnknownSeasonError{Label: label}
	}
	sd := doc.Data[label]
	if sd == nil {
		sd = models.NewSeasonData()
		doc.Data[label] = sd
	}
	return sd, nil
}

// mutate commits fn against the scope's season data.
func (s Scope) mutate(entity, op string, fn func(sd *models.SeasonData) error) error {
	return s.club.commit(entity, op, func(doc *models.Document) error {
		sd, err := resolve(doc, s.season)
		if err != nil {
			return err
		}
		return fn(sd)
	})
}

// view runs fn against the scope's season data under a read lock. fn must
// copy anything it returns.
func (s Scope) view(fn func(sd *models.SeasonData) error) error {
	s.club.mu.RLock()
	defer s.club.mu.RUnlock()
	label := s.season
	if label == "" {
		label = s.club.doc.ActiveSeason
	}
	if _, ok := findSeason(s.club.doc, label); !ok {
		return &UnknownSeasonError{Label: label}
	}
	sd := s.club.doc.Data[label]
	if sd == nil {
		sd = models.NewSeasonData()
	}
	return fn(sd)
}

func (s Scope) Players() *Players                   { return &Players{scope: s} }
func (s Scope) Coaches() *Coaches                   { return &Coaches{scope: s} }
func (s Scope) Physiotherapists() *Physiotherapists { return &Physiotherapists{scope: s} }
func (s Scope) YouthSquads() *YouthSquads           { return &YouthSquads{scope: s} }
func (s Scope) MembershipTypes() *MembershipTypes   { return &MembershipTypes{scope: s} }
func (s Scope) Members() *Members                   { return &Members{scope: s} }
func (s Scope) Treatments() *Treatments             { return &Treatments{scope: s} }
func (s Scope) MatchPlans() *MatchPlans             { return &MatchPlans{scope: s} }
func (s Scope) Finance() *Finance                   { return &Finance{scope: s} }

func (c *Club) Players() *Players                   { return c.Active().Players() }
func (c *Club) Coaches() *Coaches                   { return c.Active().Coaches() }
func (c *Club) Physiotherapists() *Physiotherapists { return c.Active().Physiotherapists() }
func (c *Club) YouthSquads() *YouthSquads           { return c.Active().YouthSquads() }
func (c *Club) MembershipTypes() *MembershipTypes   { return c.Active().MembershipTypes() }
func (c *Club) Members() *Members                   { return c.Active().Members() }
func (c *Club) Treatments() *Treatments             { return c.Active().Treatments() }
func (c *Club) MatchPlans() *MatchPlans             { return c.Active().MatchPlans() }
func (c *Club) Finance() *Finance                   { return c.Active().Finance() }

type noopMetrics struct{}

func (noopMetrics) IncMutation(string, string)  {}
func (noopMetrics) IncRejected(string, string)  {}
func (noopMetrics) ObserveSaveDuration(float64) {}
func (noopMetrics) SetStartupTime(float64)      {}
