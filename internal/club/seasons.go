package club

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/vilacaiz/clubhouse/internal/models"
)

const entitySeason = "season"

// SeasonInput describes a new season.
type SeasonInput struct {
	Label     string      `json:"label"`
	StartDate models.Date `json:"start_date"`
	EndDate   models.Date `json:"end_date"`
	Notes     string      `json:"notes"`
}

// SeasonPatch changes a season's dates or notes. The label is the key of
// the season's data and cannot change.
type SeasonPatch struct {
	StartDate *models.Date `json:"start_date"`
	EndDate   *models.Date `json:"end_date"`
	Notes     *string      `json:"notes"`
}

// ListSeasons returns every season in creation order.
func (c *Club) ListSeasons() []models.Season {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]models.Season, len(c.doc.Seasons))
	for i, s := range c.doc.Seasons {
		s.IsActive = s.Label == c.doc.ActiveSeason
		out[i] = s
	}
	return out
}

// ActiveSeason returns the season all unscoped calls operate on.
func (c *Club) ActiveSeason() models.Season {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, _ := findSeason(c.doc, c.doc.ActiveSeason)
	s := c.doc.Seasons[i]
	s.IsActive = true
	return s
}

// CreateSeason adds a season. It does not become active.
func (c *Club) CreateSeason(in SeasonInput) (models.Season, error) {
	season := models.Season{
		Label:     strings.TrimSpace(in.Label),
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Notes:     strings.TrimSpace(in.Notes),
	}
	err := c.commit(entitySeason, "create", func(doc *models.Document) error {
		if err := seasonRules.validate(entitySeason, season); err != nil {
			return err
		}
		if _, exists := findSeason(doc, season.Label); exists {
			return &DuplicateSeasonError{Label: season.Label}
		}
		doc.Seasons = append(doc.Seasons, season)
		doc.Data[season.Label] = models.NewSeasonData()
		return nil
	})
	if err != nil {
		return models.Season{}, err
	}
	log.Info("Season created", "season", season.Label)
	return season, nil
}

// SetActive makes the season with the given label the active one. No data
// moves: collections are already keyed by season.
func (c *Club) SetActive(label string) (models.Season, error) {
	var season models.Season
	err := c.commit(entitySeason, "activate", func(doc *models.Document) error {
		i, ok := findSeason(doc, label)
		if !ok {
			return &UnknownSeasonError{Label: label}
		}
		doc.ActiveSeason = label
		season = doc.Seasons[i]
		season.IsActive = true
		return nil
	})
	if err != nil {
		return models.Season{}, err
	}
	log.Info("Active season changed", "season", label)
	return season, nil
}

// UpdateSeason changes the dates or notes of a season.
func (c *Club) UpdateSeason(label string, patch SeasonPatch) (models.Season, error) {
	var season models.Season
	err := c.commit(entitySeason, "update", func(doc *models.Document) error {
		i, ok := findSeason(doc, label)
		if !ok {
			return &UnknownSeasonError{Label: label}
		}
		merged := doc.Seasons[i]
		if patch.StartDate != nil {
			merged.StartDate = *patch.StartDate
		}
		if patch.EndDate != nil {
			merged.EndDate = *patch.EndDate
		}
		if patch.Notes != nil {
			merged.Notes = strings.TrimSpace(*patch.Notes)
		}
		if err := seasonRules.validate(entitySeason, merged); err != nil {
			return err
		}
		doc.Seasons[i] = merged
		season = merged
		season.IsActive = label == doc.ActiveSeason
		return nil
	})
	return season, err
}

// DeleteSeason removes an empty, inactive season.
func (c *Club) DeleteSeason(label string) error {
	return c.commit(entitySeason, "delete", func(doc *models.Document) error {
		i, ok := findSeason(doc, label)
		if !ok {
			return &UnknownSeasonError{Label: label}
		}
		if label == doc.ActiveSeason {
			return &ConflictError{Entity: entitySeason, Key: label, Dependents: []string{"the active season selector"}}
		}
		if sd := doc.Data[label]; sd != nil && !sd.Empty() {
			return &ConflictError{Entity: entitySeason, Key: label, Dependents: seasonContents(sd)}
		}
		doc.Seasons = remove(doc.Seasons, i)
		delete(doc.Data, label)
		return nil
	})
}

func seasonContents(sd *models.SeasonData) []string {
	var out []string
	add := func(name string, n int) {
		if n > 0 {
			out = append(out, plural(n, name))
		}
	}
	add("player", len(sd.Players))
	add("coach", len(sd.Coaches))
	add("physiotherapist", len(sd.Physiotherapists))
	add("youth_squad", len(sd.YouthSquads))
	add("membership_type", len(sd.MembershipTypes))
	add("member", len(sd.Members))
	add("membership_payment", len(sd.MembershipPayments))
	add("treatment", len(sd.Treatments))
	add("match_plan", len(sd.MatchPlans))
	add("finance_record", len(sd.Finance))
	return out
}
