package club

import (
	"math"

	"github.com/vilacaiz/clubhouse/internal/models"
)

// FinanceSummary totals a season's ledger. Amounts are rounded to cents.
type FinanceSummary struct {
	Revenue    float64         `json:"revenue_total"`
	Expense    float64         `json:"expense_total"`
	Balance    float64         `json:"balance"`
	Categories []CategoryTotal `json:"categories"`
}

type CategoryTotal struct {
	Type     models.RecordType `json:"type"`
	Category string            `json:"category"`
	Total    float64           `json:"total"`
}

type DuesSummary struct {
	Paid    int `json:"paid"`
	Pending int `json:"pending"`
	Total   int `json:"total"`
}

// PlayerAvailability is a player's status as of the day it was computed.
// ReturnDate is the latest expected return among the open treatments.
type PlayerAvailability struct {
	PlayerID   int         `json:"player_id"`
	Name       string      `json:"name"`
	Available  bool        `json:"available"`
	Treatments []int       `json:"treatments"`
	ReturnDate models.Date `json:"return_date"`
}

// Summary bundles the season's reports.
type Summary struct {
	Season       string               `json:"season"`
	Finance      FinanceSummary       `json:"finance"`
	Dues         DuesSummary          `json:"dues"`
	Availability []PlayerAvailability `json:"availability"`
}

func cents(v float64) float64 {
	return math.Round(v*100) / 100
}

func financeSummary(records []models.FinanceRecord) FinanceSummary {
	var s FinanceSummary
	s.Categories = []CategoryTotal{}
	pos := map[CategoryTotal]int{}
	for _, r := range records {
		switch r.Type {
		case models.Revenue:
			s.Revenue += r.Amount
		case models.Expense:
			s.Expense += r.Amount
		}
		key := CategoryTotal{Type: r.Type, Category: r.Category}
		i, ok := pos[key]
		if !ok {
			i = len(s.Categories)
			pos[key] = i
			s.Categories = append(s.Categories, key)
		}
		s.Categories[i].Total += r.Amount
	}
	for i := range s.Categories {
		s.Categories[i].Total = cents(s.Categories[i].Total)
	}
	s.Revenue = cents(s.Revenue)
	s.Expense = cents(s.Expense)
	s.Balance = cents(s.Revenue - s.Expense)
	return s
}

func duesSummary(members []models.Member) DuesSummary {
	s := DuesSummary{Total: len(members)}
	for _, m := range members {
		if m.DuesStatus == models.DuesPaid {
			s.Paid++
		} else {
			s.Pending++
		}
	}
	return s
}

func availability(players []models.Player, treatments []models.Treatment, today models.Date) []PlayerAvailability {
	out := make([]PlayerAvailability, 0, len(players))
	pos := make(map[int]int, len(players))
	for i, p := range players {
		pos[p.ID] = i
		out = append(out, PlayerAvailability{PlayerID: p.ID, Name: p.Name, Available: true, Treatments: []int{}})
	}
	for _, t := range treatments {
		i, ok := pos[t.PlayerID]
		if !ok || available(t, today) {
			continue
		}
		pa := &out[i]
		pa.Available = false
		pa.Treatments = append(pa.Treatments, t.ID)
		if t.ExpectedReturn.After(pa.ReturnDate) {
			pa.ReturnDate = t.ExpectedReturn
		}
	}
	return out
}

func (s Scope) FinanceSummary() (FinanceSummary, error) {
	var out FinanceSummary
	err := s.view(func(sd *models.SeasonData) error {
		out = financeSummary(sd.Finance)
		return nil
	})
	return out, err
}

func (s Scope) DuesSummary() (DuesSummary, error) {
	var out DuesSummary
	err := s.view(func(sd *models.SeasonData) error {
		out = duesSummary(sd.Members)
		return nil
	})
	return out, err
}

// Availability lists every player of the season with their availability as
// of today.
func (s Scope) Availability() ([]PlayerAvailability, error) {
	var out []PlayerAvailability
	today := s.club.Today()
	err := s.view(func(sd *models.SeasonData) error {
		out = availability(sd.Players, sd.Treatments, today)
		return nil
	})
	return out, err
}

func (s Scope) Summary() (Summary, error) {
	out := Summary{Season: s.Label()}
	today := s.club.Today()
	err := s.view(func(sd *models.SeasonData) error {
		out.Finance = financeSummary(sd.Finance)
		out.Dues = duesSummary(sd.Members)
		out.Availability = availability(sd.Players, sd.Treatments, today)
		return nil
	})
	return out, err
}

func (c *Club) FinanceSummary() (FinanceSummary, error)     { return c.Active().FinanceSummary() }
func (c *Club) DuesSummary() (DuesSummary, error)           { return c.Active().DuesSummary() }
func (c *Club) Availability() ([]PlayerAvailability, error) { return c.Active().Availability() }
func (c *Club) Summary() (Summary, error)                   { return c.Active().Summary() }
