package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
	"gopkg.in/yaml.v3"
)

// Fixture is a season's worth of club data. Entities refer to each other by
// their fixture key, not by id, since ids are assigned on insert.
type Fixture struct {
	Season struct {
		Label    string `yaml:"label"`
		Start    string `yaml:"start_date"`
		End      string `yaml:"end_date"`
		Notes    string `yaml:"notes"`
		Activate bool   `yaml:"activate"`
	} `yaml:"season"`
	Players []struct {
		Key          string   `yaml:"key"`
		Name         string   `yaml:"name"`
		Position     string   `yaml:"position"`
		Squad        string   `yaml:"squad"`
		Birthdate    string   `yaml:"birthdate"`
		Shirt        *int     `yaml:"shirt"`
		Contact      string   `yaml:"contact"`
		FederationID string   `yaml:"federation_id"`
		MonthlyFee   *float64 `yaml:"monthly_fee"`
		MonthlyPaid  bool     `yaml:"monthly_paid"`
		KitFee       *float64 `yaml:"kit_fee"`
		KitPaid      bool     `yaml:"kit_paid"`
	} `yaml:"players"`
	Coaches []struct {
		Key     string `yaml:"key"`
		Name    string `yaml:"name"`
		Role    string `yaml:"role"`
		License string `yaml:"license"`
		Contact string `yaml:"contact"`
	} `yaml:"coaches"`
	Physiotherapists []struct {
		Key     string `yaml:"key"`
		Name    string `yaml:"name"`
		Role    string `yaml:"role"`
		Contact string `yaml:"contact"`
	} `yaml:"physiotherapists"`
	YouthSquads []struct {
		Name     string   `yaml:"name"`
		Category string   `yaml:"category"`
		Coach    string   `yaml:"coach"`
		Players  []string `yaml:"players"`
	} `yaml:"youth_squads"`
	MembershipTypes []struct {
		Key         string  `yaml:"key"`
		Name        string  `yaml:"name"`
		Amount      float64 `yaml:"amount"`
		Frequency   string  `yaml:"frequency"`
		Description string  `yaml:"description"`
	} `yaml:"membership_types"`
	Members []struct {
		Key            string `yaml:"key"`
		Name           string `yaml:"name"`
		Type           string `yaml:"type"`
		MembershipType string `yaml:"membership_type"`
		JoinDate       string `yaml:"join_date"`
		Contact        string `yaml:"contact"`
	} `yaml:"members"`
	Payments []struct {
		Member string  `yaml:"member"`
		Amount float64 `yaml:"amount"`
		Period string  `yaml:"period"`
		PaidOn string  `yaml:"paid_on"`
	} `yaml:"payments"`
	Treatments []struct {
		Player         string `yaml:"player"`
		Physio         string `yaml:"physio"`
		Diagnosis      string `yaml:"diagnosis"`
		Plan           string `yaml:"plan"`
		Start          string `yaml:"start_date"`
		ExpectedReturn string `yaml:"expected_return"`
	} `yaml:"treatments"`
	MatchPlans []struct {
		Squad       string   `yaml:"squad"`
		Date        string   `yaml:"date"`
		Kickoff     string   `yaml:"kickoff"`
		Venue       string   `yaml:"venue"`
		Opponent    string   `yaml:"opponent"`
		Competition string   `yaml:"competition"`
		Notes       string   `yaml:"notes"`
		Starters    []string `yaml:"starters"`
		Substitutes []string `yaml:"substitutes"`
	} `yaml:"match_plans"`
	Finance []struct {
		Type         string  `yaml:"type"`
		Description  string  `yaml:"description"`
		Amount       float64 `yaml:"amount"`
		Category     string  `yaml:"category"`
		Date         string  `yaml:"date"`
		Counterparty string  `yaml:"counterparty"`
	} `yaml:"finance"`
}

func loadFixture(path string) (Fixture, error) {
	var f Fixture
	raw, err := os.ReadFile(path)
	if err != nil {
		return f, fmt.Errorf("failed to read fixture: %w", err)
	}
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return f, fmt.Errorf("failed to parse fixture %s: %w", path, err)
	}
	return f, nil
}

// seeder resolves fixture keys and collects the first date error.
type seeder struct {
	err     error
	players map[string]int
	coaches map[string]int
	physios map[string]int
	types   map[string]int
	members map[string]int
}

func (s *seeder) date(raw string) models.Date {
	d, err := models.ParseDate(raw)
	if err != nil && s.err == nil {
		s.err = err
	}
	return d
}

func (s *seeder) ref(kind string, keys map[string]int, key string) int {
	id, ok := keys[key]
	if !ok && s.err == nil {
		s.err = fmt.Errorf("unknown %s key %q", kind, key)
	}
	return id
}

// seed applies the fixture through the club's operations, so the usual
// validation and reference rules hold for seeded data.
func seed(c *club.Club, f Fixture) (club.Scope, error) {
	s := &seeder{
		players: map[string]int{},
		coaches: map[string]int{},
		physios: map[string]int{},
		types:   map[string]int{},
		members: map[string]int{},
	}
	sc, err := seedSeason(c, f, s)
	if err != nil {
		return sc, err
	}

	for _, p := range f.Players {
		in := club.PlayerInput{
			Name:           p.Name,
			Position:       p.Position,
			Squad:          models.Squad(p.Squad),
			Birthdate:      s.date(p.Birthdate),
			ShirtNumber:    p.Shirt,
			Contact:        p.Contact,
			FederationID:   p.FederationID,
			MonthlyFee:     p.MonthlyFee,
			MonthlyFeePaid: p.MonthlyPaid,
			KitFee:         p.KitFee,
			KitFeePaid:     p.KitPaid,
		}
		if s.err != nil {
			return sc, s.err
		}
		added, err := sc.Players().Add(in)
		if err != nil {
			return sc, fmt.Errorf("player %s: %w", p.Key, err)
		}
		s.players[p.Key] = added.ID
	}

	for _, co := range f.Coaches {
		added, err := sc.Coaches().Add(club.CoachInput{Name: co.Name, Role: co.Role, LicenseLevel: co.License, Contact: co.Contact})
		if err != nil {
			return sc, fmt.Errorf("coach %s: %w", co.Key, err)
		}
		s.coaches[co.Key] = added.ID
	}

	for _, p := range f.Physiotherapists {
		added, err := sc.Physiotherapists().Add(club.PhysioInput{Name: p.Name, Role: p.Role, Contact: p.Contact})
		if err != nil {
			return sc, fmt.Errorf("physiotherapist %s: %w", p.Key, err)
		}
		s.physios[p.Key] = added.ID
	}

	for _, y := range f.YouthSquads {
		in := club.YouthSquadInput{Name: y.Name, Category: y.Category, CoachID: s.ref("coach", s.coaches, y.Coach)}
		for _, key := range y.Players {
			in.PlayerIDs = append(in.PlayerIDs, s.ref("player", s.players, key))
		}
		if s.err != nil {
			return sc, s.err
		}
		if _, err := sc.YouthSquads().Add(in); err != nil {
			return sc, fmt.Errorf("youth squad %s: %w", y.Name, err)
		}
	}

	for _, mt := range f.MembershipTypes {
		added, err := sc.MembershipTypes().Add(club.MembershipTypeInput{
			Name: mt.Name, Amount: mt.Amount, Frequency: mt.Frequency, Description: mt.Description,
		})
		if err != nil {
			return sc, fmt.Errorf("membership type %s: %w", mt.Key, err)
		}
		s.types[mt.Key] = added.ID
	}

	for _, m := range f.Members {
		in := club.MemberInput{Name: m.Name, MembershipType: m.Type, JoinDate: s.date(m.JoinDate), Contact: m.Contact}
		if m.MembershipType != "" {
			id := s.ref("membership type", s.types, m.MembershipType)
			in.MembershipTypeID = &id
		}
		if s.err != nil {
			return sc, s.err
		}
		added, err := sc.Members().Add(in)
		if err != nil {
			return sc, fmt.Errorf("member %s: %w", m.Key, err)
		}
		s.members[m.Key] = added.ID
	}

	for _, p := range f.Payments {
		in := club.PaymentInput{MemberID: s.ref("member", s.members, p.Member), Amount: p.Amount, Period: p.Period, PaidOn: s.date(p.PaidOn)}
		if s.err != nil {
			return sc, s.err
		}
		if _, err := sc.Members().RegisterPayment(in); err != nil {
			return sc, fmt.Errorf("payment for %s: %w", p.Member, err)
		}
	}

	for _, t := range f.Treatments {
		in := club.TreatmentInput{
			PlayerID:       s.ref("player", s.players, t.Player),
			Diagnosis:      t.Diagnosis,
			Plan:           t.Plan,
			StartDate:      s.date(t.Start),
			ExpectedReturn: s.date(t.ExpectedReturn),
		}
		if t.Physio != "" {
			id := s.ref("physiotherapist", s.physios, t.Physio)
			in.PhysioID = &id
		}
		if s.err != nil {
			return sc, s.err
		}
		if _, err := sc.Treatments().Add(in); err != nil {
			return sc, fmt.Errorf("treatment for %s: %w", t.Player, err)
		}
	}

	for _, mp := range f.MatchPlans {
		in := club.MatchPlanInput{
			Squad:       models.Squad(mp.Squad),
			MatchDate:   s.date(mp.Date),
			KickoffTime: mp.Kickoff,
			Venue:       mp.Venue,
			Opponent:    mp.Opponent,
			Competition: mp.Competition,
			Notes:       mp.Notes,
		}
		for _, key := range mp.Starters {
			in.Starters = append(in.Starters, s.ref("player", s.players, key))
		}
		for _, key := range mp.Substitutes {
			in.Substitutes = append(in.Substitutes, s.ref("player", s.players, key))
		}
		if s.err != nil {
			return sc, s.err
		}
		if _, err := sc.MatchPlans().Add(in); err != nil {
			return sc, fmt.Errorf("match plan vs %s: %w", mp.Opponent, err)
		}
	}

	for _, r := range f.Finance {
		in := club.FinanceInput{
			Type:         models.RecordType(r.Type),
			Description:  r.Description,
			Amount:       r.Amount,
			Category:     r.Category,
			Date:         s.date(r.Date),
			Counterparty: r.Counterparty,
		}
		if s.err != nil {
			return sc, s.err
		}
		if _, err := sc.Finance().Add(in); err != nil {
			return sc, fmt.Errorf("finance record %q: %w", r.Description, err)
		}
	}
	return sc, nil
}

// seedSeason returns the fixture's season, creating it when missing. An
// empty label seeds the active season.
func seedSeason(c *club.Club, f Fixture, s *seeder) (club.Scope, error) {
	if f.Season.Label == "" {
		return c.Active(), nil
	}
	in := club.SeasonInput{Label: f.Season.Label, StartDate: s.date(f.Season.Start), EndDate: s.date(f.Season.End), Notes: f.Season.Notes}
	if s.err != nil {
		return club.Scope{}, s.err
	}
	if _, err := c.CreateSeason(in); err != nil {
		var dup *club.DuplicateSeasonError
		if !errors.As(err, &dup) {
			return club.Scope{}, err
		}
	}
	if f.Season.Activate {
		if _, err := c.SetActive(f.Season.Label); err != nil {
			return club.Scope{}, err
		}
	}
	return c.Season(f.Season.Label)
}
