package club

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vilacaiz/clubhouse/internal/models"
)

// rule checks one field of an entity. check returns an empty string when
// the value is acceptable and the reason otherwise.
type rule[T any] struct {
	field string
	check func(T) string
}

// rules is the validation table of one entity kind. Rules run in order and
// the first failure is reported.
type rules[T any] []rule[T]

func (rs rules[T]) validate(entity string, v T) error {
	for _, r := range rs {
		if reason := r.check(v); reason != "" {
			return &ValidationError{Entity: entity, Field: r.field, Reason: reason}
		}
	}
	return nil
}

func required[T any](get func(T) string) func(T) string {
	return func(v T) string {
		if strings.TrimSpace(get(v)) == "" {
			return "is required"
		}
		return ""
	}
}

func requiredDate[T any](get func(T) models.Date) func(T) string {
	return func(v T) string {
		if get(v).IsZero() {
			return "is required"
		}
		return ""
	}
}

func oneOf[T any, V ~string](get func(T) V, allowed ...V) func(T) string {
	return func(v T) string {
		value := get(v)
		for _, a := range allowed {
			if value == a {
				return ""
			}
		}
		names := make([]string, len(allowed))
		for i, a := range allowed {
			names[i] = string(a)
		}
		return fmt.Sprintf("must be one of %s, got %q", strings.Join(names, ", "), string(value))
	}
}

func positiveID[T any](get func(T) int) func(T) string {
	return func(v T) string {
		if get(v) <= 0 {
			return "is required"
		}
		return ""
	}
}

// money accepts finite, non-negative amounts with at most two decimals.
func money[T any](get func(T) float64) func(T) string {
	return func(v T) string {
		amount := get(v)
		switch {
		case math.IsNaN(amount) || math.IsInf(amount, 0):
			return "must be a number"
		case amount < 0:
			return "must not be negative"
		case math.Abs(amount*100-math.Round(amount*100)) > 1e-6:
			return "must have at most two decimal places"
		}
		return ""
	}
}

// notBefore fails when both dates are set and later precedes earlier.
func notBefore[T any](later, earlier func(T) models.Date, earlierName string) func(T) string {
	return func(v T) string {
		l, e := later(v), earlier(v)
		if !l.IsZero() && !e.IsZero() && l.Before(e) {
			return "must not be before " + earlierName
		}
		return ""
	}
}

var seasonRules = rules[models.Season]{
	{"label", required(func(s models.Season) string { return s.Label })},
	{"end_date", notBefore(
		func(s models.Season) models.Date { return s.EndDate },
		func(s models.Season) models.Date { return s.StartDate },
		"start_date")},
}

var playerRules = rules[models.Player]{
	{"name", required(func(p models.Player) string { return p.Name })},
	{"position", required(func(p models.Player) string { return p.Position })},
	{"squad", oneOf(func(p models.Player) models.Squad { return p.Squad }, models.SquadSenior, models.SquadYouth)},
	{"shirt_number", func(p models.Player) string {
		if p.ShirtNumber != nil && (*p.ShirtNumber < 1 || *p.ShirtNumber > 99) {
			return "must be between 1 and 99"
		}
		return ""
	}},
	{"youth_monthly_fee", youthFee(func(p models.Player) *models.YouthFee { return p.MonthlyFee })},
	{"youth_kit_fee", youthFee(func(p models.Player) *models.YouthFee { return p.KitFee })},
}

// youthFee checks a fee's amount and that a fee is only paid once it has one.
func youthFee(get func(models.Player) *models.YouthFee) func(models.Player) string {
	amount := money(func(f models.YouthFee) float64 { return f.Amount })
	return func(p models.Player) string {
		fee := get(p)
		if fee == nil {
			return ""
		}
		if reason := amount(*fee); reason != "" {
			return reason
		}
		if fee.Paid && fee.Amount == 0 {
			return "must be set before it is marked paid"
		}
		return ""
	}
}

var coachRules = rules[models.Coach]{
	{"name", required(func(c models.Coach) string { return c.Name })},
	{"role", required(func(c models.Coach) string { return c.Role })},
}

var physioRules = rules[models.Physiotherapist]{
	{"name", required(func(p models.Physiotherapist) string { return p.Name })},
}

var youthSquadRules = rules[models.YouthSquad]{
	{"name", required(func(y models.YouthSquad) string { return y.Name })},
	{"coach_id", positiveID(func(y models.YouthSquad) int { return y.CoachID })},
	{"player_ids", func(y models.YouthSquad) string {
		seen := make(map[int]bool, len(y.PlayerIDs))
		for _, id := range y.PlayerIDs {
			if seen[id] {
				return fmt.Sprintf("lists player %d twice", id)
			}
			seen[id] = true
		}
		return ""
	}},
}

var membershipTypeRules = rules[models.MembershipType]{
	{"name", required(func(t models.MembershipType) string { return t.Name })},
	{"amount", money(func(t models.MembershipType) float64 { return t.Amount })},
	{"amount", func(t models.MembershipType) string {
		if t.Amount == 0 {
			return "must be greater than zero"
		}
		return ""
	}},
}

var memberRules = rules[models.Member]{
	{"name", required(func(m models.Member) string { return m.Name })},
	{"membership_type_id", func(m models.Member) string {
		if m.MembershipTypeID != nil && *m.MembershipTypeID <= 0 {
			return "must be a positive id"
		}
		return ""
	}},
	{"member_number", func(m models.Member) string {
		if m.MemberNumber < 0 {
			return "must not be negative"
		}
		return ""
	}},
	{"dues_status", oneOf(func(m models.Member) models.DuesStatus { return m.DuesStatus }, models.DuesPaid, models.DuesPending)},
}

var paymentRules = rules[models.MembershipPayment]{
	{"member_id", positiveID(func(p models.MembershipPayment) int { return p.MemberID })},
	{"amount", money(func(p models.MembershipPayment) float64 { return p.Amount })},
	{"amount", func(p models.MembershipPayment) string {
		if p.Amount == 0 {
			return "must be greater than zero"
		}
		return ""
	}},
	{"period", required(func(p models.MembershipPayment) string { return p.Period })},
	{"paid_on", requiredDate(func(p models.MembershipPayment) models.Date { return p.PaidOn })},
}

var treatmentRules = rules[models.Treatment]{
	{"player_id", positiveID(func(t models.Treatment) int { return t.PlayerID })},
	{"diagnosis", required(func(t models.Treatment) string { return t.Diagnosis })},
	{"treatment_plan", required(func(t models.Treatment) string { return t.Plan })},
	{"start_date", requiredDate(func(t models.Treatment) models.Date { return t.StartDate })},
	{"expected_return", notBefore(
		func(t models.Treatment) models.Date { return t.ExpectedReturn },
		func(t models.Treatment) models.Date { return t.StartDate },
		"start_date")},
}

var matchPlanRules = rules[models.MatchPlan]{
	{"squad", oneOf(func(mp models.MatchPlan) models.Squad { return mp.Squad }, models.SquadSenior, models.SquadYouth)},
	{"match_date", requiredDate(func(mp models.MatchPlan) models.Date { return mp.MatchDate })},
	{"kickoff_time", func(mp models.MatchPlan) string {
		if _, err := time.Parse(kickoffLayout, mp.KickoffTime); err != nil {
			return "must be a time of day as HH:MM"
		}
		return ""
	}},
	{"venue", required(func(mp models.MatchPlan) string { return mp.Venue })},
	{"opponent", required(func(mp models.MatchPlan) string { return mp.Opponent })},
	{"substitutes", lineUp},
}

var financeRules = rules[models.FinanceRecord]{
	{"type", oneOf(func(f models.FinanceRecord) models.RecordType { return f.Type }, models.Revenue, models.Expense)},
	{"description", required(func(f models.FinanceRecord) string { return f.Description })},
	{"amount", money(func(f models.FinanceRecord) float64 { return f.Amount })},
	{"category", required(func(f models.FinanceRecord) string { return f.Category })},
	{"date", requiredDate(func(f models.FinanceRecord) models.Date { return f.Date })},
}
