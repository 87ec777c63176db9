package club

import (
	"strconv"

	"github.com/vilacaiz/clubhouse/internal/models"
)

// indexOf returns the position of the item with the given id.
func indexOf[T any](items []T, id int, idOf func(T) int) (int, bool) {
	for i, item := range items {
		if idOf(item) == id {
			return i, true
		}
	}
	return -1, false
}

// index maps ids to positions; it is how foreign ids are resolved.
func index[T any](items []T, idOf func(T) int) map[int]int {
	idx := make(map[int]int, len(items))
	for i, item := range items {
		idx[idOf(item)] = i
	}
	return idx
}

// nextID is one past the highest id in the collection.
func nextID[T any](items []T, idOf func(T) int) int {
	max := 0
	for _, item := range items {
		if id := idOf(item); id > max {
			max = id
		}
	}
	return max + 1
}

func remove[T any](items []T, i int) []T {
	return append(items[:i:i], items[i+1:]...)
}

func filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

func containsID(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func copyInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func dependent(entity string, id int) string {
	return entity + " " + strconv.Itoa(id)
}

func findSeason(doc *models.Document, label string) (int, bool) {
	if label == "" {
		return -1, false
	}
	for i, s := range doc.Seasons {
		if s.Label == label {
			return i, true
		}
	}
	return -1, false
}

func playerID(p models.Player) int                 { return p.ID }
func coachID(c models.Coach) int                   { return c.ID }
func physioID(p models.Physiotherapist) int        { return p.ID }
func youthSquadID(y models.YouthSquad) int         { return y.ID }
func membershipTypeID(t models.MembershipType) int { return t.ID }
func memberID(m models.Member) int                 { return m.ID }
func paymentID(p models.MembershipPayment) int     { return p.ID }
func treatmentID(t models.Treatment) int           { return t.ID }
func matchPlanID(p models.MatchPlan) int           { return p.ID }
func financeID(f models.FinanceRecord) int         { return f.ID }

func plural(n int, entity string) string {
	if n == 1 {
		return "1 " + entity
	}
	return strconv.Itoa(n) + " " + entity + " records"
}
