package club

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/vilacaiz/clubhouse/internal/models"
)

const (
	entityMatchPlan = "match_plan"

	kickoffLayout = "15:04"
)

// MatchPlanInput describes a fixture and its line-up. An empty squad means
// senior.
type MatchPlanInput struct {
	Squad       models.Squad `json:"squad"`
	MatchDate   models.Date  `json:"match_date"`
	KickoffTime string       `json:"kickoff_time"`
	Venue       string       `json:"venue"`
	Opponent    string       `json:"opponent"`
	Competition string       `json:"competition"`
	Notes       string       `json:"notes"`
	Starters    []int        `json:"starters"`
	Substitutes []int        `json:"substitutes"`
}

type MatchPlanPatch struct {
	Squad       *models.Squad `json:"squad"`
	MatchDate   *models.Date  `json:"match_date"`
	KickoffTime *string       `json:"kickoff_time"`
	Venue       *string       `json:"venue"`
	Opponent    *string       `json:"opponent"`
	Competition *string       `json:"competition"`
	Notes       *string       `json:"notes"`
	Starters    *[]int        `json:"starters"`
	Substitutes *[]int        `json:"substitutes"`
}

type MatchPlanFilter struct {
	Squad models.Squad
}

// MatchPlans holds the season's fixtures. Lists are in kick-off order.
type MatchPlans struct {
	scope Scope
}

func (r *MatchPlans) Add(in MatchPlanInput) (models.MatchPlan, error) {
	plan := normalizeMatchPlan(models.MatchPlan{
		Squad:       in.Squad,
		MatchDate:   in.MatchDate,
		KickoffTime: in.KickoffTime,
		Venue:       in.Venue,
		Opponent:    in.Opponent,
		Competition: in.Competition,
		Notes:       in.Notes,
		Starters:    append([]int{}, in.Starters...),
		Substitutes: append([]int{}, in.Substitutes...),
	})
	err := r.scope.mutate(entityMatchPlan, "add", func(sd *models.SeasonData) error {
		plan.ID = nextID(sd.MatchPlans, matchPlanID)
		if err := checkMatchPlan(sd, plan); err != nil {
			return err
		}
		sd.MatchPlans = append(sd.MatchPlans, plan)
		return nil
	})
	if err != nil {
		return models.MatchPlan{}, err
	}
	return cloneMatchPlan(plan), nil
}

func (r *MatchPlans) List(f MatchPlanFilter) ([]models.MatchPlan, error) {
	var out []models.MatchPlan
	err := r.scope.view(func(sd *models.SeasonData) error {
		out = make([]models.MatchPlan, 0, len(sd.MatchPlans))
		for _, mp := range sd.MatchPlans {
			if f.Squad == "" || mp.Squad == f.Squad {
				out = append(out, cloneMatchPlan(mp))
			}
		}
		return nil
	})
	slices.SortStableFunc(out, func(a, b models.MatchPlan) int {
		switch {
		case a.MatchDate.Before(b.MatchDate):
			return -1
		case a.MatchDate.After(b.MatchDate):
			return 1
		}
		return cmp.Or(cmp.Compare(a.KickoffTime, b.KickoffTime), cmp.Compare(a.ID, b.ID))
	})
	return out, err
}

func (r *MatchPlans) Get(id int) (models.MatchPlan, error) {
	var out models.MatchPlan
	err := r.scope.view(func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MatchPlans, id, matchPlanID)
		if !ok {
			return &NotFoundError{Entity: entityMatchPlan, ID: id}
		}
		out = cloneMatchPlan(sd.MatchPlans[i])
		return nil
	})
	return out, err
}

func (r *MatchPlans) Update(id int, patch MatchPlanPatch) (models.MatchPlan, error) {
	var out models.MatchPlan
	err := r.scope.mutate(entityMatchPlan, "update", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MatchPlans, id, matchPlanID)
		if !ok {
			return &NotFoundError{Entity: entityMatchPlan, ID: id}
		}
		merged := cloneMatchPlan(sd.MatchPlans[i])
		if patch.Squad != nil {
			merged.Squad = *patch.Squad
		}
		if patch.MatchDate != nil {
			merged.MatchDate = *patch.MatchDate
		}
		if patch.KickoffTime != nil {
			merged.KickoffTime = *patch.KickoffTime
		}
		if patch.Venue != nil {
			merged.Venue = *patch.Venue
		}
		if patch.Opponent != nil {
			merged.Opponent = *patch.Opponent
		}
		if patch.Competition != nil {
			merged.Competition = *patch.Competition
		}
		if patch.Notes != nil {
			merged.Notes = *patch.Notes
		}
		if patch.Starters != nil {
			merged.Starters = append([]int{}, (*patch.Starters)...)
		}
		if patch.Substitutes != nil {
			merged.Substitutes = append([]int{}, (*patch.Substitutes)...)
		}
		merged = normalizeMatchPlan(merged)
		if err := checkMatchPlan(sd, merged); err != nil {
			return err
		}
		sd.MatchPlans[i] = merged
		out = cloneMatchPlan(merged)
		return nil
	})
	return out, err
}

func (r *MatchPlans) Delete(id int) error {
	return r.scope.mutate(entityMatchPlan, "delete", func(sd *models.SeasonData) error {
		i, ok := indexOf(sd.MatchPlans, id, matchPlanID)
		if !ok {
			return &NotFoundError{Entity: entityMatchPlan, ID: id}
		}
		sd.MatchPlans = remove(sd.MatchPlans, i)
		return nil
	})
}

func normalizeMatchPlan(mp models.MatchPlan) models.MatchPlan {
	mp.Squad = models.Squad(strings.ToLower(strings.TrimSpace(string(mp.Squad))))
	if mp.Squad == "" {
		mp.Squad = models.SquadSenior
	}
	mp.KickoffTime = strings.TrimSpace(mp.KickoffTime)
	if t, err := time.Parse(kickoffLayout, mp.KickoffTime); err == nil {
		mp.KickoffTime = t.Format(kickoffLayout)
	}
	mp.Venue = strings.TrimSpace(mp.Venue)
	mp.Opponent = strings.TrimSpace(mp.Opponent)
	mp.Competition = strings.TrimSpace(mp.Competition)
	mp.Notes = strings.TrimSpace(mp.Notes)
	return mp
}

// checkMatchPlan validates the fields and resolves every listed player.
func checkMatchPlan(sd *models.SeasonData, mp models.MatchPlan) error {
	if err := matchPlanRules.validate(entityMatchPlan, mp); err != nil {
		return err
	}
	players := index(sd.Players, playerID)
	for _, field := range []struct {
		name string
		ids  []int
	}{{"starters", mp.Starters}, {"substitutes", mp.Substitutes}} {
		for _, id := range field.ids {
			if _, ok := players[id]; !ok {
				return &ReferenceError{Entity: entityMatchPlan, Field: field.name, ID: id}
			}
		}
	}
	return nil
}

func cloneMatchPlan(mp models.MatchPlan) models.MatchPlan {
	mp.Starters = append([]int{}, mp.Starters...)
	mp.Substitutes = append([]int{}, mp.Substitutes...)
	return mp
}

// lineUp rejects duplicates within a list and players named in both lists.
func lineUp(mp models.MatchPlan) string {
	seen := make(map[int]string, len(mp.Starters)+len(mp.Substitutes))
	for _, field := range []struct {
		name string
		ids  []int
	}{{"starters", mp.Starters}, {"substitutes", mp.Substitutes}} {
		for _, id := range field.ids {
			if prev, ok := seen[id]; ok {
				if prev == field.name {
					return fmt.Sprintf("lists player %d twice", id)
				}
				return fmt.Sprintf("player %d is already a starter", id)
			}
			seen[id] = field.name
		}
	}
	return ""
}
