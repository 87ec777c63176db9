package club_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

func fixture(date, kickoff, opponent string, starters ...int) club.MatchPlanInput {
	return club.MatchPlanInput{
		MatchDate:   models.MustDate(date),
		KickoffTime: kickoff,
		Venue:       "Estádio Municipal",
		Opponent:    opponent,
		Starters:    starters,
	}
}

func TestMatchPlans_AddNormalizes(t *testing.T) {
	tc := setupTestClub(t)
	a := addPlayer(t, tc.Club, "Pedro Sousa")
	b := addPlayer(t, tc.Club, "Rui Costa")

	in := fixture("2024-10-20", "9:30", " SC Braga ", a.ID)
	in.Substitutes = []int{b.ID}
	plan, err := tc.MatchPlans().Add(in)
	require.NoError(t, err)
	assert.Equal(t, 1, plan.ID)
	assert.Equal(t, models.SquadSenior, plan.Squad)
	assert.Equal(t, "09:30", plan.KickoffTime)
	assert.Equal(t, "SC Braga", plan.Opponent)
	assert.Equal(t, []int{a.ID}, plan.Starters)
	assert.Equal(t, []int{b.ID}, plan.Substitutes)

	got, err := tc.MatchPlans().Get(plan.ID)
	require.NoError(t, err)
	assert.Equal(t, plan, got)
}

func TestMatchPlans_Validation(t *testing.T) {
	tc := setupTestClub(t)
	a := addPlayer(t, tc.Club, "Pedro Sousa")

	noVenue := fixture("2024-10-20", "15:00", "SC Braga")
	noVenue.Venue = ""
	twice := fixture("2024-10-20", "15:00", "SC Braga", a.ID, a.ID)
	both := fixture("2024-10-20", "15:00", "SC Braga", a.ID)
	both.Substitutes = []int{a.ID}
	unknownSquad := fixture("2024-10-20", "15:00", "SC Braga")
	unknownSquad.Squad = "veterans"

	tests := []struct {
		name  string
		in    club.MatchPlanInput
		field string
	}{
		{"missing date", club.MatchPlanInput{KickoffTime: "15:00", Venue: "Casa", Opponent: "SC Braga"}, "match_date"},
		{"kickoff out of range", fixture("2024-10-20", "25:00", "SC Braga"), "kickoff_time"},
		{"missing venue", noVenue, "venue"},
		{"missing opponent", fixture("2024-10-20", "15:00", ""), "opponent"},
		{"starter listed twice", twice, "substitutes"},
		{"starter on the bench", both, "substitutes"},
		{"unknown squad", unknownSquad, "squad"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tc.MatchPlans().Add(tt.in)
			var validation *club.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}

func TestMatchPlans_UnknownPlayer(t *testing.T) {
	tc := setupTestClub(t)
	a := addPlayer(t, tc.Club, "Pedro Sousa")

	in := fixture("2024-10-20", "15:00", "SC Braga", a.ID)
	in.Substitutes = []int{42}
	_, err := tc.MatchPlans().Add(in)
	var ref *club.ReferenceError
	require.ErrorAs(t, err, &ref)
	assert.Equal(t, "substitutes", ref.Field)
	assert.Equal(t, 42, ref.ID)
}

func TestMatchPlans_ListInKickoffOrder(t *testing.T) {
	tc := setupTestClub(t)

	for _, in := range []club.MatchPlanInput{
		fixture("2024-11-03", "15:00", "Vitória SC"),
		fixture("2024-10-27", "18:30", "Boavista"),
		fixture("2024-10-27", "11:00", "Rio Ave"),
	} {
		_, err := tc.MatchPlans().Add(in)
		require.NoError(t, err)
	}
	youth := fixture("2024-10-26", "10:00", "Gil Vicente")
	youth.Squad = models.SquadYouth
	_, err := tc.MatchPlans().Add(youth)
	require.NoError(t, err)

	plans, err := tc.MatchPlans().List(club.MatchPlanFilter{})
	require.NoError(t, err)
	var opponents []string
	for _, p := range plans {
		opponents = append(opponents, p.Opponent)
	}
	assert.Equal(t, []string{"Gil Vicente", "Rio Ave", "Boavista", "Vitória SC"}, opponents)

	seniors, err := tc.MatchPlans().List(club.MatchPlanFilter{Squad: models.SquadSenior})
	require.NoError(t, err)
	assert.Len(t, seniors, 3)
}

func TestMatchPlans_BlockPlayerDelete(t *testing.T) {
	tc := setupTestClub(t)
	a := addPlayer(t, tc.Club, "Pedro Sousa")
	b := addPlayer(t, tc.Club, "Rui Costa")
	plan, err := tc.MatchPlans().Add(fixture("2024-10-20", "15:00", "SC Braga", a.ID, b.ID))
	require.NoError(t, err)

	err = tc.Players().Delete(b.ID)
	var conflict *club.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"match_plan 1"}, conflict.Dependents)

	updated, err := tc.MatchPlans().Update(plan.ID, club.MatchPlanPatch{
		Starters:    &[]int{a.ID},
		Substitutes: &[]int{},
		Notes:       strPtr("Rui lesionado"),
	})
	require.NoError(t, err)
	assert.Equal(t, []int{a.ID}, updated.Starters)
	assert.Empty(t, updated.Substitutes)
	assert.Equal(t, "Rui lesionado", updated.Notes)
	require.NoError(t, tc.Players().Delete(b.ID))

	require.NoError(t, tc.MatchPlans().Delete(plan.ID))
	require.NoError(t, tc.Players().Delete(a.ID))
	var notFound *club.NotFoundError
	require.ErrorAs(t, tc.MatchPlans().Delete(plan.ID), &notFound)
}
