package club_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
)

func TestYouthSquads_CoachMustExist(t *testing.T) {
	tc := setupTestClub(t)
	input := club.YouthSquadInput{Name: "Sub-17", CoachID: 1}

	_, err := tc.YouthSquads().Add(input)
	var reference *club.ReferenceError
	require.ErrorAs(t, err, &reference)
	assert.Equal(t, "coach_id", reference.Field)
	assert.Equal(t, 1, reference.ID)

	coach, err := tc.Coaches().Add(club.CoachInput{Name: "Rui Alves", Role: "Treinador"})
	require.NoError(t, err)
	require.Equal(t, 1, coach.ID)

	squad, err := tc.YouthSquads().Add(input)
	require.NoError(t, err)
	assert.Equal(t, "Sub-17", squad.Name)
	assert.Empty(t, squad.PlayerIDs)
}

func TestYouthSquads_PlayersMustExist(t *testing.T) {
	tc := setupTestClub(t)
	coach, err := tc.Coaches().Add(club.CoachInput{Name: "Rui Alves", Role: "Treinador"})
	require.NoError(t, err)
	player := addPlayer(t, tc.Club, "Pedro Sousa")

	_, err = tc.YouthSquads().Add(club.YouthSquadInput{Name: "Sub-17", CoachID: coach.ID, PlayerIDs: []int{player.ID, 99}})
	var reference *club.ReferenceError
	require.ErrorAs(t, err, &reference)
	assert.Equal(t, "player_ids", reference.Field)
	assert.Equal(t, 99, reference.ID)

	_, err = tc.YouthSquads().Add(club.YouthSquadInput{Name: "Sub-17", CoachID: coach.ID, PlayerIDs: []int{player.ID, player.ID}})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)

	squads, err := tc.YouthSquads().List()
	require.NoError(t, err)
	assert.Empty(t, squads)
}

func TestYouthSquads_AssignAndUnassign(t *testing.T) {
	tc := setupTestClub(t)
	coach, err := tc.Coaches().Add(club.CoachInput{Name: "Rui Alves", Role: "Treinador"})
	require.NoError(t, err)
	a := addPlayer(t, tc.Club, "A")
	b := addPlayer(t, tc.Club, "B")
	c := addPlayer(t, tc.Club, "C")

	squad, err := tc.YouthSquads().Add(club.YouthSquadInput{Name: "Sub-19", CoachID: coach.ID})
	require.NoError(t, err)

	for _, p := range []int{c.ID, a.ID, b.ID} {
		squad, err = tc.YouthSquads().AssignPlayer(squad.ID, p)
		require.NoError(t, err)
	}
	assert.Equal(t, []int{c.ID, a.ID, b.ID}, squad.PlayerIDs)

	_, err = tc.YouthSquads().AssignPlayer(squad.ID, a.ID)
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)

	_, err = tc.YouthSquads().AssignPlayer(squad.ID, 77)
	var reference *club.ReferenceError
	require.ErrorAs(t, err, &reference)

	squad, err = tc.YouthSquads().UnassignPlayer(squad.ID, a.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{c.ID, b.ID}, squad.PlayerIDs)

	got, err := tc.YouthSquads().Get(squad.ID)
	require.NoError(t, err)
	assert.Equal(t, squad, got)
}

func TestYouthSquads_UpdateAndDelete(t *testing.T) {
	tc := setupTestClub(t)
	first, err := tc.Coaches().Add(club.CoachInput{Name: "Rui Alves", Role: "Treinador"})
	require.NoError(t, err)
	second, err := tc.Coaches().Add(club.CoachInput{Name: "Luís Pinto", Role: "Adjunto"})
	require.NoError(t, err)
	squad, err := tc.YouthSquads().Add(club.YouthSquadInput{Name: "Sub-13", Category: "Infantis", CoachID: first.ID})
	require.NoError(t, err)

	missing := 9
	_, err = tc.YouthSquads().Update(squad.ID, club.YouthSquadPatch{CoachID: &missing})
	var reference *club.ReferenceError
	require.ErrorAs(t, err, &reference)

	updated, err := tc.YouthSquads().Update(squad.ID, club.YouthSquadPatch{CoachID: &second.ID})
	require.NoError(t, err)
	assert.Equal(t, second.ID, updated.CoachID)
	assert.Equal(t, "Infantis", updated.Category)

	require.NoError(t, tc.Coaches().Delete(first.ID))
	require.NoError(t, tc.YouthSquads().Delete(squad.ID))
	var notFound *club.NotFoundError
	_, err = tc.YouthSquads().Get(squad.ID)
	require.ErrorAs(t, err, &notFound)
}
