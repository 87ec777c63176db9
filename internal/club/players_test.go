package club_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

func TestPlayers_AddThenListBySquad(t *testing.T) {
	tc := setupTestClub(t)

	_, err := tc.Players().Add(club.PlayerInput{
		Name:        "João Silva",
		Position:    "Médio",
		Squad:       models.SquadSenior,
		Birthdate:   models.MustDate("1995-04-02"),
		ShirtNumber: intPtr(8),
	})
	require.NoError(t, err)
	_, err = tc.Players().Add(club.PlayerInput{Name: "Rui Costa", Position: "Avançado", Squad: models.SquadYouth})
	require.NoError(t, err)

	seniors, err := tc.Players().List(club.PlayerFilter{Squad: models.SquadSenior})
	require.NoError(t, err)
	require.Len(t, seniors, 1)
	assert.Equal(t, "João Silva", seniors[0].Name)
	assert.Equal(t, "Médio", seniors[0].Position)
	assert.Equal(t, models.SquadSenior, seniors[0].Squad)
	assert.Equal(t, models.MustDate("1995-04-02"), seniors[0].Birthdate)
	require.NotNil(t, seniors[0].ShirtNumber)
	assert.Equal(t, 8, *seniors[0].ShirtNumber)
}

func TestPlayers_AddThenGet(t *testing.T) {
	tc := setupTestClub(t)

	added, err := tc.Players().Add(club.PlayerInput{
		Name:            "  Miguel Rocha ",
		Position:        "Guarda-redes",
		Birthdate:       models.MustDate("2001-11-20"),
		ShirtNumber:     intPtr(1),
		MembershipSince: models.MustDate("2019-08-01"),
		Contact:         "912345678",
		FederationID:    "FPF-1234",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added.ID)
	assert.Equal(t, "Miguel Rocha", added.Name)
	assert.Equal(t, models.SquadSenior, added.Squad, "squad defaults to senior")

	got, err := tc.Players().Get(added.ID)
	require.NoError(t, err)
	assert.Equal(t, added, got)

	all, err := tc.Players().List(club.PlayerFilter{})
	require.NoError(t, err)
	assert.Equal(t, []models.Player{added}, all)

	second := addPlayer(t, tc.Club, "Tiago Lopes")
	assert.Equal(t, 2, second.ID)
}

func TestPlayers_FilterByPosition(t *testing.T) {
	tc := setupTestClub(t)
	addPlayer(t, tc.Club, "Pedro Sousa")
	_, err := tc.Players().Add(club.PlayerInput{Name: "Rui Costa", Position: "Avançado"})
	require.NoError(t, err)

	defenders, err := tc.Players().List(club.PlayerFilter{Position: "defesa"})
	require.NoError(t, err)
	require.Len(t, defenders, 1)
	assert.Equal(t, "Pedro Sousa", defenders[0].Name)
}

func TestPlayers_ShirtNumbers(t *testing.T) {
	tc := setupTestClub(t)

	_, err := tc.Players().Add(club.PlayerInput{Name: "A", Position: "Médio", ShirtNumber: intPtr(10)})
	require.NoError(t, err)

	_, err = tc.Players().Add(club.PlayerInput{Name: "B", Position: "Médio", ShirtNumber: intPtr(10)})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "shirt_number", validation.Field)

	_, err = tc.Players().Add(club.PlayerInput{Name: "C", Position: "Médio", Squad: models.SquadYouth, ShirtNumber: intPtr(10)})
	require.NoError(t, err, "numbers are unique per squad")

	_, err = tc.Players().Add(club.PlayerInput{Name: "D", Position: "Médio", ShirtNumber: intPtr(100)})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "shirt_number", validation.Field)

	_, err = tc.Players().Add(club.PlayerInput{Name: "E", Position: "Médio", Squad: "reserves"})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "squad", validation.Field)
}

func TestPlayers_UpdateRevalidatesMergedRecord(t *testing.T) {
	tc := setupTestClub(t)
	first, err := tc.Players().Add(club.PlayerInput{Name: "A", Position: "Médio", ShirtNumber: intPtr(7)})
	require.NoError(t, err)
	second, err := tc.Players().Add(club.PlayerInput{Name: "B", Position: "Médio", ShirtNumber: intPtr(9)})
	require.NoError(t, err)

	_, err = tc.Players().Update(second.ID, club.PlayerPatch{ShirtNumber: intPtr(7)})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)

	empty := ""
	_, err = tc.Players().Update(first.ID, club.PlayerPatch{Name: &empty})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "name", validation.Field)

	got, err := tc.Players().Get(second.ID)
	require.NoError(t, err)
	assert.Equal(t, second, got)

	position := "Defesa"
	updated, err := tc.Players().Update(second.ID, club.PlayerPatch{Position: &position, ClearShirtNumber: true})
	require.NoError(t, err)
	assert.Equal(t, "Defesa", updated.Position)
	assert.Nil(t, updated.ShirtNumber)
	assert.Equal(t, "B", updated.Name)

	_, err = tc.Players().Update(42, club.PlayerPatch{Position: &position})
	var notFound *club.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestPlayers_Delete(t *testing.T) {
	tc := setupTestClub(t)
	player := addPlayer(t, tc.Club, "Pedro Sousa")

	require.NoError(t, tc.Players().Delete(player.ID))

	_, err := tc.Players().Get(player.ID)
	var notFound *club.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.ErrorAs(t, tc.Players().Delete(player.ID), &notFound)
}

func TestPlayers_DeleteWithDependents(t *testing.T) {
	tc := setupTestClub(t)
	player := addPlayer(t, tc.Club, "Pedro Sousa")
	coach, err := tc.Coaches().Add(club.CoachInput{Name: "Rui Alves", Role: "Treinador"})
	require.NoError(t, err)
	squad, err := tc.YouthSquads().Add(club.YouthSquadInput{Name: "Sub-19", CoachID: coach.ID, PlayerIDs: []int{player.ID}})
	require.NoError(t, err)
	_, err = tc.Treatments().Add(club.TreatmentInput{
		PlayerID: player.ID, Diagnosis: "Rotura", Plan: "Repouso", StartDate: models.MustDate("2024-10-01"),
	})
	require.NoError(t, err)

	err = tc.Players().Delete(player.ID)
	var conflict *club.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"youth_squad 1", "treatment 1"}, conflict.Dependents)

	_, err = tc.Players().Get(player.ID)
	require.NoError(t, err, "the player must still exist")

	_, err = tc.YouthSquads().UnassignPlayer(squad.ID, player.ID)
	require.NoError(t, err)
	require.NoError(t, tc.Treatments().Delete(1))
	require.NoError(t, tc.Players().Delete(player.ID))
}
