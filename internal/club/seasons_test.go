package club_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

func TestCreateSeason(t *testing.T) {
	tc := setupTestClub(t)

	season, err := tc.CreateSeason(club.SeasonInput{
		Label:     "2025/2026",
		StartDate: models.MustDate("2025-07-01"),
		EndDate:   models.MustDate("2026-06-30"),
	})
	require.NoError(t, err)
	assert.False(t, season.IsActive)
	assert.Equal(t, "2024/2025", tc.ActiveSeason().Label)

	seasons := tc.ListSeasons()
	require.Len(t, seasons, 2)
	assert.Equal(t, "2025/2026", seasons[1].Label)
}

func TestCreateSeason_Rejected(t *testing.T) {
	tc := setupTestClub(t)

	_, err := tc.CreateSeason(club.SeasonInput{Label: "2024/2025"})
	var duplicate *club.DuplicateSeasonError
	require.ErrorAs(t, err, &duplicate)
	assert.Equal(t, "2024/2025", duplicate.Label)

	_, err = tc.CreateSeason(club.SeasonInput{Label: "  "})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "label", validation.Field)

	_, err = tc.CreateSeason(club.SeasonInput{
		Label:     "2026/2027",
		StartDate: models.MustDate("2026-07-01"),
		EndDate:   models.MustDate("2026-06-30"),
	})
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "end_date", validation.Field)

	assert.Len(t, tc.ListSeasons(), 1)
}

func TestSetActive_UnknownSeason(t *testing.T) {
	tc := setupTestClub(t)

	_, err := tc.SetActive("1999/2000")
	var unknown *club.UnknownSeasonError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "2024/2025", tc.ActiveSeason().Label)

	_, err = tc.Season("1999/2000")
	require.ErrorAs(t, err, &unknown)
}

func TestSetActive_SwitchesScopeWithoutTouchingOldSeason(t *testing.T) {
	tc := setupTestClub(t)
	old := addPlayer(t, tc.Club, "Pedro Sousa")

	_, err := tc.CreateSeason(club.SeasonInput{Label: "2025/2026"})
	require.NoError(t, err)
	_, err = tc.SetActive("2025/2026")
	require.NoError(t, err)

	players, err := tc.Players().List(club.PlayerFilter{})
	require.NoError(t, err)
	assert.Empty(t, players)

	fresh := addPlayer(t, tc.Club, "Tiago Lopes")
	assert.Equal(t, 1, fresh.ID, "ids are assigned per season")

	previous, err := tc.Season("2024/2025")
	require.NoError(t, err)
	oldPlayers, err := previous.Players().List(club.PlayerFilter{})
	require.NoError(t, err)
	require.Len(t, oldPlayers, 1)
	assert.Equal(t, old, oldPlayers[0])
}

func TestUpdateSeason(t *testing.T) {
	tc := setupTestClub(t)
	notes := "Época de estreia"

	season, err := tc.UpdateSeason("2024/2025", club.SeasonPatch{Notes: &notes})
	require.NoError(t, err)
	assert.Equal(t, notes, season.Notes)
	assert.True(t, season.IsActive)

	end := models.MustDate("2024-01-01")
	_, err = tc.UpdateSeason("2024/2025", club.SeasonPatch{EndDate: &end})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, models.MustDate("2025-06-30"), tc.ActiveSeason().EndDate)
}

func TestDeleteSeason(t *testing.T) {
	tc := setupTestClub(t)
	_, err := tc.CreateSeason(club.SeasonInput{Label: "2025/2026"})
	require.NoError(t, err)

	var conflict *club.ConflictError
	err = tc.DeleteSeason("2024/2025")
	require.ErrorAs(t, err, &conflict, "the active season cannot be deleted")

	next, err := tc.Season("2025/2026")
	require.NoError(t, err)
	_, err = next.Finance().Add(club.FinanceInput{
		Type: models.Expense, Description: "Bolas", Amount: 120, Category: "Material", Date: models.MustDate("2025-08-01"),
	})
	require.NoError(t, err)
	err = tc.DeleteSeason("2025/2026")
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, []string{"1 finance_record"}, conflict.Dependents)

	require.NoError(t, next.Finance().Delete(1))
	require.NoError(t, tc.DeleteSeason("2025/2026"))
	assert.Len(t, tc.ListSeasons(), 1)

	var unknown *club.UnknownSeasonError
	require.ErrorAs(t, tc.DeleteSeason("2025/2026"), &unknown)
}
