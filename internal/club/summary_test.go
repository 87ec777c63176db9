package club_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

func TestSummary_SingleRevenue(t *testing.T) {
	tc := setupTestClub(t)
	_, err := tc.Finance().Add(club.FinanceInput{
		Type: models.Revenue, Description: "Jogo", Amount: 1540.50, Category: "Bilheteira", Date: models.MustDate("2024-09-01"),
	})
	require.NoError(t, err)

	summary, err := tc.Summary()
	require.NoError(t, err)
	assert.Equal(t, "2024/2025", summary.Season)
	assert.Equal(t, 1540.50, summary.Finance.Revenue)
	assert.Equal(t, 0.0, summary.Finance.Expense)
	assert.Equal(t, 1540.50, summary.Finance.Balance)
}

func TestFinanceSummary_TotalsAndCategories(t *testing.T) {
	tc := setupTestClub(t)
	addRecord(t, tc, models.Revenue, 0.1, "Bar", "2024-09-01")
	addRecord(t, tc, models.Revenue, 0.2, "Bar", "2024-09-02")
	addRecord(t, tc, models.Revenue, 500, "Patrocínios", "2024-09-03")
	addRecord(t, tc, models.Expense, 120.75, "Arbitragem", "2024-09-04")

	summary, err := tc.FinanceSummary()
	require.NoError(t, err)
	assert.Equal(t, 500.3, summary.Revenue)
	assert.Equal(t, 120.75, summary.Expense)
	assert.Equal(t, 379.55, summary.Balance)
	assert.Equal(t, []club.CategoryTotal{
		{Type: models.Revenue, Category: "Bar", Total: 0.3},
		{Type: models.Revenue, Category: "Patrocínios", Total: 500},
		{Type: models.Expense, Category: "Arbitragem", Total: 120.75},
	}, summary.Categories)
}

func TestFinanceSummary_EmptySeason(t *testing.T) {
	tc := setupTestClub(t)

	summary, err := tc.FinanceSummary()
	require.NoError(t, err)
	assert.Equal(t, club.FinanceSummary{Categories: []club.CategoryTotal{}}, summary)
}

func TestDuesSummary(t *testing.T) {
	tc := setupTestClub(t)
	for _, in := range []club.MemberInput{
		{Name: "A", DuesStatus: models.DuesPaid},
		{Name: "B"},
		{Name: "C"},
	} {
		_, err := tc.Members().Add(in)
		require.NoError(t, err)
	}

	dues, err := tc.DuesSummary()
	require.NoError(t, err)
	assert.Equal(t, club.DuesSummary{Paid: 1, Pending: 2, Total: 3}, dues)

	_, err = tc.Members().RegisterPayment(club.PaymentInput{MemberID: 2, Amount: 20, Period: "2024"})
	require.NoError(t, err)
	dues, err = tc.DuesSummary()
	require.NoError(t, err)
	assert.Equal(t, club.DuesSummary{Paid: 2, Pending: 1, Total: 3}, dues)
}

func TestAvailability(t *testing.T) {
	tc := setupTestClub(t)
	fit := addPlayer(t, tc.Club, "Fit")
	injured := addPlayer(t, tc.Club, "Injured")
	recovered := addPlayer(t, tc.Club, "Recovered")
	for _, in := range []club.TreatmentInput{
		{PlayerID: injured.ID, Diagnosis: "Entorse", Plan: "Gelo", StartDate: models.MustDate("2024-10-01"), ExpectedReturn: models.MustDate("2024-10-20")},
		{PlayerID: injured.ID, Diagnosis: "Contusão", Plan: "Gelo", StartDate: models.MustDate("2024-10-10"), ExpectedReturn: models.MustDate("2024-10-25")},
		{PlayerID: recovered.ID, Diagnosis: "Gripe", Plan: "Repouso", StartDate: models.MustDate("2024-10-01"), ExpectedReturn: models.MustDate("2024-10-08")},
	} {
		_, err := tc.Treatments().Add(in)
		require.NoError(t, err)
	}

	availability, err := tc.Availability()
	require.NoError(t, err)
	require.Len(t, availability, 3)

	assert.Equal(t, club.PlayerAvailability{PlayerID: fit.ID, Name: "Fit", Available: true, Treatments: []int{}}, availability[0])
	assert.False(t, availability[1].Available)
	assert.Equal(t, []int{1, 2}, availability[1].Treatments)
	assert.Equal(t, models.MustDate("2024-10-25"), availability[1].ReturnDate)
	assert.True(t, availability[2].Available)
}
