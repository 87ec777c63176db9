package club_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
)

func addRecord(t *testing.T, tc *testClub, typ models.RecordType, amount float64, category, date string) models.FinanceRecord {
	t.Helper()
	r, err := tc.Finance().Add(club.FinanceInput{
		Type: typ, Description: category + " " + date, Amount: amount, Category: category, Date: models.MustDate(date),
	})
	require.NoError(t, err)
	return r
}

func TestFinance_AddAndGet(t *testing.T) {
	tc := setupTestClub(t)

	record, err := tc.Finance().Add(club.FinanceInput{
		Type: "Revenue", Description: "Jogo vs Académico", Amount: 1540.50,
		Category: "Bilheteira", Date: models.MustDate("2024-09-01"), Counterparty: "Público",
	})
	require.NoError(t, err)
	assert.Equal(t, models.Revenue, record.Type)

	got, err := tc.Finance().Get(record.ID)
	require.NoError(t, err)
	assert.Equal(t, record, got)
}

func TestFinance_Validation(t *testing.T) {
	tc := setupTestClub(t)
	valid := club.FinanceInput{
		Type: models.Expense, Description: "Equipamentos", Amount: 10, Category: "Material", Date: models.MustDate("2024-09-01"),
	}

	tests := []struct {
		name  string
		edit  func(in *club.FinanceInput)
		field string
	}{
		{"unknown type", func(in *club.FinanceInput) { in.Type = "donation" }, "type"},
		{"negative amount", func(in *club.FinanceInput) { in.Amount = -5 }, "amount"},
		{"three decimals", func(in *club.FinanceInput) { in.Amount = 10.005 }, "amount"},
		{"not a number", func(in *club.FinanceInput) { in.Amount = math.NaN() }, "amount"},
		{"no category", func(in *club.FinanceInput) { in.Category = "" }, "category"},
		{"no date", func(in *club.FinanceInput) { in.Date = models.Date{} }, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.edit(&in)
			_, err := tc.Finance().Add(in)
			var validation *club.ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}

	records, err := tc.Finance().List(club.FinanceFilter{})
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestFinance_ListFilters(t *testing.T) {
	tc := setupTestClub(t)
	addRecord(t, tc, models.Revenue, 100, "Bilheteira", "2024-08-31")
	addRecord(t, tc, models.Revenue, 200, "Bilheteira", "2024-09-01")
	addRecord(t, tc, models.Expense, 50, "Arbitragem", "2024-09-15")
	addRecord(t, tc, models.Revenue, 300, "Patrocínios", "2024-09-30")
	addRecord(t, tc, models.Expense, 75, "Arbitragem", "2024-10-01")

	september, err := tc.Finance().List(club.FinanceFilter{From: models.MustDate("2024-09-01"), To: models.MustDate("2024-09-30")})
	require.NoError(t, err)
	assert.Len(t, september, 3)

	expenses, err := tc.Finance().List(club.FinanceFilter{Type: models.Expense})
	require.NoError(t, err)
	assert.Len(t, expenses, 2)

	tickets, err := tc.Finance().List(club.FinanceFilter{Category: "bilheteira", From: models.MustDate("2024-09-01")})
	require.NoError(t, err)
	require.Len(t, tickets, 1)
	assert.Equal(t, 200.0, tickets[0].Amount)
}

func TestFinance_UpdateAndDelete(t *testing.T) {
	tc := setupTestClub(t)
	record := addRecord(t, tc, models.Expense, 50, "Arbitragem", "2024-09-15")

	amount := 65.25
	updated, err := tc.Finance().Update(record.ID, club.FinancePatch{Amount: &amount})
	require.NoError(t, err)
	assert.Equal(t, 65.25, updated.Amount)
	assert.Equal(t, "Arbitragem", updated.Category)

	bad := 1.234
	_, err = tc.Finance().Update(record.ID, club.FinancePatch{Amount: &bad})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)

	require.NoError(t, tc.Finance().Delete(record.ID))
	var notFound *club.NotFoundError
	require.ErrorAs(t, tc.Finance().Delete(record.ID), &notFound)
}

func TestFinance_BookedRecordsAreReadOnly(t *testing.T) {
	tc := setupTestClub(t)
	member, err := tc.Members().Add(club.MemberInput{Name: "Carlos Mendes"})
	require.NoError(t, err)
	payment, err := tc.Members().RegisterPayment(club.PaymentInput{MemberID: member.ID, Amount: 30, Period: "2024"})
	require.NoError(t, err)

	amount := 1.0
	_, err = tc.Finance().Update(payment.FinanceRecordID, club.FinancePatch{Amount: &amount})
	var conflict *club.ConflictError
	require.ErrorAs(t, err, &conflict)
}
