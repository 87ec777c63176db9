package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/models"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

func setupSeederClub(t *testing.T) *club.Club {
	t.Helper()
	backend := storage.NewFileBackend(filepath.Join(t.TempDir(), "club.json"))
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC))
	c, err := club.New(backend, club.WithClock(clock))
	require.NoError(t, err)
	return c
}

func TestSeed_ExampleFixture(t *testing.T) {
	c := setupSeederClub(t)
	f, err := loadFixture("../../fixtures/club.yaml")
	require.NoError(t, err)

	sc, err := seed(c, f)
	require.NoError(t, err)
	assert.Equal(t, "2024/2025", c.ActiveSeason().Label)

	squads, err := sc.YouthSquads().List()
	require.NoError(t, err)
	require.Len(t, squads, 1)
	assert.Equal(t, []int{3, 4}, squads[0].PlayerIDs)

	s, err := sc.Summary()
	require.NoError(t, err)
	assert.Equal(t, 1625.50, s.Finance.Revenue)
	assert.Equal(t, 820.25, s.Finance.Expense)
	assert.Equal(t, 805.25, s.Finance.Balance)
	assert.Equal(t, club.DuesSummary{Paid: 1, Pending: 1, Total: 2}, s.Dues)

	payments, err := sc.Members().ListPayments(0)
	require.NoError(t, err)
	require.Len(t, payments, 1)
	assert.Equal(t, 60.0, payments[0].Amount)

	members, err := sc.Members().List(club.MemberFilter{})
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, "Juvenil", members[1].MembershipType)

	plans, err := sc.MatchPlans().List(club.MatchPlanFilter{})
	require.NoError(t, err)
	require.Len(t, plans, 2)
	assert.Equal(t, "Rio Ave", plans[0].Opponent)
	assert.Equal(t, []int{4}, plans[0].Substitutes)

	treatments, err := sc.Treatments().List(club.TreatmentFilter{})
	require.NoError(t, err)
	require.Len(t, treatments, 1)
	assert.False(t, treatments[0].Available)
}

func TestSeed_UnknownKey(t *testing.T) {
	c := setupSeederClub(t)
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
coaches:
  - key: alves
    name: Rui Alves
    role: Treinador
youth_squads:
  - name: Sub-15
    coach: alves
    players: [nobody]
`), 0o644))
	f, err := loadFixture(path)
	require.NoError(t, err)

	_, err = seed(c, f)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown player key "nobody"`)

	squads, err := c.YouthSquads().List()
	require.NoError(t, err)
	assert.Empty(t, squads)
}

func TestSeed_InvalidDate(t *testing.T) {
	c := setupSeederClub(t)
	var f Fixture
	f.Finance = append(f.Finance, struct {
		Type         string  `yaml:"type"`
		Description  string  `yaml:"description"`
		Amount       float64 `yaml:"amount"`
		Category     string  `yaml:"category"`
		Date         string  `yaml:"date"`
		Counterparty string  `yaml:"counterparty"`
	}{Type: string(models.Revenue), Description: "x", Amount: 1, Category: "y", Date: "15/09/2024"})

	_, err := seed(c, f)
	assert.Error(t, err)
}
