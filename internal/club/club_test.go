package club_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/club"
	"github.com/vilacaiz/clubhouse/internal/metrics"
	"github.com/vilacaiz/clubhouse/internal/models"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

type testClub struct {
	*club.Club
	clock   *clockwork.FakeClock
	metrics *metrics.Mock
	backend storage.Backend
	path    string
}

// setupTestClub opens a club on a fresh data file with the clock set to
// 2024-10-15.
func setupTestClub(t *testing.T) *testClub {
	t.Helper()

	path := filepath.Join(t.TempDir(), "club.json")
	backend := storage.NewFileBackend(path)
	clock := clockwork.NewFakeClockAt(time.Date(2024, 10, 15, 12, 0, 0, 0, time.UTC))
	m := metrics.NewMock()

	c, err := club.New(backend, club.WithClock(clock), club.WithMetrics(m))
	require.NoError(t, err)

	return &testClub{Club: c, clock: clock, metrics: m, backend: backend, path: path}
}

func intPtr(v int) *int           { return &v }
func strPtr(v string) *string     { return &v }
func floatPtr(v float64) *float64 { return &v }
func boolPtr(v bool) *bool        { return &v }

func addPlayer(t *testing.T, c *club.Club, name string) models.Player {
	t.Helper()
	p, err := c.Players().Add(club.PlayerInput{Name: name, Position: "Defesa"})
	require.NoError(t, err)
	return p
}

func TestNew_CreatesDefaultSeason(t *testing.T) {
	tc := setupTestClub(t)

	active := tc.ActiveSeason()
	assert.Equal(t, "2024/2025", active.Label)
	assert.Equal(t, models.MustDate("2024-07-01"), active.StartDate)
	assert.Equal(t, models.MustDate("2025-06-30"), active.EndDate)
	assert.True(t, active.IsActive)

	_, err := os.Stat(tc.path)
	require.NoError(t, err)
	assert.Equal(t, 1, tc.metrics.Mutations("season", "bootstrap"))
}

func TestNew_DefaultSeasonBeforeJuly(t *testing.T) {
	backend := storage.NewFileBackend(filepath.Join(t.TempDir(), "club.json"))
	clock := clockwork.NewFakeClockAt(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	c, err := club.New(backend, club.WithClock(clock))
	require.NoError(t, err)
	assert.Equal(t, "2024/2025", c.ActiveSeason().Label)
}

func TestNew_KeepsExistingActiveSeason(t *testing.T) {
	tc := setupTestClub(t)
	_, err := tc.CreateSeason(club.SeasonInput{Label: "2025/2026"})
	require.NoError(t, err)
	_, err = tc.SetActive("2025/2026")
	require.NoError(t, err)

	reopened, err := club.New(tc.backend, club.WithClock(tc.clock))
	require.NoError(t, err)
	assert.Equal(t, "2025/2026", reopened.ActiveSeason().Label)
	assert.Len(t, reopened.ListSeasons(), 2)
}

func TestPersistThenReloadIsIdentical(t *testing.T) {
	tc := setupTestClub(t)

	player, err := tc.Players().Add(club.PlayerInput{
		Name: "João Silva", Position: "Médio", Squad: models.SquadSenior,
		Birthdate: models.MustDate("1995-04-02"), ShirtNumber: intPtr(8),
	})
	require.NoError(t, err)
	coach, err := tc.Coaches().Add(club.CoachInput{Name: "Rui Alves", Role: "Treinador"})
	require.NoError(t, err)
	physio, err := tc.Physiotherapists().Add(club.PhysioInput{Name: "Ana Costa"})
	require.NoError(t, err)
	_, err = tc.YouthSquads().Add(club.YouthSquadInput{Name: "Sub-17", CoachID: coach.ID, PlayerIDs: []int{player.ID}})
	require.NoError(t, err)
	_, err = tc.Treatments().Add(club.TreatmentInput{
		PlayerID: player.ID, PhysioID: intPtr(physio.ID), Diagnosis: "Entorse", Plan: "Gelo",
		StartDate: models.MustDate("2024-10-01"), ExpectedReturn: models.MustDate("2024-10-20"),
	})
	require.NoError(t, err)
	member, err := tc.Members().Add(club.MemberInput{Name: "Carlos Mendes"})
	require.NoError(t, err)
	_, err = tc.Members().RegisterPayment(club.PaymentInput{MemberID: member.ID, Amount: 25, Period: "2024"})
	require.NoError(t, err)

	before, err := tc.Document()
	require.NoError(t, err)

	reopened, err := club.New(tc.backend, club.WithClock(tc.clock))
	require.NoError(t, err)
	after, err := reopened.Document()
	require.NoError(t, err)

	assert.Equal(t, before, after)
}

func TestRejectedChangeLeavesFileUntouched(t *testing.T) {
	tc := setupTestClub(t)
	addPlayer(t, tc.Club, "Pedro Sousa")

	before, err := os.ReadFile(tc.path)
	require.NoError(t, err)
	saves := tc.metrics.Saves()

	_, err = tc.Players().Add(club.PlayerInput{Name: "", Position: "Defesa"})
	var validation *club.ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "name", validation.Field)

	after, err := os.ReadFile(tc.path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Equal(t, saves, tc.metrics.Saves())
	assert.Equal(t, 1, tc.metrics.Rejected("player", "validation"))
}

// flakyBackend fails every Save while broken is set.
type flakyBackend struct {
	storage.Backend
	broken bool
}

func (b *flakyBackend) Save(doc *models.Document) error {
	if b.broken {
		return &storage.IOError{Op: "write", Source: b.Name(), Err: errors.New("disk full")}
	}
	return b.Backend.Save(doc)
}

func TestFailedSaveLeavesMemoryUnchanged(t *testing.T) {
	backend := &flakyBackend{Backend: storage.NewFileBackend(filepath.Join(t.TempDir(), "club.json"))}
	c, err := club.New(backend)
	require.NoError(t, err)
	addPlayer(t, c, "Pedro Sousa")

	backend.broken = true
	_, err = c.Players().Add(club.PlayerInput{Name: "Tiago Lopes", Position: "Avançado"})
	var ioErr *storage.IOError
	require.ErrorAs(t, err, &ioErr)

	players, err := c.Players().List(club.PlayerFilter{})
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Pedro Sousa", players[0].Name)
}

func TestNew_LogsSeasonCountAfterBootstrap(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	setupTestClub(t)
	assert.Contains(t, buf.String(), "seasons=1")
	assert.Contains(t, buf.String(), "active_season=2024/2025")
}

func TestReload_PicksUpExternalWrites(t *testing.T) {
	tc := setupTestClub(t)

	other, err := club.New(storage.NewFileBackend(tc.path), club.WithClock(tc.clock))
	require.NoError(t, err)
	addPlayer(t, other, "João Silva")

	players, err := tc.Players().List(club.PlayerFilter{})
	require.NoError(t, err)
	assert.Empty(t, players)

	require.NoError(t, tc.Reload())
	players, err = tc.Players().List(club.PlayerFilter{})
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "João Silva", players[0].Name)
}
