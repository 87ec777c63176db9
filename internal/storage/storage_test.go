package storage_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/config"
	"github.com/vilacaiz/clubhouse/internal/database"
	"github.com/vilacaiz/clubhouse/internal/models"
	"github.com/vilacaiz/clubhouse/internal/storage"
)

func sampleDocument() *models.Document {
	shirt := 8
	physio := 1
	doc := models.NewDocument()
	doc.ActiveSeason = "2024/2025"
	doc.Seasons = []models.Season{{
		Label:     "2024/2025",
		StartDate: models.MustDate("2024-07-01"),
		EndDate:   models.MustDate("2025-06-30"),
	}}
	doc.Users = json.RawMessage(`[{"username":"admin"}]`)
	sd := models.NewSeasonData()
	sd.Players = append(sd.Players, models.Player{
		ID: 1, Name: "João Silva", Position: "Médio", Squad: models.SquadSenior,
		Birthdate: models.MustDate("1995-04-02"), ShirtNumber: &shirt,
	})
	sd.Physiotherapists = append(sd.Physiotherapists, models.Physiotherapist{ID: 1, Name: "Ana Costa", Role: "Fisioterapeuta"})
	sd.Treatments = append(sd.Treatments, models.Treatment{
		ID: 1, PlayerID: 1, PhysioID: &physio, Diagnosis: "Entorse", Plan: "Gelo",
		StartDate: models.MustDate("2024-09-01"), ExpectedReturn: models.MustDate("2024-09-15"),
	})
	sd.Finance = append(sd.Finance, models.FinanceRecord{
		ID: 1, Type: models.Revenue, Description: "Jogo", Amount: 1540.50,
		Category: "Bilheteira", Date: models.MustDate("2024-09-01"),
	})
	doc.Data["2024/2025"] = sd
	doc.Normalize()
	return doc
}

func TestFileBackend_CreatesMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "club.json")
	backend := storage.NewFileBackend(path)

	doc, err := backend.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Seasons)

	_, err = os.Stat(path)
	assert.NoError(t, err, "Load should create the data file")
}

func TestFileBackend_RoundTrip(t *testing.T) {
	backend := storage.NewFileBackend(filepath.Join(t.TempDir(), "club.json"))
	original := sampleDocument()

	require.NoError(t, backend.Save(original))
	loaded, err := backend.Load()
	require.NoError(t, err)

	assert.Equal(t, original, loaded)
}

func TestFileBackend_CorruptDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"seasons": [`), 0o644))

	_, err := storage.NewFileBackend(path).Load()
	var corrupt *storage.CorruptDataError
	require.ErrorAs(t, err, &corrupt)
	assert.Equal(t, path, corrupt.Source)
}

func TestFileBackend_BadDateIsCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "club.json")
	body := `{"active_season":"a","seasons":[{"label":"a","start_date":"01/07/2024"}],"data":{}}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	_, err := storage.NewFileBackend(path).Load()
	var corrupt *storage.CorruptDataError
	assert.ErrorAs(t, err, &corrupt)
}

func TestFileBackend_UnwritableDestination(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "not-a-dir")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	err := storage.NewFileBackend(filepath.Join(blocker, "club.json")).Save(sampleDocument())
	var ioErr *storage.IOError
	assert.ErrorAs(t, err, &ioErr)
}

func TestFileBackend_FailedSaveKeepsPreviousDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "club.json")
	backend := storage.NewFileBackend(path)
	require.NoError(t, backend.Save(sampleDocument()))
	before, err := os.ReadFile(path)
	require.NoError(t, err)

	bad := sampleDocument()
	bad.Branding = json.RawMessage(`{not json`)
	require.Error(t, backend.Save(bad))

	after, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func setupSQLBackend(t *testing.T) (*storage.SQLBackend, func()) {
	t.Helper()
	db, teardown, err := database.InitDB(":memory:", "", "")
	require.NoError(t, err)
	return storage.NewSQLBackend(db, "memory"), teardown
}

func TestSQLBackend_EmptyDatabase(t *testing.T) {
	backend, teardown := setupSQLBackend(t)
	defer teardown()

	doc, err := backend.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Seasons)
	assert.Empty(t, doc.Data)
}

func TestSQLBackend_RoundTripAndRevisions(t *testing.T) {
	backend, teardown := setupSQLBackend(t)
	defer teardown()

	first := sampleDocument()
	require.NoError(t, backend.Save(first))

	second := sampleDocument()
	second.Data["2024/2025"].Coaches = append(second.Data["2024/2025"].Coaches, models.Coach{ID: 1, Name: "Rui", Role: "Treinador Principal"})
	require.NoError(t, backend.Save(second))

	loaded, err := backend.Load()
	require.NoError(t, err)
	assert.Equal(t, second, loaded, "Load should return the latest revision")

	revisions, err := backend.Revisions(10)
	require.NoError(t, err)
	require.Len(t, revisions, 2)
	assert.Greater(t, revisions[0].ID, revisions[1].ID, "revisions are listed newest first")
}

func TestOpen_SelectsBackend(t *testing.T) {
	dir := t.TempDir()

	backend, teardown, err := storage.Open(config.Config{Backend: config.BackendFile, DataFile: filepath.Join(dir, "club.json")})
	require.NoError(t, err)
	defer teardown()
	assert.IsType(t, &storage.FileBackend{}, backend)

	backend, teardown, err = storage.Open(config.Config{Backend: config.BackendSQLite, DBName: filepath.Join(dir, "db", "club.db")})
	require.NoError(t, err)
	defer teardown()
	assert.IsType(t, &storage.SQLBackend{}, backend)

	_, _, err = storage.Open(config.Config{Backend: "postgres"})
	assert.Error(t, err)
}
