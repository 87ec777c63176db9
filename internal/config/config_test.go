package config_test

import (
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vilacaiz/clubhouse/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"CLUB_BACKEND", "CLUB_DATA_FILE", "DB_NAME", "PORT", "LOG_LEVEL", "TURSO_PRIMARY_URL", "TURSO_AUTH_TOKEN", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Backend)
	assert.Equal(t, "data/club.json", cfg.DataFile)
	assert.Equal(t, "data/club.db", cfg.DBName)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, log.InfoLevel, cfg.Level())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowedOrigins)
	assert.False(t, cfg.LogLevelSet)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("CLUB_BACKEND", "SQLite")
	t.Setenv("DB_NAME", "/tmp/club.db")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.Backend)
	assert.Equal(t, "/tmp/club.db", cfg.DBName)
	assert.Equal(t, log.DebugLevel, cfg.Level())
	assert.True(t, cfg.LogLevelSet)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_Rejects(t *testing.T) {
	t.Setenv("CLUB_BACKEND", "postgres")
	_, err := config.Load()
	assert.Error(t, err)

	t.Setenv("CLUB_BACKEND", "file")
	t.Setenv("LOG_LEVEL", "loud")
	_, err = config.Load()
	assert.Error(t, err)
}
