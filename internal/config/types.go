package config

// Config holds all configuration for the application.
type Config struct {
	Backend  string
	DataFile string
	DBName   string
	Port     string
	LogLevel string
	// LogLevelSet is true when LOG_LEVEL was given in the environment or .env.
	LogLevelSet bool
	Turso       TursoConfig
	CORS        CORSConfig
}
type TursoConfig struct {
	PrimaryURL string
	AuthToken  string
}
type CORSConfig struct {
	AllowedOrigins []string
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)
