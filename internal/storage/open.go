package storage

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vilacaiz/clubhouse/internal/config"
	"github.com/vilacaiz/clubhouse/internal/database"
)

// Open returns the backend selected by cfg and a teardown releasing it.
func Open(cfg config.Config) (Backend, func(), error) {
	switch cfg.Backend {
	case "", config.BackendFile:
		return NewFileBackend(cfg.DataFile), func() {}, nil
	case config.BackendSQLite:
		name := cfg.Turso.PrimaryURL
		if name == "" {
			name = cfg.DBName
			if dir := filepath.Dir(name); dir != "." {
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return nil, nil, &IOError{Op: "create", Source: dir, Err: err}
				}
			}
		}
		db, teardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
		if err != nil {
			return nil, nil, err
		}
		return NewSQLBackend(db, name), teardown, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
