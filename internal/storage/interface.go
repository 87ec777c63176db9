package storage

import "github.com/vilacaiz/clubhouse/internal/models"

// Backend persists the club document as a whole.
type Backend interface {
	// Load returns the stored document, or an empty one when nothing has
	// been stored yet.
	Load() (*models.Document, error)
	// Save replaces the stored document.
	Save(doc *models.Document) error
	// Name identifies the backend in logs and errors.
	Name() string
}
