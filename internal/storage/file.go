package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/vilacaiz/clubhouse/internal/models"
)

// DefaultDataFile is where the club document lives unless configured.
const DefaultDataFile = "data/club.json"

// FileBackend keeps the document as an indented JSON file.
type FileBackend struct {
	path string
}

var _ Backend = (*FileBackend)(nil)

// NewFileBackend returns a backend for the JSON document at path.
func NewFileBackend(path string) *FileBackend {
	if path == "" {
		path = DefaultDataFile
	}
	return &FileBackend{path: path}
}

func (b *FileBackend) Name() string { return b.path }

// Load reads the document. A missing file is created with the default empty
// structure.
func (b *FileBackend) Load() (*models.Document, error) {
	raw, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Info("No club data file found, creating one", "path", b.path)
		doc := models.NewDocument()
		if err := b.Save(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Source: b.path, Err: err}
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, &CorruptDataError{Source: b.path, Err: errors.New("empty document")}
	}

	doc := models.NewDocument()
	dec := json.NewDecoder(bytes.NewReader(raw))
	if err := dec.Decode(doc); err != nil {
		return nil, &CorruptDataError{Source: b.path, Err: err}
	}
	if dec.More() {
		return nil, &CorruptDataError{Source: b.path, Err: errors.New("trailing data after document")}
	}
	doc.Normalize()
	return doc, nil
}

// Save writes the document to a temporary file next to the destination and
// renames it into place, so a failed write leaves the previous file intact.
func (b *FileBackend) Save(doc *models.Document) error {
	raw, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return &IOError{Op: "encode", Source: b.path, Err: err}
	}
	raw = append(raw, '\n')

	dir := filepath.Dir(b.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &IOError{Op: "create directory for", Source: b.path, Err: err}
	}
	tmp, err := os.CreateTemp(dir, ".club-*.json")
	if err != nil {
		return &IOError{Op: "write", Source: b.path, Err: err}
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &IOError{Op: "write", Source: b.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "write", Source: b.path, Err: err}
	}
	if err := os.Rename(tmpName, b.path); err != nil {
		os.Remove(tmpName)
		return &IOError{Op: "write", Source: b.path, Err: err}
	}
	log.Debug("Club document saved", "path", b.path, "bytes", len(raw))
	return nil
}
