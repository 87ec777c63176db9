package storage

import (
	"bytes"
	"database/sql"
	"errors"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vilacaiz/clubhouse/internal/models"
	"github.com/vmihailenco/msgpack/v5"
)

// SQLBackend stores every saved document as a new msgpack-encoded revision
// in the document_revisions table. Load returns the latest revision.
type SQLBackend struct {
	db   *sql.DB
	name string
	now  func() time.Time
}

var _ Backend = (*SQLBackend)(nil)

// Revision describes one saved version of the document.
type Revision struct {
	ID      int64
	SavedAt time.Time
	Size    int
}

// NewSQLBackend returns a backend over a database initialised by
// database.InitDB.
func NewSQLBackend(db *sql.DB, name string) *SQLBackend {
	return &SQLBackend{db: db, name: name, now: time.Now}
}

func (b *SQLBackend) Name() string { return b.name }

func (b *SQLBackend) Load() (*models.Document, error) {
	var payload []byte
	err := b.db.QueryRow("SELECT payload FROM document_revisions ORDER BY id DESC LIMIT 1").Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		log.Info("No stored club document revision, starting empty", "db", b.name)
		return models.NewDocument(), nil
	}
	if err != nil {
		return nil, &IOError{Op: "read", Source: b.name, Err: err}
	}

	doc, err := decodeRevision(payload)
	if err != nil {
		return nil, &CorruptDataError{Source: b.name, Err: err}
	}
	return doc, nil
}

func (b *SQLBackend) Save(doc *models.Document) error {
	payload, err := encodeRevision(doc)
	if err != nil {
		return &IOError{Op: "encode", Source: b.name, Err: err}
	}
	_, err = b.db.Exec("INSERT INTO document_revisions (saved_at, payload) VALUES (?, ?)", b.now().Unix(), payload)
	if err != nil {
		return &IOError{Op: "write", Source: b.name, Err: err}
	}
	log.Debug("Club document revision stored", "db", b.name, "bytes", len(payload))
	return nil
}

// Revisions lists the most recent revisions, newest first.
func (b *SQLBackend) Revisions(limit int) ([]Revision, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := b.db.Query("SELECT id, saved_at, length(payload) FROM document_revisions ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, &IOError{Op: "read", Source: b.name, Err: err}
	}
	defer rows.Close()

	var revisions []Revision
	for rows.Next() {
		var r Revision
		var savedAt int64
		if err := rows.Scan(&r.ID, &savedAt, &r.Size); err != nil {
			return nil, &IOError{Op: "read", Source: b.name, Err: err}
		}
		r.SavedAt = time.Unix(savedAt, 0)
		revisions = append(revisions, r)
	}
	return revisions, rows.Err()
}

// Revisions reuse the json struct tags so both backends agree on field names.
func encodeRevision(doc *models.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func decodeRevision(payload []byte) (*models.Document, error) {
	doc := models.NewDocument()
	dec := msgpack.NewDecoder(bytes.NewReader(payload))
	dec.SetCustomStructTag("json")
	if err := dec.Decode(doc); err != nil {
		return nil, err
	}
	doc.Normalize()
	return doc, nil
}
