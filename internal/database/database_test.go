package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitDB_CreatesTables(t *testing.T) {
	db, teardown, err := InitDB(":memory:", "", "")
	require.NoError(t, err, "InitDB should not return an error")
	defer teardown()

	var tableName string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='document_revisions'").Scan(&tableName)
	require.NoError(t, err, "Querying for document_revisions table should not produce an error")
	assert.Equal(t, "document_revisions", tableName, "The 'document_revisions' table should be created")

	var version int64
	err = db.QueryRow("SELECT MAX(version_id) FROM goose_db_version").Scan(&version)
	require.NoError(t, err, "goose should record the applied migration")
	assert.Equal(t, int64(1), version)
}

func TestInitDB_IsIdempotent(t *testing.T) {
	path := t.TempDir() + "/club.db"

	_, teardown, err := InitDB(path, "", "")
	require.NoError(t, err)
	teardown()

	db, teardown, err := InitDB(path, "", "")
	require.NoError(t, err, "re-running migrations on an up-to-date database should succeed")
	defer teardown()

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM document_revisions").Scan(&count))
	assert.Equal(t, 0, count)
}
