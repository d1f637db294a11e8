package store

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesPragmas(t *testing.T) {
	s := createTestStore(t)

	require.NoError(t, s.verifyPragma("journal_mode", "wal"))
	require.NoError(t, s.verifyPragma("synchronous", "1"))
	require.NoError(t, s.verifyPragma("busy_timeout", "5000"))
	require.NoError(t, s.verifyPragma("user_version", "1"))
}

func TestOpen_Idempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "todo.db")

	s1, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s1.Put(context.Background(), "tasks", "[]"))
	require.NoError(t, s1.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	v, found, err := s2.Get(context.Background(), "tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", v)
}

func TestOpen_RejectsNewerSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.db")

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	_, err = db.Exec("PRAGMA user_version = 99")
	require.NoError(t, err)
	require.NoError(t, db.Close())

	_, err = Open(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "newer than supported")
}

func TestStore_GetMissingKey(t *testing.T) {
	s := createTestStore(t)

	v, found, err := s.Get(context.Background(), "tasks")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, v)
}

func TestStore_PutOverwrites(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Put(ctx, "tasks", "first"))
	require.NoError(t, s.Put(ctx, "tasks", "second"))
	require.NoError(t, s.Put(ctx, "other", "x"))

	v, found, err := s.Get(ctx, "tasks")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "second", v)

	var rows int
	require.NoError(t, s.db.QueryRow("SELECT COUNT(*) FROM slots").Scan(&rows))
	assert.Equal(t, 2, rows)
}

func TestStore_CloseNil(t *testing.T) {
	s := &Store{}
	assert.NoError(t, s.Close())
}
