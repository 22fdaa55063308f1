package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestOpenAppliesMigrations(t *testing.T) {
	db := openTestDB(t)

	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='solves'`).Scan(&n)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	// Reopening must be a no-op.
	db2, err := Open(db.Path())
	require.NoError(t, err)
	require.NoError(t, db2.Close())
}

func TestSolveRoundTrip(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	id, err := repo.Record(
		"UUUUUUUUUBBBRRRRRRRRRFFFFFFDDDDDDDDDFFFLLLLLLLLLBBBBBB",
		"U'", 1, 21, 42*time.Millisecond)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	got, err := repo.Get(id)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "U'", got.Solution)
	require.Equal(t, 1, got.Length)
	require.Equal(t, 21, got.MaxLength)
	require.EqualValues(t, 42, got.DurationMs)
	require.False(t, got.CreatedAt.IsZero())

	missing, err := repo.Get("no-such-id")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestListLimitAndCount(t *testing.T) {
	db := openTestDB(t)
	repo := NewSolveRepository(db)

	for i := 0; i < 3; i++ {
		_, err := repo.Record("facelets", "R U R'", 3, 21, time.Millisecond)
		require.NoError(t, err)
	}

	solves, err := repo.List(2)
	require.NoError(t, err)
	require.Len(t, solves, 2)

	count, err := repo.Count()
	require.NoError(t, err)
	require.Equal(t, 3, count)
}
