package storage

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Helper to create an in-memory database for testing
func setupTestDB(t *testing.T) *DB {
	db, err := OpenBadger(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

// backends returns one fresh instance of every backend kind.
func backends(t *testing.T) map[string]Backend {
	t.Helper()

	sqlite, err := OpenSQLite(Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { sqlite.Close() })

	return map[string]Backend{
		"badger": setupTestDB(t),
		"sqlite": sqlite,
		"memory": NewMemory(),
	}
}

// =============================================================================
// Open Tests
// =============================================================================

func TestOpen(t *testing.T) {
	t.Run("default_is_badger", func(t *testing.T) {
		b, err := Open(Options{InMemory: true})
		require.NoError(t, err)
		defer b.Close()
		assert.IsType(t, &DB{}, b)
	})

	t.Run("sqlite", func(t *testing.T) {
		b, err := Open(Options{Kind: KindSQLite, InMemory: true})
		require.NoError(t, err)
		defer b.Close()
		assert.IsType(t, &SQLite{}, b)
	})

	t.Run("memory", func(t *testing.T) {
		b, err := Open(Options{Kind: KindMemory})
		require.NoError(t, err)
		assert.IsType(t, &Memory{}, b)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := Open(Options{Kind: "etcd"})
		assert.ErrorIs(t, err, ErrUnknownBackend)
	})
}

func TestDefaultPath(t *testing.T) {
	assert.Contains(t, DefaultPath(KindBadger), "pocketlog")
	assert.Equal(t, "pocketlog.db", filepath.Base(DefaultPath(KindSQLite)))
}

func TestDBPath(t *testing.T) {
	db := setupTestDB(t)
	assert.Equal(t, "", db.Path())
}

// =============================================================================
// Backend Contract Tests
// =============================================================================

func TestBackendGetMissing(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			_, err := b.GetBytes("nope")
			assert.True(t, IsErrKeyNotFound(err))
		})
	}
}

func TestBackendSetGetOverwrite(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.SetBytes("tasks", []byte(`[1]`)))
			require.NoError(t, b.SetBytes("tasks", []byte(`[1,2]`)))

			got, err := b.GetBytes("tasks")
			require.NoError(t, err)
			assert.Equal(t, `[1,2]`, string(got))
		})
	}
}

func TestBackendDelete(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.SetBytes("ideas", []byte(`[]`)))
			require.NoError(t, b.Delete("ideas"))
			require.NoError(t, b.Delete("ideas"))

			_, err := b.GetBytes("ideas")
			assert.True(t, IsErrKeyNotFound(err))
		})
	}
}

func TestBackendKeys(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.SetBytes("words", []byte(`[]`)))
			require.NoError(t, b.SetBytes("ideas", []byte(`[]`)))

			keys, err := b.Keys()
			require.NoError(t, err)
			assert.Equal(t, []string{"ideas", "words"}, keys)
		})
	}
}

func TestStats(t *testing.T) {
	for name, b := range backends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, b.SetBytes("tasks", []byte(`[{"id":"a"}]`)))
			require.NoError(t, b.SetBytes("ideas", []byte(`[]`)))

			stats, err := Stats(b)
			require.NoError(t, err)
			assert.Equal(t, []KeyStat{
				{Key: "ideas", Bytes: 2},
				{Key: "tasks", Bytes: 12},
			}, stats)
		})
	}
}

// =============================================================================
// Persistence Tests
// =============================================================================

func TestBadgerReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db")

	db, err := OpenBadger(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, db.SetBytes("wardrobe", []byte(`[{"id":"a"}]`)))
	require.NoError(t, db.Close())

	db, err = OpenBadger(Options{Path: path})
	require.NoError(t, err)
	defer db.Close()

	got, err := db.GetBytes("wardrobe")
	require.NoError(t, err)
	assert.JSONEq(t, `[{"id":"a"}]`, string(got))
}

func TestSQLiteReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pocketlog.db")

	s, err := OpenSQLite(Options{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.SetBytes("manicures", []byte(`[]`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(Options{Path: path})
	require.NoError(t, err)
	defer s.Close()

	assert.Equal(t, path, s.Path())
	got, err := s.GetBytes("manicures")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemoryFailWrites(t *testing.T) {
	m := NewMemory()
	require.NoError(t, m.SetBytes("tasks", []byte(`[]`)))
	assert.Equal(t, 1, m.Writes)

	boom := errors.New("disk full")
	m.FailWrites = boom

	assert.ErrorIs(t, m.SetBytes("tasks", []byte(`[1]`)), boom)
	assert.ErrorIs(t, m.Delete("tasks"), boom)

	got, err := m.GetBytes("tasks")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
	assert.Equal(t, 1, m.Writes)
}

func TestMemoryReturnsCopies(t *testing.T) {
	m := NewMemory()
	data := []byte(`abc`)
	require.NoError(t, m.SetBytes("k", data))
	data[0] = 'x'

	got, err := m.GetBytes("k")
	require.NoError(t, err)
	got[1] = 'y'

	again, err := m.GetBytes("k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(again))
}
