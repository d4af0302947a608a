package store

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/storage"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// sequentialIDs returns an id generator yielding id-1, id-2, ...
func sequentialIDs() func() (string, error) {
	n := 0
	return func() (string, error) {
		n++
		return fmt.Sprintf("id-%d", n), nil
	}
}

func newTask() *model.Task { return &model.Task{} }

// setupStore opens a task store over backend with deterministic ids and clock.
func setupStore(t *testing.T, backend Storage) *Store[*model.Task] {
	t.Helper()
	return New(backend, model.KeyTasks, newTask,
		WithIDGenerator(sequentialIDs()),
		WithClock(func() time.Time { return testNow }))
}

func reopen(t *testing.T, backend Storage) *Store[*model.Task] {
	t.Helper()
	return New(backend, model.KeyTasks, newTask)
}

func titles(tasks []*model.Task) []string {
	out := make([]string, len(tasks))
	for i, task := range tasks {
		out[i] = task.Title
	}
	return out
}

// =============================================================================
// Load Tests
// =============================================================================

func TestNewEmpty(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	assert.Equal(t, 0, s.Len())
	assert.Empty(t, s.All())
	assert.NoError(t, s.LastError())
	assert.Equal(t, "tasks", s.Key())
}

func TestNewCorruptPayload(t *testing.T) {
	payloads := map[string]string{
		"garbage":      `{{{not json`,
		"object":       `{"id":"x"}`,
		"wrong_fields": `[{"id": 12, "title": ["a"]}]`,
		"truncated":    `[{"id":"a","title":"milk"`,
	}

	for name, payload := range payloads {
		t.Run(name, func(t *testing.T) {
			backend := storage.NewMemory()
			require.NoError(t, backend.SetBytes(model.KeyTasks, []byte(payload)))

			s := setupStore(t, backend)
			assert.Equal(t, 0, s.Len())
			assert.Error(t, s.LastError())
		})
	}
}

func TestNewReadError(t *testing.T) {
	s := setupStore(t, failingReader{err: errors.New("io error")})
	assert.Equal(t, 0, s.Len())
	assert.Error(t, s.LastError())
}

func TestNewSkipsNullElements(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.SetBytes(model.KeyTasks, []byte(`[null,{"id":"a","title":"milk"}]`)))

	s := setupStore(t, backend)
	require.Equal(t, 1, s.Len())
	assert.Equal(t, "milk", s.All()[0].Title)
}

func TestNewToleratesUnknownFields(t *testing.T) {
	backend := storage.NewMemory()
	require.NoError(t, backend.SetBytes(model.KeyTasks, []byte(`[{"id":"a","title":"milk","mood":"great"}]`)))

	s := setupStore(t, backend)
	got, ok := s.Get("a")
	require.True(t, ok)
	assert.Equal(t, "milk", got.Title)
	assert.NoError(t, s.LastError())
}

type failingReader struct{ err error }

func (f failingReader) GetBytes(string) ([]byte, error) { return nil, f.err }
func (f failingReader) SetBytes(string, []byte) error   { return f.err }

// =============================================================================
// Add Tests
// =============================================================================

func TestAddAssignsIdentity(t *testing.T) {
	s := setupStore(t, storage.NewMemory())

	task := model.NewTask("milk", "groceries", model.PriorityLow)
	require.NoError(t, s.Add(task))

	assert.Equal(t, "id-1", task.ID)
	assert.Equal(t, testNow, task.CreatedAt)
}

func TestAddKeepsSuppliedIdentity(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	created := testNow.Add(-48 * time.Hour)

	task := &model.Task{Base: model.Base{ID: "custom", CreatedAt: created}, Title: "eggs"}
	require.NoError(t, s.Add(task))

	got, ok := s.Get("custom")
	require.True(t, ok)
	assert.Equal(t, created, got.CreatedAt)
}

func TestAddDefaultIDsAreUUIDs(t *testing.T) {
	s := New(storage.NewMemory(), model.KeyTasks, newTask)
	a := model.NewTask("a", "", "")
	b := model.NewTask("b", "", "")
	require.NoError(t, s.Add(a))
	require.NoError(t, s.Add(b))

	assert.Len(t, a.ID, 36)
	assert.NotEqual(t, a.ID, b.ID)
	assert.False(t, a.CreatedAt.IsZero())
}

func TestAddAppendsInOrder(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	for _, title := range []string{"c", "a", "b"} {
		require.NoError(t, s.Add(model.NewTask(title, "", "")))
	}
	assert.Equal(t, []string{"c", "a", "b"}, titles(s.All()))
}

func TestAddDuplicateIDAppends(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	require.NoError(t, s.Add(&model.Task{Base: model.Base{ID: "dup"}, Title: "one"}))
	require.NoError(t, s.Add(&model.Task{Base: model.Base{ID: "dup"}, Title: "two"}))
	assert.Equal(t, 2, s.Len())

	require.NoError(t, s.Delete("dup"))
	assert.Equal(t, 0, s.Len())
}

func TestAddIDGeneratorFailure(t *testing.T) {
	s := New(storage.NewMemory(), model.KeyTasks, newTask,
		WithIDGenerator(func() (string, error) { return "", errors.New("entropy") }))

	err := s.Add(model.NewTask("x", "", ""))
	assert.Error(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestRoundTripAfterReload(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)

	due := time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
	task := &model.Task{
		Title:    "file taxes",
		Note:     "before april",
		Category: "admin",
		Priority: model.PriorityHigh,
		DueDate:  &due,
	}
	require.NoError(t, s.Add(task))

	reloaded := reopen(t, backend)
	got, ok := reloaded.Get(task.ID)
	require.True(t, ok)
	assert.Equal(t, task.Title, got.Title)
	assert.Equal(t, task.Note, got.Note)
	assert.Equal(t, task.Category, got.Category)
	assert.Equal(t, task.Priority, got.Priority)
	assert.True(t, task.CreatedAt.Equal(got.CreatedAt))
	require.NotNil(t, got.DueDate)
	assert.True(t, due.Equal(*got.DueDate))
}

func TestRoundTripBadger(t *testing.T) {
	db, err := storage.OpenBadger(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := setupStore(t, db)
	require.NoError(t, s.Add(model.NewTask("milk", "x", "")))

	assert.Equal(t, []string{"milk"}, titles(reopen(t, db).All()))
}

func TestRoundTripSQLite(t *testing.T) {
	db, err := storage.OpenSQLite(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	s := setupStore(t, db)
	require.NoError(t, s.Add(model.NewTask("eggs", "y", "")))

	assert.Equal(t, []string{"eggs"}, titles(reopen(t, db).All()))
}

// =============================================================================
// Update Tests
// =============================================================================

func TestUpdateInPlace(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	for _, title := range []string{"a", "b", "c"} {
		require.NoError(t, s.Add(model.NewTask(title, "", "")))
	}

	b, ok := s.Get("id-2")
	require.True(t, ok)
	b.Title = "B"
	require.NoError(t, s.Update(b))

	assert.Equal(t, []string{"a", "B", "c"}, titles(s.All()))
}

func TestUpdateIdempotent(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	require.NoError(t, s.Add(model.NewTask("a", "", "")))

	r, _ := s.Get("id-1")
	r.Note = "changed"

	require.NoError(t, s.Update(r))
	once, err := backend.GetBytes(model.KeyTasks)
	require.NoError(t, err)

	require.NoError(t, s.Update(r))
	twice, err := backend.GetBytes(model.KeyTasks)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, s.Len())
}

func TestUpdateUnknownIDIsNoop(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	require.NoError(t, s.Add(model.NewTask("a", "", "")))
	before := s.All()
	writes := backend.Writes

	ghost := &model.Task{Base: model.Base{ID: "ghost"}, Title: "boo"}
	require.NoError(t, s.Update(ghost))

	assert.Equal(t, before, s.All())
	assert.Equal(t, writes, backend.Writes)
}

func TestUpdateKeepsCreatedAt(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	require.NoError(t, s.Add(model.NewTask("a", "", "")))

	r, _ := s.Get("id-1")
	r.CreatedAt = time.Time{}
	require.NoError(t, s.Update(r))

	got, _ := s.Get("id-1")
	assert.Equal(t, testNow, got.CreatedAt)
}

func TestModify(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	require.NoError(t, s.Add(model.NewTask("a", "", "")))

	found, err := s.Modify("id-1", func(task *model.Task) { task.Title = "z" })
	require.NoError(t, err)
	assert.True(t, found)

	got, _ := s.Get("id-1")
	assert.Equal(t, "z", got.Title)

	found, err = s.Modify("nope", func(task *model.Task) { task.Title = "y" })
	require.NoError(t, err)
	assert.False(t, found)
}

// =============================================================================
// Delete Tests
// =============================================================================

func TestDeleteIsTerminal(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	require.NoError(t, s.Add(model.NewTask("a", "", "")))
	require.NoError(t, s.Add(model.NewTask("b", "", "")))

	require.NoError(t, s.Delete("id-1"))
	_, ok := s.Get("id-1")
	assert.False(t, ok)

	_, ok = reopen(t, backend).Get("id-1")
	assert.False(t, ok)
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	require.NoError(t, s.Add(model.NewTask("a", "", "")))
	writes := backend.Writes

	require.NoError(t, s.Delete("missing"))
	require.NoError(t, s.DeleteMany())
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, writes, backend.Writes)
}

func TestDeleteLastLeavesEmptyArray(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	require.NoError(t, s.Add(model.NewTask("a", "", "")))
	require.NoError(t, s.Delete("id-1"))

	data, err := backend.GetBytes(model.KeyTasks)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

// =============================================================================
// Write Failure Tests
// =============================================================================

func TestWriteFailureKeepsMemoryState(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	require.NoError(t, s.Add(model.NewTask("a", "", "")))

	boom := errors.New("disk full")
	backend.FailWrites = boom

	err := s.Add(model.NewTask("b", "", ""))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, s.LastError(), boom)
	assert.Equal(t, []string{"a", "b"}, titles(s.All()))

	// durable copy still holds the last good snapshot
	assert.Equal(t, []string{"a"}, titles(reopen(t, backend).All()))

	// next successful write catches up and clears the error
	backend.FailWrites = nil
	require.NoError(t, s.Delete("id-1"))
	assert.NoError(t, s.LastError())
	assert.Equal(t, []string{"b"}, titles(reopen(t, backend).All()))
}

// =============================================================================
// Isolation Tests
// =============================================================================

func TestReadsReturnCopies(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	task := model.NewTask("a", "", "")
	require.NoError(t, s.Add(task))

	task.Title = "mutated after add"
	got, _ := s.Get("id-1")
	assert.Equal(t, "a", got.Title)

	got.Title = "mutated after get"
	all := s.All()
	assert.Equal(t, "a", all[0].Title)

	all[0].Title = "mutated after all"
	assert.Equal(t, []string{"a"}, titles(s.All()))
}

// =============================================================================
// Subscribe Tests
// =============================================================================

func TestSubscribe(t *testing.T) {
	s := setupStore(t, storage.NewMemory())

	var snapshots [][]string
	cancel := s.Subscribe(func(tasks []*model.Task) {
		snapshots = append(snapshots, titles(tasks))
	})

	require.NoError(t, s.Add(model.NewTask("a", "", "")))
	require.NoError(t, s.Add(model.NewTask("b", "", "")))
	require.NoError(t, s.Delete("id-1"))

	assert.Equal(t, [][]string{{"a"}, {"a", "b"}, {"b"}}, snapshots)

	cancel()
	require.NoError(t, s.Add(model.NewTask("c", "", "")))
	assert.Len(t, snapshots, 3)
}

func TestSubscribeNotifiedOnWriteFailure(t *testing.T) {
	backend := storage.NewMemory()
	s := setupStore(t, backend)
	backend.FailWrites = errors.New("nope")

	calls := 0
	s.Subscribe(func([]*model.Task) { calls++ })

	assert.Error(t, s.Add(model.NewTask("a", "", "")))
	assert.Equal(t, 1, calls)
}

func TestSubscribeNoNotifyOnNoop(t *testing.T) {
	s := setupStore(t, storage.NewMemory())
	calls := 0
	s.Subscribe(func([]*model.Task) { calls++ })

	require.NoError(t, s.Delete("missing"))
	require.NoError(t, s.Update(&model.Task{Base: model.Base{ID: "missing"}}))
	assert.Equal(t, 0, calls)
}
