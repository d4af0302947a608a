// Package store implements the local record store: an ordered in-memory
// collection that is rewritten to a key-value slot after every mutation.
//
// Reads never touch storage. A Store is not safe for concurrent use; callers
// drive it from one goroutine (the CLI command or the TUI update loop).
// Interleaved writers would see last-write-wins with no isolation.
package store

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/manav03panchal/pocketlog/internal/errors"
	"github.com/manav03panchal/pocketlog/internal/logging"
	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/storage"
)

// Storage is the slice of a storage backend a Store needs.
type Storage interface {
	GetBytes(key string) ([]byte, error)
	SetBytes(key string, data []byte) error
}

// Store owns the collection of one entity type.
type Store[T model.Record[T]] struct {
	storage Storage
	key     string
	newFunc func() T

	items []T

	subs    []subscription[T]
	nextSub int

	lastErr error
	now     func() time.Time
	newID   func() (string, error)
	logger  *slog.Logger
}

type subscription[T any] struct {
	id int
	fn func([]T)
}

// Option configures a Store.
type Option func(*options)

type options struct {
	now    func() time.Time
	newID  func() (string, error)
	logger *slog.Logger
}

// WithClock overrides the clock used for CreatedAt.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// WithIDGenerator overrides record id generation.
func WithIDGenerator(gen func() (string, error)) Option {
	return func(o *options) { o.newID = gen }
}

// WithLogger sets the logger; the default is tagged with the store key.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// newUUID generates time-sortable UUID v7 ids.
func newUUID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// New creates a store over key and loads whatever is persisted there.
// Missing or undecodable data yields an empty store; the load error is
// available from LastError but never returned.
func New[T model.Record[T]](s Storage, key string, newFunc func() T, opts ...Option) *Store[T] {
	o := options{
		now:   time.Now,
		newID: newUUID,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger == nil {
		o.logger = logging.ForStore(key)
	}

	st := &Store[T]{
		storage: s,
		key:     key,
		newFunc: newFunc,
		items:   []T{},
		now:     o.now,
		newID:   o.newID,
		logger:  o.logger,
	}
	st.load()
	return st
}

// Key returns the storage key the store persists under.
func (s *Store[T]) Key() string {
	return s.key
}

// load reads and decodes the persisted collection, failing open to empty.
func (s *Store[T]) load() {
	data, err := s.storage.GetBytes(s.key)
	if err != nil {
		if !storage.IsErrKeyNotFound(err) {
			s.lastErr = errors.NewSystemErrorWithOp("load", "read "+s.key, err)
			s.logger.Warn("load failed, starting empty", logging.KeyOperation, "load", logging.KeyError, err)
		}
		return
	}

	items, err := s.decode(data)
	if err != nil {
		s.lastErr = errors.NewSystemErrorWithOp("load", "decode "+s.key, err)
		s.logger.Warn("stored data unreadable, starting empty",
			logging.KeyOperation, "load", logging.KeyBytes, len(data), logging.KeyError, err)
		return
	}

	s.items = items
	s.logger.Debug("loaded", logging.KeyOperation, "load", logging.KeyCount, len(items))
}

// decode turns a JSON array into records. Each element is decoded into a
// fresh value from newFunc; null elements are dropped.
func (s *Store[T]) decode(data []byte) ([]T, error) {
	var raws []json.RawMessage
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}

	items := make([]T, 0, len(raws))
	for _, raw := range raws {
		if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
			continue
		}
		v := s.newFunc()
		if err := json.Unmarshal(raw, v); err != nil {
			return nil, err
		}
		items = append(items, v)
	}
	return items, nil
}

// persist writes the whole collection under the store key and notifies
// subscribers. The in-memory state is already final when this runs, so a
// failed write leaves it in place and only reports the error.
func (s *Store[T]) persist(op string) error {
	defer s.publish()

	data, err := json.Marshal(s.items)
	if err != nil {
		s.lastErr = errors.NewSystemErrorWithOp(op, "encode "+s.key, err)
		s.logger.Error("encode failed", logging.KeyOperation, op, logging.KeyError, err)
		return s.lastErr
	}

	if err := s.storage.SetBytes(s.key, data); err != nil {
		s.lastErr = errors.NewSystemErrorWithOp(op, "write "+s.key, err)
		s.logger.Error("write failed", logging.KeyOperation, op, logging.KeyError, err)
		return s.lastErr
	}

	s.lastErr = nil
	s.logger.Debug("saved", logging.KeyOperation, op, logging.KeyCount, len(s.items), logging.KeyBytes, len(data))
	return nil
}

// Now returns the store clock's current time. Status helpers use it for
// their timestamps so tests can pin it.
func (s *Store[T]) Now() time.Time {
	return s.now()
}

// LastError returns the error from the most recent load or write, or nil
// if it succeeded.
func (s *Store[T]) LastError() error {
	return s.lastErr
}

// Add appends r and persists. An empty id and zero CreatedAt are filled in
// on r itself so the caller learns them. Duplicate ids are not rejected.
func (s *Store[T]) Add(r T) error {
	if r.GetID() == "" {
		id, err := s.newID()
		if err != nil {
			return errors.NewSystemErrorWithOp("add", "generate id", err)
		}
		r.SetID(id)
	}
	if r.GetCreatedAt().IsZero() {
		r.SetCreatedAt(s.now())
	}

	s.items = append(s.items, r.Clone())
	return s.persist("add")
}

// Update replaces the record with r's id in place and persists. An unknown
// id is a silent no-op. The stored id and CreatedAt are never changed.
func (s *Store[T]) Update(r T) error {
	i := s.indexOf(r.GetID())
	if i < 0 {
		return nil
	}

	c := r.Clone()
	c.SetCreatedAt(s.items[i].GetCreatedAt())
	s.items[i] = c
	return s.persist("update")
}

// Modify applies fn to a copy of the record with id and stores the result
// through Update. It reports whether the record exists.
func (s *Store[T]) Modify(id string, fn func(T)) (bool, error) {
	cur, ok := s.Get(id)
	if !ok {
		return false, nil
	}
	fn(cur)
	cur.SetID(id)
	return true, s.Update(cur)
}

// Delete removes every record with id and persists. Absent ids are a no-op.
func (s *Store[T]) Delete(id string) error {
	return s.DeleteMany(id)
}

// DeleteMany removes every record whose id is in ids and persists once.
func (s *Store[T]) DeleteMany(ids ...string) error {
	if len(ids) == 0 {
		return nil
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		drop[id] = struct{}{}
	}

	before := len(s.items)
	s.items = slices.DeleteFunc(s.items, func(r T) bool {
		_, ok := drop[r.GetID()]
		return ok
	})
	if len(s.items) == before {
		return nil
	}
	return s.persist("delete")
}

// Get returns a copy of the record with id.
func (s *Store[T]) Get(id string) (T, bool) {
	i := s.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	return s.items[i].Clone(), true
}

// All returns copies of every record in insertion order.
func (s *Store[T]) All() []T {
	return cloneAll(s.items)
}

// Len returns the number of records.
func (s *Store[T]) Len() int {
	return len(s.items)
}

// Subscribe registers fn to receive a snapshot after every mutation.
// The returned function removes the subscription.
func (s *Store[T]) Subscribe(fn func([]T)) (cancel func()) {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscription[T]{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(s.subs, func(sub subscription[T]) bool {
			return sub.id == id
		})
	}
}

func (s *Store[T]) publish() {
	for _, sub := range slices.Clone(s.subs) {
		sub.fn(cloneAll(s.items))
	}
}

func (s *Store[T]) indexOf(id string) int {
	return slices.IndexFunc(s.items, func(r T) bool {
		return r.GetID() == id
	})
}

func cloneAll[T model.Record[T]](items []T) []T {
	out := make([]T, len(items))
	for i, r := range items {
		out[i] = r.Clone()
	}
	return out
}
