// Package storage provides the key-value backends pocketlog persists to.
//
// Every backend stores opaque byte blobs under string keys. Records stores
// write one blob per entity type and overwrite it in full on every change.
package storage

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	// AppName is the application name used for data directories.
	AppName = "pocketlog"
)

// Kind selects a backend implementation.
type Kind string

const (
	KindBadger Kind = "badger"
	KindSQLite Kind = "sqlite"
	KindMemory Kind = "memory"
)

var (
	// ErrKeyNotFound is returned when a key is not found in the backend.
	ErrKeyNotFound = errors.New("key not found")
	// ErrUnknownBackend is returned by Open for an unrecognised Kind.
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// IsErrKeyNotFound returns true if the error is a key not found error.
func IsErrKeyNotFound(err error) bool {
	return errors.Is(err, ErrKeyNotFound)
}

// Backend is a blob store addressed by key.
type Backend interface {
	// GetBytes returns the blob stored under key, or ErrKeyNotFound.
	GetBytes(key string) ([]byte, error)
	// SetBytes replaces the blob stored under key.
	SetBytes(key string, data []byte) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists every stored key in lexical order.
	Keys() ([]string, error)
	// Close releases the backend.
	Close() error
}

// Options configures which backend Open returns.
type Options struct {
	// Kind is the backend implementation. Empty means badger.
	Kind Kind
	// Path is the database location. Empty string uses in-memory mode.
	Path string
	// InMemory forces in-memory mode regardless of Path.
	InMemory bool
}

// DefaultPath returns the default database path for a backend kind,
// following the XDG spec.
func DefaultPath(kind Kind) string {
	if kind == KindSQLite {
		return filepath.Join(xdg.DataHome, AppName, "pocketlog.db")
	}
	return filepath.Join(xdg.DataHome, AppName, "db")
}

// Open opens the backend described by opts.
func Open(opts Options) (Backend, error) {
	switch opts.Kind {
	case "", KindBadger:
		return OpenBadger(opts)
	case KindSQLite:
		return OpenSQLite(opts)
	case KindMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Kind)
	}
}

// KeyStat describes one stored blob.
type KeyStat struct {
	Key   string `json:"key"`
	Bytes int    `json:"bytes"`
}

// Stats lists every key in b with the size of its blob.
func Stats(b Backend) ([]KeyStat, error) {
	keys, err := b.Keys()
	if err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	out := make([]KeyStat, 0, len(keys))
	for _, k := range keys {
		data, err := b.GetBytes(k)
		if err != nil {
			if IsErrKeyNotFound(err) {
				continue
			}
			return nil, fmt.Errorf("read %s: %w", k, err)
		}
		out = append(out, KeyStat{Key: k, Bytes: len(data)})
	}
	return out, nil
}
