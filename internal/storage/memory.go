package storage

import (
	"slices"
	"sync"
)

// Memory is a map-backed Backend for tests and throwaway sessions.
type Memory struct {
	mu   sync.Mutex
	data map[string][]byte

	// FailWrites, when set, is returned by SetBytes and Delete.
	FailWrites error
	// Writes counts successful SetBytes calls.
	Writes int
}

// NewMemory creates an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

// GetBytes returns a copy of the blob under key.
func (m *Memory) GetBytes(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return slices.Clone(v), nil
}

// SetBytes stores a copy of data under key.
func (m *Memory) SetBytes(key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	m.data[key] = slices.Clone(data)
	m.Writes++
	return nil
}

// Delete removes key.
func (m *Memory) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	delete(m.data, key)
	return nil
}

// Keys lists stored keys in lexical order.
func (m *Memory) Keys() ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	keys := make([]string, 0, len(m.data))
	for k := range m.data {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys, nil
}

// Close is a no-op.
func (m *Memory) Close() error { return nil }
