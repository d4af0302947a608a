// Package model defines the record types kept by pocketlog.
package model

import "time"

// Record is the constraint every stored entity satisfies. T is the concrete
// pointer type, so Clone can hand back an independent copy.
type Record[T any] interface {
	// GetID returns the record's identifier.
	GetID() string
	// SetID sets the identifier. Only the store calls this, once, on add.
	SetID(id string)
	// GetCreatedAt returns the creation timestamp.
	GetCreatedAt() time.Time
	// SetCreatedAt sets the creation timestamp. Only the store calls this.
	SetCreatedAt(t time.Time)
	// Clone returns a deep copy of the record.
	Clone() T
}

// Storage keys, one slot per entity type.
const (
	KeyTasks     = "tasks"
	KeyManicures = "manicures"
	KeyWardrobe  = "wardrobe"
	KeyWords     = "words"
	KeyIdeas     = "ideas"
)

// Base carries the identity fields shared by every record.
type Base struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// GetID returns the record ID.
func (b *Base) GetID() string {
	return b.ID
}

// SetID sets the record ID.
func (b *Base) SetID(id string) {
	b.ID = id
}

// GetCreatedAt returns the creation time.
func (b *Base) GetCreatedAt() time.Time {
	return b.CreatedAt
}

// SetCreatedAt sets the creation time.
func (b *Base) SetCreatedAt(t time.Time) {
	b.CreatedAt = t
}

// cloneTime copies an optional timestamp so clones never share pointers.
func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
