package store

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"github.com/manav03panchal/pocketlog/internal/errors"
)

// Predicate selects records.
type Predicate[T any] func(T) bool

// Compare orders two records, returning <0, 0 or >0 like cmp.Compare.
type Compare[T any] func(a, b T) int

// Query describes a filtered, ordered read.
type Query[T any] struct {
	// Where selects records. Nil matches everything.
	Where Predicate[T]
	// Sort orders the result. Nil keeps insertion order.
	Sort Compare[T]
	// Descending reverses Sort. Ties keep insertion order either way.
	Descending bool
	// Limit caps the result size when positive.
	Limit int
}

// Query returns copies of the matching records, ordered as q asks.
func (s *Store[T]) Query(q Query[T]) []T {
	return Run(s.All(), q)
}

// Run applies q to items. It is the pure core of Store.Query and works on
// any slice, so aggregates can be fed a pre-filtered set.
func Run[T any](items []T, q Query[T]) []T {
	out := make([]T, 0, len(items))
	for _, r := range items {
		if q.Where == nil || q.Where(r) {
			out = append(out, r)
		}
	}

	if q.Sort != nil {
		less := q.Sort
		if q.Descending {
			less = q.Sort.Reverse()
		}
		slices.SortStableFunc(out, less)
	}

	if q.Limit > 0 && len(out) > q.Limit {
		out = out[:q.Limit]
	}
	return out
}

// Resolve finds the single record whose id equals, starts with or ends
// with handle. UUIDv7 ids share their leading timestamp bits, so listings
// print the random tail and both ends have to resolve.
func (s *Store[T]) Resolve(handle string) (T, error) {
	var zero T
	if handle == "" {
		return zero, errors.ErrRecordNotFound
	}
	if r, ok := s.Get(handle); ok {
		return r, nil
	}

	var found []T
	for _, r := range s.items {
		id := r.GetID()
		if strings.HasPrefix(id, handle) || strings.HasSuffix(id, handle) {
			found = append(found, r)
		}
	}
	switch len(found) {
	case 0:
		return zero, errors.Wrapf(errors.ErrRecordNotFound, "%s %q", s.key, handle)
	case 1:
		return found[0].Clone(), nil
	default:
		return zero, errors.Wrapf(errors.ErrAmbiguousID, "%s %q", s.key, handle)
	}
}

// =============================================================================
// Predicates
// =============================================================================

// Contains matches records where any of fields contains text,
// case-insensitively. Empty text matches everything.
func Contains[T any](text string, fields ...func(T) string) Predicate[T] {
	needle := strings.ToLower(strings.TrimSpace(text))
	return func(r T) bool {
		if needle == "" {
			return true
		}
		for _, f := range fields {
			if strings.Contains(strings.ToLower(f(r)), needle) {
				return true
			}
		}
		return false
	}
}

// Equals matches records whose field equals v.
func Equals[T any, V comparable](field func(T) V, v V) Predicate[T] {
	return func(r T) bool {
		return field(r) == v
	}
}

// EqualFold matches records whose string field equals v ignoring case.
// Empty v matches everything, which suits optional category filters.
func EqualFold[T any](field func(T) string, v string) Predicate[T] {
	return func(r T) bool {
		return v == "" || strings.EqualFold(field(r), v)
	}
}

// Between matches records whose time field lies in [from, to).
// A zero bound is open.
func Between[T any](field func(T) time.Time, from, to time.Time) Predicate[T] {
	return func(r T) bool {
		t := field(r)
		if !from.IsZero() && t.Before(from) {
			return false
		}
		if !to.IsZero() && !t.Before(to) {
			return false
		}
		return true
	}
}

// And matches when every predicate matches. Nil predicates are skipped.
func And[T any](preds ...Predicate[T]) Predicate[T] {
	return func(r T) bool {
		for _, p := range preds {
			if p != nil && !p(r) {
				return false
			}
		}
		return true
	}
}

// Or matches when any predicate matches.
func Or[T any](preds ...Predicate[T]) Predicate[T] {
	return func(r T) bool {
		for _, p := range preds {
			if p != nil && p(r) {
				return true
			}
		}
		return false
	}
}

// Not inverts p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(r T) bool {
		return !p(r)
	}
}

// =============================================================================
// Sort keys
// =============================================================================

// ByString orders by a string field, case-insensitively.
func ByString[T any](field func(T) string) Compare[T] {
	return func(a, b T) int {
		return strings.Compare(strings.ToLower(field(a)), strings.ToLower(field(b)))
	}
}

// ByTime orders by a time field.
func ByTime[T any](field func(T) time.Time) Compare[T] {
	return func(a, b T) int {
		return field(a).Compare(field(b))
	}
}

// ByInt orders by an integer field.
func ByInt[T any](field func(T) int) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(field(a), field(b))
	}
}

// ByFloat orders by a float field.
func ByFloat[T any](field func(T) float64) Compare[T] {
	return func(a, b T) int {
		return cmp.Compare(field(a), field(b))
	}
}

// Reverse flips the order of c.
func (c Compare[T]) Reverse() Compare[T] {
	return func(a, b T) int { return c(b, a) }
}

// Then breaks ties in c with next.
func (c Compare[T]) Then(next Compare[T]) Compare[T] {
	return func(a, b T) int {
		if n := c(a, b); n != 0 {
			return n
		}
		return next(a, b)
	}
}
