package store

import (
	"cmp"
	"slices"
	"time"
)

// Bucket is one group in a grouped count.
type Bucket[K comparable] struct {
	Key   K   `json:"key"`
	Count int `json:"count"`
}

// CountBy counts records per key.
func CountBy[T any, K comparable](items []T, key func(T) K) map[K]int {
	counts := make(map[K]int)
	for _, r := range items {
		counts[key(r)]++
	}
	return counts
}

// GroupCounts counts records per key and returns the groups largest first.
// Equal counts keep the order in which each key first appeared.
func GroupCounts[T any, K comparable](items []T, key func(T) K) []Bucket[K] {
	index := make(map[K]int)
	var buckets []Bucket[K]
	for _, r := range items {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(buckets)
			index[k] = i
			buckets = append(buckets, Bucket[K]{Key: k})
		}
		buckets[i].Count++
	}
	slices.SortStableFunc(buckets, func(a, b Bucket[K]) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return buckets
}

// MostFrequent returns the most common key and its count. Ties go to the
// key seen first. ok is false for an empty input.
func MostFrequent[T any, K comparable](items []T, key func(T) K) (k K, count int, ok bool) {
	buckets := GroupCounts(items, key)
	if len(buckets) == 0 {
		return k, 0, false
	}
	return buckets[0].Key, buckets[0].Count, true
}

// SumBy adds up a numeric field.
func SumBy[T any, N int | int64 | float64](items []T, field func(T) N) N {
	var total N
	for _, r := range items {
		total += field(r)
	}
	return total
}

// WeekdayCounts holds counts indexed by time.Weekday (Sunday first).
type WeekdayCounts [7]int

// MondayFirst returns the counts starting on Monday, the way weeks are shown.
func (w WeekdayCounts) MondayFirst() []Bucket[time.Weekday] {
	out := make([]Bucket[time.Weekday], 0, 7)
	for i := 1; i <= 7; i++ {
		d := time.Weekday(i % 7)
		out = append(out, Bucket[time.Weekday]{Key: d, Count: w[d]})
	}
	return out
}

// CountByWeekday counts records per day of the week of a time field.
// Zero times are skipped.
func CountByWeekday[T any](items []T, field func(T) time.Time) WeekdayCounts {
	var counts WeekdayCounts
	for _, r := range items {
		t := field(r)
		if t.IsZero() {
			continue
		}
		counts[t.Weekday()]++
	}
	return counts
}

// Month identifies a calendar month.
type Month struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
}

// String renders the month as "2026-03".
func (m Month) String() string {
	return time.Date(m.Year, m.Month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

// CountByMonth counts records per calendar month of a time field, oldest
// month first. Zero times are skipped.
func CountByMonth[T any](items []T, field func(T) time.Time) []Bucket[Month] {
	counts := make(map[Month]int)
	for _, r := range items {
		t := field(r)
		if t.IsZero() {
			continue
		}
		counts[Month{Year: t.Year(), Month: t.Month()}]++
	}

	out := make([]Bucket[Month], 0, len(counts))
	for m, c := range counts {
		out = append(out, Bucket[Month]{Key: m, Count: c})
	}
	slices.SortFunc(out, func(a, b Bucket[Month]) int {
		if c := cmp.Compare(a.Key.Year, b.Key.Year); c != 0 {
			return c
		}
		return cmp.Compare(a.Key.Month, b.Key.Month)
	})
	return out
}
