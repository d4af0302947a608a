package records

import (
	"strings"
	"time"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// Manicures is the manicure history store.
type Manicures struct {
	*store.Store[*model.Manicure]
}

// NewManicures opens the manicure store.
func NewManicures(s store.Storage, opts ...store.Option) *Manicures {
	return &Manicures{Store: store.New(s, model.KeyManicures, func() *model.Manicure { return &model.Manicure{} }, opts...)}
}

func manicureDate(m *model.Manicure) time.Time { return m.Date }
func manicurePrice(m *model.Manicure) float64 { return m.Price }
func manicureColor(m *model.Manicure) string { return strings.ToLower(m.Color) }

// History returns every visit, newest first. Visits on the same day keep
// the order they were logged in.
func (m *Manicures) History() []*model.Manicure {
	return m.Query(store.Query[*model.Manicure]{
		Sort:       store.ByTime(manicureDate),
		Descending: true,
	})
}

// InRange returns visits with from <= date < to, oldest first.
func (m *Manicures) InRange(from, to time.Time) []*model.Manicure {
	return m.Query(store.Query[*model.Manicure]{
		Where: store.Between(manicureDate, from, to),
		Sort:  store.ByTime(manicureDate),
	})
}

// FavoriteColor returns the most used color, compared case-insensitively.
// Entries without a color are ignored.
func (m *Manicures) FavoriteColor() (string, int, bool) {
	colored := store.Run(m.All(), store.Query[*model.Manicure]{
		Where: func(v *model.Manicure) bool { return v.Color != "" },
	})
	return store.MostFrequent(colored, manicureColor)
}

// PerMonth counts visits per calendar month, oldest month first.
func (m *Manicures) PerMonth() []store.Bucket[store.Month] {
	return store.CountByMonth(m.All(), manicureDate)
}

// PerWeekday counts visits per day of the week.
func (m *Manicures) PerWeekday() store.WeekdayCounts {
	return store.CountByWeekday(m.All(), manicureDate)
}

// TechniqueCounts groups visits by technique, most used first.
func (m *Manicures) TechniqueCounts() []store.Bucket[model.Technique] {
	return store.GroupCounts(m.All(), func(v *model.Manicure) model.Technique { return v.Technique })
}

// TotalSpent sums the price of every visit.
func (m *Manicures) TotalSpent() float64 {
	return store.SumBy(m.All(), manicurePrice)
}

// AverageRating averages the rated visits. Unrated visits (0) are ignored.
func (m *Manicures) AverageRating() (float64, bool) {
	var sum, n int
	for _, v := range m.All() {
		if v.Rating > 0 {
			sum += v.Rating
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return float64(sum) / float64(n), true
}
