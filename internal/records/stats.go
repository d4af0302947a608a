package records

import (
	"fmt"
	"time"

	"github.com/manav03panchal/pocketlog/internal/store"
)

// Label is a display-ready count.
type Label = store.Bucket[string]

// TaskStats summarizes the to-do list.
type TaskStats struct {
	Total              int     `json:"total"`
	Active             int     `json:"active"`
	Completed          int     `json:"completed"`
	Archived           int     `json:"archived"`
	Overdue            int     `json:"overdue"`
	ByCategory         []Label `json:"by_category"`
	CompletedByWeekday []Label `json:"completed_by_weekday"`
}

// Stats summarizes tasks as of now.
func (t *Tasks) Stats(now time.Time) TaskStats {
	all := t.All()
	s := TaskStats{
		Total:              len(all),
		Overdue:            len(t.Overdue(now)),
		ByCategory:         t.ByCategory(),
		CompletedByWeekday: weekdayLabels(t.CompletedPerWeekday()),
	}
	for _, task := range all {
		switch {
		case task.Archived:
			s.Archived++
		case task.Completed:
			s.Completed++
		default:
			s.Active++
		}
	}
	return s
}

// ManicureStats summarizes the manicure history.
type ManicureStats struct {
	Total         int     `json:"total"`
	TotalSpent    float64 `json:"total_spent"`
	AverageRating float64 `json:"average_rating,omitempty"`
	FavoriteColor string  `json:"favorite_color,omitempty"`
	LastVisit     string  `json:"last_visit,omitempty"`
	PerMonth      []Label `json:"per_month"`
	PerWeekday    []Label `json:"per_weekday"`
	ByTechnique   []Label `json:"by_technique"`
}

// Stats summarizes the manicure history.
func (m *Manicures) Stats() ManicureStats {
	s := ManicureStats{
		Total:      m.Len(),
		TotalSpent: m.TotalSpent(),
		PerWeekday: weekdayLabels(m.PerWeekday()),
	}
	if avg, ok := m.AverageRating(); ok {
		s.AverageRating = avg
	}
	if color, _, ok := m.FavoriteColor(); ok {
		s.FavoriteColor = color
	}
	if h := m.History(); len(h) > 0 {
		s.LastVisit = h[0].Date.Format("2006-01-02")
	}
	for _, b := range m.PerMonth() {
		s.PerMonth = append(s.PerMonth, Label{Key: b.Key.String(), Count: b.Count})
	}
	for _, b := range m.TechniqueCounts() {
		s.ByTechnique = append(s.ByTechnique, Label{Key: string(b.Key), Count: b.Count})
	}
	return s
}

// WardrobeStats summarizes the wardrobe.
type WardrobeStats struct {
	Total         int     `json:"total"`
	ByStatus      []Label `json:"by_status"`
	ByCategory    []Label `json:"by_category"`
	ShoppingTotal float64 `json:"shopping_total"`
}

// Stats summarizes the wardrobe.
func (w *Wardrobe) Stats() WardrobeStats {
	_, total := w.ShoppingList()
	s := WardrobeStats{
		Total:         w.Len(),
		ByCategory:    w.CategoryCounts(),
		ShoppingTotal: total,
	}
	for _, b := range w.StatusCounts() {
		s.ByStatus = append(s.ByStatus, Label{Key: b.Key.Label(), Count: b.Count})
	}
	return s
}

// WordStats summarizes the vocabulary journal.
type WordStats struct {
	Total          int     `json:"total"`
	Learned        int     `json:"learned"`
	Languages      []Label `json:"languages"`
	AddedByWeekday []Label `json:"added_by_weekday"`
}

// Stats summarizes the vocabulary journal.
func (w *Words) Stats() WordStats {
	learned, total := w.Progress()
	return WordStats{
		Total:          total,
		Learned:        learned,
		Languages:      w.Languages(),
		AddedByWeekday: weekdayLabels(w.AddedPerWeekday()),
	}
}

// IdeaStats summarizes the idea list.
type IdeaStats struct {
	Total      int     `json:"total"`
	Favorites  int     `json:"favorites"`
	Done       int     `json:"done"`
	Categories []Label `json:"categories"`
}

// Stats summarizes the idea list.
func (s *Ideas) Stats() IdeaStats {
	all := s.All()
	out := IdeaStats{Total: len(all), Categories: s.Categories()}
	for _, i := range all {
		if i.Favorite {
			out.Favorites++
		}
		if i.Done {
			out.Done++
		}
	}
	return out
}

// weekdayLabels renders weekday counts Monday first with short day names.
func weekdayLabels(w store.WeekdayCounts) []Label {
	days := w.MondayFirst()
	out := make([]Label, len(days))
	for i, d := range days {
		out[i] = Label{Key: fmt.Sprintf("%.3s", d.Key), Count: d.Count}
	}
	return out
}
