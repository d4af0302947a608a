package records

import (
	"strings"
	"time"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// Words is the vocabulary journal store.
type Words struct {
	*store.Store[*model.Word]
}

// NewWords opens the vocabulary store.
func NewWords(s store.Storage, opts ...store.Option) *Words {
	return &Words{Store: store.New(s, model.KeyWords, func() *model.Word { return &model.Word{} }, opts...)}
}

func wordTerm(w *model.Word) string { return w.Term }
func wordTranslation(w *model.Word) string { return w.Translation }
func wordLanguage(w *model.Word) string { return w.Language }
func wordCreated(w *model.Word) time.Time { return w.CreatedAt }

// ToggleLearned flips a word between learning and learned.
func (w *Words) ToggleLearned(id string) (bool, error) {
	now := w.Now()
	return w.Modify(id, func(word *model.Word) {
		word.SetLearned(!word.Learned, now)
	})
}

// Search matches term, translation and example text, optionally limited to
// one language. Results are newest first.
func (w *Words) Search(text, language string, onlyUnlearned bool) []*model.Word {
	where := store.And(
		store.Contains(text, wordTerm, wordTranslation, func(v *model.Word) string { return v.Example }),
		store.EqualFold(wordLanguage, language),
	)
	if onlyUnlearned {
		where = store.And(where, func(v *model.Word) bool { return !v.Learned })
	}
	return w.Query(store.Query[*model.Word]{
		Where:      where,
		Sort:       store.ByTime(wordCreated),
		Descending: true,
	})
}

// AddedPerWeekday counts new words per day of the week they were added.
func (w *Words) AddedPerWeekday() store.WeekdayCounts {
	return store.CountByWeekday(w.All(), wordCreated)
}

// Languages lists each language with its word count, largest first.
// Language codes are compared case-insensitively.
func (w *Words) Languages() []store.Bucket[string] {
	return store.GroupCounts(w.All(), func(v *model.Word) string { return strings.ToLower(v.Language) })
}

// Progress returns how many words are learned out of the total.
func (w *Words) Progress() (learned, total int) {
	all := w.All()
	for _, v := range all {
		if v.Learned {
			learned++
		}
	}
	return learned, len(all)
}
