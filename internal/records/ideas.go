package records

import (
	"math/rand/v2"

	"github.com/manav03panchal/pocketlog/internal/errors"
	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// Ideas is the leisure idea store behind the idea generator.
type Ideas struct {
	*store.Store[*model.Idea]
	rand *rand.Rand
}

// NewIdeas opens the idea store. A nil r uses a randomly seeded source.
func NewIdeas(s store.Storage, r *rand.Rand, opts ...store.Option) *Ideas {
	if r == nil {
		r = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Ideas{
		Store: store.New(s, model.KeyIdeas, func() *model.Idea { return &model.Idea{} }, opts...),
		rand:  r,
	}
}

func ideaTitle(i *model.Idea) string { return i.Title }
func ideaCategory(i *model.Idea) string { return i.Category }

// ToggleFavorite flips the favorite flag.
func (s *Ideas) ToggleFavorite(id string) (bool, error) {
	return s.Modify(id, func(i *model.Idea) {
		i.Favorite = !i.Favorite
	})
}

// MarkDone records that an idea was tried.
func (s *Ideas) MarkDone(id string, done bool) (bool, error) {
	return s.Modify(id, func(i *model.Idea) {
		i.Done = done
	})
}

// List returns ideas in a category (empty for all), favorites first.
func (s *Ideas) List(category string, favoritesOnly bool) []*model.Idea {
	where := store.EqualFold(ideaCategory, category)
	if favoritesOnly {
		where = store.And(where, func(i *model.Idea) bool { return i.Favorite })
	}
	favFirst := store.ByInt(func(i *model.Idea) int {
		if i.Favorite {
			return 0
		}
		return 1
	})
	return s.Query(store.Query[*model.Idea]{
		Where: where,
		Sort:  favFirst.Then(store.ByString(ideaTitle)),
	})
}

// Random picks an idea that has not been done yet, optionally within one
// category. It returns ErrNoIdeas when nothing is left to pick.
func (s *Ideas) Random(category string) (*model.Idea, error) {
	pool := s.Query(store.Query[*model.Idea]{
		Where: store.And(
			store.EqualFold(ideaCategory, category),
			func(i *model.Idea) bool { return !i.Done },
		),
	})
	if len(pool) == 0 {
		if category != "" {
			return nil, errors.Wrapf(errors.ErrNoIdeas, "category %q", category)
		}
		return nil, errors.ErrNoIdeas
	}
	return pool[s.rand.IntN(len(pool))], nil
}

// Categories lists each category with its idea count, largest first.
func (s *Ideas) Categories() []store.Bucket[string] {
	return store.GroupCounts(s.All(), ideaCategory)
}
