package records

import (
	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/store"
)

// Wardrobe is the wardrobe inventory store.
type Wardrobe struct {
	*store.Store[*model.WardrobeItem]
}

// NewWardrobe opens the wardrobe store.
func NewWardrobe(s store.Storage, opts ...store.Option) *Wardrobe {
	return &Wardrobe{Store: store.New(s, model.KeyWardrobe, func() *model.WardrobeItem { return &model.WardrobeItem{} }, opts...)}
}

func itemName(w *model.WardrobeItem) string { return w.Name }
func itemCategory(w *model.WardrobeItem) string { return w.Category }
func itemStatus(w *model.WardrobeItem) model.ItemStatus { return w.Status }

// ChangeStatus moves an item between in use, storage and the shopping list.
func (w *Wardrobe) ChangeStatus(id string, status model.ItemStatus) (bool, error) {
	return w.Modify(id, func(item *model.WardrobeItem) {
		item.Status = status
	})
}

// ByStatus returns items with the given status, sorted by name.
func (w *Wardrobe) ByStatus(status model.ItemStatus) []*model.WardrobeItem {
	return w.Query(store.Query[*model.WardrobeItem]{
		Where: store.Equals(itemStatus, status),
		Sort:  store.ByString(itemName),
	})
}

// Search matches name, category, season and color. An empty status or
// category matches everything.
func (w *Wardrobe) Search(text, category string, status model.ItemStatus) []*model.WardrobeItem {
	where := store.And(
		store.Contains(text, itemName, itemCategory,
			func(i *model.WardrobeItem) string { return i.Season },
			func(i *model.WardrobeItem) string { return i.Color }),
		store.EqualFold(itemCategory, category),
	)
	if status != "" {
		where = store.And(where, store.Equals(itemStatus, status))
	}
	return w.Query(store.Query[*model.WardrobeItem]{
		Where: where,
		Sort:  store.ByString(itemCategory).Then(store.ByString(itemName)),
	})
}

// StatusCounts counts items per status in display order, including empty ones.
func (w *Wardrobe) StatusCounts() []store.Bucket[model.ItemStatus] {
	counts := store.CountBy(w.All(), itemStatus)
	out := make([]store.Bucket[model.ItemStatus], 0, len(model.ItemStatuses))
	for _, s := range model.ItemStatuses {
		out = append(out, store.Bucket[model.ItemStatus]{Key: s, Count: counts[s]})
	}
	return out
}

// CategoryCounts groups items by category, largest first.
func (w *Wardrobe) CategoryCounts() []store.Bucket[string] {
	return store.GroupCounts(w.All(), itemCategory)
}

func itemPrice(w *model.WardrobeItem) float64 { return w.Price }

// ShoppingList returns the items marked to buy, priciest first, and their
// summed price.
func (w *Wardrobe) ShoppingList() ([]*model.WardrobeItem, float64) {
	items := w.Query(store.Query[*model.WardrobeItem]{
		Where: store.Equals(itemStatus, model.ItemBuy),
		Sort:  store.ByFloat(itemPrice).Reverse().Then(store.ByString(itemName)),
	})
	return items, store.SumBy(items, itemPrice)
}
