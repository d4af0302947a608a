package model

// ItemStatus says where a wardrobe item currently is.
type ItemStatus string

const (
	ItemInUse ItemStatus = "in_use"
	ItemStore ItemStatus = "store"
	ItemBuy   ItemStatus = "buy"
)

// ItemStatuses lists the known statuses in display order.
var ItemStatuses = []ItemStatus{ItemInUse, ItemStore, ItemBuy}

// Label returns a human-readable status name.
func (s ItemStatus) Label() string {
	switch s {
	case ItemInUse:
		return "In use"
	case ItemStore:
		return "In storage"
	case ItemBuy:
		return "To buy"
	default:
		return string(s)
	}
}

// WardrobeItem is a piece of clothing or an accessory.
type WardrobeItem struct {
	Base
	Name     string     `json:"name"`
	Category string     `json:"category,omitempty"`
	Status   ItemStatus `json:"status"`
	Season   string     `json:"season,omitempty"`
	Color    string     `json:"color,omitempty"`
	Price    float64    `json:"price,omitempty"`
	Note     string     `json:"note,omitempty"`
}

// NewWardrobeItem creates an item with the given status.
func NewWardrobeItem(name, category string, status ItemStatus) *WardrobeItem {
	return &WardrobeItem{
		Name:     name,
		Category: category,
		Status:   status,
	}
}

// Clone returns a copy of the item.
func (w *WardrobeItem) Clone() *WardrobeItem {
	c := *w
	return &c
}
