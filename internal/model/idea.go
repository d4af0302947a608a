package model

// Idea is a leisure idea for the idea generator.
type Idea struct {
	Base
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Note     string `json:"note,omitempty"`
	Favorite bool   `json:"favorite"`
	Done     bool   `json:"done"`
}

// NewIdea creates an idea in a category.
func NewIdea(title, category string) *Idea {
	return &Idea{
		Title:    title,
		Category: category,
	}
}

// Clone returns a copy of the idea.
func (i *Idea) Clone() *Idea {
	c := *i
	return &c
}
