package model

import "time"

// Word is a vocabulary journal entry.
type Word struct {
	Base
	Term        string     `json:"term"`
	Translation string     `json:"translation,omitempty"`
	Language    string     `json:"language,omitempty"`
	Example     string     `json:"example,omitempty"`
	Note        string     `json:"note,omitempty"`
	Learned     bool       `json:"learned"`
	LearnedAt   *time.Time `json:"learned_at,omitempty"`
}

// NewWord creates a vocabulary entry.
func NewWord(term, translation, language string) *Word {
	return &Word{
		Term:        term,
		Translation: translation,
		Language:    language,
	}
}

// Clone returns a deep copy of the word.
func (w *Word) Clone() *Word {
	c := *w
	c.LearnedAt = cloneTime(w.LearnedAt)
	return &c
}

// SetLearned marks the word learned or not and keeps LearnedAt in step.
func (w *Word) SetLearned(learned bool, now time.Time) {
	w.Learned = learned
	if learned {
		w.LearnedAt = &now
	} else {
		w.LearnedAt = nil
	}
}
