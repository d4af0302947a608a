package model

import "time"

// Technique is how a manicure was done.
type Technique string

const (
	TechniqueClassic Technique = "classic"
	TechniqueGel     Technique = "gel"
	TechniqueAcrylic Technique = "acrylic"
	TechniquePolish  Technique = "polish"
	TechniqueOther   Technique = "other"
)

// Techniques lists the known techniques in display order.
var Techniques = []Technique{TechniqueClassic, TechniqueGel, TechniqueAcrylic, TechniquePolish, TechniqueOther}

// Manicure is one visit in the manicure history.
type Manicure struct {
	Base
	Date      time.Time `json:"date"`
	Color     string    `json:"color,omitempty"`
	Shape     string    `json:"shape,omitempty"`
	Technique Technique `json:"technique,omitempty"`
	Salon     string    `json:"salon,omitempty"`
	Price     float64   `json:"price,omitempty"`
	Rating    int       `json:"rating,omitempty"`
	Note      string    `json:"note,omitempty"`
}

// NewManicure creates a manicure entry for the given day.
func NewManicure(date time.Time, color string, technique Technique) *Manicure {
	return &Manicure{
		Date:      date,
		Color:     color,
		Technique: technique,
	}
}

// Clone returns a copy of the manicure.
func (m *Manicure) Clone() *Manicure {
	c := *m
	return &c
}
