package entities

import (
	"time"
)

// Person is the "node" of the family graph.
type Person struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Gender    string `json:"gender,omitempty"`
	// Birth and death dates are optional; a nil death date means the
	// person is (as far as the record goes) alive.
	BirthDate  *time.Time `json:"birth_date,omitempty"`
	DeathDate  *time.Time `json:"death_date,omitempty"`
	BirthPlace string     `json:"birth_place,omitempty"`
	Occupation string     `json:"occupation,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// FullName joins first and last name for display surfaces (feeds, logs).
func (p Person) FullName() string {
	if p.FirstName == "" {
		return p.LastName
	}
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}

// Alive reports whether the record has no death date.
func (p Person) Alive() bool {
	return p.DeathDate == nil
}
