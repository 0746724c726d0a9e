package entities

import (
	"time"
)

type RelationshipType string

const (
	RelationshipParent  RelationshipType = "PARENT"
	RelationshipChild   RelationshipType = "CHILD"
	RelationshipSpouse  RelationshipType = "SPOUSE"
	RelationshipSibling RelationshipType = "SIBLING"
)

// Inverse returns the type of the reciprocal row of a relationship pair.
// SPOUSE and SIBLING are their own inverse.
func (t RelationshipType) Inverse() RelationshipType {
	switch t {
	case RelationshipParent:
		return RelationshipChild
	case RelationshipChild:
		return RelationshipParent
	default:
		return t
	}
}

func (t RelationshipType) Valid() bool {
	switch t {
	case RelationshipParent, RelationshipChild, RelationshipSpouse, RelationshipSibling:
		return true
	}
	return false
}

// Relationship is the "edge" of the family graph. Every logical relationship
// is stored as two rows: the forward row (person -> related person) and the
// reciprocal row with the inverse type, so both persons can be queried as the
// forward subject without computing inverses at read time.
//
// The type describes the role the related person plays for the person: a row
// (A, B, PARENT) reads "B is a parent of A" and is paired with (B, A, CHILD).
type Relationship struct {
	ID              int64            `json:"id"`
	PersonID        int64            `json:"person_id"`
	RelatedPersonID int64            `json:"related_person_id"`
	Type            RelationshipType `json:"type"`
	// Marriage and divorce dates are only meaningful for SPOUSE rows.
	MarriageDate *time.Time `json:"marriage_date,omitempty"`
	DivorceDate  *time.Time `json:"divorce_date,omitempty"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// DeriveIsActive computes the currency flag of a relationship: only a SPOUSE
// row with a divorce date is inactive.
func DeriveIsActive(t RelationshipType, divorceDate *time.Time) bool {
	return !(t == RelationshipSpouse && divorceDate != nil)
}
