package entities

import (
	"time"
)

// LifeEvent is a dated fact attached to a person (birth, baptism, emigration,
// burial, ...). Events feed the person timeline and the tree payload.
type LifeEvent struct {
	ID          int64     `json:"id"`
	PersonID    int64     `json:"person_id"`
	EventType   string    `json:"event_type"`
	EventDate   time.Time `json:"event_date"`
	Place       string    `json:"place,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
