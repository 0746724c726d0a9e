package domain

import (
	"encoding/json"
	"time"
)

const (
	EventPersonCreated       = "person.created"
	EventPersonUpdated       = "person.updated"
	EventPersonDeleted       = "person.deleted"
	EventRelationshipCreated = "relationship.created"
	EventRelationshipUpdated = "relationship.updated"
	EventRelationshipDeleted = "relationship.deleted"
)

// DomainEvent is the envelope published to the event topic after a
// successful write. Consumers filter on the header copies of EventType and
// AggregateType; the payload carries the aggregate as written.
type DomainEvent struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   int64           `json:"aggregate_id"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Payload       json.RawMessage `json:"payload,omitempty"`
}
