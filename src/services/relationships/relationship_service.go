package relationships

import (
	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

// RelationshipService maintains the pairing invariant of the relationships
// table: every row (A, B, T) has a reciprocal (B, A, inverse(T)), created,
// updated and deleted together.
type RelationshipService struct {
	relationshipRepository *repositories.RelationshipRepository
	personRepository       *repositories.PersonRepository
	eventPublisher         *events.DomainEventPublisher
}

func NewRelationshipService(
	relationshipRepository *repositories.RelationshipRepository,
	personRepository *repositories.PersonRepository,
	eventPublisher *events.DomainEventPublisher,
) *RelationshipService {
	return &RelationshipService{
		relationshipRepository: relationshipRepository,
		personRepository:       personRepository,
		eventPublisher:         eventPublisher,
	}
}
