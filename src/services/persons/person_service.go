package persons

import (
	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

type PersonService struct {
	personRepository       *repositories.PersonRepository
	relationshipRepository *repositories.RelationshipRepository
	lifeEventRepository    *repositories.LifeEventRepository
	eventPublisher         *events.DomainEventPublisher
}

func NewPersonService(
	personRepository *repositories.PersonRepository,
	relationshipRepository *repositories.RelationshipRepository,
	lifeEventRepository *repositories.LifeEventRepository,
	eventPublisher *events.DomainEventPublisher,
) *PersonService {
	return &PersonService{
		personRepository:       personRepository,
		relationshipRepository: relationshipRepository,
		lifeEventRepository:    lifeEventRepository,
		eventPublisher:         eventPublisher,
	}
}
