package persons

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

func (s *PersonService) Create(ctx context.Context, person entities.Person) (entities.Person, error) {
	if err := s.personRepository.Create(ctx, &person); err != nil {
		return entities.Person{}, fmt.Errorf("PersonService.Create - %w", err)
	}

	s.eventPublisher.PublishAsync(events.NewEvent(domain.EventPersonCreated, "person", person.ID, person))

	return person, nil
}
