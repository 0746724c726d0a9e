package persons

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

// Update replaces the editable fields of a person record.
func (s *PersonService) Update(ctx context.Context, person entities.Person) (entities.Person, error) {
	if err := s.personRepository.Update(ctx, &person); err != nil {
		return entities.Person{}, fmt.Errorf("PersonService.Update - %w", err)
	}

	s.eventPublisher.PublishAsync(events.NewEvent(domain.EventPersonUpdated, "person", person.ID, person))

	return person, nil
}
