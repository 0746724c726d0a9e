package persons

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

// Delete removes a person; their relationship pairs and life events cascade.
func (s *PersonService) Delete(ctx context.Context, personID int64) error {
	if err := s.personRepository.Delete(ctx, personID); err != nil {
		return fmt.Errorf("PersonService.Delete - %w", err)
	}

	s.eventPublisher.PublishAsync(events.NewEvent(domain.EventPersonDeleted, "person", personID, nil))

	return nil
}
