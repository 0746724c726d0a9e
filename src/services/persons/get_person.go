package persons

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
)

// GetByID returns the person with their forward relationships and timeline.
func (s *PersonService) GetByID(ctx context.Context, personID int64) (domain.PersonDetail, error) {
	person, err := s.personRepository.GetByID(ctx, personID)
	if err != nil {
		return domain.PersonDetail{}, fmt.Errorf("PersonService.GetByID - %w", err)
	}

	relationships, err := s.relationshipRepository.ListForPerson(ctx, personID, nil)
	if err != nil {
		return domain.PersonDetail{}, fmt.Errorf("PersonService.GetByID - %w", err)
	}

	lifeEvents, err := s.lifeEventRepository.ListForPerson(ctx, personID)
	if err != nil {
		return domain.PersonDetail{}, fmt.Errorf("PersonService.GetByID - %w", err)
	}

	return domain.PersonDetail{
		Person:        person,
		Relationships: relationships,
		Events:        lifeEvents,
	}, nil
}
