package persons

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

func (s *PersonService) AddLifeEvent(ctx context.Context, event entities.LifeEvent) (entities.LifeEvent, error) {
	if err := s.lifeEventRepository.Create(ctx, &event); err != nil {
		return entities.LifeEvent{}, fmt.Errorf("PersonService.AddLifeEvent - %w", err)
	}

	return event, nil
}

func (s *PersonService) ListLifeEvents(ctx context.Context, personID int64) ([]entities.LifeEvent, error) {
	lifeEvents, err := s.lifeEventRepository.ListForPerson(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("PersonService.ListLifeEvents - %w", err)
	}

	return lifeEvents, nil
}

func (s *PersonService) DeleteLifeEvent(ctx context.Context, eventID int64) error {
	if err := s.lifeEventRepository.Delete(ctx, eventID); err != nil {
		return fmt.Errorf("PersonService.DeleteLifeEvent - %w", err)
	}

	return nil
}
