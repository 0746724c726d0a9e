package relationships

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

// Delete removes both rows of a relationship pair.
func (s *RelationshipService) Delete(ctx context.Context, relationshipID int64) error {
	rel, err := s.relationshipRepository.GetByID(ctx, relationshipID)
	if err != nil {
		return fmt.Errorf("RelationshipService.Delete - %w", err)
	}

	if err := s.relationshipRepository.DeletePair(ctx, rel); err != nil {
		return fmt.Errorf("RelationshipService.Delete - failed to delete pair: %w", err)
	}

	s.eventPublisher.PublishAsync(events.NewEvent(domain.EventRelationshipDeleted, "relationship", rel.ID, rel))

	return nil
}
