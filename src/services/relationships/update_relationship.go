package relationships

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

// Update rewrites the date fields of a relationship and recomputes is_active
// from the stored type. Only SPOUSE pairs keep their reciprocal row in sync;
// PARENT/CHILD/SIBLING reciprocals are left untouched since those types
// carry no marriage semantics.
func (s *RelationshipService) Update(ctx context.Context, relationshipID int64, patch domain.RelationshipPatch) (entities.Relationship, error) {
	rel, err := s.relationshipRepository.GetByID(ctx, relationshipID)
	if err != nil {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Update - %w", err)
	}

	if patch.MarriageDate != nil {
		rel.MarriageDate = patch.MarriageDate
	}
	if patch.DivorceDate != nil {
		rel.DivorceDate = patch.DivorceDate
	}
	rel.IsActive = entities.DeriveIsActive(rel.Type, rel.DivorceDate)

	syncReciprocal := rel.Type == entities.RelationshipSpouse

	if err := s.relationshipRepository.UpdatePair(ctx, &rel, syncReciprocal); err != nil {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Update - failed to update pair: %w", err)
	}

	s.eventPublisher.PublishAsync(events.NewEvent(domain.EventRelationshipUpdated, "relationship", rel.ID, rel))

	return rel, nil
}
