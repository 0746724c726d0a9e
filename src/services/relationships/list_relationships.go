package relationships

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

// ListForPerson returns the relationships where the person is the forward
// subject. An unknown person yields an empty list, not an error.
func (s *RelationshipService) ListForPerson(ctx context.Context, personID int64, typeFilter *entities.RelationshipType) ([]entities.Relationship, error) {
	if typeFilter != nil && !typeFilter.Valid() {
		return nil, fmt.Errorf("RelationshipService.ListForPerson - type %q: %w", *typeFilter, domain.ErrInvalidRelationship)
	}

	relationships, err := s.relationshipRepository.ListForPerson(ctx, personID, typeFilter)
	if err != nil {
		return nil, fmt.Errorf("RelationshipService.ListForPerson - %w", err)
	}

	return relationships, nil
}
