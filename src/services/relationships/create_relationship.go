package relationships

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/services/events"
)

// Create inserts a relationship pair and returns the forward row.
func (s *RelationshipService) Create(ctx context.Context, req domain.NewRelationship) (entities.Relationship, error) {
	if !req.Type.Valid() {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - type %q: %w", req.Type, domain.ErrInvalidRelationship)
	}

	if req.PersonID == req.RelatedPersonID {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - person %d: %w", req.PersonID, domain.ErrSelfRelationship)
	}

	existing, err := s.personRepository.ExistingIDs(ctx, []int64{req.PersonID, req.RelatedPersonID})
	if err != nil {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - failed to check persons: %w", err)
	}

	for _, personID := range []int64{req.PersonID, req.RelatedPersonID} {
		if !existing[personID] {
			return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - person %d: %w", personID, domain.ErrPersonNotFound)
		}
	}

	exists, err := s.relationshipRepository.Exists(ctx, req.PersonID, req.RelatedPersonID, req.Type)
	if err != nil {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - failed to check duplicates: %w", err)
	}

	if exists {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - (%d, %d, %s): %w",
			req.PersonID, req.RelatedPersonID, req.Type, domain.ErrDuplicateRelationship)
	}

	forward := entities.Relationship{
		PersonID:        req.PersonID,
		RelatedPersonID: req.RelatedPersonID,
		Type:            req.Type,
		MarriageDate:    req.MarriageDate,
		DivorceDate:     req.DivorceDate,
		IsActive:        entities.DeriveIsActive(req.Type, req.DivorceDate),
	}

	if err := s.relationshipRepository.CreatePair(ctx, &forward); err != nil {
		return entities.Relationship{}, fmt.Errorf("RelationshipService.Create - failed to create pair: %w", err)
	}

	s.eventPublisher.PublishAsync(events.NewEvent(domain.EventRelationshipCreated, "relationship", forward.ID, forward))

	return forward, nil
}
