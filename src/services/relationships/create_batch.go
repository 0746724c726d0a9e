package relationships

import (
	"context"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
)

// CreateBatch processes create requests sequentially. A failing item is
// reported in its result slot and does not abort the remaining items.
func (s *RelationshipService) CreateBatch(ctx context.Context, items []domain.NewRelationship) []domain.BatchItemResult {
	results := make([]domain.BatchItemResult, 0, len(items))

	for i, item := range items {
		rel, err := s.Create(ctx, item)
		if err != nil {
			results = append(results, domain.BatchItemResult{Index: i, Err: err})
			continue
		}

		created := rel
		results = append(results, domain.BatchItemResult{Index: i, Relationship: &created})
	}

	return results
}
