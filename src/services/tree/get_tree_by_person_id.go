package tree

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
)

// GetTreeByPersonID returns the family tree rooted at the given person,
// walking descendants or ancestors up to depthLimit generations.
func (ts *TreeService) GetTreeByPersonID(ctx context.Context, personID int64, depthLimit int, direction domain.TreeDirection) (*domain.FamilyNode, error) {
	if direction == "" {
		direction = domain.TreeDescendants
	}

	treeRows, lifeEvents, err := ts.cachedTreeRepository.QueryTree(ctx, personID, depthLimit, direction)
	if err != nil {
		return nil, fmt.Errorf("TreeService.GetTreeByPersonID - failed to QueryTree from repository: %w", err)
	}

	rootNode, err := ts.buildFamilyTree(treeRows, lifeEvents, personID)
	if err != nil {
		return nil, fmt.Errorf("TreeService.GetTreeByPersonID - root node (%d) could not be found after assembly: %w", personID, err)
	}

	return rootNode, nil
}
