package tree

import (
	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/repositories"
)

type TreeService struct {
	cachedTreeRepository *repositories.CachedTreeRepository
}

func NewTreeService(cachedTreeRepository *repositories.CachedTreeRepository) *TreeService {
	return &TreeService{cachedTreeRepository: cachedTreeRepository}
}

// buildFamilyTree assembles the flat query rows into the nested node tree
// rooted at rootID.
func (ts *TreeService) buildFamilyTree(treeRows []domain.TreeRow, lifeEvents []entities.LifeEvent, rootID int64) (*domain.FamilyNode, error) {
	if len(treeRows) == 0 {
		return nil, domain.ErrPersonNotFound
	}

	// Group life events per person for O(1) attachment
	eventMap := make(map[int64][]entities.LifeEvent)
	for _, event := range lifeEvents {
		eventMap[event.PersonID] = append(eventMap[event.PersonID], event)
	}

	// Create all nodes before connecting them
	nodes := make(map[int64]*domain.FamilyNode, len(treeRows))
	for _, row := range treeRows {
		nodes[row.ID] = &domain.FamilyNode{
			Person: row.Person,
			Events: eventMap[row.ID],
			Edges:  make([]*domain.FamilyEdge, 0),
		}
	}

	// Connect edges using the structural parents_info of each row
	for _, row := range treeRows {
		if len(row.ParentsInfo) == 0 {
			continue
		}

		childNode := nodes[row.ID]
		for _, parentInfo := range row.ParentsInfo {
			if parentNode, ok := nodes[parentInfo.ParentID]; ok {
				parentNode.Edges = append(parentNode.Edges, &domain.FamilyEdge{
					Type: parentInfo.Type,
					Node: childNode,
				})
			}
		}
	}

	rootNode, ok := nodes[rootID]
	if !ok {
		return nil, domain.ErrPersonNotFound
	}

	return rootNode, nil
}
