package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

type TreeQueryRepository struct {
	pool *pgxpool.Pool
}

func NewTreeQueryRepository(pool *pgxpool.Pool) *TreeQueryRepository {
	return &TreeQueryRepository{pool: pool}
}

// QueryTree walks the relationship rows from the root person, following one
// edge type (CHILD for descendants, PARENT for ancestors), depth limited.
// It returns one TreeRow per reached person plus the life events of the
// whole set, leaving tree assembly to the service.
func (tqr *TreeQueryRepository) QueryTree(ctx context.Context, personID int64, depthLimit int, direction domain.TreeDirection) ([]domain.TreeRow, []entities.LifeEvent, error) {
	treeQuery := `
		WITH RECURSIVE family_graph (person_id, parent_id, relationship_type, depth) AS (
			SELECT
				id,
				NULL::BIGINT,
				NULL::TEXT,
				0
			FROM
				persons
			WHERE
				id = $1

			UNION ALL

			SELECT
				r.related_person_id,
				r.person_id,
				r.type,
				fg.depth + 1
			FROM
				relationships r
			JOIN
				family_graph fg ON r.person_id = fg.person_id
			WHERE
				r.type = $2 AND fg.depth < $3
		),
		person_relation AS (
			SELECT
				person_id,
				JSONB_AGG(DISTINCT jsonb_build_object('parent_id', parent_id, 'type', relationship_type)) FILTER (WHERE parent_id IS NOT NULL) AS parents_info
			FROM
				family_graph
			GROUP
				BY person_id
		)
		SELECT
			p.id,
			p.first_name,
			p.last_name,
			COALESCE(p.gender, ''),
			p.birth_date,
			p.death_date,
			COALESCE(p.birth_place, ''),
			COALESCE(p.occupation, ''),
			COALESCE(p.notes, ''),
			p.created_at,
			p.updated_at,
			pr.parents_info
		FROM
			persons p
		JOIN
			person_relation pr ON p.id = pr.person_id;
	`

	treeRows, err := tqr.pool.Query(ctx, treeQuery, personID, direction.EdgeType(), depthLimit)
	if err != nil {
		return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - tree query failed: %w", err)
	}

	defer treeRows.Close()

	var allRows []domain.TreeRow
	personIDs := make([]int64, 0)

	for treeRows.Next() {
		var row domain.TreeRow
		var parentsInfoRaw json.RawMessage

		if err := treeRows.Scan(
			&row.ID,
			&row.FirstName,
			&row.LastName,
			&row.Gender,
			&row.BirthDate,
			&row.DeathDate,
			&row.BirthPlace,
			&row.Occupation,
			&row.Notes,
			&row.CreatedAt,
			&row.UpdatedAt,
			&parentsInfoRaw,
		); err != nil {
			return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - failed to scan person row: %w", err)
		}

		if len(parentsInfoRaw) > 0 && string(parentsInfoRaw) != "null" {
			if err := json.Unmarshal(parentsInfoRaw, &row.ParentsInfo); err != nil {
				log.Printf("TreeQueryRepository.QueryTree - [WARN] could not unmarshal parents_info for person %d: %v", row.ID, err)
			}
		}

		allRows = append(allRows, row)
		personIDs = append(personIDs, row.ID)
	}

	if err := treeRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - error iterating tree rows: %w", err)
	}

	if len(allRows) == 0 {
		return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - root person %d: %w", personID, domain.ErrPersonNotFound)
	}

	eventsQuery := `
		SELECT
			id,
			person_id,
			event_type,
			event_date,
			COALESCE(place, ''),
			COALESCE(description, ''),
			created_at,
			updated_at
		FROM
			life_events
		WHERE
			person_id = ANY($1)
		ORDER BY
			event_date, id;
	`
	eventRows, err := tqr.pool.Query(ctx, eventsQuery, personIDs)
	if err != nil {
		return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - life events query failed: %w", err)
	}

	defer eventRows.Close()

	var lifeEvents []entities.LifeEvent
	for eventRows.Next() {
		var event entities.LifeEvent
		if err := eventRows.Scan(
			&event.ID,
			&event.PersonID,
			&event.EventType,
			&event.EventDate,
			&event.Place,
			&event.Description,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - failed to scan life event: %w", err)
		}

		lifeEvents = append(lifeEvents, event)
	}

	if err := eventRows.Err(); err != nil {
		return nil, nil, fmt.Errorf("TreeQueryRepository.QueryTree - error iterating life events: %w", err)
	}

	return allRows, lifeEvents, nil
}
