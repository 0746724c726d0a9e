package test_seeder

import (
	"context"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

// SelectRelationshipsByPersonIDs retrieves every relationship row touching
// any of the given persons, in either direction.
func (ts TestSeeder) SelectRelationshipsByPersonIDs(ctx context.Context, personIDs []int64) ([]entities.Relationship, error) {
	query := `SELECT id, person_id, related_person_id, type, marriage_date, divorce_date, is_active, created_at, updated_at
			  FROM relationships
			  WHERE person_id = ANY($1) OR related_person_id = ANY($1)
			  ORDER BY id`

	rows, err := ts.pool.Query(ctx, query, personIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relationships []entities.Relationship
	for rows.Next() {
		var relationship entities.Relationship
		err := rows.Scan(
			&relationship.ID,
			&relationship.PersonID,
			&relationship.RelatedPersonID,
			&relationship.Type,
			&relationship.MarriageDate,
			&relationship.DivorceDate,
			&relationship.IsActive,
			&relationship.CreatedAt,
			&relationship.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		relationships = append(relationships, relationship)
	}

	return relationships, rows.Err()
}

// FindRelationship fetches the single row (personID, relatedPersonID, type),
// returning false when it does not exist.
func (ts TestSeeder) FindRelationship(ctx context.Context, personID int64, relatedPersonID int64, relationshipType entities.RelationshipType) (entities.Relationship, bool, error) {
	query := `SELECT id, person_id, related_person_id, type, marriage_date, divorce_date, is_active, created_at, updated_at
			  FROM relationships
			  WHERE person_id = $1 AND related_person_id = $2 AND type = $3`

	rows, err := ts.pool.Query(ctx, query, personID, relatedPersonID, string(relationshipType))
	if err != nil {
		return entities.Relationship{}, false, err
	}
	defer rows.Close()

	if !rows.Next() {
		return entities.Relationship{}, false, rows.Err()
	}

	var relationship entities.Relationship
	err = rows.Scan(
		&relationship.ID,
		&relationship.PersonID,
		&relationship.RelatedPersonID,
		&relationship.Type,
		&relationship.MarriageDate,
		&relationship.DivorceDate,
		&relationship.IsActive,
		&relationship.CreatedAt,
		&relationship.UpdatedAt,
	)
	if err != nil {
		return entities.Relationship{}, false, err
	}

	return relationship, true, nil
}

// CountRelationships returns the total number of relationship rows.
func (ts TestSeeder) CountRelationships(ctx context.Context) (int, error) {
	var count int
	err := ts.pool.QueryRow(ctx, `SELECT COUNT(*) FROM relationships`).Scan(&count)
	return count, err
}

// SelectLifeEventsByPersonID retrieves the timeline of one person.
func (ts TestSeeder) SelectLifeEventsByPersonID(ctx context.Context, personID int64) ([]entities.LifeEvent, error) {
	query := `SELECT id, person_id, event_type, event_date, COALESCE(place, ''), COALESCE(description, ''), created_at, updated_at
			  FROM life_events WHERE person_id = $1 ORDER BY event_date`

	rows, err := ts.pool.Query(ctx, query, personID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []entities.LifeEvent
	for rows.Next() {
		var event entities.LifeEvent
		err := rows.Scan(
			&event.ID,
			&event.PersonID,
			&event.EventType,
			&event.EventDate,
			&event.Place,
			&event.Description,
			&event.CreatedAt,
			&event.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	return events, rows.Err()
}
