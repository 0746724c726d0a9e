package test_seeder

import (
	"context"
	"fmt"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

// InsertPerson inserts a person into the database for testing
func (ts TestSeeder) InsertPerson(ctx context.Context, person *entities.Person) {
	query := `
		INSERT INTO persons (first_name, last_name, gender, birth_date, death_date, birth_place, occupation, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	err := ts.pool.QueryRow(ctx, query,
		person.FirstName,
		person.LastName,
		person.Gender,
		person.BirthDate,
		person.DeathDate,
		person.BirthPlace,
		person.Occupation,
		person.Notes,
		person.CreatedAt,
		person.UpdatedAt,
	).Scan(&person.ID)

	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertPerson failed: %v", err))
	}
}

// InsertRelationship inserts a single relationship row. Pairing is the
// responsibility of the caller, so tests can also set up broken pairs.
func (ts TestSeeder) InsertRelationship(ctx context.Context, relationship *entities.Relationship) {
	query := `
		INSERT INTO relationships (person_id, related_person_id, type, marriage_date, divorce_date, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	err := ts.pool.QueryRow(ctx, query,
		relationship.PersonID,
		relationship.RelatedPersonID,
		string(relationship.Type),
		relationship.MarriageDate,
		relationship.DivorceDate,
		relationship.IsActive,
		relationship.CreatedAt,
		relationship.UpdatedAt,
	).Scan(&relationship.ID)

	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertRelationship failed: %v", err))
	}
}

// InsertLifeEvent inserts a life event into the database for testing
func (ts TestSeeder) InsertLifeEvent(ctx context.Context, event *entities.LifeEvent) {
	query := `
		INSERT INTO life_events (person_id, event_type, event_date, place, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`

	err := ts.pool.QueryRow(ctx, query,
		event.PersonID,
		event.EventType,
		event.EventDate,
		event.Place,
		event.Description,
		event.CreatedAt,
		event.UpdatedAt,
	).Scan(&event.ID)

	if err != nil {
		panic(fmt.Sprintf("Seeder.InsertLifeEvent failed: %v", err))
	}
}
