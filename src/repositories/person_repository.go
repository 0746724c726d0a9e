package repositories

import (
	"context"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/postgres"
)

type PersonRepository struct {
	pool                 *pgxpool.Pool
	cachedTreeRepository *CachedTreeRepository
}

func NewPersonRepository(pool *pgxpool.Pool, cachedTreeRepository *CachedTreeRepository) *PersonRepository {
	return &PersonRepository{pool: pool, cachedTreeRepository: cachedTreeRepository}
}

const personColumns = `
	id,
	first_name,
	last_name,
	COALESCE(gender, ''),
	birth_date,
	death_date,
	COALESCE(birth_place, ''),
	COALESCE(occupation, ''),
	COALESCE(notes, ''),
	created_at,
	updated_at`

func scanPerson(row interface{ Scan(...any) error }, p *entities.Person) error {
	return row.Scan(
		&p.ID,
		&p.FirstName,
		&p.LastName,
		&p.Gender,
		&p.BirthDate,
		&p.DeathDate,
		&p.BirthPlace,
		&p.Occupation,
		&p.Notes,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
}

func (r *PersonRepository) Create(ctx context.Context, person *entities.Person) error {
	query := `
		INSERT INTO persons (first_name, last_name, gender, birth_date, death_date, birth_place, occupation, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		person.FirstName,
		person.LastName,
		postgres.NewNullString(&person.Gender),
		postgres.NewNullDate(person.BirthDate),
		postgres.NewNullDate(person.DeathDate),
		postgres.NewNullString(&person.BirthPlace),
		postgres.NewNullString(&person.Occupation),
		postgres.NewNullString(&person.Notes),
	).Scan(&person.ID, &person.CreatedAt, &person.UpdatedAt)
	if err != nil {
		return fmt.Errorf("PersonRepository.Create - insert failed: %w", err)
	}

	return nil
}

func (r *PersonRepository) GetByID(ctx context.Context, personID int64) (entities.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons WHERE id = $1`

	var person entities.Person
	if err := scanPerson(r.pool.QueryRow(ctx, query, personID), &person); err != nil {
		if postgres.IsNoRows(err) {
			return entities.Person{}, fmt.Errorf("PersonRepository.GetByID - person %d: %w", personID, domain.ErrPersonNotFound)
		}
		return entities.Person{}, fmt.Errorf("PersonRepository.GetByID - query failed: %w", err)
	}

	return person, nil
}

func (r *PersonRepository) List(ctx context.Context, limit int, offset int) ([]entities.Person, error) {
	query := `SELECT ` + personColumns + ` FROM persons ORDER BY last_name, first_name, id LIMIT $1 OFFSET $2`

	rows, err := r.pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("PersonRepository.List - query failed: %w", err)
	}
	defer rows.Close()

	persons := make([]entities.Person, 0)
	for rows.Next() {
		var person entities.Person
		if err := scanPerson(rows, &person); err != nil {
			return nil, fmt.Errorf("PersonRepository.List - scan failed: %w", err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PersonRepository.List - error iterating rows: %w", err)
	}

	return persons, nil
}

// ExistingIDs returns the subset of the given person IDs that are present.
func (r *PersonRepository) ExistingIDs(ctx context.Context, personIDs []int64) (map[int64]bool, error) {
	rows, err := r.pool.Query(ctx, `SELECT id FROM persons WHERE id = ANY($1)`, personIDs)
	if err != nil {
		return nil, fmt.Errorf("PersonRepository.ExistingIDs - query failed: %w", err)
	}
	defer rows.Close()

	existing := make(map[int64]bool, len(personIDs))
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("PersonRepository.ExistingIDs - scan failed: %w", err)
		}
		existing[id] = true
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("PersonRepository.ExistingIDs - error iterating rows: %w", err)
	}

	return existing, nil
}

func (r *PersonRepository) Update(ctx context.Context, person *entities.Person) error {
	query := `
		UPDATE persons
		SET first_name = $1, last_name = $2, gender = $3, birth_date = $4, death_date = $5,
		    birth_place = $6, occupation = $7, notes = $8, updated_at = NOW()
		WHERE id = $9
		RETURNING updated_at`

	err := r.pool.QueryRow(ctx, query,
		person.FirstName,
		person.LastName,
		postgres.NewNullString(&person.Gender),
		postgres.NewNullDate(person.BirthDate),
		postgres.NewNullDate(person.DeathDate),
		postgres.NewNullString(&person.BirthPlace),
		postgres.NewNullString(&person.Occupation),
		postgres.NewNullString(&person.Notes),
		person.ID,
	).Scan(&person.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return fmt.Errorf("PersonRepository.Update - person %d: %w", person.ID, domain.ErrPersonNotFound)
		}
		return fmt.Errorf("PersonRepository.Update - update failed: %w", err)
	}

	r.invalidateInBackground([]int64{person.ID})

	return nil
}

// Delete removes a person; relationships and life events cascade at the
// database level.
func (r *PersonRepository) Delete(ctx context.Context, personID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM persons WHERE id = $1`, personID)
	if err != nil {
		return fmt.Errorf("PersonRepository.Delete - delete failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("PersonRepository.Delete - person %d: %w", personID, domain.ErrPersonNotFound)
	}

	r.invalidateInBackground([]int64{personID})

	return nil
}

func (r *PersonRepository) invalidateInBackground(personIDs []int64) {
	if r.cachedTreeRepository == nil {
		return
	}

	go func() {
		if err := r.cachedTreeRepository.InvalidateByPersonIDs(context.Background(), personIDs); err != nil {
			log.Printf("PersonRepository - failed to invalidate cache: %v", err)
		}
	}()
}
