package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
)

type CalendarQueryRepository struct {
	pool *pgxpool.Pool
}

func NewCalendarQueryRepository(pool *pgxpool.Pool) *CalendarQueryRepository {
	return &CalendarQueryRepository{pool: pool}
}

// ListBirthdayPersons returns living persons with a known birth date.
func (r *CalendarQueryRepository) ListBirthdayPersons(ctx context.Context) ([]entities.Person, error) {
	query := `
		SELECT id, first_name, last_name, birth_date
		FROM persons
		WHERE birth_date IS NOT NULL AND death_date IS NULL
		ORDER BY last_name, first_name, id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CalendarQueryRepository.ListBirthdayPersons - query failed: %w", err)
	}
	defer rows.Close()

	persons := make([]entities.Person, 0)
	for rows.Next() {
		var person entities.Person
		if err := rows.Scan(&person.ID, &person.FirstName, &person.LastName, &person.BirthDate); err != nil {
			return nil, fmt.Errorf("CalendarQueryRepository.ListBirthdayPersons - scan failed: %w", err)
		}
		persons = append(persons, person)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CalendarQueryRepository.ListBirthdayPersons - error iterating rows: %w", err)
	}

	return persons, nil
}

// ListActiveCouples returns every active marriage with a known marriage date
// exactly once, using person_id < related_person_id to pick one row of the
// symmetric SPOUSE pair.
func (r *CalendarQueryRepository) ListActiveCouples(ctx context.Context) ([]domain.Couple, error) {
	query := `
		SELECT
			r.id,
			r.person_id,
			p1.first_name || ' ' || p1.last_name,
			r.related_person_id,
			p2.first_name || ' ' || p2.last_name,
			r.marriage_date
		FROM
			relationships r
		JOIN
			persons p1 ON p1.id = r.person_id
		JOIN
			persons p2 ON p2.id = r.related_person_id
		WHERE
			r.type = 'SPOUSE'
			AND r.is_active
			AND r.marriage_date IS NOT NULL
			AND r.person_id < r.related_person_id
		ORDER BY
			r.marriage_date, r.id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("CalendarQueryRepository.ListActiveCouples - query failed: %w", err)
	}
	defer rows.Close()

	couples := make([]domain.Couple, 0)
	for rows.Next() {
		var couple domain.Couple
		if err := rows.Scan(
			&couple.RelationshipID,
			&couple.PersonID,
			&couple.PersonName,
			&couple.SpouseID,
			&couple.SpouseName,
			&couple.MarriageDate,
		); err != nil {
			return nil, fmt.Errorf("CalendarQueryRepository.ListActiveCouples - scan failed: %w", err)
		}
		couples = append(couples, couple)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("CalendarQueryRepository.ListActiveCouples - error iterating rows: %w", err)
	}

	return couples, nil
}
