package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/darshan-rambhia/vamsa-sub006/src/domain"
	"github.com/darshan-rambhia/vamsa-sub006/src/domain/entities"
	"github.com/darshan-rambhia/vamsa-sub006/src/infra/postgres"
)

type LifeEventRepository struct {
	pool *pgxpool.Pool
}

func NewLifeEventRepository(pool *pgxpool.Pool) *LifeEventRepository {
	return &LifeEventRepository{pool: pool}
}

func (r *LifeEventRepository) Create(ctx context.Context, event *entities.LifeEvent) error {
	query := `
		INSERT INTO life_events (person_id, event_type, event_date, place, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		event.PersonID,
		event.EventType,
		event.EventDate,
		postgres.NewNullString(&event.Place),
		postgres.NewNullString(&event.Description),
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		if postgres.IsForeignKeyViolation(err) {
			return fmt.Errorf("LifeEventRepository.Create - person %d: %w", event.PersonID, domain.ErrPersonNotFound)
		}
		return fmt.Errorf("LifeEventRepository.Create - insert failed: %w", err)
	}

	return nil
}

func (r *LifeEventRepository) ListForPerson(ctx context.Context, personID int64) ([]entities.LifeEvent, error) {
	query := `
		SELECT id, person_id, event_type, event_date, COALESCE(place, ''), COALESCE(description, ''), created_at, updated_at
		FROM life_events
		WHERE person_id = $1
		ORDER BY event_date, id`

	rows, err := r.pool.Query(ctx, query, personID)
	if err != nil {
		return nil, fmt.Errorf("LifeEventRepository.ListForPerson - query failed: %w", err)
	}
	defer rows.Close()

	events := make([]entities.LifeEvent, 0)
	for rows.Next() {
		var event entities.LifeEvent
		if err := rows.Scan(
			&event.ID,
			&event.PersonID,
			&event.EventType,
			&event.EventDate,
			&event.Place,
			&event.Description,
			&event.CreatedAt,
			&event.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("LifeEventRepository.ListForPerson - scan failed: %w", err)
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LifeEventRepository.ListForPerson - error iterating rows: %w", err)
	}

	return events, nil
}

func (r *LifeEventRepository) Delete(ctx context.Context, eventID int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM life_events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("LifeEventRepository.Delete - delete failed: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("LifeEventRepository.Delete - life event %d: %w", eventID, domain.ErrLifeEventNotFound)
	}

	return nil
}
