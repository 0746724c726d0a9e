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

// RelationshipRepository owns the two rows of every relationship pair. All
// paired writes run inside a single transaction so a failure on the second
// statement can never leave an orphaned half of the pair behind.
type RelationshipRepository struct {
	pool                 *pgxpool.Pool
	cachedTreeRepository *CachedTreeRepository
}

func NewRelationshipRepository(pool *pgxpool.Pool, cachedTreeRepository *CachedTreeRepository) *RelationshipRepository {
	return &RelationshipRepository{pool: pool, cachedTreeRepository: cachedTreeRepository}
}

const relationshipColumns = `
	id,
	person_id,
	related_person_id,
	type,
	marriage_date,
	divorce_date,
	is_active,
	created_at,
	updated_at`

func scanRelationship(row interface{ Scan(...any) error }, rel *entities.Relationship) error {
	return row.Scan(
		&rel.ID,
		&rel.PersonID,
		&rel.RelatedPersonID,
		&rel.Type,
		&rel.MarriageDate,
		&rel.DivorceDate,
		&rel.IsActive,
		&rel.CreatedAt,
		&rel.UpdatedAt,
	)
}

func (r *RelationshipRepository) GetByID(ctx context.Context, relationshipID int64) (entities.Relationship, error) {
	query := `SELECT ` + relationshipColumns + ` FROM relationships WHERE id = $1`

	var rel entities.Relationship
	if err := scanRelationship(r.pool.QueryRow(ctx, query, relationshipID), &rel); err != nil {
		if postgres.IsNoRows(err) {
			return entities.Relationship{}, fmt.Errorf("RelationshipRepository.GetByID - relationship %d: %w", relationshipID, domain.ErrRelationshipNotFound)
		}
		return entities.Relationship{}, fmt.Errorf("RelationshipRepository.GetByID - query failed: %w", err)
	}

	return rel, nil
}

// ListForPerson returns only rows where the person is the forward subject,
// so each logical relationship is reported once per perspective.
func (r *RelationshipRepository) ListForPerson(ctx context.Context, personID int64, typeFilter *entities.RelationshipType) ([]entities.Relationship, error) {
	query := `SELECT ` + relationshipColumns + ` FROM relationships WHERE person_id = $1`
	args := []any{personID}

	if typeFilter != nil {
		query += ` AND type = $2`
		args = append(args, *typeFilter)
	}

	query += ` ORDER BY created_at, id`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("RelationshipRepository.ListForPerson - query failed: %w", err)
	}
	defer rows.Close()

	relationships := make([]entities.Relationship, 0)
	for rows.Next() {
		var rel entities.Relationship
		if err := scanRelationship(rows, &rel); err != nil {
			return nil, fmt.Errorf("RelationshipRepository.ListForPerson - scan failed: %w", err)
		}
		relationships = append(relationships, rel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("RelationshipRepository.ListForPerson - error iterating rows: %w", err)
	}

	return relationships, nil
}

func (r *RelationshipRepository) Exists(ctx context.Context, personID int64, relatedPersonID int64, relType entities.RelationshipType) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM relationships WHERE person_id = $1 AND related_person_id = $2 AND type = $3)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, personID, relatedPersonID, relType).Scan(&exists); err != nil {
		return false, fmt.Errorf("RelationshipRepository.Exists - query failed: %w", err)
	}

	return exists, nil
}

// CreatePair inserts the forward row and its reciprocal in one transaction.
// The unique index on (person_id, related_person_id, type) also closes the
// race of two concurrent creates of the same pair: the loser surfaces as a
// duplicate instead of a drifted half-pair.
func (r *RelationshipRepository) CreatePair(ctx context.Context, forward *entities.Relationship) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("RelationshipRepository.CreatePair - failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	insertQuery := `
		INSERT INTO relationships (person_id, related_person_id, type, marriage_date, divorce_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at`

	err = tx.QueryRow(ctx, insertQuery,
		forward.PersonID,
		forward.RelatedPersonID,
		forward.Type,
		postgres.NewNullDate(forward.MarriageDate),
		postgres.NewNullDate(forward.DivorceDate),
		forward.IsActive,
	).Scan(&forward.ID, &forward.CreatedAt, &forward.UpdatedAt)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("RelationshipRepository.CreatePair - forward row: %w", domain.ErrDuplicateRelationship)
		}
		return fmt.Errorf("RelationshipRepository.CreatePair - failed to insert forward row: %w", err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO relationships (person_id, related_person_id, type, marriage_date, divorce_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		forward.RelatedPersonID,
		forward.PersonID,
		forward.Type.Inverse(),
		postgres.NewNullDate(forward.MarriageDate),
		postgres.NewNullDate(forward.DivorceDate),
		forward.IsActive,
	)
	if err != nil {
		if postgres.IsUniqueViolation(err) {
			return fmt.Errorf("RelationshipRepository.CreatePair - reciprocal row: %w", domain.ErrDuplicateRelationship)
		}
		return fmt.Errorf("RelationshipRepository.CreatePair - failed to insert reciprocal row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("RelationshipRepository.CreatePair - failed to commit: %w", err)
	}

	r.invalidateInBackground([]int64{forward.PersonID, forward.RelatedPersonID})

	return nil
}

// UpdatePair rewrites the date fields and is_active of the forward row and,
// when syncReciprocal is set, of the reciprocal row as well. Only SPOUSE
// callers pass syncReciprocal; other types keep their reciprocal untouched.
func (r *RelationshipRepository) UpdatePair(ctx context.Context, rel *entities.Relationship, syncReciprocal bool) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("RelationshipRepository.UpdatePair - failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		UPDATE relationships
		SET marriage_date = $1, divorce_date = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING updated_at`,
		postgres.NewNullDate(rel.MarriageDate),
		postgres.NewNullDate(rel.DivorceDate),
		rel.IsActive,
		rel.ID,
	).Scan(&rel.UpdatedAt)
	if err != nil {
		if postgres.IsNoRows(err) {
			return fmt.Errorf("RelationshipRepository.UpdatePair - relationship %d: %w", rel.ID, domain.ErrRelationshipNotFound)
		}
		return fmt.Errorf("RelationshipRepository.UpdatePair - failed to update forward row: %w", err)
	}

	if syncReciprocal {
		_, err = tx.Exec(ctx, `
			UPDATE relationships
			SET marriage_date = $1, divorce_date = $2, is_active = $3, updated_at = NOW()
			WHERE person_id = $4 AND related_person_id = $5 AND type = $6`,
			postgres.NewNullDate(rel.MarriageDate),
			postgres.NewNullDate(rel.DivorceDate),
			rel.IsActive,
			rel.RelatedPersonID,
			rel.PersonID,
			rel.Type,
		)
		if err != nil {
			return fmt.Errorf("RelationshipRepository.UpdatePair - failed to update reciprocal row: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("RelationshipRepository.UpdatePair - failed to commit: %w", err)
	}

	r.invalidateInBackground([]int64{rel.PersonID, rel.RelatedPersonID})

	return nil
}

// DeletePair removes the forward row and the reciprocal
// (related, person, inverse(type)) row. A missing reciprocal is tolerated.
func (r *RelationshipRepository) DeletePair(ctx context.Context, rel entities.Relationship) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("RelationshipRepository.DeletePair - failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	tag, err := tx.Exec(ctx, `DELETE FROM relationships WHERE id = $1`, rel.ID)
	if err != nil {
		return fmt.Errorf("RelationshipRepository.DeletePair - failed to delete forward row: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("RelationshipRepository.DeletePair - relationship %d: %w", rel.ID, domain.ErrRelationshipNotFound)
	}

	_, err = tx.Exec(ctx, `DELETE FROM relationships WHERE person_id = $1 AND related_person_id = $2 AND type = $3`,
		rel.RelatedPersonID,
		rel.PersonID,
		rel.Type.Inverse(),
	)
	if err != nil {
		return fmt.Errorf("RelationshipRepository.DeletePair - failed to delete reciprocal row: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("RelationshipRepository.DeletePair - failed to commit: %w", err)
	}

	r.invalidateInBackground([]int64{rel.PersonID, rel.RelatedPersonID})

	return nil
}

func (r *RelationshipRepository) invalidateInBackground(personIDs []int64) {
	if r.cachedTreeRepository == nil {
		return
	}

	go func() {
		if err := r.cachedTreeRepository.InvalidateByPersonIDs(context.Background(), personIDs); err != nil {
			log.Printf("RelationshipRepository - failed to invalidate cache: %v", err)
		}
	}()
}
