package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
	"github.com/edubase/studenthub/internal/pkg/dberrors"
)

// BatchRepository handles database operations for batches
type BatchRepository struct {
	db *pgxpool.Pool
}

// NewBatchRepository creates a new batch repository
func NewBatchRepository(db *pgxpool.Pool) *BatchRepository {
	return &BatchRepository{
		db: db,
	}
}

// Create inserts a new batch and fills in its generated fields
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	query := `
		INSERT INTO batches (name, capacity, start_date, end_date)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		batch.Name, batch.Capacity, batch.StartDate, batch.EndDate,
	).Scan(&batch.ID, &batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "batches_name_key") {
			return apperrors.ErrBatchAlreadyExists
		}
		return fmt.Errorf("error creating batch: %w", err)
	}

	return nil
}

// GetByID retrieves a batch by ID
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	query := `
		SELECT id, name, capacity, start_date, end_date, created_at, updated_at
		FROM batches
		WHERE id = $1
	`

	var batch models.Batch
	err := r.db.QueryRow(ctx, query, id).Scan(
		&batch.ID,
		&batch.Name,
		&batch.Capacity,
		&batch.StartDate,
		&batch.EndDate,
		&batch.CreatedAt,
		&batch.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBatchNotFound
		}
		return nil, fmt.Errorf("error retrieving batch: %w", err)
	}

	return &batch, nil
}

// GetAll retrieves all batches ordered by name
func (r *BatchRepository) GetAll(ctx context.Context) ([]*models.Batch, error) {
	query := `
		SELECT id, name, capacity, start_date, end_date, created_at, updated_at
		FROM batches
		ORDER BY name
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var batches []*models.Batch
	for rows.Next() {
		var batch models.Batch
		if err := rows.Scan(
			&batch.ID,
			&batch.Name,
			&batch.Capacity,
			&batch.StartDate,
			&batch.EndDate,
			&batch.CreatedAt,
			&batch.UpdatedAt,
		); err != nil {
			return nil, err
		}
		batches = append(batches, &batch)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return batches, nil
}

// Exists checks whether a batch with the given ID exists
func (r *BatchRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM batches WHERE id = $1)`,
		id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("error checking batch existence: %w", err)
	}

	return exists, nil
}

// Update updates an existing batch
func (r *BatchRepository) Update(ctx context.Context, batch *models.Batch) error {
	query := `
		UPDATE batches
		SET name = $1, capacity = $2, start_date = $3, end_date = $4, updated_at = NOW()
		WHERE id = $5
	`

	cmdTag, err := r.db.Exec(ctx, query,
		batch.Name, batch.Capacity, batch.StartDate, batch.EndDate, batch.ID)
	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, "batches_name_key") {
			return apperrors.ErrBatchAlreadyExists
		}
		return fmt.Errorf("error updating batch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}

	return nil
}

// Delete deletes a batch by ID. Batches with enrolled students cannot be
// removed.
func (r *BatchRepository) Delete(ctx context.Context, id int64) error {
	var hasStudents bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM students WHERE batch_id = $1)`,
		id).Scan(&hasStudents)
	if err != nil {
		return fmt.Errorf("error checking batch students: %w", err)
	}

	if hasStudents {
		return apperrors.NewConflictError("batch has enrolled students and cannot be deleted")
	}

	cmdTag, err := r.db.Exec(ctx, `DELETE FROM batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting batch: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrBatchNotFound
	}

	return nil
}
