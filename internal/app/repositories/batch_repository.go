package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/apperrors"
)

const batchColumns = `id, name, department, students_list, created_by, created_at, updated_at`

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

func scanBatch(row pgx.Row) (*models.Batch, error) {
	var batch models.Batch
	err := row.Scan(&batch.ID, &batch.Name, &batch.Department, &batch.StudentsList, &batch.CreatedBy, &batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &batch, nil
}

// Create inserts a new batch.
func (r *BatchRepository) Create(ctx context.Context, batch *models.Batch) error {
	query := `
		INSERT INTO batches (name, department, students_list, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, batch.Name, batch.Department, batch.StudentsList, batch.CreatedBy).
		Scan(&batch.ID, &batch.CreatedAt, &batch.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrBatchNameExists
		}
		return fmt.Errorf("error creating batch: %w", err)
	}
	return nil
}

// GetByID retrieves a batch by id. A miss returns (nil, nil).
func (r *BatchRepository) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches WHERE id = $1`
	return scanBatch(r.db.QueryRow(ctx, query, id))
}

// List retrieves batches matching an optional case-insensitive name search.
func (r *BatchRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batches`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s OFFSET %d LIMIT %d`, sortDirection(sortAsc), offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	batches := []models.Batch{}
	for rows.Next() {
		var batch models.Batch
		if err := rows.Scan(&batch.ID, &batch.Name, &batch.Department, &batch.StudentsList, &batch.CreatedBy, &batch.CreatedAt, &batch.UpdatedAt); err != nil {
			return nil, err
		}
		batches = append(batches, batch)
	}

	return batches, rows.Err()
}

// Update replaces a batch's fields and returns the post-update record.
func (r *BatchRepository) Update(ctx context.Context, id int64, batch *models.Batch) (*models.Batch, error) {
	query := `
		UPDATE batches
		SET name = $1, department = $2, students_list = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING ` + batchColumns

	updated, err := scanBatch(r.db.QueryRow(ctx, query, batch.Name, batch.Department, batch.StudentsList, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrBatchNameExists
		}
		return nil, fmt.Errorf("error updating batch: %w", err)
	}
	return updated, nil
}

// Delete removes a batch and returns the removed record.
func (r *BatchRepository) Delete(ctx context.Context, id int64) (*models.Batch, error) {
	query := `DELETE FROM batches WHERE id = $1 RETURNING ` + batchColumns
	return scanBatch(r.db.QueryRow(ctx, query, id))
}
