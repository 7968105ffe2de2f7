package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/collegehub/backend/internal/app/models"
)

const academicColumns = `id, regulation, department, semesters, syllabus, status, created_by, created_at, updated_at`

// AcademicRepository handles database operations for academic regulations
type AcademicRepository struct {
	db *pgxpool.Pool
}

// NewAcademicRepository creates a new academic repository
func NewAcademicRepository(db *pgxpool.Pool) *AcademicRepository {
	return &AcademicRepository{
		db: db,
	}
}

func scanAcademic(row pgx.Row) (*models.Academic, error) {
	var ac models.Academic
	err := row.Scan(
		&ac.ID, &ac.Regulation, &ac.Department, &ac.Semesters, &ac.Syllabus,
		&ac.Status, &ac.CreatedBy, &ac.CreatedAt, &ac.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &ac, nil
}

// Create inserts a new academic regulation.
func (r *AcademicRepository) Create(ctx context.Context, ac *models.Academic) error {
	query := `
		INSERT INTO academics (regulation, department, semesters, syllabus, status, created_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		ac.Regulation, ac.Department, ac.Semesters, ac.Syllabus, ac.Status, ac.CreatedBy,
	).Scan(&ac.ID, &ac.CreatedAt, &ac.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating academic: %w", err)
	}
	return nil
}

// GetByID retrieves an academic regulation by id. A miss returns (nil, nil).
func (r *AcademicRepository) GetByID(ctx context.Context, id int64) (*models.Academic, error) {
	query := `SELECT ` + academicColumns + ` FROM academics WHERE id = $1`
	return scanAcademic(r.db.QueryRow(ctx, query, id))
}

// List retrieves academics matching an optional case-insensitive regulation
// search.
func (r *AcademicRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Academic, error) {
	query := `SELECT ` + academicColumns + ` FROM academics`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE regulation ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s OFFSET %d LIMIT %d`, sortDirection(sortAsc), offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	academics := []models.Academic{}
	for rows.Next() {
		var ac models.Academic
		if err := rows.Scan(
			&ac.ID, &ac.Regulation, &ac.Department, &ac.Semesters, &ac.Syllabus,
			&ac.Status, &ac.CreatedBy, &ac.CreatedAt, &ac.UpdatedAt,
		); err != nil {
			return nil, err
		}
		academics = append(academics, ac)
	}

	return academics, rows.Err()
}

// Update replaces an academic regulation's fields and returns the
// post-update record.
func (r *AcademicRepository) Update(ctx context.Context, id int64, ac *models.Academic) (*models.Academic, error) {
	query := `
		UPDATE academics
		SET regulation = $1, department = $2, semesters = $3, syllabus = $4, status = $5, updated_at = NOW()
		WHERE id = $6
		RETURNING ` + academicColumns

	updated, err := scanAcademic(r.db.QueryRow(ctx, query, ac.Regulation, ac.Department, ac.Semesters, ac.Syllabus, ac.Status, id))
	if err != nil {
		return nil, fmt.Errorf("error updating academic: %w", err)
	}
	return updated, nil
}

// Delete removes an academic regulation and returns the removed record.
func (r *AcademicRepository) Delete(ctx context.Context, id int64) (*models.Academic, error) {
	query := `DELETE FROM academics WHERE id = $1 RETURNING ` + academicColumns
	return scanAcademic(r.db.QueryRow(ctx, query, id))
}
