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

const departmentColumns = `id, dept_id, name, status, created_by, created_at, updated_at`

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

func scanDepartment(row pgx.Row) (*models.Department, error) {
	var dept models.Department
	err := row.Scan(&dept.ID, &dept.DeptID, &dept.Name, &dept.Status, &dept.CreatedBy, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &dept, nil
}

// Create inserts a new department. DeptID must already be generated.
func (r *DepartmentRepository) Create(ctx context.Context, dept *models.Department) error {
	query := `
		INSERT INTO departments (dept_id, name, status, created_by)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, dept.DeptID, dept.Name, dept.Status, dept.CreatedBy).
		Scan(&dept.ID, &dept.CreatedAt, &dept.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrResourceAlreadyExists
		}
		return fmt.Errorf("error creating department: %w", err)
	}
	return nil
}

// GetByID retrieves a department by id. A miss returns (nil, nil).
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments WHERE id = $1`
	return scanDepartment(r.db.QueryRow(ctx, query, id))
}

// List retrieves departments matching an optional case-insensitive search
// over dept_id, name and status.
func (r *DepartmentRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Department, error) {
	query := `SELECT ` + departmentColumns + ` FROM departments`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE dept_id ILIKE $1 OR name ILIKE $1 OR status ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s OFFSET %d LIMIT %d`, sortDirection(sortAsc), offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := []models.Department{}
	for rows.Next() {
		var dept models.Department
		if err := rows.Scan(&dept.ID, &dept.DeptID, &dept.Name, &dept.Status, &dept.CreatedBy, &dept.CreatedAt, &dept.UpdatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, dept)
	}

	return departments, rows.Err()
}

// Update replaces a department's mutable fields and returns the post-update
// record. dept_id is immutable after creation and is not touched.
func (r *DepartmentRepository) Update(ctx context.Context, id int64, dept *models.Department) (*models.Department, error) {
	query := `
		UPDATE departments
		SET name = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + departmentColumns

	updated, err := scanDepartment(r.db.QueryRow(ctx, query, dept.Name, dept.Status, id))
	if err != nil {
		return nil, fmt.Errorf("error updating department: %w", err)
	}
	return updated, nil
}

// Delete removes a department and returns the removed record.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) (*models.Department, error) {
	query := `DELETE FROM departments WHERE id = $1 RETURNING ` + departmentColumns
	return scanDepartment(r.db.QueryRow(ctx, query, id))
}
