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

const roleColumns = `id, name, status, created_by, created_at, updated_at`

// RoleRepository handles database operations for roles
type RoleRepository struct {
	db *pgxpool.Pool
}

// NewRoleRepository creates a new role repository
func NewRoleRepository(db *pgxpool.Pool) *RoleRepository {
	return &RoleRepository{
		db: db,
	}
}

func scanRole(row pgx.Row) (*models.Role, error) {
	var role models.Role
	err := row.Scan(&role.ID, &role.Name, &role.Status, &role.CreatedBy, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

// Create inserts a new role.
func (r *RoleRepository) Create(ctx context.Context, role *models.Role) error {
	query := `
		INSERT INTO roles (name, status, created_by)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, role.Name, role.Status, role.CreatedBy).
		Scan(&role.ID, &role.CreatedAt, &role.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.ErrRoleNameExists
		}
		return fmt.Errorf("error creating role: %w", err)
	}
	return nil
}

// GetByID retrieves a role by id. A miss returns (nil, nil).
func (r *RoleRepository) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE id = $1`
	return scanRole(r.db.QueryRow(ctx, query, id))
}

// GetByName retrieves a role by its unique name. Used by the authorization
// check to resolve the Admin role on every privileged request.
func (r *RoleRepository) GetByName(ctx context.Context, name string) (*models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles WHERE name = $1`
	return scanRole(r.db.QueryRow(ctx, query, name))
}

// List retrieves roles matching an optional case-insensitive search over
// name and status, paginated and ordered by creation time.
func (r *RoleRepository) List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Role, error) {
	query := `SELECT ` + roleColumns + ` FROM roles`
	args := []interface{}{}
	if search != "" {
		query += ` WHERE name ILIKE $1 OR status ILIKE $1`
		args = append(args, "%"+search+"%")
	}
	query += fmt.Sprintf(` ORDER BY created_at %s OFFSET %d LIMIT %d`, sortDirection(sortAsc), offset, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roles := []models.Role{}
	for rows.Next() {
		var role models.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Status, &role.CreatedBy, &role.CreatedAt, &role.UpdatedAt); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}

	return roles, rows.Err()
}

// Update replaces a role's fields and returns the post-update record.
func (r *RoleRepository) Update(ctx context.Context, id int64, role *models.Role) (*models.Role, error) {
	query := `
		UPDATE roles
		SET name = $1, status = $2, updated_at = NOW()
		WHERE id = $3
		RETURNING ` + roleColumns

	updated, err := scanRole(r.db.QueryRow(ctx, query, role.Name, role.Status, id))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, apperrors.ErrRoleNameExists
		}
		return nil, fmt.Errorf("error updating role: %w", err)
	}
	return updated, nil
}

// Delete removes a role and returns the removed record. References from
// users are left dangling on purpose; there is no cascade.
func (r *RoleRepository) Delete(ctx context.Context, id int64) (*models.Role, error) {
	query := `DELETE FROM roles WHERE id = $1 RETURNING ` + roleColumns
	return scanRole(r.db.QueryRow(ctx, query, id))
}
