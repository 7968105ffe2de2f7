package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type roleRepository interface {
	Create(ctx context.Context, role *models.Role) error
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Role, error)
	Update(ctx context.Context, id int64, role *models.Role) (*models.Role, error)
	Delete(ctx context.Context, id int64) (*models.Role, error)
}

// RoleService handles privilege roles.
type RoleService struct {
	roleRepo roleRepository
}

// NewRoleService creates a new role service instance
func NewRoleService(roleRepo roleRepository) *RoleService {
	return &RoleService{
		roleRepo: roleRepo,
	}
}

// Create inserts a new role. The role name stays unique across the table.
func (s *RoleService) Create(ctx context.Context, role *models.Role) (*models.Role, error) {
	if role.Status == "" {
		role.Status = models.StatusActive
	}
	if err := s.roleRepo.Create(ctx, role); err != nil {
		return nil, err
	}
	return role, nil
}

// GetByID retrieves a role. A miss returns (nil, nil).
func (s *RoleService) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.roleRepo.GetByID(ctx, id)
}

// List retrieves roles matching the search, paginated.
func (s *RoleService) List(ctx context.Context, params helpers.ListParams) ([]models.Role, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	return s.roleRepo.List(ctx, params.Search, params.SortAsc, offset, limit)
}

// Update replaces a role's fields and returns the post-update record. A miss
// returns (nil, nil).
func (s *RoleService) Update(ctx context.Context, id int64, role *models.Role) (*models.Role, error) {
	if role.Status == "" {
		role.Status = models.StatusActive
	}
	return s.roleRepo.Update(ctx, id, role)
}

// Delete removes a role and returns the removed record. References held by
// users are left dangling; there is no cascade.
func (s *RoleService) Delete(ctx context.Context, id int64) (*models.Role, error) {
	return s.roleRepo.Delete(ctx, id)
}
