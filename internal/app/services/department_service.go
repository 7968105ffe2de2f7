package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type departmentRepository interface {
	Create(ctx context.Context, dept *models.Department) error
	GetByID(ctx context.Context, id int64) (*models.Department, error)
	List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Department, error)
	Update(ctx context.Context, id int64, dept *models.Department) (*models.Department, error)
	Delete(ctx context.Context, id int64) (*models.Department, error)
}

// DepartmentService handles departments.
type DepartmentService struct {
	departmentRepo departmentRepository
}

// NewDepartmentService creates a new department service instance
func NewDepartmentService(departmentRepo departmentRepository) *DepartmentService {
	return &DepartmentService{
		departmentRepo: departmentRepo,
	}
}

// Create inserts a new department. The dept_id is generated here and never
// accepted from the client.
func (s *DepartmentService) Create(ctx context.Context, dept *models.Department) (*models.Department, error) {
	dept.DeptID = newPublicID("DEP")
	if dept.Status == "" {
		dept.Status = models.StatusActive
	}
	if err := s.departmentRepo.Create(ctx, dept); err != nil {
		return nil, err
	}
	return dept, nil
}

// GetByID retrieves a department. A miss returns (nil, nil).
func (s *DepartmentService) GetByID(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.GetByID(ctx, id)
}

// List retrieves departments matching the search, paginated.
func (s *DepartmentService) List(ctx context.Context, params helpers.ListParams) ([]models.Department, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	return s.departmentRepo.List(ctx, params.Search, params.SortAsc, offset, limit)
}

// Update replaces a department's fields and returns the post-update record.
// The dept_id is immutable. A miss returns (nil, nil).
func (s *DepartmentService) Update(ctx context.Context, id int64, dept *models.Department) (*models.Department, error) {
	if dept.Status == "" {
		dept.Status = models.StatusActive
	}
	return s.departmentRepo.Update(ctx, id, dept)
}

// Delete removes a department and returns the removed record.
func (s *DepartmentService) Delete(ctx context.Context, id int64) (*models.Department, error) {
	return s.departmentRepo.Delete(ctx, id)
}
