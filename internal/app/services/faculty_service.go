package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type facultyRepository interface {
	Create(ctx context.Context, f *models.Faculty) error
	GetByID(ctx context.Context, id int64) (*models.Faculty, error)
	SearchRoster(ctx context.Context, search string, sortAsc bool) ([]dto.FacultyRosterRow, error)
	Update(ctx context.Context, id int64, f *models.Faculty) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) (*models.Faculty, error)
}

// FacultyService handles faculty records and the denormalized roster view.
type FacultyService struct {
	facultyRepo facultyRepository
}

// NewFacultyService creates a new faculty service instance
func NewFacultyService(facultyRepo facultyRepository) *FacultyService {
	return &FacultyService{
		facultyRepo: facultyRepo,
	}
}

// Create inserts a new faculty record.
func (s *FacultyService) Create(ctx context.Context, f *models.Faculty) (*models.Faculty, error) {
	if err := s.facultyRepo.Create(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

// GetByID retrieves a faculty record. A miss returns (nil, nil).
func (s *FacultyService) GetByID(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.GetByID(ctx, id)
}

// ListRoster produces the grouped roster view: flattened (faculty, course)
// rows bucketed by department, with pagination running over department
// groups rather than rows. The view is read-only and reflects the referenced
// tables at query time.
func (s *FacultyService) ListRoster(ctx context.Context, params helpers.ListParams) ([]dto.FacultyGroup, error) {
	rows, err := s.facultyRepo.SearchRoster(ctx, params.Search, params.SortAsc)
	if err != nil {
		return nil, err
	}

	groups := groupRosterByDepartment(rows)
	start, end := helpers.CalculateSliceIndices(params.Page, params.Limit, len(groups))
	return groups[start:end], nil
}

// groupRosterByDepartment buckets roster rows by department. Rows arrive
// already ordered by department, so a department change starts a new group
// and row order inside each group is preserved.
func groupRosterByDepartment(rows []dto.FacultyRosterRow) []dto.FacultyGroup {
	groups := []dto.FacultyGroup{}
	var currentDept int64

	for _, row := range rows {
		if len(groups) == 0 || row.Department != currentDept {
			currentDept = row.Department
			groups = append(groups, dto.FacultyGroup{Records: []dto.FacultyRosterRow{}})
		}
		last := len(groups) - 1
		groups[last].Records = append(groups[last].Records, row)
	}

	return groups
}

// Update replaces a faculty record's fields and returns the post-update
// record. A miss returns (nil, nil).
func (s *FacultyService) Update(ctx context.Context, id int64, f *models.Faculty) (*models.Faculty, error) {
	return s.facultyRepo.Update(ctx, id, f)
}

// Delete removes a faculty record and returns the removed record. The
// referenced user is untouched; the two records are independent.
func (s *FacultyService) Delete(ctx context.Context, id int64) (*models.Faculty, error) {
	return s.facultyRepo.Delete(ctx, id)
}
