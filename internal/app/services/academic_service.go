package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type academicRepository interface {
	Create(ctx context.Context, ac *models.Academic) error
	GetByID(ctx context.Context, id int64) (*models.Academic, error)
	List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Academic, error)
	Update(ctx context.Context, id int64, ac *models.Academic) (*models.Academic, error)
	Delete(ctx context.Context, id int64) (*models.Academic, error)
}

// AcademicService handles academic regulations.
type AcademicService struct {
	academicRepo academicRepository
}

// NewAcademicService creates a new academic service instance
func NewAcademicService(academicRepo academicRepository) *AcademicService {
	return &AcademicService{
		academicRepo: academicRepo,
	}
}

// Create inserts a new academic regulation.
func (s *AcademicService) Create(ctx context.Context, ac *models.Academic) (*models.Academic, error) {
	if ac.Status == "" {
		ac.Status = models.StatusActive
	}
	if err := s.academicRepo.Create(ctx, ac); err != nil {
		return nil, err
	}
	return ac, nil
}

// GetByID retrieves an academic regulation. A miss returns (nil, nil).
func (s *AcademicService) GetByID(ctx context.Context, id int64) (*models.Academic, error) {
	return s.academicRepo.GetByID(ctx, id)
}

// List retrieves academics matching the search, paginated.
func (s *AcademicService) List(ctx context.Context, params helpers.ListParams) ([]models.Academic, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	return s.academicRepo.List(ctx, params.Search, params.SortAsc, offset, limit)
}

// Update replaces an academic regulation's fields and returns the
// post-update record. A miss returns (nil, nil).
func (s *AcademicService) Update(ctx context.Context, id int64, ac *models.Academic) (*models.Academic, error) {
	if ac.Status == "" {
		ac.Status = models.StatusActive
	}
	return s.academicRepo.Update(ctx, id, ac)
}

// Delete removes an academic regulation and returns the removed record.
func (s *AcademicService) Delete(ctx context.Context, id int64) (*models.Academic, error) {
	return s.academicRepo.Delete(ctx, id)
}
