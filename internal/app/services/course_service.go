package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type courseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetByID(ctx context.Context, id int64) (*models.Course, error)
	List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Course, error)
	Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error)
	Delete(ctx context.Context, id int64) (*models.Course, error)
}

// CourseService handles courses.
type CourseService struct {
	courseRepo courseRepository
}

// NewCourseService creates a new course service instance
func NewCourseService(courseRepo courseRepository) *CourseService {
	return &CourseService{
		courseRepo: courseRepo,
	}
}

// Create inserts a new course. The course_id is generated here and never
// accepted from the client.
func (s *CourseService) Create(ctx context.Context, course *models.Course) (*models.Course, error) {
	course.CourseID = newPublicID("CRS")
	if err := s.courseRepo.Create(ctx, course); err != nil {
		return nil, err
	}
	return course, nil
}

// GetByID retrieves a course. A miss returns (nil, nil).
func (s *CourseService) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.GetByID(ctx, id)
}

// List retrieves courses matching the search, paginated.
func (s *CourseService) List(ctx context.Context, params helpers.ListParams) ([]models.Course, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	return s.courseRepo.List(ctx, params.Search, params.SortAsc, offset, limit)
}

// Update replaces a course's fields and returns the post-update record. The
// course_id is immutable. A miss returns (nil, nil).
func (s *CourseService) Update(ctx context.Context, id int64, course *models.Course) (*models.Course, error) {
	return s.courseRepo.Update(ctx, id, course)
}

// Delete removes a course and returns the removed record.
func (s *CourseService) Delete(ctx context.Context, id int64) (*models.Course, error) {
	return s.courseRepo.Delete(ctx, id)
}
