package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type announcementRepository interface {
	Create(ctx context.Context, ann *models.Announcement) error
	GetByID(ctx context.Context, id int64) (*models.Announcement, error)
	List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Announcement, error)
	Update(ctx context.Context, id int64, ann *models.Announcement) (*models.Announcement, error)
	Delete(ctx context.Context, id int64) (*models.Announcement, error)
}

// AnnouncementService handles campus notices.
type AnnouncementService struct {
	announcementRepo announcementRepository
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(announcementRepo announcementRepository) *AnnouncementService {
	return &AnnouncementService{
		announcementRepo: announcementRepo,
	}
}

// Create inserts a new announcement.
func (s *AnnouncementService) Create(ctx context.Context, ann *models.Announcement) (*models.Announcement, error) {
	if err := s.announcementRepo.Create(ctx, ann); err != nil {
		return nil, err
	}
	return ann, nil
}

// GetByID retrieves an announcement. A miss returns (nil, nil).
func (s *AnnouncementService) GetByID(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.GetByID(ctx, id)
}

// List retrieves announcements matching the search, paginated. Newest first
// by default so the landing feed shows recent notices.
func (s *AnnouncementService) List(ctx context.Context, params helpers.ListParams) ([]models.Announcement, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	return s.announcementRepo.List(ctx, params.Search, params.SortAsc, offset, limit)
}

// Update replaces an announcement's fields and returns the post-update
// record. A miss returns (nil, nil).
func (s *AnnouncementService) Update(ctx context.Context, id int64, ann *models.Announcement) (*models.Announcement, error) {
	return s.announcementRepo.Update(ctx, id, ann)
}

// Delete removes an announcement and returns the removed record.
func (s *AnnouncementService) Delete(ctx context.Context, id int64) (*models.Announcement, error) {
	return s.announcementRepo.Delete(ctx, id)
}
