package services

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type batchRepository interface {
	Create(ctx context.Context, batch *models.Batch) error
	GetByID(ctx context.Context, id int64) (*models.Batch, error)
	List(ctx context.Context, search string, sortAsc bool, offset uint64, limit int) ([]models.Batch, error)
	Update(ctx context.Context, id int64, batch *models.Batch) (*models.Batch, error)
	Delete(ctx context.Context, id int64) (*models.Batch, error)
}

// BatchService handles student cohorts.
type BatchService struct {
	batchRepo batchRepository
}

// NewBatchService creates a new batch service instance
func NewBatchService(batchRepo batchRepository) *BatchService {
	return &BatchService{
		batchRepo: batchRepo,
	}
}

// Create inserts a new batch. The batch name stays unique across the table.
func (s *BatchService) Create(ctx context.Context, batch *models.Batch) (*models.Batch, error) {
	if err := s.batchRepo.Create(ctx, batch); err != nil {
		return nil, err
	}
	return batch, nil
}

// GetByID retrieves a batch. A miss returns (nil, nil).
func (s *BatchService) GetByID(ctx context.Context, id int64) (*models.Batch, error) {
	return s.batchRepo.GetByID(ctx, id)
}

// List retrieves batches matching the search, paginated.
func (s *BatchService) List(ctx context.Context, params helpers.ListParams) ([]models.Batch, error) {
	offset, limit := helpers.CalculateOffsetLimit(params.Page, params.Limit)
	return s.batchRepo.List(ctx, params.Search, params.SortAsc, offset, limit)
}

// Update replaces a batch's fields and returns the post-update record. A miss
// returns (nil, nil).
func (s *BatchService) Update(ctx context.Context, id int64, batch *models.Batch) (*models.Batch, error) {
	return s.batchRepo.Update(ctx, id, batch)
}

// Delete removes a batch and returns the removed record. Student references
// inside attendance records are left dangling; there is no cascade.
func (s *BatchService) Delete(ctx context.Context, id int64) (*models.Batch, error) {
	return s.batchRepo.Delete(ctx, id)
}
