package services

import (
	"context"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
)

// BatchService implements batch (cohort) management
type BatchService struct {
	batches BatchStore
}

// NewBatchService creates a new batch service
func NewBatchService(batches BatchStore) *BatchService {
	return &BatchService{
		batches: batches,
	}
}

// CreateBatch creates a new batch
func (s *BatchService) CreateBatch(ctx context.Context, req *dto.CreateBatchRequest) (*models.Batch, error) {
	batch := &models.Batch{
		Name:      req.Name,
		Capacity:  req.Capacity,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	}

	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	if err := s.batches.Create(ctx, batch); err != nil {
		return nil, err
	}

	return batch, nil
}

// GetAllBatches returns all batches
func (s *BatchService) GetAllBatches(ctx context.Context) ([]*models.Batch, error) {
	batches, err := s.batches.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if batches == nil {
		batches = []*models.Batch{}
	}

	return batches, nil
}

// GetBatchByID returns a single batch
func (s *BatchService) GetBatchByID(ctx context.Context, id int64) (*models.Batch, error) {
	return s.batches.GetByID(ctx, id)
}

// UpdateBatch applies a partial batch update
func (s *BatchService) UpdateBatch(ctx context.Context, id int64, req *dto.UpdateBatchRequest) (*models.Batch, error) {
	batch, err := s.batches.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		batch.Name = *req.Name
	}
	if req.Capacity != nil {
		batch.Capacity = req.Capacity
	}
	if req.StartDate != nil {
		batch.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		batch.EndDate = req.EndDate
	}

	if err := validateBatch(batch); err != nil {
		return nil, err
	}

	if err := s.batches.Update(ctx, batch); err != nil {
		return nil, err
	}

	return batch, nil
}

// DeleteBatch removes a batch without enrolled students
func (s *BatchService) DeleteBatch(ctx context.Context, id int64) error {
	return s.batches.Delete(ctx, id)
}

// validateBatch runs the struct rules plus the date-range check the
// validator tags cannot express.
func validateBatch(batch *models.Batch) error {
	if err := validateStruct(batch); err != nil {
		return err
	}

	if batch.StartDate != nil && batch.EndDate != nil && !batch.EndDate.After(*batch.StartDate) {
		return apperrors.NewValidationError("endDate must be after startDate")
	}

	return nil
}
