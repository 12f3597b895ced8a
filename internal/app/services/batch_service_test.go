package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edubase/studenthub/internal/app/models"
	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/pkg/apperrors"
)

func TestCreateBatch_Success(t *testing.T) {
	svc := NewBatchService(&mockBatchStore{})

	capacity := 30
	batch, err := svc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		Name:     "2026 Spring",
		Capacity: &capacity,
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), batch.ID)
	assert.Equal(t, "2026 Spring", batch.Name)
}

func TestCreateBatch_EndBeforeStart(t *testing.T) {
	svc := NewBatchService(&mockBatchStore{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, -1, 0)
	batch, err := svc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		Name:      "2026 Spring",
		StartDate: &start,
		EndDate:   &end,
	})

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateBatch_EndEqualsStart(t *testing.T) {
	svc := NewBatchService(&mockBatchStore{})

	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	batch, err := svc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		Name:      "2026 Spring",
		StartDate: &start,
		EndDate:   &start,
	})

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateBatch_ZeroCapacity(t *testing.T) {
	svc := NewBatchService(&mockBatchStore{})

	capacity := 0
	batch, err := svc.CreateBatch(context.Background(), &dto.CreateBatchRequest{
		Name:     "2026 Spring",
		Capacity: &capacity,
	})

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestCreateBatch_DuplicateName(t *testing.T) {
	batches := &mockBatchStore{
		CreateFunc: func(ctx context.Context, batch *models.Batch) error {
			return apperrors.ErrBatchAlreadyExists
		},
	}
	svc := NewBatchService(batches)

	batch, err := svc.CreateBatch(context.Background(), &dto.CreateBatchRequest{Name: "2026 Spring"})

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, apperrors.ErrBatchAlreadyExists)
}

func TestUpdateBatch_DateCheckUsesMergedValues(t *testing.T) {
	start := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	batches := &mockBatchStore{
		GetByIDFunc: func(ctx context.Context, id int64) (*models.Batch, error) {
			return &models.Batch{ID: id, Name: "2026 Spring", StartDate: &start}, nil
		},
	}
	svc := NewBatchService(batches)

	// End date earlier than the stored start date must be rejected
	badEnd := start.AddDate(0, -2, 0)
	batch, err := svc.UpdateBatch(context.Background(), 1, &dto.UpdateBatchRequest{EndDate: &badEnd})

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateBatch_NotFound(t *testing.T) {
	svc := NewBatchService(&mockBatchStore{})

	name := "2026 Fall"
	batch, err := svc.UpdateBatch(context.Background(), 42, &dto.UpdateBatchRequest{Name: &name})

	assert.Nil(t, batch)
	assert.ErrorIs(t, err, apperrors.ErrBatchNotFound)
}

func TestDeleteBatch_WithStudentsConflict(t *testing.T) {
	batches := &mockBatchStore{
		DeleteFunc: func(ctx context.Context, id int64) error {
			return apperrors.NewConflictError("batch has enrolled students and cannot be deleted")
		},
	}
	svc := NewBatchService(batches)

	err := svc.DeleteBatch(context.Background(), 1)

	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestGetAllBatches_EmptyIsNotNil(t *testing.T) {
	svc := NewBatchService(&mockBatchStore{})

	batches, err := svc.GetAllBatches(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, batches)
	assert.Empty(t, batches)
}
