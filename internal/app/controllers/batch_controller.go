package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/edubase/studenthub/internal/app/models/dto"
	"github.com/edubase/studenthub/internal/app/services"
	"github.com/edubase/studenthub/internal/middleware"
)

// BatchController handles batch (cohort) operations
type BatchController struct {
	batchService *services.BatchService
	logger       zerolog.Logger
}

// NewBatchController creates a new BatchController
func NewBatchController(batchService *services.BatchService, logger zerolog.Logger) *BatchController {
	return &BatchController{
		batchService: batchService,
		logger:       logger,
	}
}

// Create adds a new batch
// @Summary Create batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateBatchRequest true "Batch data"
// @Success 201 {object} dto.APIResponse{data=models.Batch} "Batch created"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 409 {object} dto.ErrorResponse "Batch name already exists"
// @Router /batches [post]
func (c *BatchController) Create(ctx *gin.Context) {
	var req dto.CreateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	batch, err := c.batchService.CreateBatch(ctx.Request.Context(), &req)
	if err != nil {
		c.logger.Warn().Err(err).Str("name", req.Name).Msg("Batch creation failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewAPIResponse(batch))
}

// GetAll lists all batches
// @Summary List batches
// @Tags batches
// @Produce json
// @Success 200 {object} dto.ListResponse{data=[]models.Batch} "Batches"
// @Router /batches [get]
func (c *BatchController) GetAll(ctx *gin.Context) {
	batches, err := c.batchService.GetAllBatches(ctx.Request.Context())
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list batches")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(batches), batches))
}

// GetByID returns a single batch
// @Summary Get batch
// @Tags batches
// @Produce json
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse{data=models.Batch} "Batch"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [get]
func (c *BatchController) GetByID(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	batch, err := c.batchService.GetBatchByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(batch))
}

// Update applies a partial batch update
// @Summary Update batch
// @Tags batches
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Param request body dto.UpdateBatchRequest true "Fields to update"
// @Success 200 {object} dto.APIResponse{data=models.Batch} "Updated batch"
// @Failure 400 {object} dto.ErrorResponse "Validation error"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Router /batches/{id} [put]
func (c *BatchController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	var req dto.UpdateBatchRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(ctx, err)
		return
	}

	batch, err := c.batchService.UpdateBatch(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(batch))
}

// Delete removes a batch without enrolled students
// @Summary Delete batch
// @Tags batches
// @Produce json
// @Security BearerAuth
// @Param id path int true "Batch ID"
// @Success 200 {object} dto.APIResponse "Batch deleted"
// @Failure 404 {object} dto.ErrorResponse "Batch not found"
// @Failure 409 {object} dto.ErrorResponse "Batch has enrolled students"
// @Router /batches/{id} [delete]
func (c *BatchController) Delete(ctx *gin.Context) {
	id, ok := pathID(ctx)
	if !ok {
		return
	}

	if err := c.batchService.DeleteBatch(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponseWithMessage(nil, "Batch deleted"))
}
