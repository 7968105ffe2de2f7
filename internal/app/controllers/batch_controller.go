package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/app/services"
	"github.com/collegehub/backend/internal/middleware"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

// BatchController handles batch endpoints.
type BatchController struct {
	batchService *services.BatchService
}

// NewBatchController creates a new batch controller
func NewBatchController(batchService *services.BatchService) *BatchController {
	return &BatchController{
		batchService: batchService,
	}
}

// Create inserts a new batch.
func (ctrl *BatchController) Create(c *gin.Context) {
	var req dto.BatchRequest
	if !bindJSON(c, &req) {
		return
	}

	batch := batchFromRequest(req)
	if currentUser, ok := middleware.CurrentUser(c); ok {
		batch.CreatedBy = currentUser.ID
	}

	created, err := ctrl.batchService.Create(c.Request.Context(), batch)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Batch created successfully", created))
}

// GetByID fetches one batch. A miss is a success with null data.
func (ctrl *BatchController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	batch, err := ctrl.batchService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Batch fetched successfully", batch))
}

// List fetches batches matching the search, oldest first by default.
func (ctrl *BatchController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortAscending)

	batches, err := ctrl.batchService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Batches fetched successfully", batches))
}

// Update replaces a batch by id and returns the updated record.
func (ctrl *BatchController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.BatchRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.batchService.Update(c.Request.Context(), id, batchFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Batch updated successfully", updated))
}

// Delete removes a batch and returns the removed record.
func (ctrl *BatchController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.batchService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Batch deleted successfully", removed))
}

func batchFromRequest(req dto.BatchRequest) *models.Batch {
	return &models.Batch{
		Name:         req.Name,
		Department:   req.Department,
		StudentsList: req.StudentsList,
	}
}
