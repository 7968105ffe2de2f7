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

// AcademicController handles academic regulation endpoints.
type AcademicController struct {
	academicService *services.AcademicService
}

// NewAcademicController creates a new academic controller
func NewAcademicController(academicService *services.AcademicService) *AcademicController {
	return &AcademicController{
		academicService: academicService,
	}
}

// Create inserts a new academic regulation.
func (ctrl *AcademicController) Create(c *gin.Context) {
	var req dto.AcademicRequest
	if !bindJSON(c, &req) {
		return
	}

	ac := academicFromRequest(req)
	if currentUser, ok := middleware.CurrentUser(c); ok {
		ac.CreatedBy = currentUser.ID
	}

	created, err := ctrl.academicService.Create(c.Request.Context(), ac)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Academic created successfully", created))
}

// GetByID fetches one academic regulation. A miss is a success with null
// data.
func (ctrl *AcademicController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ac, err := ctrl.academicService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Academic fetched successfully", ac))
}

// List fetches academics matching the search, newest first by default.
func (ctrl *AcademicController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortDescending)

	academics, err := ctrl.academicService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Academics fetched successfully", academics))
}

// Update replaces an academic regulation by id and returns the updated
// record.
func (ctrl *AcademicController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AcademicRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.academicService.Update(c.Request.Context(), id, academicFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Academic updated successfully", updated))
}

// Delete removes an academic regulation and returns the removed record.
func (ctrl *AcademicController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.academicService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Academic deleted successfully", removed))
}

func academicFromRequest(req dto.AcademicRequest) *models.Academic {
	return &models.Academic{
		Regulation: req.Regulation,
		Department: req.Department,
		Semesters:  req.Semesters,
		Syllabus:   req.Syllabus,
		Status:     req.Status,
	}
}
