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

// FacultyController handles faculty endpoints. The list endpoint serves the
// denormalized roster view rather than raw records.
type FacultyController struct {
	facultyService *services.FacultyService
}

// NewFacultyController creates a new faculty controller
func NewFacultyController(facultyService *services.FacultyService) *FacultyController {
	return &FacultyController{
		facultyService: facultyService,
	}
}

// Create inserts a new faculty record.
func (ctrl *FacultyController) Create(c *gin.Context) {
	var req dto.FacultyRequest
	if !bindJSON(c, &req) {
		return
	}

	f := facultyFromRequest(req)
	if currentUser, ok := middleware.CurrentUser(c); ok {
		f.CreatedBy = currentUser.ID
	}

	created, err := ctrl.facultyService.Create(c.Request.Context(), f)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty created successfully", created))
}

// GetByID fetches one faculty record. A miss is a success with null data.
func (ctrl *FacultyController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	f, err := ctrl.facultyService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty fetched successfully", f))
}

// List serves the roster view grouped by department, with pagination over
// department groups.
func (ctrl *FacultyController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortAscending)

	groups, err := ctrl.facultyService.ListRoster(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty fetched successfully", groups))
}

// Update replaces a faculty record by id and returns the updated record.
func (ctrl *FacultyController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.FacultyRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.facultyService.Update(c.Request.Context(), id, facultyFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty updated successfully", updated))
}

// Delete removes a faculty record and returns the removed record.
func (ctrl *FacultyController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.facultyService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Faculty deleted successfully", removed))
}

func facultyFromRequest(req dto.FacultyRequest) *models.Faculty {
	return &models.Faculty{
		Name:          req.Name,
		Department:    req.Department,
		UserDetails:   req.UserDetails,
		CoursesTaught: req.CoursesTaught,
	}
}
