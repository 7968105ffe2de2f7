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

// DepartmentController handles department endpoints.
type DepartmentController struct {
	departmentService *services.DepartmentService
}

// NewDepartmentController creates a new department controller
func NewDepartmentController(departmentService *services.DepartmentService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
	}
}

// Create inserts a new department. The dept_id comes back server-generated.
func (ctrl *DepartmentController) Create(c *gin.Context) {
	var req dto.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	dept := &models.Department{Name: req.Name, Status: req.Status}
	if currentUser, ok := middleware.CurrentUser(c); ok {
		dept.CreatedBy = currentUser.ID
	}

	created, err := ctrl.departmentService.Create(c.Request.Context(), dept)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Department created successfully", created))
}

// GetByID fetches one department. A miss is a success with null data.
func (ctrl *DepartmentController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	dept, err := ctrl.departmentService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Department fetched successfully", dept))
}

// List fetches departments matching the search, oldest first by default.
func (ctrl *DepartmentController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortAscending)

	departments, err := ctrl.departmentService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Departments fetched successfully", departments))
}

// Update replaces a department by id and returns the updated record. The
// dept_id is immutable.
func (ctrl *DepartmentController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.DepartmentRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.departmentService.Update(c.Request.Context(), id, &models.Department{Name: req.Name, Status: req.Status})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Department updated successfully", updated))
}

// Delete removes a department and returns the removed record.
func (ctrl *DepartmentController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.departmentService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Department deleted successfully", removed))
}
