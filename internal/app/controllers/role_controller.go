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

// RoleController handles role endpoints.
type RoleController struct {
	roleService *services.RoleService
}

// NewRoleController creates a new role controller
func NewRoleController(roleService *services.RoleService) *RoleController {
	return &RoleController{
		roleService: roleService,
	}
}

// Create inserts a new role.
func (ctrl *RoleController) Create(c *gin.Context) {
	var req dto.RoleRequest
	if !bindJSON(c, &req) {
		return
	}

	role := &models.Role{Name: req.Name, Status: req.Status}
	if currentUser, ok := middleware.CurrentUser(c); ok {
		role.CreatedBy = currentUser.ID
	}

	created, err := ctrl.roleService.Create(c.Request.Context(), role)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Role created successfully", created))
}

// GetByID fetches one role. A miss is a success with null data.
func (ctrl *RoleController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	role, err := ctrl.roleService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Role fetched successfully", role))
}

// List fetches roles matching the search, oldest first by default.
func (ctrl *RoleController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortAscending)

	roles, err := ctrl.roleService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Roles fetched successfully", roles))
}

// Update replaces a role by id and returns the updated record.
func (ctrl *RoleController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.RoleRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.roleService.Update(c.Request.Context(), id, &models.Role{Name: req.Name, Status: req.Status})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Role updated successfully", updated))
}

// Delete removes a role and returns the removed record.
func (ctrl *RoleController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.roleService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Role deleted successfully", removed))
}
