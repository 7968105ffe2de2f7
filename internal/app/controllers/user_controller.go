package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/app/services"
	"github.com/collegehub/backend/internal/middleware"
)

// UserController handles user endpoints, including login.
type UserController struct {
	userService *services.UserService
}

// NewUserController creates a new user controller
func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Login authenticates the credentials and returns a bearer token.
func (ctrl *UserController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctrl.userService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Login successful", resp))
}

// Create registers a new user.
func (ctrl *UserController) Create(c *gin.Context) {
	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	user := userFromRequest(req)
	if currentUser, ok := middleware.CurrentUser(c); ok {
		user.CreatedBy = currentUser.ID
	}

	created, err := ctrl.userService.Create(c.Request.Context(), user)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("User created successfully", created))
}

// GetByID fetches one user. A miss is a success with null data.
func (ctrl *UserController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	user, err := ctrl.userService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("User fetched successfully", user))
}

// List fetches every user.
func (ctrl *UserController) List(c *gin.Context) {
	users, err := ctrl.userService.List(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Users fetched successfully", users))
}

// Update replaces a user by id and returns the updated record.
func (ctrl *UserController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UserRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.userService.Update(c.Request.Context(), id, userFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("User updated successfully", updated))
}

// Delete removes a user and returns the removed record.
func (ctrl *UserController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.userService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("User deleted successfully", removed))
}

func userFromRequest(req dto.UserRequest) *models.User {
	return &models.User{
		UserID:     req.UserID,
		Name:       req.Name,
		Email:      req.Email,
		PhoneNo:    req.PhoneNo,
		Password:   req.Password,
		DOB:        req.DOB,
		Department: req.Department,
		Role:       req.Role,
		Status:     req.Status,
	}
}
