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

// AnnouncementController handles announcement endpoints.
type AnnouncementController struct {
	announcementService *services.AnnouncementService
}

// NewAnnouncementController creates a new announcement controller
func NewAnnouncementController(announcementService *services.AnnouncementService) *AnnouncementController {
	return &AnnouncementController{
		announcementService: announcementService,
	}
}

// Create inserts a new announcement.
func (ctrl *AnnouncementController) Create(c *gin.Context) {
	var req dto.AnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	ann := &models.Announcement{Title: req.Title, Content: req.Content}
	if currentUser, ok := middleware.CurrentUser(c); ok {
		ann.CreatedBy = currentUser.ID
	}

	created, err := ctrl.announcementService.Create(c.Request.Context(), ann)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Announcement created successfully", created))
}

// GetByID fetches one announcement. A miss is a success with null data.
func (ctrl *AnnouncementController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ann, err := ctrl.announcementService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Announcement fetched successfully", ann))
}

// List fetches announcements matching the search, newest first by default.
func (ctrl *AnnouncementController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortDescending)

	announcements, err := ctrl.announcementService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Announcements fetched successfully", announcements))
}

// Update replaces an announcement by id and returns the updated record.
func (ctrl *AnnouncementController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AnnouncementRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.announcementService.Update(c.Request.Context(), id, &models.Announcement{Title: req.Title, Content: req.Content})
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Announcement updated successfully", updated))
}

// Delete removes an announcement and returns the removed record.
func (ctrl *AnnouncementController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.announcementService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Announcement deleted successfully", removed))
}
