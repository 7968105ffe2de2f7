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

// AttendanceController handles attendance endpoints. The list endpoint
// serves records grouped by (year, month) period.
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new attendance controller
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{
		attendanceService: attendanceService,
	}
}

// Create inserts a new attendance record.
func (ctrl *AttendanceController) Create(c *gin.Context) {
	var req dto.AttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := ctrl.attendanceService.Create(c.Request.Context(), attendanceFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance created successfully", created))
}

// GetByID fetches one attendance record. A miss is a success with null data.
func (ctrl *AttendanceController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	att, err := ctrl.attendanceService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance fetched successfully", att))
}

// List serves attendance records grouped by period, newest period first by
// default, with pagination over the period groups.
func (ctrl *AttendanceController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortDescending)

	groups, err := ctrl.attendanceService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance fetched successfully", groups))
}

// Update replaces an attendance record by id and returns the updated record.
// Records older than the edit window are rejected.
func (ctrl *AttendanceController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.AttendanceRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.attendanceService.Update(c.Request.Context(), id, attendanceFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance updated successfully", updated))
}

// Delete removes an attendance record and returns the removed record.
func (ctrl *AttendanceController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.attendanceService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Attendance deleted successfully", removed))
}

func attendanceFromRequest(req dto.AttendanceRequest) *models.Attendance {
	return &models.Attendance{
		Batch:        req.Batch,
		Department:   req.Department,
		Year:         req.Year,
		Month:        req.Month,
		Date:         req.Date,
		StudentsList: req.StudentsList,
		GivenBy:      req.GivenBy,
	}
}
