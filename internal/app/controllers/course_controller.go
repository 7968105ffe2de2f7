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

// CourseController handles course endpoints.
type CourseController struct {
	courseService *services.CourseService
}

// NewCourseController creates a new course controller
func NewCourseController(courseService *services.CourseService) *CourseController {
	return &CourseController{
		courseService: courseService,
	}
}

// Create inserts a new course. The course_id comes back server-generated.
func (ctrl *CourseController) Create(c *gin.Context) {
	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	course := courseFromRequest(req)
	if currentUser, ok := middleware.CurrentUser(c); ok {
		course.CreatedBy = currentUser.ID
	}

	created, err := ctrl.courseService.Create(c.Request.Context(), course)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Course created successfully", created))
}

// GetByID fetches one course. A miss is a success with null data.
func (ctrl *CourseController) GetByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	course, err := ctrl.courseService.GetByID(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Course fetched successfully", course))
}

// List fetches courses matching the search, oldest first by default.
func (ctrl *CourseController) List(c *gin.Context) {
	params := helpers.ParseListParams(c, helpers.SortAscending)

	courses, err := ctrl.courseService.List(c.Request.Context(), params)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Courses fetched successfully", courses))
}

// Update replaces a course by id and returns the updated record. The
// course_id is immutable.
func (ctrl *CourseController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.CourseRequest
	if !bindJSON(c, &req) {
		return
	}

	updated, err := ctrl.courseService.Update(c.Request.Context(), id, courseFromRequest(req))
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Course updated successfully", updated))
}

// Delete removes a course and returns the removed record.
func (ctrl *CourseController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	removed, err := ctrl.courseService.Delete(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewSuccessResponse("Course deleted successfully", removed))
}

func courseFromRequest(req dto.CourseRequest) *models.Course {
	return &models.Course{
		Name:     req.Name,
		Details:  req.Details,
		Credits:  req.Credits,
		Syllabus: req.Syllabus,
	}
}
