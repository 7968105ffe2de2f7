package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/app/services"
	"github.com/collegehub/backend/internal/pkg/validation"
)

// Controllers holds all the controller instances
type Controllers struct {
	UserController         *UserController
	RoleController         *RoleController
	DepartmentController   *DepartmentController
	CourseController       *CourseController
	BatchController        *BatchController
	FacultyController      *FacultyController
	AnnouncementController *AnnouncementController
	AcademicController     *AcademicController
	AttendanceController   *AttendanceController
}

// NewControllers initializes all controllers on top of the services
func NewControllers(svcs *services.Services) *Controllers {
	return &Controllers{
		UserController:         NewUserController(svcs.UserService),
		RoleController:         NewRoleController(svcs.RoleService),
		DepartmentController:   NewDepartmentController(svcs.DepartmentService),
		CourseController:       NewCourseController(svcs.CourseService),
		BatchController:        NewBatchController(svcs.BatchService),
		FacultyController:      NewFacultyController(svcs.FacultyService),
		AnnouncementController: NewAnnouncementController(svcs.AnnouncementService),
		AcademicController:     NewAcademicController(svcs.AcademicService),
		AttendanceController:   NewAttendanceController(svcs.AttendanceService),
	}
}

// parseIDParam extracts the :id path segment. On a malformed id it writes the
// 400 response itself and reports false.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id", nil))
		return 0, false
	}
	return id, true
}

// bindJSON binds the request body into req. On a validation failure it writes
// the 400 response with per-field messages and reports false.
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", validation.FormatErrors(err)))
		return false
	}
	return true
}
