package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/backend/internal/app/controllers"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/middleware"
)

// SetupRouter configures all application routes. Every entity group follows
// the same shape: bearer auth on everything, Admin on every write. Updates go
// through POST-to-id with replace semantics, not PATCH.
func SetupRouter(
	router *gin.Engine,
	ctrls *controllers.Controllers,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, dto.NewSuccessResponse("Welcome to the College Management API", nil))
	})

	v1 := router.Group("/api/v1")

	// Login is the only ungated endpoint under the API group.
	v1.POST("/users/login", ctrls.UserController.Login)

	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.RequireAuth())

	admin := authMiddleware.AdminRequired()

	users := authenticated.Group("/users")
	{
		users.GET("", ctrls.UserController.List)
		users.GET("/:id", ctrls.UserController.GetByID)
		users.POST("", admin, ctrls.UserController.Create)
		users.POST("/:id", admin, ctrls.UserController.Update)
		users.DELETE("/:id", admin, ctrls.UserController.Delete)
	}

	roles := authenticated.Group("/roles")
	{
		roles.GET("", ctrls.RoleController.List)
		roles.GET("/:id", ctrls.RoleController.GetByID)
		roles.POST("", admin, ctrls.RoleController.Create)
		roles.POST("/:id", admin, ctrls.RoleController.Update)
		roles.DELETE("/:id", admin, ctrls.RoleController.Delete)
	}

	departments := authenticated.Group("/departments")
	{
		departments.GET("", ctrls.DepartmentController.List)
		departments.GET("/:id", ctrls.DepartmentController.GetByID)
		departments.POST("", admin, ctrls.DepartmentController.Create)
		departments.POST("/:id", admin, ctrls.DepartmentController.Update)
		departments.DELETE("/:id", admin, ctrls.DepartmentController.Delete)
	}

	courses := authenticated.Group("/courses")
	{
		courses.GET("", ctrls.CourseController.List)
		courses.GET("/:id", ctrls.CourseController.GetByID)
		courses.POST("", admin, ctrls.CourseController.Create)
		courses.POST("/:id", admin, ctrls.CourseController.Update)
		courses.DELETE("/:id", admin, ctrls.CourseController.Delete)
	}

	batches := authenticated.Group("/batches")
	{
		batches.GET("", ctrls.BatchController.List)
		batches.GET("/:id", ctrls.BatchController.GetByID)
		batches.POST("", admin, ctrls.BatchController.Create)
		batches.POST("/:id", admin, ctrls.BatchController.Update)
		batches.DELETE("/:id", admin, ctrls.BatchController.Delete)
	}

	faculty := authenticated.Group("/faculty")
	{
		faculty.GET("", ctrls.FacultyController.List)
		faculty.GET("/:id", ctrls.FacultyController.GetByID)
		faculty.POST("", admin, ctrls.FacultyController.Create)
		faculty.POST("/:id", admin, ctrls.FacultyController.Update)
		faculty.DELETE("/:id", admin, ctrls.FacultyController.Delete)
	}

	announcements := authenticated.Group("/announcements")
	{
		announcements.GET("", ctrls.AnnouncementController.List)
		announcements.GET("/:id", ctrls.AnnouncementController.GetByID)
		announcements.POST("", admin, ctrls.AnnouncementController.Create)
		announcements.POST("/:id", admin, ctrls.AnnouncementController.Update)
		announcements.DELETE("/:id", admin, ctrls.AnnouncementController.Delete)
	}

	academics := authenticated.Group("/academics")
	{
		academics.GET("", ctrls.AcademicController.List)
		academics.GET("/:id", ctrls.AcademicController.GetByID)
		academics.POST("", admin, ctrls.AcademicController.Create)
		academics.POST("/:id", admin, ctrls.AcademicController.Update)
		academics.DELETE("/:id", admin, ctrls.AcademicController.Delete)
	}

	// The path keeps its historical spelling; clients depend on it.
	attendences := authenticated.Group("/attendences")
	{
		attendences.GET("", ctrls.AttendanceController.List)
		attendences.GET("/:id", ctrls.AttendanceController.GetByID)
		attendences.POST("", admin, ctrls.AttendanceController.Create)
		attendences.POST("/:id", admin, ctrls.AttendanceController.Update)
		attendences.DELETE("/:id", admin, ctrls.AttendanceController.Delete)
	}
}
