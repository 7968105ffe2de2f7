package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/collegehub/backend/internal/app/repositories"
	"github.com/collegehub/backend/internal/pkg/auth"
)

// Services holds all the service instances
type Services struct {
	UserService         *UserService
	RoleService         *RoleService
	DepartmentService   *DepartmentService
	CourseService       *CourseService
	BatchService        *BatchService
	FacultyService      *FacultyService
	AnnouncementService *AnnouncementService
	AcademicService     *AcademicService
	AttendanceService   *AttendanceService
}

// NewServices initializes all services on top of the repositories
func NewServices(repos *repositories.Repositories, jwtService *auth.JWTService) *Services {
	return &Services{
		UserService:         NewUserService(repos.UserRepository, repos.RoleRepository, jwtService),
		RoleService:         NewRoleService(repos.RoleRepository),
		DepartmentService:   NewDepartmentService(repos.DepartmentRepository),
		CourseService:       NewCourseService(repos.CourseRepository),
		BatchService:        NewBatchService(repos.BatchRepository),
		FacultyService:      NewFacultyService(repos.FacultyRepository),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository),
		AcademicService:     NewAcademicService(repos.AcademicRepository),
		AttendanceService:   NewAttendanceService(repos.AttendanceRepository),
	}
}

// newPublicID builds a short human-readable identifier like "DEP-3F2A81C4".
// These are exposed to clients instead of database keys.
func newPublicID(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
