package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	RoleRepository         *RoleRepository
	DepartmentRepository   *DepartmentRepository
	CourseRepository       *CourseRepository
	BatchRepository        *BatchRepository
	FacultyRepository      *FacultyRepository
	AnnouncementRepository *AnnouncementRepository
	AcademicRepository     *AcademicRepository
	AttendanceRepository   *AttendanceRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		RoleRepository:         NewRoleRepository(db),
		DepartmentRepository:   NewDepartmentRepository(db),
		CourseRepository:       NewCourseRepository(db),
		BatchRepository:        NewBatchRepository(db),
		FacultyRepository:      NewFacultyRepository(db),
		AnnouncementRepository: NewAnnouncementRepository(db),
		AcademicRepository:     NewAcademicRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
	}
}

// sortDirection renders an ORDER BY direction from the ascending flag. The
// returned value is always a fixed keyword, never user input.
func sortDirection(asc bool) string {
	if asc {
		return "ASC"
	}
	return "DESC"
}
