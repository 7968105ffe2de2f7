package dto

import "github.com/collegehub/backend/internal/app/models"

// FacultyRosterRow is one flattened (faculty, course) pair of the roster
// view. A faculty with no courses still yields one row with a nil course.
type FacultyRosterRow struct {
	ID                int64              `json:"id"`
	Name              string             `json:"name"`
	Department        int64              `json:"department"`
	UserDetails       *models.User       `json:"user_details"`
	DepartmentDetails *models.Department `json:"department_details"`
	CourseDetail      *models.Course     `json:"courses_detail"`
}

// FacultyGroup is one department bucket of the roster listing; only the
// grouped records are projected into the response.
type FacultyGroup struct {
	Records []FacultyRosterRow `json:"records"`
}
