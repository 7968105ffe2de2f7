package dto

// Request payloads for every entity. Field rules are declared as binding tags
// and interpreted by the shared validator; create and update share a payload
// because updates are replace-by-id, not partial patches.

// LoginRequest is the body of POST /users/login.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=255"`
}

// UserRequest creates or replaces a user. UserID is optional; a value is
// generated when absent.
type UserRequest struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	PhoneNo    string `json:"phone_no" binding:"required,numeric,len=10"`
	Password   string `json:"password" binding:"required,min=6,max=255"`
	DOB        string `json:"dob" binding:"required"`
	Department int64  `json:"department" binding:"required,gt=0"`
	Role       int64  `json:"role" binding:"required,gt=0"`
	Status     string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// RoleRequest creates or replaces a role.
type RoleRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// DepartmentRequest creates or replaces a department. dept_id is never
// accepted from the client.
type DepartmentRequest struct {
	Name   string `json:"name" binding:"required"`
	Status string `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// CourseRequest creates or replaces a course. course_id is never accepted
// from the client.
type CourseRequest struct {
	Name     string `json:"name" binding:"required"`
	Details  string `json:"details"`
	Credits  int    `json:"credits" binding:"required,gt=0"`
	Syllabus string `json:"syllabus"`
}

// BatchRequest creates or replaces a batch.
type BatchRequest struct {
	Name         string  `json:"name" binding:"required"`
	Department   int64   `json:"department" binding:"required,gt=0"`
	StudentsList []int64 `json:"students_list" binding:"required,dive,gt=0"`
}

// FacultyRequest creates or replaces a faculty record.
type FacultyRequest struct {
	Name          string  `json:"name" binding:"required"`
	Department    int64   `json:"department" binding:"required,gt=0"`
	UserDetails   int64   `json:"user_details" binding:"required,gt=0"`
	CoursesTaught []int64 `json:"courses_taught" binding:"required,dive,gt=0"`
}

// AnnouncementRequest creates or replaces an announcement.
type AnnouncementRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// AcademicRequest creates or replaces an academic regulation. The regulation
// code is fixed at three characters.
type AcademicRequest struct {
	Regulation string   `json:"regulation" binding:"required,len=3"`
	Department int64    `json:"department" binding:"required,gt=0"`
	Semesters  []string `json:"semesters" binding:"required"`
	Syllabus   string   `json:"syllabus" binding:"required"`
	Status     string   `json:"status" binding:"omitempty,oneof=Active Inactive"`
}

// AttendanceRequest creates or replaces an attendance record.
type AttendanceRequest struct {
	Batch        int64   `json:"batch" binding:"required,gt=0"`
	Department   int64   `json:"department" binding:"required,gt=0"`
	Year         int     `json:"year" binding:"required,gt=0"`
	Month        string  `json:"month" binding:"required"`
	Date         string  `json:"date" binding:"required"`
	StudentsList []int64 `json:"students_list" binding:"omitempty,dive,gt=0"`
	GivenBy      int64   `json:"given_by" binding:"required,gt=0"`
}
