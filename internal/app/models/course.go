package models

import "time"

// Course offered by the college. CourseID is generated at creation, never
// client-supplied.
type Course struct {
	ID        int64     `json:"id"`
	CourseID  string    `json:"course_id"`
	Name      string    `json:"name"`
	Details   string    `json:"details"`
	Credits   int       `json:"credits"`
	Syllabus  string    `json:"syllabus"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
