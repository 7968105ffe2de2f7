package models

import "time"

// Faculty links a user to a department and the courses they teach.
type Faculty struct {
	ID            int64     `json:"id"`
	Name          string    `json:"name"`
	Department    int64     `json:"department"`
	UserDetails   int64     `json:"user_details"`
	CoursesTaught []int64   `json:"courses_taught"`
	CreatedBy     int64     `json:"created_by"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
