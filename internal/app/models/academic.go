package models

import "time"

// Academic is a regulation record for a department. Regulation codes are
// exactly three characters.
type Academic struct {
	ID         int64     `json:"id"`
	Regulation string    `json:"regulation"`
	Department int64     `json:"department"`
	Semesters  []string  `json:"semesters"`
	Syllabus   string    `json:"syllabus"`
	Status     string    `json:"status"`
	CreatedBy  int64     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
