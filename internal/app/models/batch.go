package models

import "time"

// Batch is a named student cohort within a department.
type Batch struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Department   int64     `json:"department"`
	StudentsList []int64   `json:"students_list"`
	CreatedBy    int64     `json:"created_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
