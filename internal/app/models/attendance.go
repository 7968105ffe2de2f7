package models

import "time"

// Attendance is a roster snapshot for a batch on a given date. Records are
// mutable only within one hour of creation.
type Attendance struct {
	ID           int64     `json:"id"`
	Batch        int64     `json:"batch"`
	Department   int64     `json:"department"`
	Year         int       `json:"year"`
	Month        string    `json:"month"`
	Date         string    `json:"date"`
	StudentsList []int64   `json:"students_list"`
	GivenBy      int64     `json:"given_by"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
