package models

import "time"

// Department of the college. DeptID is assigned server-side at creation and
// immutable afterwards.
type Department struct {
	ID        int64     `json:"id"`
	DeptID    string    `json:"dept_id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
