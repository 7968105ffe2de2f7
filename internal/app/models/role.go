package models

import "time"

// AdminRoleName is the role that confers elevated write/delete privilege.
const AdminRoleName = "Admin"

// Role is a named privilege group. Name is unique so duplicate privilege
// roles cannot exist.
type Role struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Status    string    `json:"status"`
	CreatedBy int64     `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
