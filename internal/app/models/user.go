package models

import "time"

// User statuses. Only Active users can authenticate.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// User represents a college user account. UserID is the human-readable
// identifier carried in tokens; ID is the database key.
type User struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	PhoneNo    string    `json:"phone_no"`
	Password   string    `json:"-"`
	DOB        string    `json:"dob"`
	Department int64     `json:"department"`
	Role       int64     `json:"role"`
	Status     string    `json:"status"`
	CreatedBy  int64     `json:"created_by"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// IsActive reports whether the account may authenticate.
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}
