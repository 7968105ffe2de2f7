package dto

import "github.com/collegehub/backend/internal/app/models"

// AttendanceGroup is one (year, month) bucket of the attendance listing.
// Pagination on the list endpoint runs over groups, not individual records.
type AttendanceGroup struct {
	Year    int                 `json:"year"`
	Month   string              `json:"month"`
	Records []models.Attendance `json:"records"`
}
