package services

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

// editWindow bounds how long an attendance record stays mutable after
// creation. Exactly one hour of age is still inside the window.
const editWindow = time.Hour

type attendanceRepository interface {
	Create(ctx context.Context, att *models.Attendance) error
	GetByID(ctx context.Context, id int64) (*models.Attendance, error)
	Search(ctx context.Context, search string, sortAsc bool) ([]models.Attendance, error)
	Update(ctx context.Context, id int64, att *models.Attendance) (*models.Attendance, error)
	Delete(ctx context.Context, id int64) (*models.Attendance, error)
}

// AttendanceService handles attendance records and the grouped period view.
type AttendanceService struct {
	attendanceRepo attendanceRepository
	now            func() time.Time
}

// NewAttendanceService creates a new attendance service instance
func NewAttendanceService(attendanceRepo attendanceRepository) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		now:            time.Now,
	}
}

// Create inserts a new attendance record.
func (s *AttendanceService) Create(ctx context.Context, att *models.Attendance) (*models.Attendance, error) {
	if err := s.attendanceRepo.Create(ctx, att); err != nil {
		return nil, err
	}
	return att, nil
}

// GetByID retrieves an attendance record. A miss returns (nil, nil).
func (s *AttendanceService) GetByID(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.attendanceRepo.GetByID(ctx, id)
}

// List produces the grouped attendance view: records matching the search
// bucketed by (year, month), with pagination running over period groups
// rather than individual records.
func (s *AttendanceService) List(ctx context.Context, params helpers.ListParams) ([]dto.AttendanceGroup, error) {
	records, err := s.attendanceRepo.Search(ctx, params.Search, params.SortAsc)
	if err != nil {
		return nil, err
	}

	groups := groupByPeriod(records, params.SortAsc)
	start, end := helpers.CalculateSliceIndices(params.Page, params.Limit, len(groups))
	return groups[start:end], nil
}

// groupByPeriod buckets attendance records by (year, month) and orders the
// buckets chronologically. Record order within each bucket follows the input.
func groupByPeriod(records []models.Attendance, asc bool) []dto.AttendanceGroup {
	type periodKey struct {
		year  int
		month string
	}

	index := map[periodKey]int{}
	groups := []dto.AttendanceGroup{}

	for _, rec := range records {
		key := periodKey{year: rec.Year, month: rec.Month}
		i, ok := index[key]
		if !ok {
			i = len(groups)
			index[key] = i
			groups = append(groups, dto.AttendanceGroup{
				Year:    rec.Year,
				Month:   rec.Month,
				Records: []models.Attendance{},
			})
		}
		groups[i].Records = append(groups[i].Records, rec)
	}

	sort.SliceStable(groups, func(i, j int) bool {
		a, b := groups[i], groups[j]
		if a.Year != b.Year {
			if asc {
				return a.Year < b.Year
			}
			return a.Year > b.Year
		}
		am, bm := monthOrder(a.Month), monthOrder(b.Month)
		if asc {
			return am < bm
		}
		return am > bm
	})

	return groups
}

var monthIndex = map[string]int{
	"january": 1, "february": 2, "march": 3, "april": 4,
	"may": 5, "june": 6, "july": 7, "august": 8,
	"september": 9, "october": 10, "november": 11, "december": 12,
}

// monthOrder maps a month name to its calendar position. Unrecognized names
// sort after the real months.
func monthOrder(month string) int {
	if i, ok := monthIndex[strings.ToLower(month)]; ok {
		return i
	}
	return len(monthIndex) + 1
}

// Update replaces an attendance record's fields and returns the post-update
// record. Updates targeting a missing record fail with
// ErrAttendanceNotFound; records older than the edit window fail with
// ErrEditWindowExpired regardless of payload.
func (s *AttendanceService) Update(ctx context.Context, id int64, att *models.Attendance) (*models.Attendance, error) {
	existing, err := s.attendanceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrAttendanceNotFound
	}
	if !withinEditWindow(existing.CreatedAt, s.now()) {
		return nil, apperrors.ErrEditWindowExpired
	}

	return s.attendanceRepo.Update(ctx, id, att)
}

// withinEditWindow reports whether a record created at createdAt is still
// mutable at instant now. The boundary is inclusive.
func withinEditWindow(createdAt, now time.Time) bool {
	return now.Sub(createdAt) <= editWindow
}

// Delete removes an attendance record and returns the removed record. The
// edit window does not apply to deletion.
func (s *AttendanceService) Delete(ctx context.Context, id int64) (*models.Attendance, error) {
	return s.attendanceRepo.Delete(ctx, id)
}
