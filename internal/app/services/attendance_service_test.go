package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type stubAttendanceRepo struct {
	records []models.Attendance
	byID    *models.Attendance
	updated *models.Attendance
}

func (s *stubAttendanceRepo) Create(_ context.Context, att *models.Attendance) error {
	att.ID = 1
	return nil
}

func (s *stubAttendanceRepo) GetByID(_ context.Context, _ int64) (*models.Attendance, error) {
	return s.byID, nil
}

func (s *stubAttendanceRepo) Search(_ context.Context, _ string, _ bool) ([]models.Attendance, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) Update(_ context.Context, id int64, att *models.Attendance) (*models.Attendance, error) {
	out := *att
	out.ID = id
	s.updated = &out
	return &out, nil
}

func (s *stubAttendanceRepo) Delete(_ context.Context, _ int64) (*models.Attendance, error) {
	return s.byID, nil
}

func TestWithinEditWindow(t *testing.T) {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{"immediately after creation", created, true},
		{"half way through", created.Add(30 * time.Minute), true},
		{"exactly one hour", created.Add(time.Hour), true},
		{"one millisecond past", created.Add(time.Hour + time.Millisecond), false},
		{"a day later", created.Add(24 * time.Hour), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, withinEditWindow(created, tt.now))
		})
	}
}

func TestUpdateRejectsExpiredWindow(t *testing.T) {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{byID: &models.Attendance{ID: 5, CreatedAt: created}}

	svc := NewAttendanceService(repo)
	svc.now = func() time.Time { return created.Add(2 * time.Hour) }

	_, err := svc.Update(context.Background(), 5, &models.Attendance{Batch: 1})
	assert.ErrorIs(t, err, apperrors.ErrEditWindowExpired)
	assert.Nil(t, repo.updated)
}

func TestUpdateInsideWindow(t *testing.T) {
	created := time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC)
	repo := &stubAttendanceRepo{byID: &models.Attendance{ID: 5, CreatedAt: created}}

	svc := NewAttendanceService(repo)
	svc.now = func() time.Time { return created.Add(time.Hour) }

	updated, err := svc.Update(context.Background(), 5, &models.Attendance{Batch: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.Batch)
}

func TestUpdateMissingRecord(t *testing.T) {
	svc := NewAttendanceService(&stubAttendanceRepo{})

	_, err := svc.Update(context.Background(), 99, &models.Attendance{})
	assert.ErrorIs(t, err, apperrors.ErrAttendanceNotFound)
}

func TestGroupByPeriod(t *testing.T) {
	records := []models.Attendance{
		{ID: 1, Year: 2024, Month: "January", Date: "2024-01-05"},
		{ID: 2, Year: 2024, Month: "January", Date: "2024-01-12"},
		{ID: 3, Year: 2024, Month: "February", Date: "2024-02-02"},
	}

	groups := groupByPeriod(records, true)
	require.Len(t, groups, 2)

	assert.Equal(t, "January", groups[0].Month)
	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, int64(1), groups[0].Records[0].ID)
	assert.Equal(t, int64(2), groups[0].Records[1].ID)

	assert.Equal(t, "February", groups[1].Month)
	assert.Len(t, groups[1].Records, 1)
}

func TestGroupByPeriodDescending(t *testing.T) {
	records := []models.Attendance{
		{ID: 1, Year: 2023, Month: "December"},
		{ID: 2, Year: 2024, Month: "January"},
		{ID: 3, Year: 2024, Month: "March"},
	}

	groups := groupByPeriod(records, false)
	require.Len(t, groups, 3)
	assert.Equal(t, 2024, groups[0].Year)
	assert.Equal(t, "March", groups[0].Month)
	assert.Equal(t, "January", groups[1].Month)
	assert.Equal(t, 2023, groups[2].Year)
}

func TestListPaginatesGroups(t *testing.T) {
	repo := &stubAttendanceRepo{records: []models.Attendance{
		{ID: 1, Year: 2024, Month: "January"},
		{ID: 2, Year: 2024, Month: "February"},
		{ID: 3, Year: 2024, Month: "March"},
	}}
	svc := NewAttendanceService(repo)

	groups, err := svc.List(context.Background(), helpers.ListParams{Page: 2, Limit: 1, SortAsc: true})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	assert.Equal(t, "February", groups[0].Month)
}
