package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/helpers"
)

type stubFacultyRepo struct {
	roster []dto.FacultyRosterRow
}

func (s *stubFacultyRepo) Create(_ context.Context, f *models.Faculty) error {
	f.ID = 1
	return nil
}

func (s *stubFacultyRepo) GetByID(_ context.Context, _ int64) (*models.Faculty, error) {
	return nil, nil
}

func (s *stubFacultyRepo) SearchRoster(_ context.Context, _ string, _ bool) ([]dto.FacultyRosterRow, error) {
	return s.roster, nil
}

func (s *stubFacultyRepo) Update(_ context.Context, _ int64, _ *models.Faculty) (*models.Faculty, error) {
	return nil, nil
}

func (s *stubFacultyRepo) Delete(_ context.Context, _ int64) (*models.Faculty, error) {
	return nil, nil
}

func TestGroupRosterByDepartment(t *testing.T) {
	rows := []dto.FacultyRosterRow{
		{ID: 1, Name: "Dr. Rao", Department: 1, CourseDetail: &models.Course{ID: 10}},
		{ID: 1, Name: "Dr. Rao", Department: 1, CourseDetail: &models.Course{ID: 11}},
		{ID: 2, Name: "Dr. Iyer", Department: 2, CourseDetail: nil},
	}

	groups := groupRosterByDepartment(rows)
	require.Len(t, groups, 2)

	assert.Len(t, groups[0].Records, 2)
	assert.Equal(t, int64(10), groups[0].Records[0].CourseDetail.ID)
	assert.Equal(t, int64(11), groups[0].Records[1].CourseDetail.ID)

	// A faculty with no courses still appears, with a nil course.
	require.Len(t, groups[1].Records, 1)
	assert.Nil(t, groups[1].Records[0].CourseDetail)
}

func TestGroupRosterEmpty(t *testing.T) {
	assert.Empty(t, groupRosterByDepartment(nil))
}

func TestListRosterPaginatesGroups(t *testing.T) {
	repo := &stubFacultyRepo{roster: []dto.FacultyRosterRow{
		{ID: 1, Department: 1},
		{ID: 2, Department: 2},
		{ID: 3, Department: 3},
	}}
	svc := NewFacultyService(repo)

	groups, err := svc.ListRoster(context.Background(), helpers.ListParams{Page: 2, Limit: 2, SortAsc: true})
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Len(t, groups[0].Records, 1)
	assert.Equal(t, int64(3), groups[0].Records[0].ID)
}
