package controllers

import (
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/app/services"
	"github.com/collegehub/backend/internal/mocks"
)

func newAttendanceTestRouter(repo *mocks.AttendanceRepository) *gin.Engine {
	ctrl := NewAttendanceController(services.NewAttendanceService(repo))

	router := gin.New()
	router.GET("/api/v1/attendences", ctrl.List)
	router.POST("/api/v1/attendences/:id", ctrl.Update)
	return router
}

func attendancePayload() dto.AttendanceRequest {
	return dto.AttendanceRequest{
		Batch:      1,
		Department: 1,
		Year:       2024,
		Month:      "January",
		Date:       "2024-01-15",
		GivenBy:    3,
	}
}

func TestAttendanceListGroupsByPeriod(t *testing.T) {
	repo := new(mocks.AttendanceRepository)
	repo.On("Search", mock.Anything, "", false).Return([]models.Attendance{
		{ID: 1, Year: 2024, Month: "January", Date: "2024-01-05"},
		{ID: 2, Year: 2024, Month: "January", Date: "2024-01-12"},
		{ID: 3, Year: 2024, Month: "February", Date: "2024-02-02"},
	}, nil)

	router := newAttendanceTestRouter(repo)
	w := performJSON(router, http.MethodGet, "/api/v1/attendences", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Result)

	groups, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, groups, 2)

	// Descending default: February before January.
	first, ok := groups[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "February", first["month"])
	assert.Len(t, first["records"], 1)

	second, ok := groups[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "January", second["month"])
	assert.Len(t, second["records"], 2)
}

func TestAttendanceUpdateInsideWindow(t *testing.T) {
	repo := new(mocks.AttendanceRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&models.Attendance{
		ID:        7,
		CreatedAt: time.Now().Add(-10 * time.Minute),
	}, nil)
	repo.On("Update", mock.Anything, int64(7), mock.Anything).Return(&models.Attendance{ID: 7, Batch: 1}, nil)

	router := newAttendanceTestRouter(repo)
	w := performJSON(router, http.MethodPost, "/api/v1/attendences/7", attendancePayload())

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Result)
	repo.AssertCalled(t, "Update", mock.Anything, int64(7), mock.Anything)
}

func TestAttendanceUpdatePastWindow(t *testing.T) {
	repo := new(mocks.AttendanceRepository)
	repo.On("GetByID", mock.Anything, int64(7)).Return(&models.Attendance{
		ID:        7,
		CreatedAt: time.Now().Add(-2 * time.Hour),
	}, nil)

	router := newAttendanceTestRouter(repo)
	w := performJSON(router, http.MethodPost, "/api/v1/attendences/7", attendancePayload())

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Result)
	assert.Equal(t, "Attendance record can no longer be edited", resp.Message)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceUpdateMissingRecord(t *testing.T) {
	repo := new(mocks.AttendanceRepository)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, nil)

	router := newAttendanceTestRouter(repo)
	w := performJSON(router, http.MethodPost, "/api/v1/attendences/99", attendancePayload())

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Attendance record not found", resp.Message)
}
