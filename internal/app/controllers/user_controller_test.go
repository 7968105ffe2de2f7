package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
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
	"github.com/collegehub/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "controller-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collegehub-test",
	})
}

func newUserTestRouter(userRepo *mocks.UserRepository, roleRepo *mocks.RoleRepository) *gin.Engine {
	svc := services.NewUserService(userRepo, roleRepo, testJWTService())
	ctrl := NewUserController(svc)

	router := gin.New()
	router.POST("/api/v1/users/login", ctrl.Login)
	router.GET("/api/v1/users/:id", ctrl.GetByID)
	return router
}

func performJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestLoginUnknownUser(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByEmail", mock.Anything, "ghost@college.edu").Return(nil, nil)

	router := newUserTestRouter(userRepo, new(mocks.RoleRepository))
	w := performJSON(router, http.MethodPost, "/api/v1/users/login", dto.LoginRequest{
		Email:    "ghost@college.edu",
		Password: "irrelevant",
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Result)
	assert.Equal(t, "User not found", resp.Message)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("the-real-password")
	require.NoError(t, err)

	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByEmail", mock.Anything, "staff@college.edu").Return(&models.User{
		ID:       1,
		UserID:   "USR-AB12CD34",
		Email:    "staff@college.edu",
		Password: hashed,
		Status:   models.StatusActive,
	}, nil)

	router := newUserTestRouter(userRepo, new(mocks.RoleRepository))
	w := performJSON(router, http.MethodPost, "/api/v1/users/login", dto.LoginRequest{
		Email:    "staff@college.edu",
		Password: "not-the-password",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Result)
	assert.Equal(t, "Invalid password", resp.Message)
	// Errors always carry a non-null data field.
	assert.NotNil(t, resp.Data)
}

func TestLoginSuccess(t *testing.T) {
	hashed, err := auth.HashPassword("the-real-password")
	require.NoError(t, err)

	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByEmail", mock.Anything, "staff@college.edu").Return(&models.User{
		ID:       1,
		UserID:   "USR-AB12CD34",
		Email:    "staff@college.edu",
		Password: hashed,
		Role:     2,
		Status:   models.StatusActive,
	}, nil)

	roleRepo := new(mocks.RoleRepository)
	roleRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.Role{ID: 2, Name: "Staff"}, nil)

	router := newUserTestRouter(userRepo, roleRepo)
	w := performJSON(router, http.MethodPost, "/api/v1/users/login", dto.LoginRequest{
		Email:    "staff@college.edu",
		Password: "the-real-password",
	})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Result)

	payload, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "USR-AB12CD34", payload["user_id"])
	assert.Equal(t, "Staff", payload["role"])
	assert.Contains(t, payload["token"], "Bearer ")
}

func TestLoginValidationFailure(t *testing.T) {
	router := newUserTestRouter(new(mocks.UserRepository), new(mocks.RoleRepository))

	w := performJSON(router, http.MethodPost, "/api/v1/users/login", map[string]string{
		"email": "not-an-email",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.False(t, resp.Result)
	assert.Equal(t, "Validation failed", resp.Message)
}

func TestGetUserMalformedID(t *testing.T) {
	router := newUserTestRouter(new(mocks.UserRepository), new(mocks.RoleRepository))

	w := performJSON(router, http.MethodGet, "/api/v1/users/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeEnvelope(t, w)
	assert.Equal(t, "Invalid id", resp.Message)
}

func TestGetUserMissIsSuccessWithNullData(t *testing.T) {
	userRepo := new(mocks.UserRepository)
	userRepo.On("GetByID", mock.Anything, int64(42)).Return(nil, nil)

	router := newUserTestRouter(userRepo, new(mocks.RoleRepository))
	w := performJSON(router, http.MethodGet, "/api/v1/users/42", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decodeEnvelope(t, w)
	assert.True(t, resp.Result)
	assert.Nil(t, resp.Data)
}
