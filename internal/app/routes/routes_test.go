package routes

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

	appauth "github.com/collegehub/backend/internal/app/auth"
	"github.com/collegehub/backend/internal/app/controllers"
	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/app/services"
	"github.com/collegehub/backend/internal/middleware"
	"github.com/collegehub/backend/internal/mocks"
	"github.com/collegehub/backend/internal/pkg/auth"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type routerFixture struct {
	router   *gin.Engine
	jwt      *auth.JWTService
	userRepo *mocks.UserRepository
	roleRepo *mocks.RoleRepository
	deptRepo *mocks.DepartmentRepository
}

func newRouterFixture() *routerFixture {
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "routes-test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collegehub-test",
	})

	userRepo := new(mocks.UserRepository)
	roleRepo := new(mocks.RoleRepository)
	deptRepo := new(mocks.DepartmentRepository)

	ctrls := &controllers.Controllers{
		UserController:         controllers.NewUserController(services.NewUserService(userRepo, roleRepo, jwtService)),
		RoleController:         controllers.NewRoleController(services.NewRoleService(roleRepo)),
		DepartmentController:   controllers.NewDepartmentController(services.NewDepartmentService(deptRepo)),
		CourseController:       controllers.NewCourseController(services.NewCourseService(nil)),
		BatchController:        controllers.NewBatchController(services.NewBatchService(nil)),
		FacultyController:      controllers.NewFacultyController(services.NewFacultyService(new(mocks.FacultyRepository))),
		AnnouncementController: controllers.NewAnnouncementController(services.NewAnnouncementService(nil)),
		AcademicController:     controllers.NewAcademicController(services.NewAcademicService(nil)),
		AttendanceController:   controllers.NewAttendanceController(services.NewAttendanceService(new(mocks.AttendanceRepository))),
	}

	authz := appauth.NewAuthorizationService(roleRepo)
	authMiddleware := middleware.NewAuthMiddleware(jwtService, userRepo, authz)

	router := gin.New()
	SetupRouter(router, ctrls, authMiddleware)

	return &routerFixture{
		router:   router,
		jwt:      jwtService,
		userRepo: userRepo,
		roleRepo: roleRepo,
		deptRepo: deptRepo,
	}
}

func (f *routerFixture) tokenFor(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := f.jwt.GenerateToken(userID)
	require.NoError(t, err)
	return "Bearer " + token
}

func (f *routerFixture) do(method, path, authHeader string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	f.router.ServeHTTP(w, req)
	return w
}

func envelope(t *testing.T, w *httptest.ResponseRecorder) dto.Response {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestWelcomeEndpoint(t *testing.T) {
	f := newRouterFixture()

	w := f.do(http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := envelope(t, w)
	assert.True(t, resp.Result)
}

func TestMissingTokenIsRejected(t *testing.T) {
	f := newRouterFixture()

	w := f.do(http.MethodGet, "/api/v1/departments", "", nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "Authentication required", resp.Message)
}

func TestUnknownTokenSubjectIsRejected(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-GONE0001").Return(nil, nil)

	w := f.do(http.MethodGet, "/api/v1/departments", f.tokenFor(t, "USR-GONE0001"), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInactiveAccountIsRejected(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-SLEEP001").Return(&models.User{
		ID:     4,
		UserID: "USR-SLEEP001",
		Status: models.StatusInactive,
	}, nil)

	w := f.do(http.MethodGet, "/api/v1/departments", f.tokenFor(t, "USR-SLEEP001"), nil)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestNonAdminCannotCreateDepartment(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-STAFF001").Return(&models.User{
		ID:     2,
		UserID: "USR-STAFF001",
		Role:   5,
		Status: models.StatusActive,
	}, nil)
	f.roleRepo.On("GetByName", mock.Anything, models.AdminRoleName).Return(&models.Role{ID: 1, Name: models.AdminRoleName}, nil)

	w := f.do(http.MethodPost, "/api/v1/departments", f.tokenFor(t, "USR-STAFF001"),
		dto.DepartmentRequest{Name: "Physics"})

	assert.Equal(t, http.StatusForbidden, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "Permission denied", resp.Message)
	f.deptRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAdminCreatesDepartmentWithGeneratedID(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-ADMIN001").Return(&models.User{
		ID:     1,
		UserID: "USR-ADMIN001",
		Role:   1,
		Status: models.StatusActive,
	}, nil)
	f.roleRepo.On("GetByName", mock.Anything, models.AdminRoleName).Return(&models.Role{ID: 1, Name: models.AdminRoleName}, nil)
	f.deptRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	w := f.do(http.MethodPost, "/api/v1/departments", f.tokenFor(t, "USR-ADMIN001"),
		dto.DepartmentRequest{Name: "Physics"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := envelope(t, w)
	assert.True(t, resp.Result)

	payload, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, payload["dept_id"])
	assert.Equal(t, "Physics", payload["name"])
}

func TestMissingAdminRoleSurfacesAsServerError(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-ADMIN001").Return(&models.User{
		ID:     1,
		UserID: "USR-ADMIN001",
		Role:   1,
		Status: models.StatusActive,
	}, nil)
	f.roleRepo.On("GetByName", mock.Anything, models.AdminRoleName).Return(nil, nil)

	w := f.do(http.MethodPost, "/api/v1/departments", f.tokenFor(t, "USR-ADMIN001"),
		dto.DepartmentRequest{Name: "Physics"})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	resp := envelope(t, w)
	assert.Equal(t, "Admin role is not configured", resp.Message)
}

func TestRoleDeleteDoesNotCascadeToUsers(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-ADMIN001").Return(&models.User{
		ID:     1,
		UserID: "USR-ADMIN001",
		Role:   1,
		Status: models.StatusActive,
	}, nil)
	f.roleRepo.On("GetByName", mock.Anything, models.AdminRoleName).Return(&models.Role{ID: 1, Name: models.AdminRoleName}, nil)
	f.roleRepo.On("Delete", mock.Anything, int64(5)).Return(&models.Role{ID: 5, Name: "Staff"}, nil)
	f.userRepo.On("GetByID", mock.Anything, int64(2)).Return(&models.User{
		ID:     2,
		UserID: "USR-STAFF001",
		Role:   5,
		Status: models.StatusActive,
	}, nil)

	token := f.tokenFor(t, "USR-ADMIN001")

	w := f.do(http.MethodDelete, "/api/v1/roles/5", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	// No foreign keys: the user keeps the dangling role reference.
	f.userRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	f.userRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)

	w = f.do(http.MethodGet, "/api/v1/users/2", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	resp := envelope(t, w)
	payload, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	assert.EqualValues(t, 5, payload["role"])
}

func TestListPassesSearchTermToStore(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-STAFF001").Return(&models.User{
		ID:     2,
		UserID: "USR-STAFF001",
		Role:   5,
		Status: models.StatusActive,
	}, nil)
	f.deptRepo.On("List", mock.Anything, "comp", true, uint64(0), 10).
		Return([]models.Department{{ID: 3, DeptID: "DEP-1A2B3C4D", Name: "Computer Science"}}, nil)

	w := f.do(http.MethodGet, "/api/v1/departments?search=comp", f.tokenFor(t, "USR-STAFF001"), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.deptRepo.AssertExpectations(t)
}

func TestAuthenticatedReadNeedsNoAdmin(t *testing.T) {
	f := newRouterFixture()
	f.userRepo.On("GetByUserID", mock.Anything, "USR-STAFF001").Return(&models.User{
		ID:     2,
		UserID: "USR-STAFF001",
		Role:   5,
		Status: models.StatusActive,
	}, nil)
	f.deptRepo.On("List", mock.Anything, "", true, uint64(0), 10).Return([]models.Department{}, nil)

	w := f.do(http.MethodGet, "/api/v1/departments", f.tokenFor(t, "USR-STAFF001"), nil)

	assert.Equal(t, http.StatusOK, w.Code)
	f.roleRepo.AssertNotCalled(t, "GetByName", mock.Anything, mock.Anything)
}
