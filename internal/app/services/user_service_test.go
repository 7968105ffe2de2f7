package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/auth"
)

type stubUserRepo struct {
	byEmail *models.User
	byID    *models.User
	created *models.User
}

func (s *stubUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = 1
	s.created = user
	return nil
}

func (s *stubUserRepo) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return s.byID, nil
}

func (s *stubUserRepo) GetByEmail(_ context.Context, _ string) (*models.User, error) {
	return s.byEmail, nil
}

func (s *stubUserRepo) List(_ context.Context) ([]models.User, error) {
	return nil, nil
}

func (s *stubUserRepo) Update(_ context.Context, id int64, user *models.User) (*models.User, error) {
	out := *user
	out.ID = id
	return &out, nil
}

func (s *stubUserRepo) Delete(_ context.Context, _ int64) (*models.User, error) {
	return s.byID, nil
}

type stubRoleReader struct {
	role *models.Role
}

func (s *stubRoleReader) GetByID(_ context.Context, _ int64) (*models.Role, error) {
	return s.role, nil
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		TokenExp:    time.Hour,
		TokenIssuer: "collegehub-test",
	})
}

func TestLogin(t *testing.T) {
	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	user := &models.User{
		ID:       1,
		UserID:   "USR-AB12CD34",
		Email:    "staff@college.edu",
		Password: hashed,
		Role:     2,
		Status:   models.StatusActive,
	}
	svc := NewUserService(
		&stubUserRepo{byEmail: user},
		&stubRoleReader{role: &models.Role{ID: 2, Name: "Staff"}},
		testJWTService(),
	)

	resp, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "staff@college.edu",
		Password: "correct-horse",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(resp.Token, "Bearer "))
	assert.Equal(t, "USR-AB12CD34", resp.UserID)
	assert.Equal(t, "staff@college.edu", resp.Email)
	assert.Equal(t, "Staff", resp.Role)
	assert.Equal(t, 3600, resp.ExpiresIn)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, &stubRoleReader{}, testJWTService())

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "nobody@college.edu",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	hashed, err := auth.HashPassword("correct-horse")
	require.NoError(t, err)

	svc := NewUserService(
		&stubUserRepo{byEmail: &models.User{Password: hashed, Status: models.StatusActive}},
		&stubRoleReader{},
		testJWTService(),
	)

	_, err = svc.Login(context.Background(), dto.LoginRequest{
		Email:    "staff@college.edu",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidPassword)
}

func TestLoginInactiveAccount(t *testing.T) {
	svc := NewUserService(
		&stubUserRepo{byEmail: &models.User{Status: models.StatusInactive}},
		&stubRoleReader{},
		testJWTService(),
	)

	_, err := svc.Login(context.Background(), dto.LoginRequest{
		Email:    "staff@college.edu",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, apperrors.ErrAccountInactive)
}

func TestCreateGeneratesIDAndHashesPassword(t *testing.T) {
	repo := &stubUserRepo{}
	svc := NewUserService(repo, &stubRoleReader{}, testJWTService())

	created, err := svc.Create(context.Background(), &models.User{
		Name:     "New User",
		Email:    "new@college.edu",
		Password: "plaintext-pw",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(created.UserID, "USR-"))
	assert.Equal(t, models.StatusActive, created.Status)
	assert.NotEqual(t, "plaintext-pw", created.Password)
	assert.True(t, auth.CheckPassword(created.Password, "plaintext-pw"))
}

func TestUpdatePreservesUserID(t *testing.T) {
	repo := &stubUserRepo{byID: &models.User{ID: 1, UserID: "USR-KEEPME01", Status: models.StatusActive}}
	svc := NewUserService(repo, &stubRoleReader{}, testJWTService())

	updated, err := svc.Update(context.Background(), 1, &models.User{
		Name:     "Renamed",
		Password: "new-password",
	})
	require.NoError(t, err)
	assert.Equal(t, "USR-KEEPME01", updated.UserID)
}

func TestUpdateMissingUser(t *testing.T) {
	svc := NewUserService(&stubUserRepo{}, &stubRoleReader{}, testJWTService())

	updated, err := svc.Update(context.Background(), 42, &models.User{Password: "pw"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
