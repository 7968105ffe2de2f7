package services

import (
	"context"
	"fmt"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/auth"
	"github.com/collegehub/backend/internal/pkg/logger"
)

type userRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	List(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, id int64, user *models.User) (*models.User, error)
	Delete(ctx context.Context, id int64) (*models.User, error)
}

type roleReader interface {
	GetByID(ctx context.Context, id int64) (*models.Role, error)
}

// UserService handles user accounts and login.
type UserService struct {
	userRepo   userRepository
	roleRepo   roleReader
	jwtService *auth.JWTService
}

// NewUserService creates a new user service instance
func NewUserService(userRepo userRepository, roleRepo roleReader, jwtService *auth.JWTService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		roleRepo:   roleRepo,
		jwtService: jwtService,
	}
}

// Login verifies the credentials and issues a bearer token. A miss on the
// email is distinct from a bad password so the two produce different status
// codes.
func (s *UserService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("error looking up user: %w", err)
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	if !user.IsActive() {
		return nil, apperrors.ErrAccountInactive
	}

	if !auth.CheckPassword(user.Password, req.Password) {
		return nil, apperrors.ErrInvalidPassword
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.UserID)
	if err != nil {
		return nil, fmt.Errorf("error issuing token: %w", err)
	}

	roleName := ""
	role, err := s.roleRepo.GetByID(ctx, user.Role)
	if err != nil {
		logger.Warn().Err(err).Int64("roleID", user.Role).Msg("Could not resolve role name for login response")
	} else if role != nil {
		roleName = role.Name
	}

	return &dto.LoginResponse{
		Token:     "Bearer " + token,
		Email:     user.Email,
		UserID:    user.UserID,
		Role:      roleName,
		ExpiresIn: expiresIn,
	}, nil
}

// Create registers a new user. The password is hashed and a user_id is
// generated when the caller did not supply one.
func (s *UserService) Create(ctx context.Context, user *models.User) (*models.User, error) {
	if user.UserID == "" {
		user.UserID = newPublicID("USR")
	}
	if user.Status == "" {
		user.Status = models.StatusActive
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user. A miss returns (nil, nil).
func (s *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id)
}

// List retrieves every user, oldest first.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

// Update replaces a user's fields and returns the post-update record. The
// user_id is immutable and the new password is hashed before storage. A miss
// returns (nil, nil).
func (s *UserService) Update(ctx context.Context, id int64, user *models.User) (*models.User, error) {
	existing, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, nil
	}

	user.UserID = existing.UserID
	if user.Status == "" {
		user.Status = existing.Status
	}

	hashed, err := auth.HashPassword(user.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed

	return s.userRepo.Update(ctx, id, user)
}

// Delete removes a user and returns the removed record, or (nil, nil) if it
// did not exist.
func (s *UserService) Delete(ctx context.Context, id int64) (*models.User, error) {
	return s.userRepo.Delete(ctx, id)
}
