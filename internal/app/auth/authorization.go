package auth

import (
	"context"

	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/logger"
)

// roleFinder is the slice of the role repository the authorization check
// needs.
type roleFinder interface {
	GetByName(ctx context.Context, name string) (*models.Role, error)
}

// AuthorizationService decides whether an authenticated user holds the Admin
// role. The Admin role is looked up fresh on every check rather than cached;
// role cardinality is tiny and the mapping rarely changes.
type AuthorizationService struct {
	roleRepo roleFinder
}

// NewAuthorizationService creates a new AuthorizationService
func NewAuthorizationService(roleRepo roleFinder) *AuthorizationService {
	return &AuthorizationService{
		roleRepo: roleRepo,
	}
}

// IsAdmin reports whether the user's assigned role is the Admin role. A
// missing Admin role is a deployment defect and surfaces as
// ErrAdminRoleNotConfigured, not as a denial.
func (s *AuthorizationService) IsAdmin(ctx context.Context, user *models.User) (bool, error) {
	if user == nil {
		return false, apperrors.ErrUnauthenticated
	}

	adminRole, err := s.roleRepo.GetByName(ctx, models.AdminRoleName)
	if err != nil {
		logger.Error().Err(err).Msg("Error looking up Admin role")
		return false, err
	}
	if adminRole == nil {
		logger.Error().Msg("Admin role does not exist; privileged endpoints are unusable")
		return false, apperrors.ErrAdminRoleNotConfigured
	}

	return user.Role == adminRole.ID, nil
}

// ValidateAdmin returns nil when the user holds the Admin role and
// ErrPermissionDenied otherwise.
func (s *AuthorizationService) ValidateAdmin(ctx context.Context, user *models.User) error {
	isAdmin, err := s.IsAdmin(ctx, user)
	if err != nil {
		return err
	}
	if !isAdmin {
		return apperrors.ErrPermissionDenied
	}
	return nil
}
