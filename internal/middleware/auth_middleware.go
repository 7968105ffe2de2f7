package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	appauth "github.com/collegehub/backend/internal/app/auth"
	"github.com/collegehub/backend/internal/app/models"
	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/auth"
	"github.com/collegehub/backend/internal/pkg/logger"
)

// userContextKey is where RequireAuth stores the resolved user on the gin
// context.
const userContextKey = "currentUser"

type userFinder interface {
	GetByUserID(ctx context.Context, userID string) (*models.User, error)
}

// AuthMiddleware resolves bearer tokens into users and gates privileged
// endpoints on the Admin role.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	userRepo   userFinder
	authz      *appauth.AuthorizationService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(jwtService *auth.JWTService, userRepo userFinder, authz *appauth.AuthorizationService) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		userRepo:   userRepo,
		authz:      authz,
	}
}

// RequireAuth validates the bearer token and attaches the resolved user to
// the context. Bad tokens and unknown or inactive accounts all fail with the
// same 401 so account existence does not leak.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		claims, err := m.jwtService.ValidateToken(tokenString)
		if err != nil {
			abortUnauthenticated(c)
			return
		}

		user, err := m.userRepo.GetByUserID(c.Request.Context(), claims.UserID)
		if err != nil {
			logger.Error().Err(err).Msg("Error resolving token subject")
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
			return
		}
		if user == nil || !user.IsActive() {
			abortUnauthenticated(c)
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// AdminRequired gates the request on the Admin role. Must run after
// RequireAuth.
func (m *AuthMiddleware) AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			abortUnauthenticated(c)
			return
		}

		if err := m.authz.ValidateAdmin(c.Request.Context(), user); err != nil {
			if errors.Is(err, apperrors.ErrPermissionDenied) {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied", nil))
				return
			}
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Next()
	}
}

// CurrentUser returns the user attached by RequireAuth.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

func abortUnauthenticated(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", nil))
}
