package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/collegehub/backend/internal/app/models/dto"
	"github.com/collegehub/backend/internal/pkg/apperrors"
	"github.com/collegehub/backend/internal/pkg/logger"
)

// HandleAPIError maps application errors onto the response envelope. Every
// controller funnels service failures through here so status codes and
// messages stay consistent across endpoints. Unrecognized errors become an
// opaque 500; the underlying cause is logged, never echoed to the client.
func HandleAPIError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidID):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid id", nil))

	case errors.Is(err, apperrors.ErrValidationFailed):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Validation failed", nil))

	case errors.Is(err, apperrors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("User not found", nil))

	case errors.Is(err, apperrors.ErrInvalidPassword):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid password", nil))

	case errors.Is(err, apperrors.ErrUnauthenticated),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid),
		errors.Is(err, apperrors.ErrAccountInactive):
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("Authentication required", nil))

	case errors.Is(err, apperrors.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, dto.NewErrorResponse("Permission denied", nil))

	case errors.Is(err, apperrors.ErrAdminRoleNotConfigured):
		logger.Error().Msg("Privileged request failed: Admin role is not configured")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Admin role is not configured", nil))

	case errors.Is(err, apperrors.ErrAttendanceNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Attendance record not found", nil))

	case errors.Is(err, apperrors.ErrEditWindowExpired):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Attendance record can no longer be edited", nil))

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Email already exists", nil))

	case errors.Is(err, apperrors.ErrUserIDExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("User id already exists", nil))

	case errors.Is(err, apperrors.ErrRoleNameExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Role with this name already exists", nil))

	case errors.Is(err, apperrors.ErrBatchNameExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Batch with this name already exists", nil))

	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		c.JSON(http.StatusConflict, dto.NewErrorResponse("Resource already exists", nil))

	case errors.Is(err, apperrors.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Record not found", nil))

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled error in request")
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", nil))
	}
}
