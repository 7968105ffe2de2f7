package apperrors

import "errors"

// Common errors
var (
	// Resource errors
	ErrRecordNotFound        = errors.New("record not found")
	ErrResourceAlreadyExists = errors.New("resource already exists")
	ErrInvalidID             = errors.New("invalid id")

	// Authentication errors
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrTokenExpired       = errors.New("token expired")
	ErrTokenInvalid       = errors.New("invalid token")
	ErrAccountInactive    = errors.New("account is inactive")

	// Authorization errors
	ErrPermissionDenied       = errors.New("permission denied")
	ErrAdminRoleNotConfigured = errors.New("admin role is not configured")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// User errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailAlreadyExists = errors.New("email already exists")
	ErrUserIDExists       = errors.New("user id already exists")
)

// Role errors
var (
	ErrRoleNameExists = errors.New("role with this name already exists")
)

// Batch errors
var (
	ErrBatchNameExists = errors.New("batch with this name already exists")
)

// Attendance errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")
	ErrEditWindowExpired  = errors.New("attendance edit window has expired")
)

// CustomError carries additional context for application errors.
type CustomError struct {
	Err     error
	Message string
	Code    string
}

// Error implements the error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewCustomError creates a CustomError wrapping err
func NewCustomError(err error, message string) *CustomError {
	return &CustomError{
		Err:     err,
		Message: message,
	}
}

// WithCode adds a stable error code
func (e *CustomError) WithCode(code string) *CustomError {
	e.Code = code
	return e
}
