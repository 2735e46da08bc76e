// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when login credentials are wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrEmployeeNotFound is returned when an employee account is not found.
	ErrEmployeeNotFound = errors.New("employee not found")

	// ErrPhoneAlreadyRegistered is returned when the phone number is taken by another employee.
	ErrPhoneAlreadyRegistered = errors.New("phone number already registered")

	// ErrWeakPassword is returned when the password does not meet minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrInvalidToken is returned when a token is invalid or expired.
	ErrInvalidToken = errors.New("invalid or expired token")

	// ErrTokenRevoked is returned when a refresh token has been revoked.
	ErrTokenRevoked = errors.New("token has been revoked")

	// ErrAdminRequired is returned when a non-admin calls an admin-only operation.
	ErrAdminRequired = errors.New("admin role required")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword       AuthErrorCode = "AUTH-010002"
	ErrCodePhoneExists        AuthErrorCode = "AUTH-010003"
	ErrCodeEmployeeNotFound   AuthErrorCode = "AUTH-010004"

	// Token errors (02XXXX)
	ErrCodeMissingToken  AuthErrorCode = "AUTH-020001"
	ErrCodeInvalidToken  AuthErrorCode = "AUTH-020002"
	ErrCodeTokenRevoked  AuthErrorCode = "AUTH-020003"
	ErrCodeAdminRequired AuthErrorCode = "AUTH-020004"

	// Rate limiting (03XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-030001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
