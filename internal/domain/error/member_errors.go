// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Member domain errors.
var (
	// ErrMemberNotFound is returned when a member is not found.
	ErrMemberNotFound = errors.New("member not found")

	// ErrMemberPhoneExists is returned when the phone number is taken by another member.
	ErrMemberPhoneExists = errors.New("phone number already registered to a member")

	// ErrInvalidPhone is returned when the phone number is malformed.
	ErrInvalidPhone = errors.New("invalid phone number")
)

// MemberErrorCode defines error codes for member errors.
// Format: MBR-XXYYYY where XX is category and YYYY is specific error.
type MemberErrorCode string

const (
	ErrCodeMemberNotFound      MemberErrorCode = "MBR-010001"
	ErrCodeMemberPhoneExists   MemberErrorCode = "MBR-010002"
	ErrCodeInvalidPhone        MemberErrorCode = "MBR-010003"
	ErrCodeMissingMemberFields MemberErrorCode = "MBR-010004"
)

// MemberError represents a member error with code and message.
type MemberError struct {
	Code    MemberErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *MemberError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *MemberError) Unwrap() error {
	return e.Err
}

// NewMemberError creates a new MemberError with the given code and message.
func NewMemberError(code MemberErrorCode, message string, err error) *MemberError {
	return &MemberError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
