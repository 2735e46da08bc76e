// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Group domain errors.
var (
	// ErrGroupNotFound is returned when a group is not found.
	ErrGroupNotFound = errors.New("group not found")

	// ErrGroupFull is returned when adding a member would exceed total people.
	ErrGroupFull = errors.New("group already has its total number of members")

	// ErrMemberAlreadyInGroup is returned when the member already holds a seat in the group.
	ErrMemberAlreadyInGroup = errors.New("member already belongs to group")

	// ErrInvalidTenure is returned when the tenure is not a positive month count.
	ErrInvalidTenure = errors.New("tenure must be at least one month")

	// ErrInvalidGroupAmounts is returned when total amount or rate is not positive.
	ErrInvalidGroupAmounts = errors.New("group amounts must be positive")

	// ErrTooManyInitialMembers is returned when a group is created with more members than seats.
	ErrTooManyInitialMembers = errors.New("initial members exceed total people")
)

// GroupErrorCode defines error codes for group errors.
// Format: GRP-XXYYYY where XX is category and YYYY is specific error.
type GroupErrorCode string

const (
	ErrCodeGroupNotFound         GroupErrorCode = "GRP-010001"
	ErrCodeGroupFull             GroupErrorCode = "GRP-010002"
	ErrCodeMemberAlreadyInGroup  GroupErrorCode = "GRP-010003"
	ErrCodeInvalidTenure         GroupErrorCode = "GRP-010004"
	ErrCodeInvalidGroupAmounts   GroupErrorCode = "GRP-010005"
	ErrCodeTooManyInitialMembers GroupErrorCode = "GRP-010006"
	ErrCodeMissingGroupFields    GroupErrorCode = "GRP-010007"
)

// GroupError represents a group error with code and message.
type GroupError struct {
	Code    GroupErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *GroupError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *GroupError) Unwrap() error {
	return e.Err
}

// NewGroupError creates a new GroupError with the given code and message.
func NewGroupError(code GroupErrorCode, message string, err error) *GroupError {
	return &GroupError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
