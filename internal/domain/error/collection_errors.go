// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Collection domain errors.
var (
	// ErrCollectionNotFound is returned when a collection record is not found.
	ErrCollectionNotFound = errors.New("collection record not found")

	// ErrMemberNotInGroup is returned when the paying member holds no seat in the group.
	ErrMemberNotInGroup = errors.New("member does not belong to group")

	// ErrInvalidCollectionAmount is returned when the collection amount is not positive.
	ErrInvalidCollectionAmount = errors.New("collection amount must be positive")

	// ErrReceiptNumberExhausted is returned when the receipt sequence has no numbers left.
	// The whole collection write is aborted; nothing is persisted.
	ErrReceiptNumberExhausted = errors.New("receipt number range exhausted")
)

// CollectionErrorCode defines error codes for collection errors.
// Format: COL-XXYYYY where XX is category and YYYY is specific error.
type CollectionErrorCode string

const (
	ErrCodeCollectionNotFound      CollectionErrorCode = "COL-010001"
	ErrCodeMemberNotInGroup        CollectionErrorCode = "COL-010002"
	ErrCodeInvalidCollectionAmount CollectionErrorCode = "COL-010003"
	ErrCodeMissingCollectionFields CollectionErrorCode = "COL-010004"

	// Receipt sequence exhaustion (019999) aborts the whole operation.
	ErrCodeReceiptNumberExhausted CollectionErrorCode = "COL-019999"
)

// CollectionError represents a collection error with code and message.
type CollectionError struct {
	Code    CollectionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CollectionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CollectionError) Unwrap() error {
	return e.Err
}

// NewCollectionError creates a new CollectionError with the given code and message.
func NewCollectionError(code CollectionErrorCode, message string, err error) *CollectionError {
	return &CollectionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
