// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Auction domain errors.
var (
	// ErrDuplicateAuctionNumber is returned when the auction number is already settled for the group.
	ErrDuplicateAuctionNumber = errors.New("auction number already recorded for group")

	// ErrAuctionNumberOutOfRange is returned when the auction number is outside 1..tenure.
	ErrAuctionNumberOutOfRange = errors.New("auction number exceeds group tenure")

	// ErrWinnerAlreadyWon is returned when the chosen winner has a prior win in the group.
	ErrWinnerAlreadyWon = errors.New("member has already won an auction in this group")

	// ErrWinnerNotInGroup is returned when the chosen winner is not a member of the group.
	ErrWinnerNotInGroup = errors.New("winner is not a member of the group")

	// ErrInvalidBidAmount is returned when the winning bid exceeds the maximum allowed bid.
	ErrInvalidBidAmount = errors.New("winning bid exceeds maximum allowed bid")

	// ErrBidBelowMinimum is returned when the winning bid is below the group's minimum bid.
	ErrBidBelowMinimum = errors.New("winning bid is below the group minimum")

	// ErrAuctionNotFound is returned when an auction record is not found.
	ErrAuctionNotFound = errors.New("auction record not found")
)

// AuctionErrorCode defines error codes for auction errors.
// Format: AUC-XXYYYY where XX is category and YYYY is specific error.
type AuctionErrorCode string

const (
	ErrCodeDuplicateAuctionNumber  AuctionErrorCode = "AUC-010001"
	ErrCodeAuctionNumberOutOfRange AuctionErrorCode = "AUC-010002"
	ErrCodeWinnerAlreadyWon        AuctionErrorCode = "AUC-010003"
	ErrCodeWinnerNotInGroup        AuctionErrorCode = "AUC-010004"
	ErrCodeInvalidBidAmount        AuctionErrorCode = "AUC-010005"
	ErrCodeBidBelowMinimum         AuctionErrorCode = "AUC-010006"
	ErrCodeAuctionNotFound         AuctionErrorCode = "AUC-010007"
	ErrCodeMissingAuctionFields    AuctionErrorCode = "AUC-010008"
)

// AuctionError represents an auction error with code and message.
type AuctionError struct {
	Code    AuctionErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuctionError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuctionError) Unwrap() error {
	return e.Err
}

// NewAuctionError creates a new AuctionError with the given code and message.
func NewAuctionError(code AuctionErrorCode, message string, err error) *AuctionError {
	return &AuctionError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
