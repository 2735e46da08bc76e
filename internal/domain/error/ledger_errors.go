// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Ledger entry domain errors (payments, credits, expenses, salaries, day sheet).
var (
	// ErrInvalidLedgerAmount is returned when a ledger entry amount is not positive.
	ErrInvalidLedgerAmount = errors.New("ledger amount must be positive")

	// ErrInvalidExpenseType is returned when the expense type is neither received nor spend.
	ErrInvalidExpenseType = errors.New("invalid expense type")

	// ErrPaymentExceedsWinnerAmount is returned when a winner payout exceeds what the auction owes.
	ErrPaymentExceedsWinnerAmount = errors.New("payment exceeds amount owed to winner")

	// ErrInvalidDaySheetDate is returned when the day-sheet target date is malformed.
	ErrInvalidDaySheetDate = errors.New("invalid day sheet date")

	// ErrInvalidLedgerRange is returned when a master-ledger range is reversed or empty.
	ErrInvalidLedgerRange = errors.New("invalid ledger date range")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is category and YYYY is specific error.
type LedgerErrorCode string

const (
	ErrCodeInvalidLedgerAmount        LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidExpenseType         LedgerErrorCode = "LGR-010002"
	ErrCodePaymentExceedsWinnerAmount LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidDaySheetDate        LedgerErrorCode = "LGR-010004"
	ErrCodeInvalidLedgerRange         LedgerErrorCode = "LGR-010005"
	ErrCodeMissingLedgerFields        LedgerErrorCode = "LGR-010006"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
