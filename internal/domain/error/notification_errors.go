// Package error defines domain-specific errors for the chit-fund application.
package error

import "errors"

// Notification domain errors.
var (
	// ErrNoRecipient is returned when a notification has no phone number or email to deliver to.
	ErrNoRecipient = errors.New("notification has no recipient")

	// ErrSMSGatewayNotConfigured is returned when SMS sending is attempted without a gateway URL.
	ErrSMSGatewayNotConfigured = errors.New("sms gateway not configured")

	// ErrReminderAlreadySent is returned when the member already received a due reminder today.
	ErrReminderAlreadySent = errors.New("member already reminded today")
)

// NotificationErrorCode defines error codes for notification errors.
// Format: NTF-XXYYYY where XX is category and YYYY is specific error.
type NotificationErrorCode string

const (
	ErrCodeNoRecipient             NotificationErrorCode = "NTF-010001"
	ErrCodeSMSGatewayNotConfigured NotificationErrorCode = "NTF-010002"
	ErrCodeReminderAlreadySent     NotificationErrorCode = "NTF-010003"

	// Delivery failures (02XXXX)
	ErrCodeTemporaryDeliveryFailure NotificationErrorCode = "NTF-020001"
	ErrCodePermanentDeliveryFailure NotificationErrorCode = "NTF-020002"
)

// NotificationError represents a notification error with code and message.
type NotificationError struct {
	Code    NotificationErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *NotificationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *NotificationError) Unwrap() error {
	return e.Err
}

// NewNotificationError creates a new NotificationError with the given code and message.
func NewNotificationError(code NotificationErrorCode, message string, err error) *NotificationError {
	return &NotificationError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// IsPermanent reports whether a notification error should not be retried.
func (e *NotificationError) IsPermanent() bool {
	return e.Code == ErrCodePermanentDeliveryFailure ||
		e.Code == ErrCodeNoRecipient ||
		e.Code == ErrCodeSMSGatewayNotConfigured
}
