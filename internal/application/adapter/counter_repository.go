// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import "context"

// Counter names used by the application.
const (
	CounterMemberUsername = "member_username"
	CounterEmployeeID     = "employee_id"
	CounterReceiptNumber  = "receipt_number"
)

// CounterRepository provides transactional monotonic sequences. Each
// counter is a single row incremented inside a transaction, so two
// concurrent callers can never observe the same value.
type CounterRepository interface {
	// Next increments the named counter and returns the new value. A
	// counter that does not exist yet is created at seed, and the first
	// returned value is seed+1.
	Next(ctx context.Context, name string, seed int64) (int64, error)
}
