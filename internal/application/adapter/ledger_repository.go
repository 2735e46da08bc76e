// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// LedgerTotals holds summed credits and debits over a period.
type LedgerTotals struct {
	Credits decimal.Decimal
	Debits  decimal.Decimal
}

// LedgerRepository defines the interface for the outflow ledger rows and
// the cross-collection scans behind the day sheet and master ledger.
type LedgerRepository interface {
	// CreatePayment records a payout to an auction winner.
	CreatePayment(ctx context.Context, payment *entity.PaymentRecord) error

	// CreateCredit records money received from an outside source.
	CreateCredit(ctx context.Context, credit *entity.CreditRecord) error

	// CreateExpense records office money received or spent.
	CreateExpense(ctx context.Context, expense *entity.ExpenseRecord) error

	// CreateSalary records a salary payout to an employee.
	CreateSalary(ctx context.Context, salary *entity.SalaryRecord) error

	// SumPaymentsForAuction sums payouts already recorded against an auction.
	SumPaymentsForAuction(ctx context.Context, auctionID uuid.UUID) (decimal.Decimal, error)

	// ListPaymentsByGroup retrieves a group's payment records, newest first.
	ListPaymentsByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.PaymentRecord, error)

	// TotalsBefore sums every ledger collection recorded strictly before
	// the given instant, split into credits and debits.
	TotalsBefore(ctx context.Context, before time.Time) (*LedgerTotals, error)

	// EntriesBetween scans every ledger collection for rows recorded in
	// [from, to) and reduces them to the common entry shape, unsorted.
	EntriesBetween(ctx context.Context, from, to time.Time) ([]*entity.LedgerEntry, error)
}
