// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseType classifies an expense record as money received or spent.
type ExpenseType string

const (
	ExpenseTypeReceived ExpenseType = "received"
	ExpenseTypeSpend    ExpenseType = "spend"
)

// PaymentRecord represents a payout to an auction winner. Append-only.
type PaymentRecord struct {
	ID          uuid.UUID
	GroupID     uuid.UUID
	AuctionID   uuid.UUID
	MemberID    uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	PaymentTime string
	PaymentMode PaymentMode
	Notes       string
	RecordedBy  uuid.UUID
	RecordedAt  time.Time
}

// CreditRecord represents money received from a source outside the chit
// cycle, e.g. an owner deposit. Append-only.
type CreditRecord struct {
	ID          uuid.UUID
	Source      string
	Amount      decimal.Decimal
	CreditDate  time.Time
	Description string
	RecordedBy  uuid.UUID
	RecordedAt  time.Time
}

// ExpenseRecord represents office money received or spent. Append-only.
type ExpenseRecord struct {
	ID          uuid.UUID
	Type        ExpenseType
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Description string
	RecordedBy  uuid.UUID
	RecordedAt  time.Time
}

// SalaryRecord represents a salary payout to an employee. Append-only.
type SalaryRecord struct {
	ID         uuid.UUID
	EmployeeID uuid.UUID
	Amount     decimal.Decimal
	SalaryDate time.Time
	Month      string // "YYYY-MM"
	Notes      string
	RecordedBy uuid.UUID
	RecordedAt time.Time
}

// LedgerEntryKind identifies the source collection of a day-sheet row.
type LedgerEntryKind string

const (
	LedgerEntryCollection      LedgerEntryKind = "collection"
	LedgerEntryCredit          LedgerEntryKind = "credit"
	LedgerEntryExpenseReceived LedgerEntryKind = "expense_received"
	LedgerEntryPayment         LedgerEntryKind = "payment"
	LedgerEntrySalary          LedgerEntryKind = "salary"
	LedgerEntryExpenseSpend    LedgerEntryKind = "expense_spend"
)

// IsCredit reports whether entries of this kind add money to the office
// cash position.
func (k LedgerEntryKind) IsCredit() bool {
	switch k {
	case LedgerEntryCollection, LedgerEntryCredit, LedgerEntryExpenseReceived:
		return true
	}
	return false
}

// LedgerEntry is the common shape every ledger collection reduces to for
// day-sheet and master-ledger aggregation.
type LedgerEntry struct {
	ID          uuid.UUID
	Kind        LedgerEntryKind
	Amount      decimal.Decimal
	Description string
	Reference   string // receipt number, member name, etc., for display
	RecordedAt  time.Time
}
