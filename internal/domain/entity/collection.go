// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMode represents how a collection was paid.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeUPI  PaymentMode = "upi"
	PaymentModeBank PaymentMode = "bank"
)

// CollectionRecord represents money collected from a member, either
// against a specific auction due or as a general payment. Append-only:
// records are never edited or deleted.
type CollectionRecord struct {
	ID            uuid.UUID
	ReceiptNumber string // unique 7-digit, from the receipt sequence
	GroupID       uuid.UUID
	AuctionID     *uuid.UUID // nil for general due payments
	AuctionNumber *int
	MemberID      uuid.UUID
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentTime   string // "HH:MM", display only
	PaymentMode   PaymentMode

	// Snapshots taken at recording time, for receipts and audits.
	ChitAmountForDue           decimal.Decimal // the installment this payment settles against
	DueBeforePayment           decimal.Decimal // member total due before this payment
	BalanceForThisInstallment  decimal.Decimal // chit amount minus everything paid for the due, this payment included

	VirtualTransactionID string // cosmetic, not unique
	RecordedBy           uuid.UUID
	RecordedAt           time.Time
}
