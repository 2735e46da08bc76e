// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Member represents a chit-fund subscriber.
//
// DueAmount is a denormalized running total: incremented by auction
// settlement, decremented by collection recording. It can be rebuilt from
// the immutable ledger through the reconcile operation.
type Member struct {
	ID         uuid.UUID
	Username   string // sequentially generated, e.g. CHT0042
	FullName   string
	Phone      string // unique
	Email      string // optional, used for receipt emails
	Address    string
	DueAmount  decimal.Decimal // signed: negative means credit balance
	AadhaarURL string
	PANURL     string
	PhotoURL   string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// NewMember creates a new Member entity with a zero due balance.
func NewMember(username, fullName, phone, email, address string) *Member {
	now := time.Now().UTC()

	return &Member{
		ID:        uuid.New(),
		Username:  username,
		FullName:  fullName,
		Phone:     phone,
		Email:     email,
		Address:   address,
		DueAmount: decimal.Zero,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// MemberWithGroups represents a member together with the groups they
// participate in.
type MemberWithGroups struct {
	Member *Member
	Groups []*GroupListItem
}

// DueReconciliation is the result of rebuilding a member's due total from
// the ledger. Drift is the correction that was applied to the stored
// accumulator (expected minus stored).
type DueReconciliation struct {
	MemberID     uuid.UUID
	StoredDue    decimal.Decimal
	ComputedDue  decimal.Decimal
	Drift        decimal.Decimal
	Corrected    bool
	ReconciledAt time.Time
}
