// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// RecordCollectionParams carries everything known about a collection
// before the transactional part begins. Due snapshots and the receipt
// number are derived inside the transaction.
type RecordCollectionParams struct {
	GroupID              uuid.UUID
	MemberID             uuid.UUID
	AuctionID            *uuid.UUID
	AuctionNumber        *int
	Amount               decimal.Decimal
	ChitAmountForDue     decimal.Decimal
	PaymentDate          time.Time
	PaymentTime          string
	PaymentMode          entity.PaymentMode
	VirtualTransactionID string
	RecordedBy           uuid.UUID
}

// CollectionRepository defines the interface for collection record persistence operations.
type CollectionRepository interface {
	// Create records a collection in a single transaction: locks the
	// member row, snapshots the due, sums prior payments toward the same
	// due, allocates the next receipt number, inserts the record and
	// decrements the member's due by the paid amount. The returned record
	// carries all snapshot fields.
	Create(ctx context.Context, params RecordCollectionParams) (*entity.CollectionRecord, error)

	// FindByID retrieves a collection record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.CollectionRecord, error)

	// FindByReceiptNumber retrieves a collection record by its receipt number.
	FindByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.CollectionRecord, error)

	// ListByMember retrieves a member's collection records, newest first.
	ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.CollectionRecord, error)

	// ListByGroup retrieves a group's collection records, newest first.
	ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.CollectionRecord, error)

	// SumForDue sums all collection amounts recorded for one member
	// against one auction number of a group.
	SumForDue(ctx context.Context, groupID, memberID uuid.UUID, auctionNumber int) (decimal.Decimal, error)

	// SumByMember sums all collection amounts ever recorded for a member.
	SumByMember(ctx context.Context, memberID uuid.UUID) (decimal.Decimal, error)
}
