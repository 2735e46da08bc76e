// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Settlement holds the derived figures of one auction: what the foreman
// takes, what the members split, and what everyone owes for the cycle.
type Settlement struct {
	CommissionAmount    decimal.Decimal
	Discount            decimal.Decimal
	NetDiscount         decimal.Decimal
	DividendPerMember   decimal.Decimal
	FinalAmountToBePaid decimal.Decimal
	AmountPaidToWinner  decimal.Decimal
}

// AuctionRecord represents one settled auction of a group. Records are
// immutable once created; there is no edit path.
type AuctionRecord struct {
	ID                  uuid.UUID
	GroupID             uuid.UUID
	AuctionNumber       int // 1..tenure, unique per group
	WinnerMemberID      uuid.UUID
	WinningBidAmount    decimal.Decimal
	CommissionAmount    decimal.Decimal
	Discount            decimal.Decimal
	NetDiscount         decimal.Decimal
	DividendPerMember   decimal.Decimal
	FinalAmountToBePaid decimal.Decimal // installment charged to every member for this cycle
	AmountPaidToWinner  decimal.Decimal
	AuctionDate         time.Time
	AuctionMonth        string // "YYYY-MM"
	AuctionTime         string // "HH:MM", display only
	BilledMemberIDs     []uuid.UUID // members whose due was incremented at settlement time
	RecordedBy          uuid.UUID
	RecordedAt          time.Time
}

// NewAuctionRecord creates an AuctionRecord from a group, a winner and a
// computed settlement.
func NewAuctionRecord(
	groupID uuid.UUID,
	auctionNumber int,
	winnerMemberID uuid.UUID,
	winningBidAmount decimal.Decimal,
	settlement Settlement,
	auctionDate time.Time,
	auctionTime string,
	billedMemberIDs []uuid.UUID,
	recordedBy uuid.UUID,
) *AuctionRecord {
	return &AuctionRecord{
		ID:                  uuid.New(),
		GroupID:             groupID,
		AuctionNumber:       auctionNumber,
		WinnerMemberID:      winnerMemberID,
		WinningBidAmount:    winningBidAmount,
		CommissionAmount:    settlement.CommissionAmount,
		Discount:            settlement.Discount,
		NetDiscount:         settlement.NetDiscount,
		DividendPerMember:   settlement.DividendPerMember,
		FinalAmountToBePaid: settlement.FinalAmountToBePaid,
		AmountPaidToWinner:  settlement.AmountPaidToWinner,
		AuctionDate:         auctionDate,
		AuctionMonth:        auctionDate.Format("2006-01"),
		AuctionTime:         auctionTime,
		BilledMemberIDs:     billedMemberIDs,
		RecordedBy:          recordedBy,
		RecordedAt:          time.Now().UTC(),
	}
}
