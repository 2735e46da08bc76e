// Package collection contains collection recording use cases.
package collection

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
)

// DueSheetInput represents the input for building a group's due sheet.
type DueSheetInput struct {
	GroupID uuid.UUID
}

// DueSheetRow represents one member's standing against one auction due.
type DueSheetRow struct {
	MemberID      uuid.UUID
	MemberName    string
	Username      string
	Phone         string
	AuctionNumber int
	ChitAmount    decimal.Decimal
	PaidSoFar     decimal.Decimal
	Balance       decimal.Decimal
}

// DueSheetOutput represents a group's due sheet: one row per billed member
// per settled auction, plus each member's running total due.
type DueSheetOutput struct {
	Rows      []DueSheetRow
	TotalDues map[uuid.UUID]decimal.Decimal
}

// DueSheetUseCase rebuilds per-installment balances from the immutable
// collection ledger, the same way receipts snapshot them.
type DueSheetUseCase struct {
	groupRepo      adapter.GroupRepository
	memberRepo     adapter.MemberRepository
	auctionRepo    adapter.AuctionRepository
	collectionRepo adapter.CollectionRepository
}

// NewDueSheetUseCase creates a new DueSheetUseCase instance.
func NewDueSheetUseCase(
	groupRepo adapter.GroupRepository,
	memberRepo adapter.MemberRepository,
	auctionRepo adapter.AuctionRepository,
	collectionRepo adapter.CollectionRepository,
) *DueSheetUseCase {
	return &DueSheetUseCase{
		groupRepo:      groupRepo,
		memberRepo:     memberRepo,
		auctionRepo:    auctionRepo,
		collectionRepo: collectionRepo,
	}
}

// Execute builds the due sheet for a group.
func (uc *DueSheetUseCase) Execute(ctx context.Context, input DueSheetInput) (*DueSheetOutput, error) {
	groupWithMembers, err := uc.groupRepo.FindWithMembers(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	auctions, err := uc.auctionRepo.FindByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	out := &DueSheetOutput{
		Rows:      []DueSheetRow{},
		TotalDues: make(map[uuid.UUID]decimal.Decimal, len(groupWithMembers.Members)),
	}

	for _, member := range groupWithMembers.Members {
		out.TotalDues[member.ID] = member.DueAmount

		for _, auction := range auctions {
			if !wasBilled(auction.BilledMemberIDs, member.ID) {
				continue
			}

			paid, err := uc.collectionRepo.SumForDue(ctx, input.GroupID, member.ID, auction.AuctionNumber)
			if err != nil {
				return nil, err
			}

			out.Rows = append(out.Rows, DueSheetRow{
				MemberID:      member.ID,
				MemberName:    member.FullName,
				Username:      member.Username,
				Phone:         member.Phone,
				AuctionNumber: auction.AuctionNumber,
				ChitAmount:    auction.FinalAmountToBePaid,
				PaidSoFar:     paid,
				Balance:       auction.FinalAmountToBePaid.Sub(paid),
			})
		}
	}

	return out, nil
}

func wasBilled(billed []uuid.UUID, memberID uuid.UUID) bool {
	for _, id := range billed {
		if id == memberID {
			return true
		}
	}
	return false
}
