// Package auction contains auction settlement use cases.
package auction

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// StartAuctionInput represents the input for settling an auction.
type StartAuctionInput struct {
	GroupID          uuid.UUID
	AuctionNumber    int
	WinnerMemberID   uuid.UUID
	WinningBidAmount decimal.Decimal
	AuctionDate      time.Time
	AuctionTime      string
	RecordedBy       uuid.UUID
}

// StartAuctionOutput represents the output of settling an auction.
type StartAuctionOutput struct {
	Record        *entity.AuctionRecord
	BilledMembers int
}

// StartAuctionUseCase validates a winning bid, computes the settlement and
// persists it atomically: auction record, group pointer move and every
// member's due increment commit together or not at all.
type StartAuctionUseCase struct {
	groupRepo   adapter.GroupRepository
	auctionRepo adapter.AuctionRepository
}

// NewStartAuctionUseCase creates a new StartAuctionUseCase instance.
func NewStartAuctionUseCase(
	groupRepo adapter.GroupRepository,
	auctionRepo adapter.AuctionRepository,
) *StartAuctionUseCase {
	return &StartAuctionUseCase{
		groupRepo:   groupRepo,
		auctionRepo: auctionRepo,
	}
}

// Execute performs the auction settlement.
func (uc *StartAuctionUseCase) Execute(ctx context.Context, input StartAuctionInput) (*StartAuctionOutput, error) {
	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	// Auction number must stay within the group's tenure
	if input.AuctionNumber < 1 || input.AuctionNumber > group.Tenure {
		return nil, domainerror.NewAuctionError(
			domainerror.ErrCodeAuctionNumberOutOfRange,
			fmt.Sprintf("auction number must be between 1 and %d", group.Tenure),
			domainerror.ErrAuctionNumberOutOfRange,
		)
	}

	// One record per (group, auction number)
	exists, err := uc.auctionRepo.ExistsByGroupAndNumber(ctx, group.ID, input.AuctionNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to check auction number: %w", err)
	}
	if exists {
		return nil, domainerror.NewAuctionError(
			domainerror.ErrCodeDuplicateAuctionNumber,
			fmt.Sprintf("auction %d already recorded for this group", input.AuctionNumber),
			domainerror.ErrDuplicateAuctionNumber,
		)
	}

	// Winner must hold a seat in the group
	isMember, err := uc.groupRepo.HasMember(ctx, group.ID, input.WinnerMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewAuctionError(
			domainerror.ErrCodeWinnerNotInGroup,
			"winner is not a member of the group",
			domainerror.ErrWinnerNotInGroup,
		)
	}

	// Each member wins at most once per group
	won, err := uc.auctionRepo.HasWon(ctx, group.ID, input.WinnerMemberID)
	if err != nil {
		return nil, fmt.Errorf("failed to check prior wins: %w", err)
	}
	if won {
		return nil, domainerror.NewAuctionError(
			domainerror.ErrCodeWinnerAlreadyWon,
			"member has already won an auction in this group",
			domainerror.ErrWinnerAlreadyWon,
		)
	}

	// Bid bounds: minBid <= bid <= totalAmount - commission. A bid equal
	// to the maximum is accepted.
	maxBid := group.MaxAllowedBid()
	if input.WinningBidAmount.GreaterThan(maxBid) {
		return nil, domainerror.NewAuctionError(
			domainerror.ErrCodeInvalidBidAmount,
			fmt.Sprintf("winning bid must not exceed %s", maxBid.StringFixed(2)),
			domainerror.ErrInvalidBidAmount,
		)
	}
	if group.MinBid.IsPositive() && input.WinningBidAmount.LessThan(group.MinBid) {
		return nil, domainerror.NewAuctionError(
			domainerror.ErrCodeBidBelowMinimum,
			fmt.Sprintf("winning bid must be at least %s", group.MinBid.StringFixed(2)),
			domainerror.ErrBidBelowMinimum,
		)
	}

	settlement := ComputeSettlement(group, input.WinningBidAmount)

	// Members billed for this cycle, snapshotted at settlement time. An
	// installment that is not positive bills nobody.
	var billed []uuid.UUID
	if settlement.FinalAmountToBePaid.IsPositive() {
		billed, err = uc.groupRepo.MemberIDs(ctx, group.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load group members: %w", err)
		}
	}

	record := entity.NewAuctionRecord(
		group.ID,
		input.AuctionNumber,
		input.WinnerMemberID,
		input.WinningBidAmount,
		settlement,
		input.AuctionDate,
		input.AuctionTime,
		billed,
		input.RecordedBy,
	)

	pointer := nextAuctionPointer(input, record)
	if err := uc.auctionRepo.Settle(ctx, record, pointer); err != nil {
		return nil, fmt.Errorf("failed to settle auction: %w", err)
	}

	slog.Info("Auction settled",
		"group_id", group.ID,
		"auction_number", record.AuctionNumber,
		"winner_id", record.WinnerMemberID,
		"installment", record.FinalAmountToBePaid.StringFixed(2),
		"billed_members", len(billed),
	)

	return &StartAuctionOutput{
		Record:        record,
		BilledMembers: len(billed),
	}, nil
}

// nextAuctionPointer moves the group's next-auction display fields one
// month forward from the settled auction.
func nextAuctionPointer(input StartAuctionInput, record *entity.AuctionRecord) adapter.GroupAuctionPointer {
	nextDate := input.AuctionDate.AddDate(0, 1, 0)

	return adapter.GroupAuctionPointer{
		NextAuctionNumber:    input.AuctionNumber + 1,
		AuctionMonth:         nextDate.Format("2006-01"),
		AuctionScheduledDate: &nextDate,
		AuctionScheduledTime: input.AuctionTime,
		LastAuctionWinner:    input.WinnerMemberID,
		LastWinningBidAmount: input.WinningBidAmount,
	}
}
