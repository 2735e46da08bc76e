// Package ledger contains outflow ledger use cases: winner payouts,
// credits, expenses and salaries.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// RecordPaymentInput contains the data for a winner payout.
type RecordPaymentInput struct {
	GroupID     uuid.UUID
	AuctionID   uuid.UUID
	Amount      decimal.Decimal
	PaymentDate time.Time
	PaymentTime string
	PaymentMode entity.PaymentMode
	Notes       string
	RecordedBy  uuid.UUID
}

// RecordPaymentOutput contains the persisted payout.
type RecordPaymentOutput struct {
	Payment *entity.PaymentRecord
}

// RecordPaymentUseCase records a payout to an auction winner. Partial
// payouts are allowed; the running total may never exceed what the
// settlement owes the winner.
type RecordPaymentUseCase struct {
	auctionRepo adapter.AuctionRepository
	ledgerRepo  adapter.LedgerRepository
}

// NewRecordPaymentUseCase creates a new RecordPaymentUseCase.
func NewRecordPaymentUseCase(auctionRepo adapter.AuctionRepository, ledgerRepo adapter.LedgerRepository) *RecordPaymentUseCase {
	return &RecordPaymentUseCase{
		auctionRepo: auctionRepo,
		ledgerRepo:  ledgerRepo,
	}
}

// Execute validates the payout against the auction and persists it.
func (uc *RecordPaymentUseCase) Execute(ctx context.Context, input RecordPaymentInput) (*RecordPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerAmount,
			"payment amount must be positive",
			domainerror.ErrInvalidLedgerAmount,
		)
	}

	auction, err := uc.auctionRepo.FindByID(ctx, input.AuctionID)
	if err != nil {
		return nil, err
	}

	alreadyPaid, err := uc.ledgerRepo.SumPaymentsForAuction(ctx, input.AuctionID)
	if err != nil {
		return nil, err
	}
	if alreadyPaid.Add(input.Amount).GreaterThan(auction.AmountPaidToWinner) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodePaymentExceedsWinnerAmount,
			"payment exceeds amount owed to winner",
			domainerror.ErrPaymentExceedsWinnerAmount,
		)
	}

	payment := &entity.PaymentRecord{
		ID:          uuid.New(),
		GroupID:     auction.GroupID,
		AuctionID:   auction.ID,
		MemberID:    auction.WinnerMemberID,
		Amount:      input.Amount,
		PaymentDate: input.PaymentDate,
		PaymentTime: input.PaymentTime,
		PaymentMode: input.PaymentMode,
		Notes:       input.Notes,
		RecordedBy:  input.RecordedBy,
		RecordedAt:  time.Now().UTC(),
	}

	if err := uc.ledgerRepo.CreatePayment(ctx, payment); err != nil {
		return nil, err
	}

	slog.Info("winner payment recorded",
		"auction_id", auction.ID,
		"member_id", auction.WinnerMemberID,
		"amount", input.Amount.String(),
		"paid_so_far", alreadyPaid.Add(input.Amount).String(),
	)

	return &RecordPaymentOutput{Payment: payment}, nil
}
