// Package collection contains collection recording use cases.
package collection

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// RecordCollectionInput represents the input for recording a collection.
type RecordCollectionInput struct {
	GroupID       uuid.UUID
	MemberID      uuid.UUID
	AuctionNumber *int // nil records a general due payment
	Amount        decimal.Decimal
	PaymentDate   time.Time
	PaymentTime   string
	PaymentMode   entity.PaymentMode
	RecordedBy    uuid.UUID
}

// RecordCollectionOutput represents the output of recording a collection.
type RecordCollectionOutput struct {
	Record *entity.CollectionRecord
}

// RecordCollectionUseCase records money collected from a member and moves
// the member's due accumulator in the same transaction. Overpayment is
// allowed and produces a negative installment balance.
type RecordCollectionUseCase struct {
	groupRepo      adapter.GroupRepository
	memberRepo     adapter.MemberRepository
	auctionRepo    adapter.AuctionRepository
	collectionRepo adapter.CollectionRepository
	notifyQueue    adapter.NotificationQueueRepository
}

// NewRecordCollectionUseCase creates a new RecordCollectionUseCase instance.
func NewRecordCollectionUseCase(
	groupRepo adapter.GroupRepository,
	memberRepo adapter.MemberRepository,
	auctionRepo adapter.AuctionRepository,
	collectionRepo adapter.CollectionRepository,
	notifyQueue adapter.NotificationQueueRepository,
) *RecordCollectionUseCase {
	return &RecordCollectionUseCase{
		groupRepo:      groupRepo,
		memberRepo:     memberRepo,
		auctionRepo:    auctionRepo,
		collectionRepo: collectionRepo,
		notifyQueue:    notifyQueue,
	}
}

// Execute performs the collection recording.
func (uc *RecordCollectionUseCase) Execute(ctx context.Context, input RecordCollectionInput) (*RecordCollectionOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewCollectionError(
			domainerror.ErrCodeInvalidCollectionAmount,
			"collection amount must be positive",
			domainerror.ErrInvalidCollectionAmount,
		)
	}

	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	member, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	isMember, err := uc.groupRepo.HasMember(ctx, group.ID, member.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check group membership: %w", err)
	}
	if !isMember {
		return nil, domainerror.NewCollectionError(
			domainerror.ErrCodeMemberNotInGroup,
			"member does not belong to group",
			domainerror.ErrMemberNotInGroup,
		)
	}

	// The installment this payment settles against: the selected
	// auction's final amount, or the group rate for general payments.
	chitAmount := group.Rate
	var auctionID *uuid.UUID
	if input.AuctionNumber != nil {
		auctionRecord, err := uc.auctionRepo.FindByGroupAndNumber(ctx, group.ID, *input.AuctionNumber)
		if err != nil {
			return nil, err
		}
		chitAmount = auctionRecord.FinalAmountToBePaid
		auctionID = &auctionRecord.ID
	}

	record, err := uc.collectionRepo.Create(ctx, adapter.RecordCollectionParams{
		GroupID:              group.ID,
		MemberID:             member.ID,
		AuctionID:            auctionID,
		AuctionNumber:        input.AuctionNumber,
		Amount:               input.Amount,
		ChitAmountForDue:     chitAmount,
		PaymentDate:          input.PaymentDate,
		PaymentTime:          input.PaymentTime,
		PaymentMode:          input.PaymentMode,
		VirtualTransactionID: newVirtualTransactionID(),
		RecordedBy:           input.RecordedBy,
	})
	if err != nil {
		return nil, err
	}

	slog.Info("Collection recorded",
		"receipt_number", record.ReceiptNumber,
		"group_id", group.ID,
		"member_id", member.ID,
		"amount", record.Amount.StringFixed(2),
	)

	// Receipt email is best effort; a queue failure never unwinds the
	// ledger write.
	uc.queueReceiptEmail(ctx, group, member, record)

	return &RecordCollectionOutput{Record: record}, nil
}

func (uc *RecordCollectionUseCase) queueReceiptEmail(
	ctx context.Context,
	group *entity.Group,
	member *entity.Member,
	record *entity.CollectionRecord,
) {
	if member.Email == "" {
		return
	}

	subject := fmt.Sprintf("Receipt %s - %s", record.ReceiptNumber, group.GroupName)
	message := fmt.Sprintf(
		"Dear %s, we received %s towards %s on %s. Receipt no: %s. Outstanding due: %s.",
		member.FullName,
		record.Amount.StringFixed(2),
		group.GroupName,
		record.PaymentDate.Format("02-01-2006"),
		record.ReceiptNumber,
		record.DueBeforePayment.Sub(record.Amount).StringFixed(2),
	)

	job := entity.NewNotificationJob(entity.NotificationChannelEmail, member.Email, subject, message, &member.ID)
	if err := uc.notifyQueue.Enqueue(ctx, job); err != nil {
		slog.Warn("Failed to queue receipt email",
			"member_id", member.ID,
			"receipt_number", record.ReceiptNumber,
			"error", err,
		)
	}
}

// newVirtualTransactionID builds the cosmetic transaction id printed on
// receipts. It is random but not required to be unique.
func newVirtualTransactionID() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		return "TXN" + uuid.New().String()[:12]
	}
	return "TXN" + strings.ToUpper(hex.EncodeToString(buf))
}
