package member

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// ReconcileDueInput identifies the member whose due to rebuild.
type ReconcileDueInput struct {
	MemberID uuid.UUID
}

// ReconcileDueOutput carries the reconciliation result.
type ReconcileDueOutput struct {
	Reconciliation *entity.DueReconciliation
}

// ReconcileDueUseCase rebuilds a member's due accumulator from the
// immutable ledger: every installment billed by a settled auction minus
// every collection ever recorded. The auction records carry a snapshot
// of who was billed, so members who joined a group after a settlement
// are not charged for it retroactively.
type ReconcileDueUseCase struct {
	memberRepo     adapter.MemberRepository
	groupRepo      adapter.GroupRepository
	auctionRepo    adapter.AuctionRepository
	collectionRepo adapter.CollectionRepository
}

// NewReconcileDueUseCase creates a new ReconcileDueUseCase.
func NewReconcileDueUseCase(
	memberRepo adapter.MemberRepository,
	groupRepo adapter.GroupRepository,
	auctionRepo adapter.AuctionRepository,
	collectionRepo adapter.CollectionRepository,
) *ReconcileDueUseCase {
	return &ReconcileDueUseCase{
		memberRepo:     memberRepo,
		groupRepo:      groupRepo,
		auctionRepo:    auctionRepo,
		collectionRepo: collectionRepo,
	}
}

// Execute recomputes the due, overwrites the stored accumulator when it
// drifted and reports both values.
func (uc *ReconcileDueUseCase) Execute(ctx context.Context, input ReconcileDueInput) (*ReconcileDueOutput, error) {
	m, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	groups, err := uc.groupRepo.GroupsOfMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	billed := decimal.Zero
	if len(groups) > 0 {
		groupIDs := make([]uuid.UUID, 0, len(groups))
		for _, g := range groups {
			groupIDs = append(groupIDs, g.ID)
		}

		auctions, err := uc.auctionRepo.FindByGroups(ctx, groupIDs)
		if err != nil {
			return nil, err
		}
		for _, a := range auctions {
			if billsMember(a, input.MemberID) {
				billed = billed.Add(a.FinalAmountToBePaid)
			}
		}
	}

	collected, err := uc.collectionRepo.SumByMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	computed := billed.Sub(collected)
	drift := computed.Sub(m.DueAmount)
	corrected := !drift.IsZero()

	if corrected {
		if err := uc.memberRepo.SetDueAmount(ctx, input.MemberID, computed); err != nil {
			return nil, err
		}
		slog.Warn("member due corrected",
			"member_id", input.MemberID,
			"stored", m.DueAmount.String(),
			"computed", computed.String(),
			"drift", drift.String(),
		)
	}

	return &ReconcileDueOutput{Reconciliation: &entity.DueReconciliation{
		MemberID:     input.MemberID,
		StoredDue:    m.DueAmount,
		ComputedDue:  computed,
		Drift:        drift,
		Corrected:    corrected,
		ReconciledAt: time.Now().UTC(),
	}}, nil
}

func billsMember(a *entity.AuctionRecord, memberID uuid.UUID) bool {
	if !a.FinalAmountToBePaid.IsPositive() {
		return false
	}
	for _, id := range a.BilledMemberIDs {
		if id == memberID {
			return true
		}
	}
	return false
}
