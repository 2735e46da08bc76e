// Package auction contains auction settlement use cases.
package auction

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

type fakeGroupRepo struct {
	adapter.GroupRepository
	group     *entity.Group
	memberIDs []uuid.UUID
}

func (f *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	if f.group == nil || f.group.ID != id {
		return nil, domainerror.ErrGroupNotFound
	}
	return f.group, nil
}

func (f *fakeGroupRepo) HasMember(_ context.Context, _ uuid.UUID, memberID uuid.UUID) (bool, error) {
	for _, id := range f.memberIDs {
		if id == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeGroupRepo) MemberIDs(_ context.Context, _ uuid.UUID) ([]uuid.UUID, error) {
	return f.memberIDs, nil
}

type fakeAuctionRepo struct {
	adapter.AuctionRepository
	settledNumbers map[int]bool
	priorWinners   map[uuid.UUID]bool
	settled        *entity.AuctionRecord
	pointer        adapter.GroupAuctionPointer
}

func (f *fakeAuctionRepo) ExistsByGroupAndNumber(_ context.Context, _ uuid.UUID, n int) (bool, error) {
	return f.settledNumbers[n], nil
}

func (f *fakeAuctionRepo) HasWon(_ context.Context, _ uuid.UUID, memberID uuid.UUID) (bool, error) {
	return f.priorWinners[memberID], nil
}

func (f *fakeAuctionRepo) Settle(_ context.Context, record *entity.AuctionRecord, pointer adapter.GroupAuctionPointer) error {
	f.settled = record
	f.pointer = pointer
	return nil
}

func newTestFixture() (*fakeGroupRepo, *fakeAuctionRepo, StartAuctionInput) {
	group := entity.NewGroup(
		"Sendhur A1", "",
		10, 10,
		dec("100000"), dec("10000"), dec("2"), decimal.Zero,
		entity.BiddingTypeOpen,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		uuid.New(),
	)

	members := make([]uuid.UUID, 10)
	for i := range members {
		members[i] = uuid.New()
	}

	groupRepo := &fakeGroupRepo{group: group, memberIDs: members}
	auctionRepo := &fakeAuctionRepo{
		settledNumbers: map[int]bool{},
		priorWinners:   map[uuid.UUID]bool{},
	}

	input := StartAuctionInput{
		GroupID:          group.ID,
		AuctionNumber:    1,
		WinnerMemberID:   members[0],
		WinningBidAmount: dec("70000"),
		AuctionDate:      time.Date(2024, 4, 5, 0, 0, 0, 0, time.UTC),
		AuctionTime:      "18:00",
		RecordedBy:       uuid.New(),
	}

	return groupRepo, auctionRepo, input
}

func TestStartAuction_SettlesAndBillsAllMembers(t *testing.T) {
	groupRepo, auctionRepo, input := newTestFixture()
	uc := NewStartAuctionUseCase(groupRepo, auctionRepo)

	out, err := uc.Execute(context.Background(), input)
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if out.BilledMembers != 10 {
		t.Errorf("BilledMembers = %d, want 10", out.BilledMembers)
	}
	if auctionRepo.settled == nil {
		t.Fatal("settlement was not persisted")
	}
	if !auctionRepo.settled.FinalAmountToBePaid.Equal(dec("7200")) {
		t.Errorf("finalAmountToBePaid = %s, want 7200", auctionRepo.settled.FinalAmountToBePaid)
	}
	if !auctionRepo.settled.AmountPaidToWinner.Equal(dec("62800")) {
		t.Errorf("amountPaidToWinner = %s, want 62800", auctionRepo.settled.AmountPaidToWinner)
	}
	if len(auctionRepo.settled.BilledMemberIDs) != 10 {
		t.Errorf("billed member snapshot has %d ids, want 10", len(auctionRepo.settled.BilledMemberIDs))
	}
	if auctionRepo.pointer.NextAuctionNumber != 2 {
		t.Errorf("nextAuctionNumber = %d, want 2", auctionRepo.pointer.NextAuctionNumber)
	}
	if auctionRepo.pointer.AuctionMonth != "2024-05" {
		t.Errorf("auctionMonth = %q, want 2024-05", auctionRepo.pointer.AuctionMonth)
	}
}

func TestStartAuction_BidAtMaximumAccepted(t *testing.T) {
	groupRepo, auctionRepo, input := newTestFixture()
	input.WinningBidAmount = dec("98000") // exactly totalAmount - commission
	uc := NewStartAuctionUseCase(groupRepo, auctionRepo)

	if _, err := uc.Execute(context.Background(), input); err != nil {
		t.Fatalf("bid equal to maximum must be accepted, got error: %v", err)
	}
}

func TestStartAuction_Rejections(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*fakeGroupRepo, *fakeAuctionRepo, *StartAuctionInput)
		wantErr error
	}{
		{
			name: "bid above maximum",
			prepare: func(_ *fakeGroupRepo, _ *fakeAuctionRepo, in *StartAuctionInput) {
				in.WinningBidAmount = dec("98000.01")
			},
			wantErr: domainerror.ErrInvalidBidAmount,
		},
		{
			name: "duplicate auction number",
			prepare: func(_ *fakeGroupRepo, ar *fakeAuctionRepo, in *StartAuctionInput) {
				ar.settledNumbers[in.AuctionNumber] = true
			},
			wantErr: domainerror.ErrDuplicateAuctionNumber,
		},
		{
			name: "auction number beyond tenure",
			prepare: func(_ *fakeGroupRepo, _ *fakeAuctionRepo, in *StartAuctionInput) {
				in.AuctionNumber = 11
			},
			wantErr: domainerror.ErrAuctionNumberOutOfRange,
		},
		{
			name: "winner already won",
			prepare: func(_ *fakeGroupRepo, ar *fakeAuctionRepo, in *StartAuctionInput) {
				ar.priorWinners[in.WinnerMemberID] = true
			},
			wantErr: domainerror.ErrWinnerAlreadyWon,
		},
		{
			name: "winner outside the group",
			prepare: func(_ *fakeGroupRepo, _ *fakeAuctionRepo, in *StartAuctionInput) {
				in.WinnerMemberID = uuid.New()
			},
			wantErr: domainerror.ErrWinnerNotInGroup,
		},
		{
			name: "bid below group minimum",
			prepare: func(gr *fakeGroupRepo, _ *fakeAuctionRepo, in *StartAuctionInput) {
				gr.group.MinBid = dec("60000")
				in.WinningBidAmount = dec("50000")
			},
			wantErr: domainerror.ErrBidBelowMinimum,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groupRepo, auctionRepo, input := newTestFixture()
			tt.prepare(groupRepo, auctionRepo, &input)

			uc := NewStartAuctionUseCase(groupRepo, auctionRepo)
			_, err := uc.Execute(context.Background(), input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute error = %v, want %v", err, tt.wantErr)
			}
			if auctionRepo.settled != nil {
				t.Error("rejected auction must not be persisted")
			}
		})
	}
}
