// Package group contains chit group management use cases.
package group

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

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeGroupRepo struct {
	adapter.GroupRepository
	created      *entity.Group
	createdSeats []uuid.UUID
	group        *entity.Group
	members      map[uuid.UUID]bool
	added        []uuid.UUID
}

func (f *fakeGroupRepo) Create(_ context.Context, g *entity.Group, memberIDs []uuid.UUID) error {
	f.created = g
	f.createdSeats = memberIDs
	return nil
}

func (f *fakeGroupRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Group, error) {
	if f.group == nil || f.group.ID != id {
		return nil, domainerror.ErrGroupNotFound
	}
	return f.group, nil
}

func (f *fakeGroupRepo) HasMember(_ context.Context, _ uuid.UUID, memberID uuid.UUID) (bool, error) {
	return f.members[memberID], nil
}

func (f *fakeGroupRepo) CountMembers(_ context.Context, _ uuid.UUID) (int, error) {
	return len(f.members), nil
}

func (f *fakeGroupRepo) AddMember(_ context.Context, _ uuid.UUID, memberID uuid.UUID) error {
	f.members[memberID] = true
	f.added = append(f.added, memberID)
	return nil
}

type fakeMemberRepo struct {
	adapter.MemberRepository
	members map[uuid.UUID]*entity.Member
}

func (f *fakeMemberRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Member, error) {
	if m, ok := f.members[id]; ok {
		return m, nil
	}
	return nil, domainerror.ErrMemberNotFound
}

func (f *fakeMemberRepo) FindByIDs(_ context.Context, ids []uuid.UUID) ([]*entity.Member, error) {
	var out []*entity.Member
	for _, id := range ids {
		if m, ok := f.members[id]; ok {
			out = append(out, m)
		}
	}
	return out, nil
}

func seedMembers(n int) (*fakeMemberRepo, []uuid.UUID) {
	repo := &fakeMemberRepo{members: map[uuid.UUID]*entity.Member{}}
	ids := make([]uuid.UUID, 0, n)
	for i := 0; i < n; i++ {
		m := entity.NewMember("CHT000"+string(rune('1'+i)), "Member", "900000000"+string(rune('0'+i)), "", "")
		repo.members[m.ID] = m
		ids = append(ids, m.ID)
	}
	return repo, ids
}

func validInput(memberIDs []uuid.UUID) CreateGroupInput {
	return CreateGroupInput{
		GroupName:         "Sendhur A1",
		TotalPeople:       10,
		TotalAmount:       dec("100000"),
		Tenure:            10,
		StartDate:         time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		Rate:              dec("10000"),
		CommissionPercent: dec("2"),
		BiddingType:       entity.BiddingTypeOpen,
		MemberIDs:         memberIDs,
		CreatedBy:         uuid.New(),
	}
}

func TestCreateGroup(t *testing.T) {
	memberRepo, ids := seedMembers(3)
	groupRepo := &fakeGroupRepo{}
	uc := NewCreateGroupUseCase(groupRepo, memberRepo)

	out, err := uc.Execute(context.Background(), validInput(ids))
	if err != nil {
		t.Fatalf("Execute returned error: %v", err)
	}

	if out.Group.NextAuctionNumber != 1 {
		t.Errorf("next auction number = %d, want 1", out.Group.NextAuctionNumber)
	}
	if out.Group.AuctionMonth != "2024-04" {
		t.Errorf("auction month = %s, want 2024-04", out.Group.AuctionMonth)
	}
	if len(groupRepo.createdSeats) != 3 {
		t.Errorf("seats persisted = %d, want 3", len(groupRepo.createdSeats))
	}
	for i, id := range groupRepo.createdSeats {
		if id != ids[i] {
			t.Errorf("seat %d = %s, want %s (order preserved)", i, id, ids[i])
		}
	}
}

func TestCreateGroup_Rejections(t *testing.T) {
	memberRepo, ids := seedMembers(3)

	tests := []struct {
		name    string
		mutate  func(*CreateGroupInput)
		wantErr error
	}{
		{
			name:    "zero tenure",
			mutate:  func(in *CreateGroupInput) { in.Tenure = 0 },
			wantErr: domainerror.ErrInvalidTenure,
		},
		{
			name:    "non positive amount",
			mutate:  func(in *CreateGroupInput) { in.TotalAmount = decimal.Zero },
			wantErr: domainerror.ErrInvalidGroupAmounts,
		},
		{
			name: "more members than seats",
			mutate: func(in *CreateGroupInput) {
				in.TotalPeople = 2
			},
			wantErr: domainerror.ErrTooManyInitialMembers,
		},
		{
			name: "duplicate initial member",
			mutate: func(in *CreateGroupInput) {
				in.MemberIDs = append(in.MemberIDs, in.MemberIDs[0])
			},
			wantErr: domainerror.ErrMemberAlreadyInGroup,
		},
		{
			name: "unknown initial member",
			mutate: func(in *CreateGroupInput) {
				in.MemberIDs = append(in.MemberIDs, uuid.New())
			},
			wantErr: domainerror.ErrMemberNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			groupRepo := &fakeGroupRepo{}
			uc := NewCreateGroupUseCase(groupRepo, memberRepo)

			in := validInput(ids)
			tt.mutate(&in)

			_, err := uc.Execute(context.Background(), in)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if groupRepo.created != nil {
				t.Error("group must not be persisted on rejection")
			}
		})
	}
}

func TestAddMember(t *testing.T) {
	memberRepo, ids := seedMembers(3)
	group := entity.NewGroup(
		"Sendhur A1", "", 3, 3,
		dec("30000"), dec("10000"), dec("2"), decimal.Zero,
		entity.BiddingTypeOpen,
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
		uuid.New(),
	)

	t.Run("seats a new member", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{group: group, members: map[uuid.UUID]bool{ids[0]: true}}
		uc := NewAddMemberUseCase(groupRepo, memberRepo)

		err := uc.Execute(context.Background(), AddMemberInput{GroupID: group.ID, MemberID: ids[1]})
		if err != nil {
			t.Fatalf("Execute returned error: %v", err)
		}
		if len(groupRepo.added) != 1 || groupRepo.added[0] != ids[1] {
			t.Errorf("added = %v, want [%s]", groupRepo.added, ids[1])
		}
	})

	t.Run("rejects a member already seated", func(t *testing.T) {
		groupRepo := &fakeGroupRepo{group: group, members: map[uuid.UUID]bool{ids[0]: true}}
		uc := NewAddMemberUseCase(groupRepo, memberRepo)

		err := uc.Execute(context.Background(), AddMemberInput{GroupID: group.ID, MemberID: ids[0]})
		if !errors.Is(err, domainerror.ErrMemberAlreadyInGroup) {
			t.Errorf("error = %v, want ErrMemberAlreadyInGroup", err)
		}
	})

	t.Run("rejects when the group is full", func(t *testing.T) {
		full := map[uuid.UUID]bool{ids[0]: true, ids[1]: true, uuid.New(): true}
		groupRepo := &fakeGroupRepo{group: group, members: full}
		uc := NewAddMemberUseCase(groupRepo, memberRepo)

		err := uc.Execute(context.Background(), AddMemberInput{GroupID: group.ID, MemberID: ids[2]})
		if !errors.Is(err, domainerror.ErrGroupFull) {
			t.Errorf("error = %v, want ErrGroupFull", err)
		}
	})
}
