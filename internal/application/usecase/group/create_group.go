// Package group contains chit group management use cases.
package group

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

// CreateGroupInput contains the data needed to create a chit group.
type CreateGroupInput struct {
	GroupName         string
	Description       string
	TotalPeople       int
	TotalAmount       decimal.Decimal
	Tenure            int
	StartDate         time.Time
	Rate              decimal.Decimal
	CommissionPercent decimal.Decimal
	BiddingType       entity.BiddingType
	MinBid            decimal.Decimal
	MemberIDs         []uuid.UUID
	CreatedBy         uuid.UUID
}

// CreateGroupOutput contains the result of the group creation.
type CreateGroupOutput struct {
	Group *entity.Group
}

// CreateGroupUseCase handles chit group creation with its initial
// member seats.
type CreateGroupUseCase struct {
	groupRepo  adapter.GroupRepository
	memberRepo adapter.MemberRepository
}

// NewCreateGroupUseCase creates a new CreateGroupUseCase.
func NewCreateGroupUseCase(groupRepo adapter.GroupRepository, memberRepo adapter.MemberRepository) *CreateGroupUseCase {
	return &CreateGroupUseCase{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
	}
}

// Execute validates the group parameters and persists the group together
// with its initial seats, in the given order, in one transaction.
func (uc *CreateGroupUseCase) Execute(ctx context.Context, input CreateGroupInput) (*CreateGroupOutput, error) {
	if input.GroupName == "" || input.TotalPeople <= 0 {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeMissingGroupFields,
			"group name and total people are required",
			nil,
		)
	}

	if input.Tenure <= 0 {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeInvalidTenure,
			"tenure must be at least one month",
			domainerror.ErrInvalidTenure,
		)
	}

	if !input.TotalAmount.IsPositive() || !input.Rate.IsPositive() {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeInvalidGroupAmounts,
			"total amount and rate must be positive",
			domainerror.ErrInvalidGroupAmounts,
		)
	}

	if len(input.MemberIDs) > input.TotalPeople {
		return nil, domainerror.NewGroupError(
			domainerror.ErrCodeTooManyInitialMembers,
			"initial members exceed total people",
			domainerror.ErrTooManyInitialMembers,
		)
	}

	if err := uc.checkMembersExist(ctx, input.MemberIDs); err != nil {
		return nil, err
	}

	biddingType := input.BiddingType
	if biddingType == "" {
		biddingType = entity.BiddingTypeOpen
	}

	group := entity.NewGroup(
		input.GroupName, input.Description,
		input.TotalPeople, input.Tenure,
		input.TotalAmount, input.Rate, input.CommissionPercent, input.MinBid,
		biddingType,
		input.StartDate,
		input.CreatedBy,
	)

	if err := uc.groupRepo.Create(ctx, group, input.MemberIDs); err != nil {
		return nil, err
	}

	slog.Info("group created",
		"group_id", group.ID,
		"group_name", group.GroupName,
		"total_people", group.TotalPeople,
		"initial_members", len(input.MemberIDs),
	)

	return &CreateGroupOutput{Group: group}, nil
}

func (uc *CreateGroupUseCase) checkMembersExist(ctx context.Context, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	seen := make(map[uuid.UUID]bool, len(ids))
	for _, id := range ids {
		if seen[id] {
			return domainerror.NewGroupError(
				domainerror.ErrCodeMemberAlreadyInGroup,
				"duplicate member in initial seats",
				domainerror.ErrMemberAlreadyInGroup,
			)
		}
		seen[id] = true
	}

	members, err := uc.memberRepo.FindByIDs(ctx, ids)
	if err != nil {
		return err
	}
	if len(members) != len(ids) {
		return domainerror.NewMemberError(
			domainerror.ErrCodeMemberNotFound,
			"one or more initial members do not exist",
			domainerror.ErrMemberNotFound,
		)
	}
	return nil
}
