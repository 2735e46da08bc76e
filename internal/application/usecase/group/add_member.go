package group

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// AddMemberInput identifies the group and the member to seat.
type AddMemberInput struct {
	GroupID  uuid.UUID
	MemberID uuid.UUID
}

// AddMemberUseCase seats an existing member into a group.
type AddMemberUseCase struct {
	groupRepo  adapter.GroupRepository
	memberRepo adapter.MemberRepository
}

// NewAddMemberUseCase creates a new AddMemberUseCase.
func NewAddMemberUseCase(groupRepo adapter.GroupRepository, memberRepo adapter.MemberRepository) *AddMemberUseCase {
	return &AddMemberUseCase{
		groupRepo:  groupRepo,
		memberRepo: memberRepo,
	}
}

// Execute validates capacity and membership before appending the seat.
// The repository re-checks capacity inside its transaction, so two
// concurrent adds cannot push the group past totalPeople.
func (uc *AddMemberUseCase) Execute(ctx context.Context, input AddMemberInput) error {
	group, err := uc.groupRepo.FindByID(ctx, input.GroupID)
	if err != nil {
		return err
	}

	if _, err := uc.memberRepo.FindByID(ctx, input.MemberID); err != nil {
		return err
	}

	already, err := uc.groupRepo.HasMember(ctx, input.GroupID, input.MemberID)
	if err != nil {
		return err
	}
	if already {
		return domainerror.NewGroupError(
			domainerror.ErrCodeMemberAlreadyInGroup,
			"member already belongs to group",
			domainerror.ErrMemberAlreadyInGroup,
		)
	}

	count, err := uc.groupRepo.CountMembers(ctx, input.GroupID)
	if err != nil {
		return err
	}
	if count >= group.TotalPeople {
		return domainerror.NewGroupError(
			domainerror.ErrCodeGroupFull,
			"group already has its total number of members",
			domainerror.ErrGroupFull,
		)
	}

	if err := uc.groupRepo.AddMember(ctx, input.GroupID, input.MemberID); err != nil {
		return err
	}

	slog.Info("member added to group",
		"group_id", input.GroupID,
		"member_id", input.MemberID,
		"seats_taken", count+1,
	)
	return nil
}
