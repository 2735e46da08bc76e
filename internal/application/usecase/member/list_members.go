package member

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// ListMembersOutput contains every registered member.
type ListMembersOutput struct {
	Members []*entity.Member
}

// ListMembersUseCase lists all members ordered by username.
type ListMembersUseCase struct {
	memberRepo adapter.MemberRepository
}

// NewListMembersUseCase creates a new ListMembersUseCase.
func NewListMembersUseCase(memberRepo adapter.MemberRepository) *ListMembersUseCase {
	return &ListMembersUseCase{memberRepo: memberRepo}
}

// Execute retrieves all members.
func (uc *ListMembersUseCase) Execute(ctx context.Context) (*ListMembersOutput, error) {
	members, err := uc.memberRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return &ListMembersOutput{Members: members}, nil
}

// GetMemberInput identifies the member to load.
type GetMemberInput struct {
	MemberID uuid.UUID
}

// GetMemberOutput carries the member and the groups they belong to.
type GetMemberOutput struct {
	Member *entity.Member
	Groups []*entity.GroupListItem
}

// GetMemberUseCase loads a member profile with group participation.
type GetMemberUseCase struct {
	memberRepo adapter.MemberRepository
	groupRepo  adapter.GroupRepository
}

// NewGetMemberUseCase creates a new GetMemberUseCase.
func NewGetMemberUseCase(memberRepo adapter.MemberRepository, groupRepo adapter.GroupRepository) *GetMemberUseCase {
	return &GetMemberUseCase{
		memberRepo: memberRepo,
		groupRepo:  groupRepo,
	}
}

// Execute retrieves the member and the groups they hold a seat in.
func (uc *GetMemberUseCase) Execute(ctx context.Context, input GetMemberInput) (*GetMemberOutput, error) {
	m, err := uc.memberRepo.FindByID(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	groups, err := uc.groupRepo.GroupsOfMember(ctx, input.MemberID)
	if err != nil {
		return nil, err
	}

	return &GetMemberOutput{Member: m, Groups: groups}, nil
}
