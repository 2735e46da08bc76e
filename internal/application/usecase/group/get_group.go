package group

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// GetGroupInput identifies the group to load.
type GetGroupInput struct {
	GroupID uuid.UUID
}

// GetGroupOutput carries the group, its members and its auction history.
type GetGroupOutput struct {
	Group    *entity.Group
	Members  []*entity.Member
	Auctions []*entity.AuctionRecord
}

// GetGroupUseCase loads the full group dashboard: the group record, its
// seated members in order and every settled auction.
type GetGroupUseCase struct {
	groupRepo   adapter.GroupRepository
	auctionRepo adapter.AuctionRepository
}

// NewGetGroupUseCase creates a new GetGroupUseCase.
func NewGetGroupUseCase(groupRepo adapter.GroupRepository, auctionRepo adapter.AuctionRepository) *GetGroupUseCase {
	return &GetGroupUseCase{
		groupRepo:   groupRepo,
		auctionRepo: auctionRepo,
	}
}

// Execute retrieves the group with its members and auction history.
func (uc *GetGroupUseCase) Execute(ctx context.Context, input GetGroupInput) (*GetGroupOutput, error) {
	withMembers, err := uc.groupRepo.FindWithMembers(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	auctions, err := uc.auctionRepo.FindByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &GetGroupOutput{
		Group:    withMembers.Group,
		Members:  withMembers.Members,
		Auctions: auctions,
	}, nil
}
