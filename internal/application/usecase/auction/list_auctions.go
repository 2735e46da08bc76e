// Package auction contains auction settlement use cases.
package auction

import (
	"context"

	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// ListAuctionsInput represents the input for listing a group's auctions.
type ListAuctionsInput struct {
	GroupID uuid.UUID
}

// ListAuctionsOutput represents the output of listing a group's auctions.
type ListAuctionsOutput struct {
	Records []*entity.AuctionRecord
}

// ListAuctionsUseCase retrieves the settled auctions of a group.
type ListAuctionsUseCase struct {
	groupRepo   adapter.GroupRepository
	auctionRepo adapter.AuctionRepository
}

// NewListAuctionsUseCase creates a new ListAuctionsUseCase instance.
func NewListAuctionsUseCase(
	groupRepo adapter.GroupRepository,
	auctionRepo adapter.AuctionRepository,
) *ListAuctionsUseCase {
	return &ListAuctionsUseCase{
		groupRepo:   groupRepo,
		auctionRepo: auctionRepo,
	}
}

// Execute lists all auction records of a group ordered by auction number.
func (uc *ListAuctionsUseCase) Execute(ctx context.Context, input ListAuctionsInput) (*ListAuctionsOutput, error) {
	if _, err := uc.groupRepo.FindByID(ctx, input.GroupID); err != nil {
		return nil, err
	}

	records, err := uc.auctionRepo.FindByGroup(ctx, input.GroupID)
	if err != nil {
		return nil, err
	}

	return &ListAuctionsOutput{Records: records}, nil
}
