// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// GroupAuctionPointer carries the group fields that move after a settlement.
type GroupAuctionPointer struct {
	NextAuctionNumber    int
	AuctionMonth         string
	AuctionScheduledDate *time.Time
	AuctionScheduledTime string
	LastAuctionWinner    uuid.UUID
	LastWinningBidAmount decimal.Decimal
}

// AuctionRepository defines the interface for auction record persistence operations.
type AuctionRepository interface {
	// Settle persists an auction in a single transaction: inserts the
	// record, moves the group's next-auction pointer, and when the final
	// installment is positive increments the due amount of every billed
	// member. Either everything commits or nothing does.
	Settle(ctx context.Context, record *entity.AuctionRecord, pointer GroupAuctionPointer) error

	// FindByID retrieves an auction record by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuctionRecord, error)

	// FindByGroupAndNumber retrieves the auction record for a group and auction number.
	FindByGroupAndNumber(ctx context.Context, groupID uuid.UUID, auctionNumber int) (*entity.AuctionRecord, error)

	// FindByGroup retrieves all auction records of a group ordered by auction number.
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.AuctionRecord, error)

	// FindByGroups retrieves all auction records of the given groups.
	FindByGroups(ctx context.Context, groupIDs []uuid.UUID) ([]*entity.AuctionRecord, error)

	// ExistsByGroupAndNumber checks whether the auction number is already settled for the group.
	ExistsByGroupAndNumber(ctx context.Context, groupID uuid.UUID, auctionNumber int) (bool, error)

	// HasWon checks whether the member already won a prior auction in the group.
	HasWon(ctx context.Context, groupID, memberID uuid.UUID) (bool, error)
}
