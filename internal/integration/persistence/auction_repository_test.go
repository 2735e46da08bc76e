package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

func settlementRecord(group *entity.Group, winner uuid.UUID, billed []uuid.UUID) *entity.AuctionRecord {
	return &entity.AuctionRecord{
		ID:                  uuid.New(),
		GroupID:             group.ID,
		AuctionNumber:       1,
		WinnerMemberID:      winner,
		WinningBidAmount:    decimal.NewFromInt(72000),
		CommissionAmount:    decimal.NewFromInt(5000),
		Discount:            decimal.NewFromInt(28000),
		NetDiscount:         decimal.NewFromInt(23000),
		DividendPerMember:   decimal.NewFromInt(1150),
		FinalAmountToBePaid: decimal.NewFromInt(3850),
		AmountPaidToWinner:  decimal.NewFromInt(68150),
		AuctionDate:         time.Now().UTC(),
		AuctionMonth:        "2024-04",
		BilledMemberIDs:     billed,
		RecordedBy:          group.CreatedBy,
		RecordedAt:          time.Now().UTC(),
	}
}

func settlementPointer(winner uuid.UUID) adapter.GroupAuctionPointer {
	return adapter.GroupAuctionPointer{
		NextAuctionNumber:    2,
		AuctionMonth:         "2024-05",
		LastAuctionWinner:    winner,
		LastWinningBidAmount: decimal.NewFromInt(72000),
	}
}

func TestAuctionRepository_Settle(t *testing.T) {
	t.Run("should insert the record, move the pointer and bill every member", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAuctionRepository(db)

		group := seedTestGroup(t, db)
		first := seedTestMember(t, db, decimal.Zero)
		second := seedTestMember(t, db, decimal.NewFromInt(1000))
		billed := []uuid.UUID{first.ID, second.ID}

		record := settlementRecord(group, first.ID, billed)
		require.NoError(t, repo.Settle(context.Background(), record, settlementPointer(first.ID)))

		stored, err := repo.FindByGroupAndNumber(context.Background(), group.ID, 1)
		require.NoError(t, err)
		assert.True(t, stored.FinalAmountToBePaid.Equal(decimal.NewFromInt(3850)))
		assert.Len(t, stored.BilledMemberIDs, 2)

		var groupModel model.GroupModel
		require.NoError(t, db.Where("id = ?", group.ID).First(&groupModel).Error)
		assert.Equal(t, 2, groupModel.NextAuctionNumber)
		assert.Equal(t, "2024-05", groupModel.AuctionMonth)
		require.NotNil(t, groupModel.LastAuctionWinner)
		assert.Equal(t, first.ID, *groupModel.LastAuctionWinner)

		assert.True(t, memberDue(t, db, first.ID).Equal(decimal.NewFromInt(3850)))
		assert.True(t, memberDue(t, db, second.ID).Equal(decimal.NewFromInt(4850)))
	})

	t.Run("should roll everything back when a billed member does not exist", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAuctionRepository(db)

		group := seedTestGroup(t, db)
		real := seedTestMember(t, db, decimal.Zero)
		billed := []uuid.UUID{real.ID, uuid.New()}

		record := settlementRecord(group, real.ID, billed)
		err := repo.Settle(context.Background(), record, settlementPointer(real.ID))
		assert.ErrorIs(t, err, domainerror.ErrMemberNotFound)

		// No record, pointer unchanged, no partial billing.
		_, err = repo.FindByGroupAndNumber(context.Background(), group.ID, 1)
		assert.ErrorIs(t, err, domainerror.ErrAuctionNotFound)

		var groupModel model.GroupModel
		require.NoError(t, db.Where("id = ?", group.ID).First(&groupModel).Error)
		assert.Equal(t, 1, groupModel.NextAuctionNumber)
		assert.True(t, memberDue(t, db, real.ID).IsZero())
	})

	t.Run("should fail for a group that does not exist", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAuctionRepository(db)

		member := seedTestMember(t, db, decimal.Zero)
		ghostGroup := &entity.Group{ID: uuid.New(), CreatedBy: uuid.New()}

		record := settlementRecord(ghostGroup, member.ID, []uuid.UUID{member.ID})
		err := repo.Settle(context.Background(), record, settlementPointer(member.ID))
		assert.ErrorIs(t, err, domainerror.ErrGroupNotFound)
	})

	t.Run("should report prior wins", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewAuctionRepository(db)

		group := seedTestGroup(t, db)
		winner := seedTestMember(t, db, decimal.Zero)

		record := settlementRecord(group, winner.ID, []uuid.UUID{winner.ID})
		require.NoError(t, repo.Settle(context.Background(), record, settlementPointer(winner.ID)))

		won, err := repo.HasWon(context.Background(), group.ID, winner.ID)
		require.NoError(t, err)
		assert.True(t, won)

		won, err = repo.HasWon(context.Background(), group.ID, uuid.New())
		require.NoError(t, err)
		assert.False(t, won)
	})
}
