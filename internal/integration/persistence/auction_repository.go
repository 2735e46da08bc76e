package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// auctionRepository implements the adapter.AuctionRepository interface.
type auctionRepository struct {
	db *gorm.DB
}

// NewAuctionRepository creates a new auction repository instance.
func NewAuctionRepository(db *gorm.DB) adapter.AuctionRepository {
	return &auctionRepository{
		db: db,
	}
}

// Settle persists an auction settlement atomically: the record insert,
// the group pointer move and the due increments of every billed member
// commit together or not at all.
func (r *auctionRepository) Settle(ctx context.Context, record *entity.AuctionRecord, pointer adapter.GroupAuctionPointer) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.AuctionRecordFromEntity(record)).Error; err != nil {
			return err
		}

		result := tx.Model(&model.GroupModel{}).
			Where("id = ?", record.GroupID).
			Updates(map[string]interface{}{
				"next_auction_number":     pointer.NextAuctionNumber,
				"auction_month":           pointer.AuctionMonth,
				"auction_scheduled_date":  pointer.AuctionScheduledDate,
				"auction_scheduled_time":  pointer.AuctionScheduledTime,
				"last_auction_winner":     pointer.LastAuctionWinner,
				"last_winning_bid_amount": pointer.LastWinningBidAmount,
				"updated_at":              time.Now().UTC(),
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrGroupNotFound
		}

		if record.FinalAmountToBePaid.IsPositive() && len(record.BilledMemberIDs) > 0 {
			billResult := tx.Model(&model.MemberModel{}).
				Where("id IN ?", record.BilledMemberIDs).
				Updates(map[string]interface{}{
					"due_amount": gorm.Expr("due_amount + ?", record.FinalAmountToBePaid),
					"updated_at": time.Now().UTC(),
				})
			if billResult.Error != nil {
				return billResult.Error
			}
			if billResult.RowsAffected != int64(len(record.BilledMemberIDs)) {
				return domainerror.ErrMemberNotFound
			}
		}
		return nil
	})
}

// FindByID retrieves an auction record by its ID.
func (r *auctionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.AuctionRecord, error) {
	var auctionModel model.AuctionRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&auctionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAuctionNotFound
		}
		return nil, result.Error
	}
	return auctionModel.ToEntity(), nil
}

// FindByGroupAndNumber retrieves the auction record for a group and auction number.
func (r *auctionRepository) FindByGroupAndNumber(ctx context.Context, groupID uuid.UUID, auctionNumber int) (*entity.AuctionRecord, error) {
	var auctionModel model.AuctionRecordModel
	result := r.db.WithContext(ctx).
		Where("group_id = ? AND auction_number = ?", groupID, auctionNumber).
		First(&auctionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrAuctionNotFound
		}
		return nil, result.Error
	}
	return auctionModel.ToEntity(), nil
}

// FindByGroup retrieves all auction records of a group ordered by auction number.
func (r *auctionRepository) FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.AuctionRecord, error) {
	var auctionModels []model.AuctionRecordModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("auction_number ASC").
		Find(&auctionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return auctionEntities(auctionModels), nil
}

// FindByGroups retrieves all auction records of the given groups.
func (r *auctionRepository) FindByGroups(ctx context.Context, groupIDs []uuid.UUID) ([]*entity.AuctionRecord, error) {
	if len(groupIDs) == 0 {
		return nil, nil
	}

	var auctionModels []model.AuctionRecordModel
	result := r.db.WithContext(ctx).
		Where("group_id IN ?", groupIDs).
		Order("recorded_at ASC").
		Find(&auctionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return auctionEntities(auctionModels), nil
}

// ExistsByGroupAndNumber checks whether the auction number is already settled for the group.
func (r *auctionRepository) ExistsByGroupAndNumber(ctx context.Context, groupID uuid.UUID, auctionNumber int) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AuctionRecordModel{}).
		Where("group_id = ? AND auction_number = ?", groupID, auctionNumber).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// HasWon checks whether the member already won a prior auction in the group.
func (r *auctionRepository) HasWon(ctx context.Context, groupID, memberID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.AuctionRecordModel{}).
		Where("group_id = ? AND winner_member_id = ?", groupID, memberID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

func auctionEntities(auctionModels []model.AuctionRecordModel) []*entity.AuctionRecord {
	records := make([]*entity.AuctionRecord, len(auctionModels))
	for i, am := range auctionModels {
		records[i] = am.ToEntity()
	}
	return records
}
