package persistence

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// Receipt numbers are 7 digits. The counter starts past receiptSeed so
// the first receipt is 1000001; crossing receiptCeiling aborts the write.
const (
	receiptSeed    = 1_000_000
	receiptCeiling = 9_999_999
)

// collectionRepository implements the adapter.CollectionRepository interface.
type collectionRepository struct {
	db *gorm.DB
}

// NewCollectionRepository creates a new collection repository instance.
func NewCollectionRepository(db *gorm.DB) adapter.CollectionRepository {
	return &collectionRepository{
		db: db,
	}
}

// Create records a collection in one transaction. The member row is
// locked first, so the due snapshot, the receipt allocation, the insert
// and the due decrement land as one unit even under concurrent payments
// for the same member.
func (r *collectionRepository) Create(ctx context.Context, params adapter.RecordCollectionParams) (*entity.CollectionRecord, error) {
	var record *entity.CollectionRecord

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		memberQuery := tx.Where("id = ?", params.MemberID)
		if supportsRowLocks(tx) {
			memberQuery = memberQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var memberModel model.MemberModel
		if err := memberQuery.First(&memberModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrMemberNotFound
			}
			return err
		}
		dueBefore := memberModel.DueAmount

		alreadyPaid := decimal.Zero
		if params.AuctionNumber != nil {
			paid, err := sumForDueTx(tx, params.GroupID, params.MemberID, *params.AuctionNumber)
			if err != nil {
				return err
			}
			alreadyPaid = paid
		}

		receiptValue, err := nextCounterValue(tx, adapter.CounterReceiptNumber, receiptSeed)
		if err != nil {
			return err
		}
		if receiptValue > receiptCeiling {
			return domainerror.NewCollectionError(
				domainerror.ErrCodeReceiptNumberExhausted,
				"receipt number range exhausted",
				domainerror.ErrReceiptNumberExhausted,
			)
		}

		record = &entity.CollectionRecord{
			ID:                        uuid.New(),
			ReceiptNumber:             strconv.FormatInt(receiptValue, 10),
			GroupID:                   params.GroupID,
			AuctionID:                 params.AuctionID,
			AuctionNumber:             params.AuctionNumber,
			MemberID:                  params.MemberID,
			Amount:                    params.Amount,
			PaymentDate:               params.PaymentDate,
			PaymentTime:               params.PaymentTime,
			PaymentMode:               params.PaymentMode,
			ChitAmountForDue:          params.ChitAmountForDue,
			DueBeforePayment:          dueBefore,
			BalanceForThisInstallment: params.ChitAmountForDue.Sub(alreadyPaid.Add(params.Amount)),
			VirtualTransactionID:      params.VirtualTransactionID,
			RecordedBy:                params.RecordedBy,
			RecordedAt:                time.Now().UTC(),
		}

		if err := tx.Create(model.CollectionRecordFromEntity(record)).Error; err != nil {
			return err
		}

		return tx.Model(&model.MemberModel{}).
			Where("id = ?", params.MemberID).
			Updates(map[string]interface{}{
				"due_amount": gorm.Expr("due_amount - ?", params.Amount),
				"updated_at": time.Now().UTC(),
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// FindByID retrieves a collection record by its ID.
func (r *collectionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.CollectionRecord, error) {
	var collectionModel model.CollectionRecordModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&collectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCollectionNotFound
		}
		return nil, result.Error
	}
	return collectionModel.ToEntity(), nil
}

// FindByReceiptNumber retrieves a collection record by its receipt number.
func (r *collectionRepository) FindByReceiptNumber(ctx context.Context, receiptNumber string) (*entity.CollectionRecord, error) {
	var collectionModel model.CollectionRecordModel
	result := r.db.WithContext(ctx).Where("receipt_number = ?", receiptNumber).First(&collectionModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCollectionNotFound
		}
		return nil, result.Error
	}
	return collectionModel.ToEntity(), nil
}

// ListByMember retrieves a member's collection records, newest first.
func (r *collectionRepository) ListByMember(ctx context.Context, memberID uuid.UUID) ([]*entity.CollectionRecord, error) {
	var collectionModels []model.CollectionRecordModel
	result := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("recorded_at DESC").
		Find(&collectionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return collectionEntities(collectionModels), nil
}

// ListByGroup retrieves a group's collection records, newest first.
func (r *collectionRepository) ListByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.CollectionRecord, error) {
	var collectionModels []model.CollectionRecordModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("recorded_at DESC").
		Find(&collectionModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return collectionEntities(collectionModels), nil
}

// SumForDue sums all collection amounts recorded for one member against
// one auction number of a group.
func (r *collectionRepository) SumForDue(ctx context.Context, groupID, memberID uuid.UUID, auctionNumber int) (decimal.Decimal, error) {
	return sumForDueTx(r.db.WithContext(ctx), groupID, memberID, auctionNumber)
}

// SumByMember sums all collection amounts ever recorded for a member.
func (r *collectionRepository) SumByMember(ctx context.Context, memberID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.CollectionRecordModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("member_id = ?", memberID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func sumForDueTx(tx *gorm.DB, groupID, memberID uuid.UUID, auctionNumber int) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := tx.
		Model(&model.CollectionRecordModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("group_id = ? AND member_id = ? AND auction_number = ?", groupID, memberID, auctionNumber).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func collectionEntities(collectionModels []model.CollectionRecordModel) []*entity.CollectionRecord {
	records := make([]*entity.CollectionRecord, len(collectionModels))
	for i, cm := range collectionModels {
		records[i] = cm.ToEntity()
	}
	return records
}
