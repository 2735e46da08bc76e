package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// memberRepository implements the adapter.MemberRepository interface.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository creates a new member repository instance.
func NewMemberRepository(db *gorm.DB) adapter.MemberRepository {
	return &memberRepository{
		db: db,
	}
}

// Create creates a new member in the database.
func (r *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberModel := model.MemberFromEntity(member)
	result := r.db.WithContext(ctx).Create(memberModel)
	return result.Error
}

// FindByID retrieves a member by its ID.
func (r *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var memberModel model.MemberModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMemberNotFound
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// FindByIDs retrieves members for the given ids.
func (r *memberRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Member, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.Member, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members, nil
}

// FindByUsername retrieves a member by its generated username.
func (r *memberRepository) FindByUsername(ctx context.Context, username string) (*entity.Member, error) {
	var memberModel model.MemberModel
	result := r.db.WithContext(ctx).Where("username = ?", username).First(&memberModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrMemberNotFound
		}
		return nil, result.Error
	}
	return memberModel.ToEntity(), nil
}

// ExistsByPhone checks whether the phone number is already registered.
func (r *memberRepository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("phone = ?", phone).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// List retrieves all members ordered by username.
func (r *memberRepository) List(ctx context.Context) ([]*entity.Member, error) {
	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).Order("username ASC").Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.Member, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}
	return members, nil
}

// SetDueAmount overwrites the member's due accumulator.
func (r *memberRepository) SetDueAmount(ctx context.Context, id uuid.UUID, due decimal.Decimal) error {
	result := r.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"due_amount": due,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrMemberNotFound
	}
	return nil
}
