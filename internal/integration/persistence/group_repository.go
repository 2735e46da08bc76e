package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// groupRepository implements the adapter.GroupRepository interface.
type groupRepository struct {
	db *gorm.DB
}

// NewGroupRepository creates a new group repository instance.
func NewGroupRepository(db *gorm.DB) adapter.GroupRepository {
	return &groupRepository{
		db: db,
	}
}

// Create creates the group and its initial member seats in one transaction.
func (r *groupRepository) Create(ctx context.Context, group *entity.Group, memberIDs []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model.GroupFromEntity(group)).Error; err != nil {
			return err
		}

		for position, memberID := range memberIDs {
			seat := entity.NewGroupMember(group.ID, memberID, position+1)
			if err := tx.Create(model.GroupMemberFromEntity(seat)).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindByID retrieves a group by its ID.
func (r *groupRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error) {
	var groupModel model.GroupModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&groupModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrGroupNotFound
		}
		return nil, result.Error
	}
	return groupModel.ToEntity(), nil
}

// FindWithMembers retrieves a group and its members ordered by seat position.
func (r *groupRepository) FindWithMembers(ctx context.Context, id uuid.UUID) (*entity.GroupWithMembers, error) {
	group, err := r.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var memberModels []model.MemberModel
	result := r.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Joins("JOIN group_members ON group_members.member_id = members.id").
		Where("group_members.group_id = ?", id).
		Order("group_members.position ASC").
		Find(&memberModels)
	if result.Error != nil {
		return nil, result.Error
	}

	members := make([]*entity.Member, len(memberModels))
	for i, mm := range memberModels {
		members[i] = mm.ToEntity()
	}

	return &entity.GroupWithMembers{Group: group, Members: members}, nil
}

// List retrieves every group as list items with member counts.
func (r *groupRepository) List(ctx context.Context) ([]*entity.GroupListItem, error) {
	var groupModels []model.GroupModel
	result := r.db.WithContext(ctx).Order("created_at ASC").Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.GroupListItem, len(groupModels))
	for i, gm := range groupModels {
		count, err := r.CountMembers(ctx, gm.ID)
		if err != nil {
			return nil, err
		}
		items[i] = listItemFromModel(&gm, count)
	}
	return items, nil
}

// MemberIDs returns the member ids of a group ordered by seat position.
func (r *groupRepository) MemberIDs(ctx context.Context, groupID uuid.UUID) ([]uuid.UUID, error) {
	var seatModels []model.GroupMemberModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("position ASC").
		Find(&seatModels)
	if result.Error != nil {
		return nil, result.Error
	}

	ids := make([]uuid.UUID, len(seatModels))
	for i, sm := range seatModels {
		ids[i] = sm.MemberID
	}
	return ids, nil
}

// CountMembers returns the number of seats currently taken in a group.
func (r *groupRepository) CountMembers(ctx context.Context, groupID uuid.UUID) (int, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ?", groupID).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return int(count), nil
}

// HasMember reports whether the member holds a seat in the group.
func (r *groupRepository) HasMember(ctx context.Context, groupID, memberID uuid.UUID) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.GroupMemberModel{}).
		Where("group_id = ? AND member_id = ?", groupID, memberID).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}

// AddMember appends a member to the group's seat list, re-checking
// capacity inside the transaction.
func (r *groupRepository) AddMember(ctx context.Context, groupID, memberID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		groupQuery := tx.Where("id = ?", groupID)
		if supportsRowLocks(tx) {
			groupQuery = groupQuery.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var groupModel model.GroupModel
		if err := groupQuery.First(&groupModel).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerror.ErrGroupNotFound
			}
			return err
		}

		var taken int64
		if err := tx.Model(&model.GroupMemberModel{}).
			Where("group_id = ?", groupID).
			Count(&taken).Error; err != nil {
			return err
		}
		if int(taken) >= groupModel.TotalPeople {
			return domainerror.NewGroupError(
				domainerror.ErrCodeGroupFull,
				"group already has its total number of members",
				domainerror.ErrGroupFull,
			)
		}

		seat := entity.NewGroupMember(groupID, memberID, int(taken)+1)
		if err := tx.Create(model.GroupMemberFromEntity(seat)).Error; err != nil {
			return err
		}

		return tx.Model(&model.GroupModel{}).
			Where("id = ?", groupID).
			Update("updated_at", time.Now().UTC()).Error
	})
}

// GroupsOfMember returns the groups a member participates in.
func (r *groupRepository) GroupsOfMember(ctx context.Context, memberID uuid.UUID) ([]*entity.GroupListItem, error) {
	var groupModels []model.GroupModel
	result := r.db.WithContext(ctx).
		Model(&model.GroupModel{}).
		Joins("JOIN group_members ON group_members.group_id = chit_groups.id").
		Where("group_members.member_id = ?", memberID).
		Order("chit_groups.created_at ASC").
		Find(&groupModels)
	if result.Error != nil {
		return nil, result.Error
	}

	items := make([]*entity.GroupListItem, len(groupModels))
	for i, gm := range groupModels {
		count, err := r.CountMembers(ctx, gm.ID)
		if err != nil {
			return nil, err
		}
		items[i] = listItemFromModel(&gm, count)
	}
	return items, nil
}

func listItemFromModel(gm *model.GroupModel, memberCount int) *entity.GroupListItem {
	return &entity.GroupListItem{
		ID:                gm.ID,
		GroupName:         gm.GroupName,
		TotalAmount:       gm.TotalAmount,
		TotalPeople:       gm.TotalPeople,
		MemberCount:       memberCount,
		Tenure:            gm.Tenure,
		NextAuctionNumber: gm.NextAuctionNumber,
		AuctionMonth:      gm.AuctionMonth,
		StartDate:         gm.StartDate,
	}
}
