// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// GroupModel represents the chit_groups table in the database.
type GroupModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupName         string          `gorm:"type:varchar(100);not null"`
	Description       string          `gorm:"type:text"`
	TotalPeople       int             `gorm:"not null"`
	TotalAmount       decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Tenure            int             `gorm:"not null"`
	StartDate         time.Time       `gorm:"type:date;not null"`
	Rate              decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CommissionPercent decimal.Decimal `gorm:"type:decimal(5,2);not null"`
	BiddingType       string          `gorm:"type:varchar(10);not null;default:'open'"`
	MinBid            decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`

	NextAuctionNumber    int        `gorm:"not null;default:1"`
	AuctionMonth         string     `gorm:"type:varchar(7);not null"`
	AuctionScheduledDate *time.Time `gorm:"type:date"`
	AuctionScheduledTime string     `gorm:"type:varchar(5)"`

	LastAuctionWinner    *uuid.UUID       `gorm:"type:uuid"`
	LastWinningBidAmount *decimal.Decimal `gorm:"type:decimal(15,2)"`

	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GroupModel.
func (GroupModel) TableName() string {
	return "chit_groups"
}

// ToEntity converts a GroupModel to a domain Group entity.
func (m *GroupModel) ToEntity() *entity.Group {
	return &entity.Group{
		ID:                   m.ID,
		GroupName:            m.GroupName,
		Description:          m.Description,
		TotalPeople:          m.TotalPeople,
		TotalAmount:          m.TotalAmount,
		Tenure:               m.Tenure,
		StartDate:            m.StartDate,
		Rate:                 m.Rate,
		CommissionPercent:    m.CommissionPercent,
		BiddingType:          entity.BiddingType(m.BiddingType),
		MinBid:               m.MinBid,
		NextAuctionNumber:    m.NextAuctionNumber,
		AuctionMonth:         m.AuctionMonth,
		AuctionScheduledDate: m.AuctionScheduledDate,
		AuctionScheduledTime: m.AuctionScheduledTime,
		LastAuctionWinner:    m.LastAuctionWinner,
		LastWinningBidAmount: m.LastWinningBidAmount,
		CreatedBy:            m.CreatedBy,
		CreatedAt:            m.CreatedAt,
		UpdatedAt:            m.UpdatedAt,
	}
}

// GroupFromEntity creates a GroupModel from a domain Group entity.
func GroupFromEntity(group *entity.Group) *GroupModel {
	return &GroupModel{
		ID:                   group.ID,
		GroupName:            group.GroupName,
		Description:          group.Description,
		TotalPeople:          group.TotalPeople,
		TotalAmount:          group.TotalAmount,
		Tenure:               group.Tenure,
		StartDate:            group.StartDate,
		Rate:                 group.Rate,
		CommissionPercent:    group.CommissionPercent,
		BiddingType:          string(group.BiddingType),
		MinBid:               group.MinBid,
		NextAuctionNumber:    group.NextAuctionNumber,
		AuctionMonth:         group.AuctionMonth,
		AuctionScheduledDate: group.AuctionScheduledDate,
		AuctionScheduledTime: group.AuctionScheduledTime,
		LastAuctionWinner:    group.LastAuctionWinner,
		LastWinningBidAmount: group.LastWinningBidAmount,
		CreatedBy:            group.CreatedBy,
		CreatedAt:            group.CreatedAt,
		UpdatedAt:            group.UpdatedAt,
	}
}

// GroupMemberModel represents the group_members join table.
type GroupMemberModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID  uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_group_member"`
	MemberID uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_group_member"`
	Position int       `gorm:"not null"`
	JoinedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for the GroupMemberModel.
func (GroupMemberModel) TableName() string {
	return "group_members"
}

// ToEntity converts a GroupMemberModel to a domain GroupMember entity.
func (m *GroupMemberModel) ToEntity() *entity.GroupMember {
	return &entity.GroupMember{
		ID:       m.ID,
		GroupID:  m.GroupID,
		MemberID: m.MemberID,
		Position: m.Position,
		JoinedAt: m.JoinedAt,
	}
}

// GroupMemberFromEntity creates a GroupMemberModel from a domain GroupMember entity.
func GroupMemberFromEntity(seat *entity.GroupMember) *GroupMemberModel {
	return &GroupMemberModel{
		ID:       seat.ID,
		GroupID:  seat.GroupID,
		MemberID: seat.MemberID,
		Position: seat.Position,
		JoinedAt: seat.JoinedAt,
	}
}
