// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BiddingType represents how the monthly auction of a group is conducted.
type BiddingType string

const (
	BiddingTypeOpen   BiddingType = "open"
	BiddingTypeClosed BiddingType = "closed"
)

// Group represents a chit group: a fixed set of members contributing a
// monthly installment, with one member taking the pot each month through
// an auction.
type Group struct {
	ID                uuid.UUID
	GroupName         string
	Description       string
	TotalPeople       int
	TotalAmount       decimal.Decimal
	Tenure            int // number of auction months, normally equal to TotalPeople
	StartDate         time.Time
	Rate              decimal.Decimal // base monthly installment per member
	CommissionPercent decimal.Decimal // foreman commission, percent of TotalAmount
	BiddingType       BiddingType
	MinBid            decimal.Decimal

	// Next-auction pointer. Mutated on creation and after every settlement.
	NextAuctionNumber    int
	AuctionMonth         string // "YYYY-MM"
	AuctionScheduledDate *time.Time
	AuctionScheduledTime string // "HH:MM", display only

	// Last settlement summary, for the group dashboard.
	LastAuctionWinner    *uuid.UUID
	LastWinningBidAmount *decimal.Decimal

	CreatedBy uuid.UUID // employee who created the group
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewGroup creates a new Group entity pointing at auction number 1.
func NewGroup(
	groupName, description string,
	totalPeople, tenure int,
	totalAmount, rate, commissionPercent, minBid decimal.Decimal,
	biddingType BiddingType,
	startDate time.Time,
	createdBy uuid.UUID,
) *Group {
	now := time.Now().UTC()

	return &Group{
		ID:                uuid.New(),
		GroupName:         groupName,
		Description:       description,
		TotalPeople:       totalPeople,
		TotalAmount:       totalAmount,
		Tenure:            tenure,
		StartDate:         startDate,
		Rate:              rate,
		CommissionPercent: commissionPercent,
		BiddingType:       biddingType,
		MinBid:            minBid,
		NextAuctionNumber: 1,
		AuctionMonth:      startDate.Format("2006-01"),
		CreatedBy:         createdBy,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}

// CommissionAmount returns the foreman commission for one auction cycle.
func (g *Group) CommissionAmount() decimal.Decimal {
	return g.CommissionPercent.Div(decimal.NewFromInt(100)).Mul(g.TotalAmount)
}

// MaxAllowedBid returns the highest winning bid the group accepts,
// TotalAmount minus the commission. A bid equal to the maximum is valid.
func (g *Group) MaxAllowedBid() decimal.Decimal {
	return g.TotalAmount.Sub(g.CommissionAmount())
}

// GroupMember represents one member's seat in a group. Position preserves
// the order in which members joined.
type GroupMember struct {
	ID       uuid.UUID
	GroupID  uuid.UUID
	MemberID uuid.UUID
	Position int
	JoinedAt time.Time
}

// NewGroupMember creates a new GroupMember entity.
func NewGroupMember(groupID, memberID uuid.UUID, position int) *GroupMember {
	return &GroupMember{
		ID:       uuid.New(),
		GroupID:  groupID,
		MemberID: memberID,
		Position: position,
		JoinedAt: time.Now().UTC(),
	}
}

// GroupWithMembers represents a group together with its current members,
// ordered by seat position.
type GroupWithMembers struct {
	Group   *Group
	Members []*Member
}

// GroupListItem represents a group in a list view.
type GroupListItem struct {
	ID                uuid.UUID
	GroupName         string
	TotalAmount       decimal.Decimal
	TotalPeople       int
	MemberCount       int
	Tenure            int
	NextAuctionNumber int
	AuctionMonth      string
	StartDate         time.Time
}
