package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// CreateGroupRequest represents the request body for group creation.
type CreateGroupRequest struct {
	GroupName         string   `json:"group_name" binding:"required,min=1,max=100"`
	Description       string   `json:"description"`
	TotalPeople       int      `json:"total_people" binding:"required,min=2"`
	TotalAmount       float64  `json:"total_amount" binding:"required"`
	Tenure            int      `json:"tenure" binding:"required,min=1"`
	StartDate         string   `json:"start_date" binding:"required"` // "2006-01-02"
	Rate              float64  `json:"rate" binding:"required"`
	CommissionPercent float64  `json:"commission_percent"`
	BiddingType       string   `json:"bidding_type"`
	MinBid            float64  `json:"min_bid"`
	MemberIDs         []string `json:"member_ids"`
}

// AddGroupMemberRequest represents the request body for seating a member.
type AddGroupMemberRequest struct {
	MemberID string `json:"member_id" binding:"required,uuid"`
}

// GroupResponse represents the full group data in API responses.
type GroupResponse struct {
	ID                   string     `json:"id"`
	GroupName            string     `json:"group_name"`
	Description          string     `json:"description,omitempty"`
	TotalPeople          int        `json:"total_people"`
	TotalAmount          string     `json:"total_amount"`
	Tenure               int        `json:"tenure"`
	StartDate            time.Time  `json:"start_date"`
	Rate                 string     `json:"rate"`
	CommissionPercent    string     `json:"commission_percent"`
	BiddingType          string     `json:"bidding_type"`
	MinBid               string     `json:"min_bid"`
	NextAuctionNumber    int        `json:"next_auction_number"`
	AuctionMonth         string     `json:"auction_month"`
	AuctionScheduledDate *time.Time `json:"auction_scheduled_date,omitempty"`
	AuctionScheduledTime string     `json:"auction_scheduled_time,omitempty"`
	LastAuctionWinner    *string    `json:"last_auction_winner,omitempty"`
	LastWinningBidAmount *string    `json:"last_winning_bid_amount,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// GroupListItemResponse represents a group summary row in list responses.
type GroupListItemResponse struct {
	ID                string    `json:"id"`
	GroupName         string    `json:"group_name"`
	TotalAmount       string    `json:"total_amount"`
	TotalPeople       int       `json:"total_people"`
	MemberCount       int       `json:"member_count"`
	Tenure            int       `json:"tenure"`
	NextAuctionNumber int       `json:"next_auction_number"`
	AuctionMonth      string    `json:"auction_month"`
	StartDate         time.Time `json:"start_date"`
}

// GroupDetailResponse represents a group with its seated members and auction history.
type GroupDetailResponse struct {
	Group    GroupResponse     `json:"group"`
	Members  []MemberResponse  `json:"members"`
	Auctions []AuctionResponse `json:"auctions"`
}

// GroupListResponse represents the response for listing groups.
type GroupListResponse struct {
	Groups []GroupListItemResponse `json:"groups"`
}

// ToGroupResponse converts a domain Group entity to a GroupResponse DTO.
func ToGroupResponse(group *entity.Group) GroupResponse {
	resp := GroupResponse{
		ID:                   group.ID.String(),
		GroupName:            group.GroupName,
		Description:          group.Description,
		TotalPeople:          group.TotalPeople,
		TotalAmount:          group.TotalAmount.String(),
		Tenure:               group.Tenure,
		StartDate:            group.StartDate,
		Rate:                 group.Rate.String(),
		CommissionPercent:    group.CommissionPercent.String(),
		BiddingType:          string(group.BiddingType),
		MinBid:               group.MinBid.String(),
		NextAuctionNumber:    group.NextAuctionNumber,
		AuctionMonth:         group.AuctionMonth,
		AuctionScheduledDate: group.AuctionScheduledDate,
		AuctionScheduledTime: group.AuctionScheduledTime,
		CreatedAt:            group.CreatedAt,
	}

	if group.LastAuctionWinner != nil {
		winner := group.LastAuctionWinner.String()
		resp.LastAuctionWinner = &winner
	}
	if group.LastWinningBidAmount != nil {
		bid := group.LastWinningBidAmount.String()
		resp.LastWinningBidAmount = &bid
	}

	return resp
}

// ToGroupListItemResponse converts a domain GroupListItem to its DTO.
func ToGroupListItemResponse(item *entity.GroupListItem) GroupListItemResponse {
	return GroupListItemResponse{
		ID:                item.ID.String(),
		GroupName:         item.GroupName,
		TotalAmount:       item.TotalAmount.String(),
		TotalPeople:       item.TotalPeople,
		MemberCount:       item.MemberCount,
		Tenure:            item.Tenure,
		NextAuctionNumber: item.NextAuctionNumber,
		AuctionMonth:      item.AuctionMonth,
		StartDate:         item.StartDate,
	}
}
