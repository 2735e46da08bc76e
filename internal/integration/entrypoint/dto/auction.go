package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// StartAuctionRequest represents the request body for settling an auction.
type StartAuctionRequest struct {
	AuctionNumber    int     `json:"auction_number" binding:"required,min=1"`
	WinnerMemberID   string  `json:"winner_member_id" binding:"required,uuid"`
	WinningBidAmount float64 `json:"winning_bid_amount" binding:"required"`
	AuctionDate      string  `json:"auction_date" binding:"required"` // "2006-01-02"
	AuctionTime      string  `json:"auction_time"`
}

// AuctionResponse represents a settled auction in API responses.
type AuctionResponse struct {
	ID                  string    `json:"id"`
	GroupID             string    `json:"group_id"`
	AuctionNumber       int       `json:"auction_number"`
	WinnerMemberID      string    `json:"winner_member_id"`
	WinningBidAmount    string    `json:"winning_bid_amount"`
	CommissionAmount    string    `json:"commission_amount"`
	Discount            string    `json:"discount"`
	NetDiscount         string    `json:"net_discount"`
	DividendPerMember   string    `json:"dividend_per_member"`
	FinalAmountToBePaid string    `json:"final_amount_to_be_paid"`
	AmountPaidToWinner  string    `json:"amount_paid_to_winner"`
	AuctionDate         time.Time `json:"auction_date"`
	AuctionMonth        string    `json:"auction_month"`
	AuctionTime         string    `json:"auction_time,omitempty"`
	BilledMembers       int       `json:"billed_members"`
	RecordedAt          time.Time `json:"recorded_at"`
}

// AuctionListResponse represents the response for listing a group's auctions.
type AuctionListResponse struct {
	Auctions []AuctionResponse `json:"auctions"`
}

// ToAuctionResponse converts a domain AuctionRecord to an AuctionResponse DTO.
func ToAuctionResponse(record *entity.AuctionRecord) AuctionResponse {
	return AuctionResponse{
		ID:                  record.ID.String(),
		GroupID:             record.GroupID.String(),
		AuctionNumber:       record.AuctionNumber,
		WinnerMemberID:      record.WinnerMemberID.String(),
		WinningBidAmount:    record.WinningBidAmount.String(),
		CommissionAmount:    record.CommissionAmount.String(),
		Discount:            record.Discount.String(),
		NetDiscount:         record.NetDiscount.String(),
		DividendPerMember:   record.DividendPerMember.String(),
		FinalAmountToBePaid: record.FinalAmountToBePaid.String(),
		AmountPaidToWinner:  record.AmountPaidToWinner.String(),
		AuctionDate:         record.AuctionDate,
		AuctionMonth:        record.AuctionMonth,
		AuctionTime:         record.AuctionTime,
		BilledMembers:       len(record.BilledMemberIDs),
		RecordedAt:          record.RecordedAt,
	}
}
