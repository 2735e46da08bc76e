package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// RecordCollectionRequest represents the request body for recording a member payment.
type RecordCollectionRequest struct {
	GroupID       string  `json:"group_id" binding:"required,uuid"`
	MemberID      string  `json:"member_id" binding:"required,uuid"`
	AuctionNumber *int    `json:"auction_number"` // omit for a general due payment
	Amount        float64 `json:"amount" binding:"required"`
	PaymentDate   string  `json:"payment_date" binding:"required"` // "2006-01-02"
	PaymentTime   string  `json:"payment_time"`
	PaymentMode   string  `json:"payment_mode" binding:"required"`
}

// CollectionResponse represents a collection record with its receipt snapshots.
type CollectionResponse struct {
	ID                        string    `json:"id"`
	ReceiptNumber             string    `json:"receipt_number"`
	GroupID                   string    `json:"group_id"`
	AuctionID                 *string   `json:"auction_id,omitempty"`
	AuctionNumber             *int      `json:"auction_number,omitempty"`
	MemberID                  string    `json:"member_id"`
	Amount                    string    `json:"amount"`
	PaymentDate               time.Time `json:"payment_date"`
	PaymentTime               string    `json:"payment_time,omitempty"`
	PaymentMode               string    `json:"payment_mode"`
	ChitAmountForDue          string    `json:"chit_amount_for_due"`
	DueBeforePayment          string    `json:"due_before_payment"`
	BalanceForThisInstallment string    `json:"balance_for_this_installment"`
	VirtualTransactionID      string    `json:"virtual_transaction_id,omitempty"`
	RecordedAt                time.Time `json:"recorded_at"`
}

// CollectionListResponse represents the response for listing collections.
type CollectionListResponse struct {
	Collections []CollectionResponse `json:"collections"`
}

// DueSheetRowResponse represents one member's outstanding balance for an auction.
type DueSheetRowResponse struct {
	MemberID      string `json:"member_id"`
	MemberName    string `json:"member_name"`
	Username      string `json:"username"`
	Phone         string `json:"phone"`
	AuctionNumber int    `json:"auction_number"`
	ChitAmount    string `json:"chit_amount"`
	PaidSoFar     string `json:"paid_so_far"`
	Balance       string `json:"balance"`
}

// DueSheetResponse represents the collection due sheet for a group.
type DueSheetResponse struct {
	Rows      []DueSheetRowResponse `json:"rows"`
	TotalDues map[string]string     `json:"total_dues"`
}

// ToCollectionResponse converts a domain CollectionRecord to its DTO.
func ToCollectionResponse(record *entity.CollectionRecord) CollectionResponse {
	resp := CollectionResponse{
		ID:                        record.ID.String(),
		ReceiptNumber:             record.ReceiptNumber,
		GroupID:                   record.GroupID.String(),
		AuctionNumber:             record.AuctionNumber,
		MemberID:                  record.MemberID.String(),
		Amount:                    record.Amount.String(),
		PaymentDate:               record.PaymentDate,
		PaymentTime:               record.PaymentTime,
		PaymentMode:               string(record.PaymentMode),
		ChitAmountForDue:          record.ChitAmountForDue.String(),
		DueBeforePayment:          record.DueBeforePayment.String(),
		BalanceForThisInstallment: record.BalanceForThisInstallment.String(),
		VirtualTransactionID:      record.VirtualTransactionID,
		RecordedAt:                record.RecordedAt,
	}

	if record.AuctionID != nil {
		auctionID := record.AuctionID.String()
		resp.AuctionID = &auctionID
	}

	return resp
}
