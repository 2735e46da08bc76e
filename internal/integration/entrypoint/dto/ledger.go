package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// RecordPaymentRequest represents the request body for a winner payout instalment.
type RecordPaymentRequest struct {
	GroupID     string  `json:"group_id" binding:"required,uuid"`
	AuctionID   string  `json:"auction_id" binding:"required,uuid"`
	Amount      float64 `json:"amount" binding:"required"`
	PaymentDate string  `json:"payment_date" binding:"required"` // "2006-01-02"
	PaymentTime string  `json:"payment_time"`
	PaymentMode string  `json:"payment_mode" binding:"required"`
	Notes       string  `json:"notes"`
}

// RecordCreditRequest represents the request body for an incoming credit entry.
type RecordCreditRequest struct {
	Source      string  `json:"source" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	CreditDate  string  `json:"credit_date" binding:"required"`
	Description string  `json:"description"`
}

// RecordExpenseRequest represents the request body for an expense entry.
type RecordExpenseRequest struct {
	Type        string  `json:"type" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	ExpenseDate string  `json:"expense_date" binding:"required"`
	Description string  `json:"description"`
}

// RecordSalaryRequest represents the request body for a salary entry.
type RecordSalaryRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,uuid"`
	Amount     float64 `json:"amount" binding:"required"`
	SalaryDate string  `json:"salary_date" binding:"required"`
	Month      string  `json:"month" binding:"required"` // "YYYY-MM"
	Notes      string  `json:"notes"`
}

// PaymentResponse represents a winner payout record in API responses.
type PaymentResponse struct {
	ID          string    `json:"id"`
	GroupID     string    `json:"group_id"`
	AuctionID   string    `json:"auction_id"`
	MemberID    string    `json:"member_id"`
	Amount      string    `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	PaymentTime string    `json:"payment_time,omitempty"`
	PaymentMode string    `json:"payment_mode"`
	Notes       string    `json:"notes,omitempty"`
	RecordedAt  time.Time `json:"recorded_at"`
}

// LedgerEntryResponse represents a single day-sheet row.
type LedgerEntryResponse struct {
	ID             string    `json:"id"`
	Kind           string    `json:"kind"`
	Amount         string    `json:"amount"`
	Description    string    `json:"description,omitempty"`
	Reference      string    `json:"reference,omitempty"`
	RecordedAt     time.Time `json:"recorded_at"`
	RunningBalance string    `json:"running_balance"`
}

// ToPaymentResponse converts a domain PaymentRecord to its DTO.
func ToPaymentResponse(payment *entity.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		ID:          payment.ID.String(),
		GroupID:     payment.GroupID.String(),
		AuctionID:   payment.AuctionID.String(),
		MemberID:    payment.MemberID.String(),
		Amount:      payment.Amount.String(),
		PaymentDate: payment.PaymentDate,
		PaymentTime: payment.PaymentTime,
		PaymentMode: string(payment.PaymentMode),
		Notes:       payment.Notes,
		RecordedAt:  payment.RecordedAt,
	}
}
