package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// CreateMemberRequest represents the request body for member registration.
type CreateMemberRequest struct {
	FullName   string `json:"full_name" binding:"required,min=1,max=100"`
	Phone      string `json:"phone" binding:"required"`
	Email      string `json:"email" binding:"omitempty,email"`
	Address    string `json:"address"`
	AadhaarURL string `json:"aadhaar_url"`
	PANURL     string `json:"pan_url"`
	PhotoURL   string `json:"photo_url"`
}

// MemberResponse represents the member data in API responses.
type MemberResponse struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	DueAmount  string    `json:"due_amount"`
	AadhaarURL string    `json:"aadhaar_url,omitempty"`
	PANURL     string    `json:"pan_url,omitempty"`
	PhotoURL   string    `json:"photo_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// MemberDetailResponse represents a member with their group memberships.
type MemberDetailResponse struct {
	Member MemberResponse          `json:"member"`
	Groups []GroupListItemResponse `json:"groups"`
}

// MemberListResponse represents the response for listing members.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// DueReconciliationResponse represents the result of a due reconciliation.
type DueReconciliationResponse struct {
	MemberID     string    `json:"member_id"`
	StoredDue    string    `json:"stored_due"`
	ComputedDue  string    `json:"computed_due"`
	Drift        string    `json:"drift"`
	Corrected    bool      `json:"corrected"`
	ReconciledAt time.Time `json:"reconciled_at"`
}

// ToMemberResponse converts a domain Member entity to a MemberResponse DTO.
func ToMemberResponse(member *entity.Member) MemberResponse {
	return MemberResponse{
		ID:         member.ID.String(),
		Username:   member.Username,
		FullName:   member.FullName,
		Phone:      member.Phone,
		Email:      member.Email,
		Address:    member.Address,
		DueAmount:  member.DueAmount.String(),
		AadhaarURL: member.AadhaarURL,
		PANURL:     member.PANURL,
		PhotoURL:   member.PhotoURL,
		CreatedAt:  member.CreatedAt,
	}
}

// ToDueReconciliationResponse converts a DueReconciliation to its DTO.
func ToDueReconciliationResponse(rec *entity.DueReconciliation) DueReconciliationResponse {
	return DueReconciliationResponse{
		MemberID:     rec.MemberID.String(),
		StoredDue:    rec.StoredDue.String(),
		ComputedDue:  rec.ComputedDue.String(),
		Drift:        rec.Drift.String(),
		Corrected:    rec.Corrected,
		ReconciledAt: rec.ReconciledAt,
	}
}
