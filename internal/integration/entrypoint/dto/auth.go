package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// LoginRequest represents the request body for employee login.
type LoginRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// RegisterEmployeeRequest represents the request body for employee registration.
type RegisterEmployeeRequest struct {
	FullName string `json:"full_name" binding:"required,min=1,max=100"`
	Phone    string `json:"phone" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role"`
}

// RefreshTokenRequest represents the request body for token refresh.
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// LogoutRequest represents the request body for employee logout.
type LogoutRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// AuthResponse represents the response for the login endpoint.
type AuthResponse struct {
	AccessToken  string           `json:"access_token"`
	RefreshToken string           `json:"refresh_token"`
	Employee     EmployeeResponse `json:"employee"`
}

// TokenResponse represents the response for token refresh.
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// EmployeeResponse represents the employee data in API responses.
type EmployeeResponse struct {
	ID         string    `json:"id"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Phone      string    `json:"phone"`
	Role       string    `json:"role"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToEmployeeResponse converts a domain Employee entity to an EmployeeResponse DTO.
func ToEmployeeResponse(employee *entity.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         employee.ID.String(),
		EmployeeID: employee.EmployeeID,
		FullName:   employee.FullName,
		Phone:      employee.Phone,
		Role:       string(employee.Role),
		CreatedAt:  employee.CreatedAt,
	}
}
