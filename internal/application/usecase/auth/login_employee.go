// Package auth contains employee authentication use cases.
package auth

import (
	"context"
	"log/slog"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// LoginEmployeeInput contains the login credentials.
type LoginEmployeeInput struct {
	EmployeeID string
	Password   string
}

// LoginEmployeeOutput contains the tokens and employee data after login.
type LoginEmployeeOutput struct {
	AccessToken  string
	RefreshToken string
	Employee     *entity.Employee
}

// LoginEmployeeUseCase handles employee login.
type LoginEmployeeUseCase struct {
	employeeRepo    adapter.EmployeeRepository
	passwordService adapter.PasswordService
	tokenService    adapter.TokenService
}

// NewLoginEmployeeUseCase creates a new LoginEmployeeUseCase.
func NewLoginEmployeeUseCase(
	employeeRepo adapter.EmployeeRepository,
	passwordService adapter.PasswordService,
	tokenService adapter.TokenService,
) *LoginEmployeeUseCase {
	return &LoginEmployeeUseCase{
		employeeRepo:    employeeRepo,
		passwordService: passwordService,
		tokenService:    tokenService,
	}
}

// Execute verifies the credentials and issues a token pair. An unknown
// employee id and a wrong password return the same error, so a caller
// cannot probe which employee ids exist.
func (uc *LoginEmployeeUseCase) Execute(ctx context.Context, input LoginEmployeeInput) (*LoginEmployeeOutput, error) {
	invalid := domainerror.NewAuthError(
		domainerror.ErrCodeInvalidCredentials,
		"invalid employee id or password",
		domainerror.ErrInvalidCredentials,
	)

	if input.EmployeeID == "" || input.Password == "" {
		return nil, invalid
	}

	employee, err := uc.employeeRepo.FindByEmployeeID(ctx, input.EmployeeID)
	if err != nil {
		return nil, invalid
	}

	if err := uc.passwordService.VerifyPassword(employee.PasswordHash, input.Password); err != nil {
		slog.Warn("login rejected", "employee_id", input.EmployeeID)
		return nil, invalid
	}

	tokens, err := uc.tokenService.GenerateTokenPair(ctx, employee)
	if err != nil {
		return nil, err
	}

	slog.Info("employee logged in", "employee_id", employee.EmployeeID, "role", employee.Role)

	return &LoginEmployeeOutput{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		Employee:     employee,
	}, nil
}
