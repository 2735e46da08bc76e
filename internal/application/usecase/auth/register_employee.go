package auth

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// employeeCounterSeed puts the first generated login at EMP001.
const employeeCounterSeed = 0

// RegisterEmployeeInput contains the data to create a staff account.
type RegisterEmployeeInput struct {
	FullName string
	Phone    string
	Password string
	Role     entity.EmployeeRole
}

// RegisterEmployeeOutput contains the created account.
type RegisterEmployeeOutput struct {
	Employee *entity.Employee
}

// RegisterEmployeeUseCase creates staff accounts with sequentially
// generated employee ids. Admin only.
type RegisterEmployeeUseCase struct {
	employeeRepo    adapter.EmployeeRepository
	counterRepo     adapter.CounterRepository
	passwordService adapter.PasswordService
}

// NewRegisterEmployeeUseCase creates a new RegisterEmployeeUseCase.
func NewRegisterEmployeeUseCase(
	employeeRepo adapter.EmployeeRepository,
	counterRepo adapter.CounterRepository,
	passwordService adapter.PasswordService,
) *RegisterEmployeeUseCase {
	return &RegisterEmployeeUseCase{
		employeeRepo:    employeeRepo,
		counterRepo:     counterRepo,
		passwordService: passwordService,
	}
}

// Execute validates the account data, allocates the next employee id
// and persists the account with a bcrypt password hash.
func (uc *RegisterEmployeeUseCase) Execute(ctx context.Context, input RegisterEmployeeInput) (*RegisterEmployeeOutput, error) {
	if input.FullName == "" || input.Phone == "" {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeInvalidCredentials,
			"full name and phone are required",
			nil,
		)
	}

	if err := uc.passwordService.ValidatePasswordStrength(input.Password); err != nil {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodeWeakPassword,
			"password does not meet minimum requirements",
			err,
		)
	}

	taken, err := uc.employeeRepo.ExistsByPhone(ctx, input.Phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domainerror.NewAuthError(
			domainerror.ErrCodePhoneExists,
			"phone number already registered",
			domainerror.ErrPhoneAlreadyRegistered,
		)
	}

	role := input.Role
	if role == "" {
		role = entity.EmployeeRoleEmployee
	}

	hash, err := uc.passwordService.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	seq, err := uc.counterRepo.Next(ctx, adapter.CounterEmployeeID, employeeCounterSeed)
	if err != nil {
		return nil, err
	}
	employeeID := fmt.Sprintf("EMP%03d", seq)

	employee := entity.NewEmployee(employeeID, input.FullName, input.Phone, hash, role)
	if err := uc.employeeRepo.Create(ctx, employee); err != nil {
		return nil, err
	}

	slog.Info("employee registered", "employee_id", employee.EmployeeID, "role", employee.Role)

	return &RegisterEmployeeOutput{Employee: employee}, nil
}
