package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// RecordCreditInput contains the data for an outside credit.
type RecordCreditInput struct {
	Source      string
	Amount      decimal.Decimal
	CreditDate  time.Time
	Description string
	RecordedBy  uuid.UUID
}

// RecordExpenseInput contains the data for an office expense row.
type RecordExpenseInput struct {
	Type        entity.ExpenseType
	Amount      decimal.Decimal
	ExpenseDate time.Time
	Description string
	RecordedBy  uuid.UUID
}

// RecordSalaryInput contains the data for a salary payout.
type RecordSalaryInput struct {
	EmployeeID uuid.UUID
	Amount     decimal.Decimal
	SalaryDate time.Time
	Month      string
	Notes      string
	RecordedBy uuid.UUID
}

// RecordEntriesUseCase records the simple append-only ledger rows:
// credits, expenses and salaries.
type RecordEntriesUseCase struct {
	ledgerRepo   adapter.LedgerRepository
	employeeRepo adapter.EmployeeRepository
}

// NewRecordEntriesUseCase creates a new RecordEntriesUseCase.
func NewRecordEntriesUseCase(ledgerRepo adapter.LedgerRepository, employeeRepo adapter.EmployeeRepository) *RecordEntriesUseCase {
	return &RecordEntriesUseCase{
		ledgerRepo:   ledgerRepo,
		employeeRepo: employeeRepo,
	}
}

// RecordCredit records money received from an outside source.
func (uc *RecordEntriesUseCase) RecordCredit(ctx context.Context, input RecordCreditInput) (*entity.CreditRecord, error) {
	if err := requirePositive(input.Amount); err != nil {
		return nil, err
	}
	if input.Source == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingLedgerFields,
			"credit source is required",
			nil,
		)
	}

	credit := &entity.CreditRecord{
		ID:          uuid.New(),
		Source:      input.Source,
		Amount:      input.Amount,
		CreditDate:  input.CreditDate,
		Description: input.Description,
		RecordedBy:  input.RecordedBy,
		RecordedAt:  time.Now().UTC(),
	}
	if err := uc.ledgerRepo.CreateCredit(ctx, credit); err != nil {
		return nil, err
	}
	return credit, nil
}

// RecordExpense records office money received or spent.
func (uc *RecordEntriesUseCase) RecordExpense(ctx context.Context, input RecordExpenseInput) (*entity.ExpenseRecord, error) {
	if err := requirePositive(input.Amount); err != nil {
		return nil, err
	}
	if input.Type != entity.ExpenseTypeReceived && input.Type != entity.ExpenseTypeSpend {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidExpenseType,
			"expense type must be received or spend",
			domainerror.ErrInvalidExpenseType,
		)
	}

	expense := &entity.ExpenseRecord{
		ID:          uuid.New(),
		Type:        input.Type,
		Amount:      input.Amount,
		ExpenseDate: input.ExpenseDate,
		Description: input.Description,
		RecordedBy:  input.RecordedBy,
		RecordedAt:  time.Now().UTC(),
	}
	if err := uc.ledgerRepo.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// RecordSalary records a salary payout to an employee.
func (uc *RecordEntriesUseCase) RecordSalary(ctx context.Context, input RecordSalaryInput) (*entity.SalaryRecord, error) {
	if err := requirePositive(input.Amount); err != nil {
		return nil, err
	}
	if _, err := uc.employeeRepo.FindByID(ctx, input.EmployeeID); err != nil {
		return nil, err
	}

	salary := &entity.SalaryRecord{
		ID:         uuid.New(),
		EmployeeID: input.EmployeeID,
		Amount:     input.Amount,
		SalaryDate: input.SalaryDate,
		Month:      input.Month,
		Notes:      input.Notes,
		RecordedBy: input.RecordedBy,
		RecordedAt: time.Now().UTC(),
	}
	if err := uc.ledgerRepo.CreateSalary(ctx, salary); err != nil {
		return nil, err
	}
	return salary, nil
}

func requirePositive(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerAmount,
			"ledger amount must be positive",
			domainerror.ErrInvalidLedgerAmount,
		)
	}
	return nil
}
