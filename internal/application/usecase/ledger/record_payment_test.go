// Package ledger contains outflow ledger use cases.
package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

type fakeAuctionRepo struct {
	adapter.AuctionRepository
	auction *entity.AuctionRecord
}

func (f *fakeAuctionRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.AuctionRecord, error) {
	if f.auction == nil || f.auction.ID != id {
		return nil, domainerror.ErrAuctionNotFound
	}
	return f.auction, nil
}

type fakeLedgerRepo struct {
	adapter.LedgerRepository
	payments []*entity.PaymentRecord
	credits  []*entity.CreditRecord
	expenses []*entity.ExpenseRecord
	salaries []*entity.SalaryRecord
}

func (f *fakeLedgerRepo) CreatePayment(_ context.Context, p *entity.PaymentRecord) error {
	f.payments = append(f.payments, p)
	return nil
}

func (f *fakeLedgerRepo) CreateCredit(_ context.Context, c *entity.CreditRecord) error {
	f.credits = append(f.credits, c)
	return nil
}

func (f *fakeLedgerRepo) CreateExpense(_ context.Context, e *entity.ExpenseRecord) error {
	f.expenses = append(f.expenses, e)
	return nil
}

func (f *fakeLedgerRepo) CreateSalary(_ context.Context, s *entity.SalaryRecord) error {
	f.salaries = append(f.salaries, s)
	return nil
}

func (f *fakeLedgerRepo) SumPaymentsForAuction(_ context.Context, auctionID uuid.UUID) (decimal.Decimal, error) {
	sum := decimal.Zero
	for _, p := range f.payments {
		if p.AuctionID == auctionID {
			sum = sum.Add(p.Amount)
		}
	}
	return sum, nil
}

type fakeEmployeeRepo struct {
	adapter.EmployeeRepository
	employee *entity.Employee
}

func (f *fakeEmployeeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Employee, error) {
	if f.employee == nil || f.employee.ID != id {
		return nil, domainerror.ErrEmployeeNotFound
	}
	return f.employee, nil
}

func testAuction() *entity.AuctionRecord {
	return &entity.AuctionRecord{
		ID:                 uuid.New(),
		GroupID:            uuid.New(),
		AuctionNumber:      1,
		WinnerMemberID:     uuid.New(),
		AmountPaidToWinner: dec("62800"),
	}
}

func TestRecordPayment_PartialPayoutsUpToWinnerAmount(t *testing.T) {
	auction := testAuction()
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewRecordPaymentUseCase(&fakeAuctionRepo{auction: auction}, ledgerRepo)

	for _, amount := range []string{"30000", "30000", "2800"} {
		out, err := uc.Execute(context.Background(), RecordPaymentInput{
			AuctionID:   auction.ID,
			Amount:      dec(amount),
			PaymentDate: time.Now().UTC(),
			PaymentMode: entity.PaymentModeBank,
		})
		if err != nil {
			t.Fatalf("Execute(%s) returned error: %v", amount, err)
		}
		if out.Payment.MemberID != auction.WinnerMemberID {
			t.Errorf("payment member = %s, want the winner", out.Payment.MemberID)
		}
	}

	// fully paid out; one more rupee must be rejected
	_, err := uc.Execute(context.Background(), RecordPaymentInput{
		AuctionID:   auction.ID,
		Amount:      dec("1"),
		PaymentDate: time.Now().UTC(),
	})
	if !errors.Is(err, domainerror.ErrPaymentExceedsWinnerAmount) {
		t.Errorf("error = %v, want ErrPaymentExceedsWinnerAmount", err)
	}
	if len(ledgerRepo.payments) != 3 {
		t.Errorf("payments persisted = %d, want 3", len(ledgerRepo.payments))
	}
}

func TestRecordPayment_Rejections(t *testing.T) {
	auction := testAuction()
	uc := NewRecordPaymentUseCase(&fakeAuctionRepo{auction: auction}, &fakeLedgerRepo{})

	t.Run("non positive amount", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			AuctionID: auction.ID,
			Amount:    decimal.Zero,
		})
		if !errors.Is(err, domainerror.ErrInvalidLedgerAmount) {
			t.Errorf("error = %v, want ErrInvalidLedgerAmount", err)
		}
	})

	t.Run("single payment above winner amount", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			AuctionID: auction.ID,
			Amount:    dec("62800.01"),
		})
		if !errors.Is(err, domainerror.ErrPaymentExceedsWinnerAmount) {
			t.Errorf("error = %v, want ErrPaymentExceedsWinnerAmount", err)
		}
	})

	t.Run("unknown auction", func(t *testing.T) {
		_, err := uc.Execute(context.Background(), RecordPaymentInput{
			AuctionID: uuid.New(),
			Amount:    dec("100"),
		})
		if !errors.Is(err, domainerror.ErrAuctionNotFound) {
			t.Errorf("error = %v, want ErrAuctionNotFound", err)
		}
	})
}

func TestRecordEntries(t *testing.T) {
	employee := entity.NewEmployee("EMP001", "Kumar", "9000000001", "hash", entity.EmployeeRoleEmployee)
	ledgerRepo := &fakeLedgerRepo{}
	uc := NewRecordEntriesUseCase(ledgerRepo, &fakeEmployeeRepo{employee: employee})

	t.Run("credit", func(t *testing.T) {
		credit, err := uc.RecordCredit(context.Background(), RecordCreditInput{
			Source:     "owner deposit",
			Amount:     dec("50000"),
			CreditDate: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("RecordCredit returned error: %v", err)
		}
		if credit.ID == uuid.Nil {
			t.Error("credit id must be set")
		}
	})

	t.Run("credit without source rejected", func(t *testing.T) {
		_, err := uc.RecordCredit(context.Background(), RecordCreditInput{Amount: dec("1")})
		var ledgerErr *domainerror.LedgerError
		if !errors.As(err, &ledgerErr) || ledgerErr.Code != domainerror.ErrCodeMissingLedgerFields {
			t.Errorf("error = %v, want LGR missing fields", err)
		}
	})

	t.Run("expense with bad type rejected", func(t *testing.T) {
		_, err := uc.RecordExpense(context.Background(), RecordExpenseInput{
			Type:   entity.ExpenseType("loan"),
			Amount: dec("100"),
		})
		if !errors.Is(err, domainerror.ErrInvalidExpenseType) {
			t.Errorf("error = %v, want ErrInvalidExpenseType", err)
		}
	})

	t.Run("salary for unknown employee rejected", func(t *testing.T) {
		_, err := uc.RecordSalary(context.Background(), RecordSalaryInput{
			EmployeeID: uuid.New(),
			Amount:     dec("15000"),
			Month:      "2024-04",
		})
		if !errors.Is(err, domainerror.ErrEmployeeNotFound) {
			t.Errorf("error = %v, want ErrEmployeeNotFound", err)
		}
	})

	t.Run("salary", func(t *testing.T) {
		salary, err := uc.RecordSalary(context.Background(), RecordSalaryInput{
			EmployeeID: employee.ID,
			Amount:     dec("15000"),
			SalaryDate: time.Now().UTC(),
			Month:      "2024-04",
		})
		if err != nil {
			t.Fatalf("RecordSalary returned error: %v", err)
		}
		if salary.Month != "2024-04" {
			t.Errorf("salary month = %s, want 2024-04", salary.Month)
		}
	})
}
