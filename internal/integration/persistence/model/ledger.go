package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// PaymentRecordModel represents the payment_records table: payouts to
// auction winners. Rows are insert-only.
type PaymentRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	AuctionID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	MemberID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentDate time.Time       `gorm:"type:date;not null"`
	PaymentTime string          `gorm:"type:varchar(5)"`
	PaymentMode string          `gorm:"type:varchar(10);not null;default:'cash'"`
	Notes       string          `gorm:"type:text"`
	RecordedBy  uuid.UUID       `gorm:"type:uuid;not null"`
	RecordedAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the PaymentRecordModel.
func (PaymentRecordModel) TableName() string {
	return "payment_records"
}

// ToEntity converts a PaymentRecordModel to a domain PaymentRecord entity.
func (m *PaymentRecordModel) ToEntity() *entity.PaymentRecord {
	return &entity.PaymentRecord{
		ID:          m.ID,
		GroupID:     m.GroupID,
		AuctionID:   m.AuctionID,
		MemberID:    m.MemberID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		PaymentTime: m.PaymentTime,
		PaymentMode: entity.PaymentMode(m.PaymentMode),
		Notes:       m.Notes,
		RecordedBy:  m.RecordedBy,
		RecordedAt:  m.RecordedAt,
	}
}

// PaymentRecordFromEntity creates a PaymentRecordModel from a domain PaymentRecord entity.
func PaymentRecordFromEntity(payment *entity.PaymentRecord) *PaymentRecordModel {
	return &PaymentRecordModel{
		ID:          payment.ID,
		GroupID:     payment.GroupID,
		AuctionID:   payment.AuctionID,
		MemberID:    payment.MemberID,
		Amount:      payment.Amount,
		PaymentDate: payment.PaymentDate,
		PaymentTime: payment.PaymentTime,
		PaymentMode: string(payment.PaymentMode),
		Notes:       payment.Notes,
		RecordedBy:  payment.RecordedBy,
		RecordedAt:  payment.RecordedAt,
	}
}

// CreditRecordModel represents the credit_records table: money received
// from outside the chit cycle.
type CreditRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Source      string          `gorm:"type:varchar(100);not null"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreditDate  time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"type:text"`
	RecordedBy  uuid.UUID       `gorm:"type:uuid;not null"`
	RecordedAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the CreditRecordModel.
func (CreditRecordModel) TableName() string {
	return "credit_records"
}

// ToEntity converts a CreditRecordModel to a domain CreditRecord entity.
func (m *CreditRecordModel) ToEntity() *entity.CreditRecord {
	return &entity.CreditRecord{
		ID:          m.ID,
		Source:      m.Source,
		Amount:      m.Amount,
		CreditDate:  m.CreditDate,
		Description: m.Description,
		RecordedBy:  m.RecordedBy,
		RecordedAt:  m.RecordedAt,
	}
}

// CreditRecordFromEntity creates a CreditRecordModel from a domain CreditRecord entity.
func CreditRecordFromEntity(credit *entity.CreditRecord) *CreditRecordModel {
	return &CreditRecordModel{
		ID:          credit.ID,
		Source:      credit.Source,
		Amount:      credit.Amount,
		CreditDate:  credit.CreditDate,
		Description: credit.Description,
		RecordedBy:  credit.RecordedBy,
		RecordedAt:  credit.RecordedAt,
	}
}

// ExpenseRecordModel represents the expense_records table.
type ExpenseRecordModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Type        string          `gorm:"type:varchar(10);not null;index"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	ExpenseDate time.Time       `gorm:"type:date;not null"`
	Description string          `gorm:"type:text"`
	RecordedBy  uuid.UUID       `gorm:"type:uuid;not null"`
	RecordedAt  time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the ExpenseRecordModel.
func (ExpenseRecordModel) TableName() string {
	return "expense_records"
}

// ToEntity converts an ExpenseRecordModel to a domain ExpenseRecord entity.
func (m *ExpenseRecordModel) ToEntity() *entity.ExpenseRecord {
	return &entity.ExpenseRecord{
		ID:          m.ID,
		Type:        entity.ExpenseType(m.Type),
		Amount:      m.Amount,
		ExpenseDate: m.ExpenseDate,
		Description: m.Description,
		RecordedBy:  m.RecordedBy,
		RecordedAt:  m.RecordedAt,
	}
}

// ExpenseRecordFromEntity creates an ExpenseRecordModel from a domain ExpenseRecord entity.
func ExpenseRecordFromEntity(expense *entity.ExpenseRecord) *ExpenseRecordModel {
	return &ExpenseRecordModel{
		ID:          expense.ID,
		Type:        string(expense.Type),
		Amount:      expense.Amount,
		ExpenseDate: expense.ExpenseDate,
		Description: expense.Description,
		RecordedBy:  expense.RecordedBy,
		RecordedAt:  expense.RecordedAt,
	}
}

// SalaryRecordModel represents the salary_records table.
type SalaryRecordModel struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount     decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	SalaryDate time.Time       `gorm:"type:date;not null"`
	Month      string          `gorm:"type:varchar(7);not null"`
	Notes      string          `gorm:"type:text"`
	RecordedBy uuid.UUID       `gorm:"type:uuid;not null"`
	RecordedAt time.Time       `gorm:"not null;index"`
}

// TableName returns the table name for the SalaryRecordModel.
func (SalaryRecordModel) TableName() string {
	return "salary_records"
}

// ToEntity converts a SalaryRecordModel to a domain SalaryRecord entity.
func (m *SalaryRecordModel) ToEntity() *entity.SalaryRecord {
	return &entity.SalaryRecord{
		ID:         m.ID,
		EmployeeID: m.EmployeeID,
		Amount:     m.Amount,
		SalaryDate: m.SalaryDate,
		Month:      m.Month,
		Notes:      m.Notes,
		RecordedBy: m.RecordedBy,
		RecordedAt: m.RecordedAt,
	}
}

// SalaryRecordFromEntity creates a SalaryRecordModel from a domain SalaryRecord entity.
func SalaryRecordFromEntity(salary *entity.SalaryRecord) *SalaryRecordModel {
	return &SalaryRecordModel{
		ID:         salary.ID,
		EmployeeID: salary.EmployeeID,
		Amount:     salary.Amount,
		SalaryDate: salary.SalaryDate,
		Month:      salary.Month,
		Notes:      salary.Notes,
		RecordedBy: salary.RecordedBy,
		RecordedAt: salary.RecordedAt,
	}
}
