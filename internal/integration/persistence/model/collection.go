package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// CollectionRecordModel represents the collection_records table in the
// database. Rows are insert-only.
type CollectionRecordModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ReceiptNumber string          `gorm:"type:varchar(10);not null;uniqueIndex"`
	GroupID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	AuctionID     *uuid.UUID      `gorm:"type:uuid;index"`
	AuctionNumber *int            `gorm:"type:integer"`
	MemberID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Amount        decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	PaymentDate   time.Time       `gorm:"type:date;not null;index"`
	PaymentTime   string          `gorm:"type:varchar(5)"`
	PaymentMode   string          `gorm:"type:varchar(10);not null;default:'cash'"`

	ChitAmountForDue          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DueBeforePayment          decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	BalanceForThisInstallment decimal.Decimal `gorm:"type:decimal(15,2);not null"`

	VirtualTransactionID string    `gorm:"type:varchar(20)"`
	RecordedBy           uuid.UUID `gorm:"type:uuid;not null"`
	RecordedAt           time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the CollectionRecordModel.
func (CollectionRecordModel) TableName() string {
	return "collection_records"
}

// ToEntity converts a CollectionRecordModel to a domain CollectionRecord entity.
func (m *CollectionRecordModel) ToEntity() *entity.CollectionRecord {
	return &entity.CollectionRecord{
		ID:                        m.ID,
		ReceiptNumber:             m.ReceiptNumber,
		GroupID:                   m.GroupID,
		AuctionID:                 m.AuctionID,
		AuctionNumber:             m.AuctionNumber,
		MemberID:                  m.MemberID,
		Amount:                    m.Amount,
		PaymentDate:               m.PaymentDate,
		PaymentTime:               m.PaymentTime,
		PaymentMode:               entity.PaymentMode(m.PaymentMode),
		ChitAmountForDue:          m.ChitAmountForDue,
		DueBeforePayment:          m.DueBeforePayment,
		BalanceForThisInstallment: m.BalanceForThisInstallment,
		VirtualTransactionID:      m.VirtualTransactionID,
		RecordedBy:                m.RecordedBy,
		RecordedAt:                m.RecordedAt,
	}
}

// CollectionRecordFromEntity creates a CollectionRecordModel from a domain CollectionRecord entity.
func CollectionRecordFromEntity(record *entity.CollectionRecord) *CollectionRecordModel {
	return &CollectionRecordModel{
		ID:                        record.ID,
		ReceiptNumber:             record.ReceiptNumber,
		GroupID:                   record.GroupID,
		AuctionID:                 record.AuctionID,
		AuctionNumber:             record.AuctionNumber,
		MemberID:                  record.MemberID,
		Amount:                    record.Amount,
		PaymentDate:               record.PaymentDate,
		PaymentTime:               record.PaymentTime,
		PaymentMode:               string(record.PaymentMode),
		ChitAmountForDue:          record.ChitAmountForDue,
		DueBeforePayment:          record.DueBeforePayment,
		BalanceForThisInstallment: record.BalanceForThisInstallment,
		VirtualTransactionID:      record.VirtualTransactionID,
		RecordedBy:                record.RecordedBy,
		RecordedAt:                record.RecordedAt,
	}
}
