package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/domain/entity"
)

// AuctionRecordModel represents the auction_records table in the database.
// Rows are insert-only.
type AuctionRecordModel struct {
	ID                  uuid.UUID       `gorm:"type:uuid;primaryKey"`
	GroupID             uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_group_auction_number"`
	AuctionNumber       int             `gorm:"not null;uniqueIndex:idx_group_auction_number"`
	WinnerMemberID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	WinningBidAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CommissionAmount    decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	Discount            decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	NetDiscount         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	DividendPerMember   decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	FinalAmountToBePaid decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AmountPaidToWinner  decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	AuctionDate         time.Time       `gorm:"type:date;not null"`
	AuctionMonth        string          `gorm:"type:varchar(7);not null"`
	AuctionTime         string          `gorm:"type:varchar(5)"`
	BilledMemberIDs     pq.StringArray  `gorm:"type:uuid[]"`
	RecordedBy          uuid.UUID       `gorm:"type:uuid;not null"`
	RecordedAt          time.Time       `gorm:"not null"`
}

// TableName returns the table name for the AuctionRecordModel.
func (AuctionRecordModel) TableName() string {
	return "auction_records"
}

// ToEntity converts an AuctionRecordModel to a domain AuctionRecord entity.
func (m *AuctionRecordModel) ToEntity() *entity.AuctionRecord {
	billed := make([]uuid.UUID, 0, len(m.BilledMemberIDs))
	for _, raw := range m.BilledMemberIDs {
		if id, err := uuid.Parse(raw); err == nil {
			billed = append(billed, id)
		}
	}

	return &entity.AuctionRecord{
		ID:                  m.ID,
		GroupID:             m.GroupID,
		AuctionNumber:       m.AuctionNumber,
		WinnerMemberID:      m.WinnerMemberID,
		WinningBidAmount:    m.WinningBidAmount,
		CommissionAmount:    m.CommissionAmount,
		Discount:            m.Discount,
		NetDiscount:         m.NetDiscount,
		DividendPerMember:   m.DividendPerMember,
		FinalAmountToBePaid: m.FinalAmountToBePaid,
		AmountPaidToWinner:  m.AmountPaidToWinner,
		AuctionDate:         m.AuctionDate,
		AuctionMonth:        m.AuctionMonth,
		AuctionTime:         m.AuctionTime,
		BilledMemberIDs:     billed,
		RecordedBy:          m.RecordedBy,
		RecordedAt:          m.RecordedAt,
	}
}

// AuctionRecordFromEntity creates an AuctionRecordModel from a domain AuctionRecord entity.
func AuctionRecordFromEntity(record *entity.AuctionRecord) *AuctionRecordModel {
	billed := make(pq.StringArray, len(record.BilledMemberIDs))
	for i, id := range record.BilledMemberIDs {
		billed[i] = id.String()
	}

	return &AuctionRecordModel{
		ID:                  record.ID,
		GroupID:             record.GroupID,
		AuctionNumber:       record.AuctionNumber,
		WinnerMemberID:      record.WinnerMemberID,
		WinningBidAmount:    record.WinningBidAmount,
		CommissionAmount:    record.CommissionAmount,
		Discount:            record.Discount,
		NetDiscount:         record.NetDiscount,
		DividendPerMember:   record.DividendPerMember,
		FinalAmountToBePaid: record.FinalAmountToBePaid,
		AmountPaidToWinner:  record.AmountPaidToWinner,
		AuctionDate:         record.AuctionDate,
		AuctionMonth:        record.AuctionMonth,
		AuctionTime:         record.AuctionTime,
		BilledMemberIDs:     billed,
		RecordedBy:          record.RecordedBy,
		RecordedAt:          record.RecordedAt,
	}
}
