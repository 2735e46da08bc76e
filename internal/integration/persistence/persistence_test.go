package persistence

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sendhur-chits/backend/internal/domain/entity"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// newTestDB opens a fresh in-memory sqlite database with all tables
// migrated. Single connection, so writes serialize like they would
// under the postgres row locks.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&model.EmployeeModel{},
		&model.RefreshTokenModel{},
		&model.MemberModel{},
		&model.GroupModel{},
		&model.GroupMemberModel{},
		&model.AuctionRecordModel{},
		&model.CollectionRecordModel{},
		&model.PaymentRecordModel{},
		&model.CreditRecordModel{},
		&model.ExpenseRecordModel{},
		&model.SalaryRecordModel{},
		&model.CounterModel{},
		&model.NotificationJobModel{},
	))

	return db
}

var testSeq int

// seedTestMember inserts a member with a unique username and phone.
func seedTestMember(t *testing.T, db *gorm.DB, due decimal.Decimal) *entity.Member {
	t.Helper()

	testSeq++
	now := time.Now().UTC()
	member := &entity.Member{
		ID:        uuid.New(),
		Username:  fmt.Sprintf("CHT%04d", testSeq),
		FullName:  fmt.Sprintf("Member %d", testSeq),
		Phone:     fmt.Sprintf("98765%05d", testSeq),
		DueAmount: due,
		CreatedAt: now,
		UpdatedAt: now,
	}
	require.NoError(t, db.Create(model.MemberFromEntity(member)).Error)
	return member
}

// seedTestGroup inserts a chit group ready for its first auction.
func seedTestGroup(t *testing.T, db *gorm.DB) *entity.Group {
	t.Helper()

	testSeq++
	now := time.Now().UTC()
	group := &entity.Group{
		ID:                uuid.New(),
		GroupName:         fmt.Sprintf("Group %d", testSeq),
		TotalPeople:       20,
		TotalAmount:       decimal.NewFromInt(100000),
		Tenure:            20,
		StartDate:         now,
		Rate:              decimal.NewFromInt(5000),
		CommissionPercent: decimal.NewFromInt(5),
		BiddingType:       entity.BiddingTypeOpen,
		MinBid:            decimal.NewFromInt(70000),
		NextAuctionNumber: 1,
		AuctionMonth:      now.Format("2006-01"),
		CreatedBy:         uuid.New(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	require.NoError(t, db.Create(model.GroupFromEntity(group)).Error)
	return group
}

func memberDue(t *testing.T, db *gorm.DB, memberID uuid.UUID) decimal.Decimal {
	t.Helper()

	var memberModel model.MemberModel
	require.NoError(t, db.Where("id = ?", memberID).First(&memberModel).Error)
	return memberModel.DueAmount
}
