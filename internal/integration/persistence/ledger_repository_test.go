package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

func recordAt(day time.Time, hour int) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, time.UTC)
}

func TestLedgerRepository_SumPaymentsForAuction(t *testing.T) {
	t.Run("should sum only the auction's payouts", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)

		auctionID := uuid.New()
		otherAuction := uuid.New()
		groupID := uuid.New()
		memberID := uuid.New()

		for _, p := range []struct {
			auction uuid.UUID
			amount  int64
		}{
			{auctionID, 30000},
			{auctionID, 20000},
			{otherAuction, 999},
		} {
			require.NoError(t, repo.CreatePayment(context.Background(), &entity.PaymentRecord{
				ID:          uuid.New(),
				GroupID:     groupID,
				AuctionID:   p.auction,
				MemberID:    memberID,
				Amount:      decimal.NewFromInt(p.amount),
				PaymentDate: time.Now().UTC(),
				PaymentMode: entity.PaymentModeBank,
				RecordedBy:  uuid.New(),
				RecordedAt:  time.Now().UTC(),
			}))
		}

		total, err := repo.SumPaymentsForAuction(context.Background(), auctionID)
		require.NoError(t, err)
		assert.True(t, total.Equal(decimal.NewFromInt(50000)), "total = %s", total)
	})

	t.Run("should return zero when the auction has no payouts", func(t *testing.T) {
		db := newTestDB(t)
		repo := NewLedgerRepository(db)

		total, err := repo.SumPaymentsForAuction(context.Background(), uuid.New())
		require.NoError(t, err)
		assert.True(t, total.IsZero())
	})
}

func TestLedgerRepository_DaySheetScans(t *testing.T) {
	db := newTestDB(t)
	repo := NewLedgerRepository(db)
	collectionRepo := NewCollectionRepository(db)

	day := time.Date(2024, 4, 10, 0, 0, 0, 0, time.UTC)
	recordedBy := uuid.New()

	// Day before: one credit so the sheet has an opening balance.
	require.NoError(t, repo.CreateCredit(context.Background(), &entity.CreditRecord{
		ID:         uuid.New(),
		Source:     "bank loan",
		Amount:     decimal.NewFromInt(30000),
		CreditDate: day.AddDate(0, 0, -1),
		RecordedBy: recordedBy,
		RecordedAt: recordAt(day.AddDate(0, 0, -1), 11),
	}))

	// On the day: one collection, one expense spend, one salary.
	group := seedTestGroup(t, db)
	member := seedTestMember(t, db, decimal.NewFromInt(3600))
	auctionNumber := 1
	collected, err := collectionRepo.Create(context.Background(), adapter.RecordCollectionParams{
		GroupID:          group.ID,
		MemberID:         member.ID,
		AuctionNumber:    &auctionNumber,
		Amount:           decimal.NewFromInt(3600),
		ChitAmountForDue: decimal.NewFromInt(3600),
		PaymentDate:      day,
		PaymentMode:      entity.PaymentModeCash,
		RecordedBy:       recordedBy,
	})
	require.NoError(t, err)
	require.NoError(t, db.Model(&model.CollectionRecordModel{}).
		Where("id = ?", collected.ID).
		Update("recorded_at", recordAt(day, 9)).Error)

	require.NoError(t, repo.CreateExpense(context.Background(), &entity.ExpenseRecord{
		ID:          uuid.New(),
		Type:        entity.ExpenseTypeSpend,
		Amount:      decimal.NewFromInt(500),
		ExpenseDate: day,
		Description: "office rent",
		RecordedBy:  recordedBy,
		RecordedAt:  recordAt(day, 14),
	}))

	require.NoError(t, repo.CreateSalary(context.Background(), &entity.SalaryRecord{
		ID:         uuid.New(),
		EmployeeID: uuid.New(),
		Amount:     decimal.NewFromInt(12000),
		SalaryDate: day,
		Month:      "2024-04",
		RecordedBy: recordedBy,
		RecordedAt: recordAt(day, 17),
	}))

	t.Run("should split totals before an instant into credits and debits", func(t *testing.T) {
		totals, err := repo.TotalsBefore(context.Background(), day)
		require.NoError(t, err)
		assert.True(t, totals.Credits.Equal(decimal.NewFromInt(30000)), "credits = %s", totals.Credits)
		assert.True(t, totals.Debits.IsZero(), "debits = %s", totals.Debits)
	})

	t.Run("should scan every collection for entries in the window", func(t *testing.T) {
		entries, err := repo.EntriesBetween(context.Background(), day, day.AddDate(0, 0, 1))
		require.NoError(t, err)
		require.Len(t, entries, 3)

		kinds := make(map[entity.LedgerEntryKind]decimal.Decimal)
		for _, entry := range entries {
			kinds[entry.Kind] = entry.Amount
		}

		assert.True(t, kinds[entity.LedgerEntryCollection].Equal(decimal.NewFromInt(3600)))
		assert.True(t, kinds[entity.LedgerEntryExpenseSpend].Equal(decimal.NewFromInt(500)))
		assert.True(t, kinds[entity.LedgerEntrySalary].Equal(decimal.NewFromInt(12000)))
	})

	t.Run("should exclude rows outside the window", func(t *testing.T) {
		entries, err := repo.EntriesBetween(context.Background(), day.AddDate(0, 0, -1), day)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, entity.LedgerEntryCredit, entries[0].Kind)
		assert.Equal(t, "bank loan", entries[0].Reference)
	})
}
