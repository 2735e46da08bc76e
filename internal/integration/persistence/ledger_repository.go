package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	"github.com/sendhur-chits/backend/internal/integration/persistence/model"
)

// ledgerRepository implements the adapter.LedgerRepository interface. It
// owns the outflow tables and the cross-collection scans behind the day
// sheet and the master ledger.
type ledgerRepository struct {
	db *gorm.DB
}

// NewLedgerRepository creates a new ledger repository instance.
func NewLedgerRepository(db *gorm.DB) adapter.LedgerRepository {
	return &ledgerRepository{
		db: db,
	}
}

// CreatePayment records a payout to an auction winner.
func (r *ledgerRepository) CreatePayment(ctx context.Context, payment *entity.PaymentRecord) error {
	return r.db.WithContext(ctx).Create(model.PaymentRecordFromEntity(payment)).Error
}

// CreateCredit records money received from an outside source.
func (r *ledgerRepository) CreateCredit(ctx context.Context, credit *entity.CreditRecord) error {
	return r.db.WithContext(ctx).Create(model.CreditRecordFromEntity(credit)).Error
}

// CreateExpense records office money received or spent.
func (r *ledgerRepository) CreateExpense(ctx context.Context, expense *entity.ExpenseRecord) error {
	return r.db.WithContext(ctx).Create(model.ExpenseRecordFromEntity(expense)).Error
}

// CreateSalary records a salary payout to an employee.
func (r *ledgerRepository) CreateSalary(ctx context.Context, salary *entity.SalaryRecord) error {
	return r.db.WithContext(ctx).Create(model.SalaryRecordFromEntity(salary)).Error
}

// SumPaymentsForAuction sums payouts already recorded against an auction.
func (r *ledgerRepository) SumPaymentsForAuction(ctx context.Context, auctionID uuid.UUID) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := r.db.WithContext(ctx).
		Model(&model.PaymentRecordModel{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("auction_id = ?", auctionID).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

// ListPaymentsByGroup retrieves a group's payment records, newest first.
func (r *ledgerRepository) ListPaymentsByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.PaymentRecord, error) {
	var paymentModels []model.PaymentRecordModel
	result := r.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("recorded_at DESC").
		Find(&paymentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	payments := make([]*entity.PaymentRecord, len(paymentModels))
	for i, pm := range paymentModels {
		payments[i] = pm.ToEntity()
	}
	return payments, nil
}

// TotalsBefore sums every ledger collection recorded strictly before the
// given instant.
func (r *ledgerRepository) TotalsBefore(ctx context.Context, before time.Time) (*adapter.LedgerTotals, error) {
	totals := &adapter.LedgerTotals{Credits: decimal.Zero, Debits: decimal.Zero}
	db := r.db.WithContext(ctx)

	creditSums := []struct {
		model interface{}
		where string
		args  []interface{}
	}{
		{&model.CollectionRecordModel{}, "recorded_at < ?", []interface{}{before}},
		{&model.CreditRecordModel{}, "recorded_at < ?", []interface{}{before}},
		{&model.ExpenseRecordModel{}, "recorded_at < ? AND type = ?", []interface{}{before, string(entity.ExpenseTypeReceived)}},
	}
	for _, q := range creditSums {
		sum, err := sumAmount(db, q.model, q.where, q.args...)
		if err != nil {
			return nil, err
		}
		totals.Credits = totals.Credits.Add(sum)
	}

	debitSums := []struct {
		model interface{}
		where string
		args  []interface{}
	}{
		{&model.PaymentRecordModel{}, "recorded_at < ?", []interface{}{before}},
		{&model.SalaryRecordModel{}, "recorded_at < ?", []interface{}{before}},
		{&model.ExpenseRecordModel{}, "recorded_at < ? AND type = ?", []interface{}{before, string(entity.ExpenseTypeSpend)}},
	}
	for _, q := range debitSums {
		sum, err := sumAmount(db, q.model, q.where, q.args...)
		if err != nil {
			return nil, err
		}
		totals.Debits = totals.Debits.Add(sum)
	}

	return totals, nil
}

// EntriesBetween scans every ledger collection for rows recorded in
// [from, to) and reduces them to the common entry shape.
func (r *ledgerRepository) EntriesBetween(ctx context.Context, from, to time.Time) ([]*entity.LedgerEntry, error) {
	db := r.db.WithContext(ctx)
	var entries []*entity.LedgerEntry

	var collectionModels []model.CollectionRecordModel
	if err := db.Where("recorded_at >= ? AND recorded_at < ?", from, to).Find(&collectionModels).Error; err != nil {
		return nil, err
	}
	for _, cm := range collectionModels {
		entries = append(entries, &entity.LedgerEntry{
			ID:          cm.ID,
			Kind:        entity.LedgerEntryCollection,
			Amount:      cm.Amount,
			Description: "collection",
			Reference:   cm.ReceiptNumber,
			RecordedAt:  cm.RecordedAt,
		})
	}

	var creditModels []model.CreditRecordModel
	if err := db.Where("recorded_at >= ? AND recorded_at < ?", from, to).Find(&creditModels).Error; err != nil {
		return nil, err
	}
	for _, cm := range creditModels {
		entries = append(entries, &entity.LedgerEntry{
			ID:          cm.ID,
			Kind:        entity.LedgerEntryCredit,
			Amount:      cm.Amount,
			Description: cm.Description,
			Reference:   cm.Source,
			RecordedAt:  cm.RecordedAt,
		})
	}

	var expenseModels []model.ExpenseRecordModel
	if err := db.Where("recorded_at >= ? AND recorded_at < ?", from, to).Find(&expenseModels).Error; err != nil {
		return nil, err
	}
	for _, em := range expenseModels {
		kind := entity.LedgerEntryExpenseSpend
		if em.Type == string(entity.ExpenseTypeReceived) {
			kind = entity.LedgerEntryExpenseReceived
		}
		entries = append(entries, &entity.LedgerEntry{
			ID:          em.ID,
			Kind:        kind,
			Amount:      em.Amount,
			Description: em.Description,
			RecordedAt:  em.RecordedAt,
		})
	}

	var paymentModels []model.PaymentRecordModel
	if err := db.Where("recorded_at >= ? AND recorded_at < ?", from, to).Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	for _, pm := range paymentModels {
		entries = append(entries, &entity.LedgerEntry{
			ID:          pm.ID,
			Kind:        entity.LedgerEntryPayment,
			Amount:      pm.Amount,
			Description: "winner payment",
			Reference:   pm.MemberID.String(),
			RecordedAt:  pm.RecordedAt,
		})
	}

	var salaryModels []model.SalaryRecordModel
	if err := db.Where("recorded_at >= ? AND recorded_at < ?", from, to).Find(&salaryModels).Error; err != nil {
		return nil, err
	}
	for _, sm := range salaryModels {
		entries = append(entries, &entity.LedgerEntry{
			ID:          sm.ID,
			Kind:        entity.LedgerEntrySalary,
			Amount:      sm.Amount,
			Description: "salary " + sm.Month,
			Reference:   sm.EmployeeID.String(),
			RecordedAt:  sm.RecordedAt,
		})
	}

	return entries, nil
}

func sumAmount(db *gorm.DB, m interface{}, where string, args ...interface{}) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	result := db.Model(m).
		Select("COALESCE(SUM(amount), 0)").
		Where(where, args...).
		Scan(&total)
	if result.Error != nil {
		return decimal.Zero, result.Error
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}
