// Package daysheet contains the day-sheet and master-ledger aggregation
// use cases.
package daysheet

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// BuildDaySheetInput carries the parameters for assembling a day sheet.
type BuildDaySheetInput struct {
	Date time.Time
}

// DaySheetRow is one movement on the sheet with its running balance.
type DaySheetRow struct {
	Entry          *entity.LedgerEntry
	RunningBalance decimal.Decimal
}

// BuildDaySheetOutput is the fully assembled sheet for one calendar day.
type BuildDaySheetOutput struct {
	Date           time.Time
	OpeningBalance decimal.Decimal
	Rows           []*DaySheetRow
	TotalCredits   decimal.Decimal
	TotalDebits    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// BuildDaySheetUseCase assembles the cash position for a single day from
// every ledger collection. The sheet is always recomputed from the rows,
// never cached, so corrections made to past entries show up immediately.
type BuildDaySheetUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewBuildDaySheetUseCase creates a new BuildDaySheetUseCase.
func NewBuildDaySheetUseCase(ledgerRepo adapter.LedgerRepository) *BuildDaySheetUseCase {
	return &BuildDaySheetUseCase{ledgerRepo: ledgerRepo}
}

// Execute builds the day sheet for the requested date. The opening
// balance is the sum of all credits minus all debits recorded strictly
// before midnight of that date, so the earliest day opens at zero.
func (uc *BuildDaySheetUseCase) Execute(ctx context.Context, input BuildDaySheetInput) (*BuildDaySheetOutput, error) {
	if input.Date.IsZero() {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidDaySheetDate,
			"day sheet date is required",
			domainerror.ErrInvalidDaySheetDate,
		)
	}

	startOfDay := time.Date(input.Date.Year(), input.Date.Month(), input.Date.Day(), 0, 0, 0, 0, time.UTC)
	endOfDay := startOfDay.AddDate(0, 0, 1)

	totals, err := uc.ledgerRepo.TotalsBefore(ctx, startOfDay)
	if err != nil {
		return nil, err
	}
	opening := totals.Credits.Sub(totals.Debits)

	entries, err := uc.ledgerRepo.EntriesBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)

	rows := make([]*DaySheetRow, 0, len(entries))
	credits := decimal.Zero
	debits := decimal.Zero
	running := opening

	for _, entry := range entries {
		if entry.Kind.IsCredit() {
			credits = credits.Add(entry.Amount)
			running = running.Add(entry.Amount)
		} else {
			debits = debits.Add(entry.Amount)
			running = running.Sub(entry.Amount)
		}
		rows = append(rows, &DaySheetRow{Entry: entry, RunningBalance: running})
	}

	slog.Debug("day sheet assembled",
		"date", startOfDay.Format("2006-01-02"),
		"rows", len(rows),
		"closing", running.String(),
	)

	return &BuildDaySheetOutput{
		Date:           startOfDay,
		OpeningBalance: opening,
		Rows:           rows,
		TotalCredits:   credits,
		TotalDebits:    debits,
		ClosingBalance: running,
	}, nil
}

// sortEntries orders entries by recording instant ascending, falling
// back to the id for rows stamped in the same instant so the order is
// stable across rebuilds.
func sortEntries(entries []*entity.LedgerEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].RecordedAt.Equal(entries[j].RecordedAt) {
			return entries[i].ID.String() < entries[j].ID.String()
		}
		return entries[i].RecordedAt.Before(entries[j].RecordedAt)
	})
}
