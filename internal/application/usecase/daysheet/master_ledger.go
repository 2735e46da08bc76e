package daysheet

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/adapter"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
)

// MasterLedgerInput carries an inclusive date range for the report.
type MasterLedgerInput struct {
	From time.Time
	To   time.Time
}

// MasterLedgerDay is one day of the report, sharing the day-sheet row
// shape so the two screens render the same way.
type MasterLedgerDay struct {
	Date           time.Time
	OpeningBalance decimal.Decimal
	Rows           []*DaySheetRow
	TotalCredits   decimal.Decimal
	TotalDebits    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// MasterLedgerOutput is the whole range with its boundary balances.
type MasterLedgerOutput struct {
	From           time.Time
	To             time.Time
	OpeningBalance decimal.Decimal
	Days           []*MasterLedgerDay
	TotalCredits   decimal.Decimal
	TotalDebits    decimal.Decimal
	ClosingBalance decimal.Decimal
}

// MasterLedgerUseCase assembles the running office ledger over a date
// range, one day sheet per day that has movements.
type MasterLedgerUseCase struct {
	ledgerRepo adapter.LedgerRepository
}

// NewMasterLedgerUseCase creates a new MasterLedgerUseCase.
func NewMasterLedgerUseCase(ledgerRepo adapter.LedgerRepository) *MasterLedgerUseCase {
	return &MasterLedgerUseCase{ledgerRepo: ledgerRepo}
}

// Execute builds the report for [From, To]. Days without movements are
// skipped; each day carries the running balance forward so the last
// day's closing balance equals the range opening plus net movement.
func (uc *MasterLedgerUseCase) Execute(ctx context.Context, input MasterLedgerInput) (*MasterLedgerOutput, error) {
	if input.From.IsZero() || input.To.IsZero() || input.To.Before(input.From) {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidLedgerRange,
			"ledger range must be a valid from/to pair",
			domainerror.ErrInvalidLedgerRange,
		)
	}

	rangeStart := time.Date(input.From.Year(), input.From.Month(), input.From.Day(), 0, 0, 0, 0, time.UTC)
	rangeEnd := time.Date(input.To.Year(), input.To.Month(), input.To.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)

	totals, err := uc.ledgerRepo.TotalsBefore(ctx, rangeStart)
	if err != nil {
		return nil, err
	}
	opening := totals.Credits.Sub(totals.Debits)

	entries, err := uc.ledgerRepo.EntriesBetween(ctx, rangeStart, rangeEnd)
	if err != nil {
		return nil, err
	}
	sortEntries(entries)

	out := &MasterLedgerOutput{
		From:           rangeStart,
		To:             rangeEnd.AddDate(0, 0, -1),
		OpeningBalance: opening,
		TotalCredits:   decimal.Zero,
		TotalDebits:    decimal.Zero,
	}

	running := opening
	var day *MasterLedgerDay

	for _, entry := range entries {
		entryDay := time.Date(entry.RecordedAt.Year(), entry.RecordedAt.Month(), entry.RecordedAt.Day(), 0, 0, 0, 0, time.UTC)

		if day == nil || !day.Date.Equal(entryDay) {
			if day != nil {
				day.ClosingBalance = running
				out.Days = append(out.Days, day)
			}
			day = &MasterLedgerDay{
				Date:           entryDay,
				OpeningBalance: running,
				TotalCredits:   decimal.Zero,
				TotalDebits:    decimal.Zero,
			}
		}

		if entry.Kind.IsCredit() {
			day.TotalCredits = day.TotalCredits.Add(entry.Amount)
			out.TotalCredits = out.TotalCredits.Add(entry.Amount)
			running = running.Add(entry.Amount)
		} else {
			day.TotalDebits = day.TotalDebits.Add(entry.Amount)
			out.TotalDebits = out.TotalDebits.Add(entry.Amount)
			running = running.Sub(entry.Amount)
		}
		day.Rows = append(day.Rows, &DaySheetRow{Entry: entry, RunningBalance: running})
	}

	if day != nil {
		day.ClosingBalance = running
		out.Days = append(out.Days, day)
	}
	out.ClosingBalance = running

	return out, nil
}
