package dto

import (
	"time"

	"github.com/sendhur-chits/backend/internal/application/usecase/daysheet"
)

// DaySheetResponse represents the chronological cash statement of one day.
type DaySheetResponse struct {
	Date           time.Time             `json:"date"`
	OpeningBalance string                `json:"opening_balance"`
	Rows           []LedgerEntryResponse `json:"rows"`
	TotalCredits   string                `json:"total_credits"`
	TotalDebits    string                `json:"total_debits"`
	ClosingBalance string                `json:"closing_balance"`
}

// MasterLedgerDayResponse represents one day inside a master ledger range.
type MasterLedgerDayResponse struct {
	Date           time.Time             `json:"date"`
	OpeningBalance string                `json:"opening_balance"`
	Rows           []LedgerEntryResponse `json:"rows"`
	TotalCredits   string                `json:"total_credits"`
	TotalDebits    string                `json:"total_debits"`
	ClosingBalance string                `json:"closing_balance"`
}

// MasterLedgerResponse represents the day-by-day statement of a date range.
type MasterLedgerResponse struct {
	From           time.Time                 `json:"from"`
	To             time.Time                 `json:"to"`
	OpeningBalance string                    `json:"opening_balance"`
	Days           []MasterLedgerDayResponse `json:"days"`
	TotalCredits   string                    `json:"total_credits"`
	TotalDebits    string                    `json:"total_debits"`
	ClosingBalance string                    `json:"closing_balance"`
}

// ToDaySheetRows converts day-sheet rows to their DTO representation.
func ToDaySheetRows(rows []*daysheet.DaySheetRow) []LedgerEntryResponse {
	out := make([]LedgerEntryResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, LedgerEntryResponse{
			ID:             row.Entry.ID.String(),
			Kind:           string(row.Entry.Kind),
			Amount:         row.Entry.Amount.String(),
			Description:    row.Entry.Description,
			Reference:      row.Entry.Reference,
			RecordedAt:     row.Entry.RecordedAt,
			RunningBalance: row.RunningBalance.String(),
		})
	}
	return out
}

// ToDaySheetResponse converts a day-sheet use case output to its DTO.
func ToDaySheetResponse(output *daysheet.BuildDaySheetOutput) DaySheetResponse {
	return DaySheetResponse{
		Date:           output.Date,
		OpeningBalance: output.OpeningBalance.String(),
		Rows:           ToDaySheetRows(output.Rows),
		TotalCredits:   output.TotalCredits.String(),
		TotalDebits:    output.TotalDebits.String(),
		ClosingBalance: output.ClosingBalance.String(),
	}
}

// ToMasterLedgerResponse converts a master ledger use case output to its DTO.
func ToMasterLedgerResponse(output *daysheet.MasterLedgerOutput) MasterLedgerResponse {
	days := make([]MasterLedgerDayResponse, 0, len(output.Days))
	for _, day := range output.Days {
		days = append(days, MasterLedgerDayResponse{
			Date:           day.Date,
			OpeningBalance: day.OpeningBalance.String(),
			Rows:           ToDaySheetRows(day.Rows),
			TotalCredits:   day.TotalCredits.String(),
			TotalDebits:    day.TotalDebits.String(),
			ClosingBalance: day.ClosingBalance.String(),
		})
	}

	return MasterLedgerResponse{
		From:           output.From,
		To:             output.To,
		OpeningBalance: output.OpeningBalance.String(),
		Days:           days,
		TotalCredits:   output.TotalCredits.String(),
		TotalDebits:    output.TotalDebits.String(),
		ClosingBalance: output.ClosingBalance.String(),
	}
}
