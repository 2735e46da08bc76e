package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sendhur-chits/backend/internal/application/usecase/daysheet"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
)

// DaySheetController handles day sheet and master ledger endpoints.
type DaySheetController struct {
	buildDaySheetUseCase *daysheet.BuildDaySheetUseCase
	masterLedgerUseCase  *daysheet.MasterLedgerUseCase
}

// NewDaySheetController creates a new day sheet controller instance.
func NewDaySheetController(
	buildDaySheetUseCase *daysheet.BuildDaySheetUseCase,
	masterLedgerUseCase *daysheet.MasterLedgerUseCase,
) *DaySheetController {
	return &DaySheetController{
		buildDaySheetUseCase: buildDaySheetUseCase,
		masterLedgerUseCase:  masterLedgerUseCase,
	}
}

// Get handles GET /day-sheet requests. The sheet is recomputed from the
// ledgers on every request, never cached. The date query parameter
// defaults to today.
func (c *DaySheetController) Get(ctx *gin.Context) {
	date := time.Now().UTC()

	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse(dateLayout, raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date, expected YYYY-MM-DD",
				Code:  string(domainerror.ErrCodeInvalidDaySheetDate),
			})
			return
		}
		date = parsed
	}

	output, err := c.buildDaySheetUseCase.Execute(ctx.Request.Context(), daysheet.BuildDaySheetInput{Date: date})
	if err != nil {
		c.handleDaySheetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDaySheetResponse(output))
}

// MasterLedger handles GET /master-ledger requests. Requires from and to
// query parameters.
func (c *DaySheetController) MasterLedger(ctx *gin.Context) {
	from, err := time.Parse(dateLayout, ctx.Query("from"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid from date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidLedgerRange),
		})
		return
	}

	to, err := time.Parse(dateLayout, ctx.Query("to"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid to date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeInvalidLedgerRange),
		})
		return
	}

	output, err := c.masterLedgerUseCase.Execute(ctx.Request.Context(), daysheet.MasterLedgerInput{
		From: from,
		To:   to,
	})
	if err != nil {
		c.handleDaySheetError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMasterLedgerResponse(output))
}

// handleDaySheetError maps ledger errors to HTTP responses.
func (c *DaySheetController) handleDaySheetError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
