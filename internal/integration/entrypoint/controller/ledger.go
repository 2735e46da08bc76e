package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/usecase/ledger"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
)

// LedgerController handles outflow and inflow ledger endpoints.
type LedgerController struct {
	recordPaymentUseCase *ledger.RecordPaymentUseCase
	recordEntriesUseCase *ledger.RecordEntriesUseCase
}

// NewLedgerController creates a new ledger controller instance.
func NewLedgerController(
	recordPaymentUseCase *ledger.RecordPaymentUseCase,
	recordEntriesUseCase *ledger.RecordEntriesUseCase,
) *LedgerController {
	return &LedgerController{
		recordPaymentUseCase: recordPaymentUseCase,
		recordEntriesUseCase: recordEntriesUseCase,
	}
}

// RecordPayment handles POST /ledger/payments requests. Payouts to an
// auction winner may be split into instalments; the running total can
// never exceed the settled amount.
func (c *LedgerController) RecordPayment(ctx *gin.Context) {
	var req dto.RecordPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	auctionID, err := uuid.Parse(req.AuctionID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid auction ID",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	input := ledger.RecordPaymentInput{
		GroupID:     groupID,
		AuctionID:   auctionID,
		Amount:      decimal.NewFromFloat(req.Amount),
		PaymentDate: paymentDate,
		PaymentTime: req.PaymentTime,
		PaymentMode: entity.PaymentMode(req.PaymentMode),
		Notes:       req.Notes,
		RecordedBy:  employeeID,
	}

	output, err := c.recordPaymentUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToPaymentResponse(output.Payment))
}

// RecordCredit handles POST /ledger/credits requests.
func (c *LedgerController) RecordCredit(ctx *gin.Context) {
	var req dto.RecordCreditRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	creditDate, err := time.Parse(dateLayout, req.CreditDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid credit_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	record, err := c.recordEntriesUseCase.RecordCredit(ctx.Request.Context(), ledger.RecordCreditInput{
		Source:      req.Source,
		Amount:      decimal.NewFromFloat(req.Amount),
		CreditDate:  creditDate,
		Description: req.Description,
		RecordedBy:  employeeID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":          record.ID.String(),
		"source":      record.Source,
		"amount":      record.Amount.String(),
		"credit_date": record.CreditDate,
		"description": record.Description,
		"recorded_at": record.RecordedAt,
	})
}

// RecordExpense handles POST /ledger/expenses requests.
func (c *LedgerController) RecordExpense(ctx *gin.Context) {
	var req dto.RecordExpenseRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	expenseDate, err := time.Parse(dateLayout, req.ExpenseDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid expense_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	record, err := c.recordEntriesUseCase.RecordExpense(ctx.Request.Context(), ledger.RecordExpenseInput{
		Type:        entity.ExpenseType(req.Type),
		Amount:      decimal.NewFromFloat(req.Amount),
		ExpenseDate: expenseDate,
		Description: req.Description,
		RecordedBy:  employeeID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":           record.ID.String(),
		"type":         string(record.Type),
		"amount":       record.Amount.String(),
		"expense_date": record.ExpenseDate,
		"description":  record.Description,
		"recorded_at":  record.RecordedAt,
	})
}

// RecordSalary handles POST /ledger/salaries requests. Admin only.
func (c *LedgerController) RecordSalary(ctx *gin.Context) {
	var req dto.RecordSalaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	targetEmployeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid employee ID",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	salaryDate, err := time.Parse(dateLayout, req.SalaryDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid salary_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingLedgerFields),
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	record, err := c.recordEntriesUseCase.RecordSalary(ctx.Request.Context(), ledger.RecordSalaryInput{
		EmployeeID: targetEmployeeID,
		Amount:     decimal.NewFromFloat(req.Amount),
		SalaryDate: salaryDate,
		Month:      req.Month,
		Notes:      req.Notes,
		RecordedBy: employeeID,
	})
	if err != nil {
		c.handleLedgerError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"id":          record.ID.String(),
		"employee_id": record.EmployeeID.String(),
		"amount":      record.Amount.String(),
		"salary_date": record.SalaryDate,
		"month":       record.Month,
		"notes":       record.Notes,
		"recorded_at": record.RecordedAt,
	})
}

// handleLedgerError maps ledger, auction and auth errors to HTTP responses.
func (c *LedgerController) handleLedgerError(ctx *gin.Context, err error) {
	var ledgerErr *domainerror.LedgerError
	if errors.As(err, &ledgerErr) {
		ctx.JSON(statusCodeForLedgerError(ledgerErr.Code), dto.ErrorResponse{
			Error: ledgerErr.Message,
			Code:  string(ledgerErr.Code),
		})
		return
	}

	var auctionErr *domainerror.AuctionError
	if errors.As(err, &auctionErr) {
		ctx.JSON(statusCodeForAuctionError(auctionErr.Code), dto.ErrorResponse{
			Error: auctionErr.Message,
			Code:  string(auctionErr.Code),
		})
		return
	}

	var authErr *domainerror.AuthError
	if errors.As(err, &authErr) {
		ctx.JSON(statusCodeForAuthError(authErr.Code), dto.ErrorResponse{
			Error: authErr.Message,
			Code:  string(authErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForLedgerError maps ledger error codes to HTTP status codes.
func statusCodeForLedgerError(code domainerror.LedgerErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidLedgerAmount,
		domainerror.ErrCodeInvalidExpenseType,
		domainerror.ErrCodePaymentExceedsWinnerAmount,
		domainerror.ErrCodeInvalidDaySheetDate,
		domainerror.ErrCodeInvalidLedgerRange,
		domainerror.ErrCodeMissingLedgerFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
