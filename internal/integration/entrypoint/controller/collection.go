package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/usecase/collection"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
)

// CollectionController handles member payment collection endpoints.
type CollectionController struct {
	recordCollectionUseCase *collection.RecordCollectionUseCase
	listCollectionsUseCase  *collection.ListCollectionsUseCase
	dueSheetUseCase         *collection.DueSheetUseCase
}

// NewCollectionController creates a new collection controller instance.
func NewCollectionController(
	recordCollectionUseCase *collection.RecordCollectionUseCase,
	listCollectionsUseCase *collection.ListCollectionsUseCase,
	dueSheetUseCase *collection.DueSheetUseCase,
) *CollectionController {
	return &CollectionController{
		recordCollectionUseCase: recordCollectionUseCase,
		listCollectionsUseCase:  listCollectionsUseCase,
		dueSheetUseCase:         dueSheetUseCase,
	}
}

// Record handles POST /collections requests. The receipt number, due
// snapshots and member due decrement are all written in one transaction.
func (c *CollectionController) Record(ctx *gin.Context) {
	var req dto.RecordCollectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingCollectionFields),
		})
		return
	}

	groupID, err := uuid.Parse(req.GroupID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeMissingCollectionFields),
		})
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMissingCollectionFields),
		})
		return
	}

	paymentDate, err := time.Parse(dateLayout, req.PaymentDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid payment_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingCollectionFields),
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	input := collection.RecordCollectionInput{
		GroupID:       groupID,
		MemberID:      memberID,
		AuctionNumber: req.AuctionNumber,
		Amount:        decimal.NewFromFloat(req.Amount),
		PaymentDate:   paymentDate,
		PaymentTime:   req.PaymentTime,
		PaymentMode:   entity.PaymentMode(req.PaymentMode),
		RecordedBy:    employeeID,
	}

	output, err := c.recordCollectionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCollectionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToCollectionResponse(output.Record))
}

// List handles GET /collections requests. Accepts optional group_id and
// member_id query filters.
func (c *CollectionController) List(ctx *gin.Context) {
	var input collection.ListCollectionsInput

	if raw := ctx.Query("group_id"); raw != "" {
		groupID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid group_id filter",
				Code:  string(domainerror.ErrCodeMissingCollectionFields),
			})
			return
		}
		input.GroupID = &groupID
	}

	if raw := ctx.Query("member_id"); raw != "" {
		memberID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid member_id filter",
				Code:  string(domainerror.ErrCodeMissingCollectionFields),
			})
			return
		}
		input.MemberID = &memberID
	}

	output, err := c.listCollectionsUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCollectionError(ctx, err)
		return
	}

	collections := make([]dto.CollectionResponse, 0, len(output.Records))
	for _, record := range output.Records {
		collections = append(collections, dto.ToCollectionResponse(record))
	}

	ctx.JSON(http.StatusOK, dto.CollectionListResponse{Collections: collections})
}

// DueSheet handles GET /groups/:id/due-sheet requests.
func (c *CollectionController) DueSheet(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeGroupNotFound),
		})
		return
	}

	output, err := c.dueSheetUseCase.Execute(ctx.Request.Context(), collection.DueSheetInput{GroupID: groupID})
	if err != nil {
		c.handleCollectionError(ctx, err)
		return
	}

	rows := make([]dto.DueSheetRowResponse, 0, len(output.Rows))
	for _, row := range output.Rows {
		rows = append(rows, dto.DueSheetRowResponse{
			MemberID:      row.MemberID.String(),
			MemberName:    row.MemberName,
			Username:      row.Username,
			Phone:         row.Phone,
			AuctionNumber: row.AuctionNumber,
			ChitAmount:    row.ChitAmount.String(),
			PaidSoFar:     row.PaidSoFar.String(),
			Balance:       row.Balance.String(),
		})
	}

	totals := make(map[string]string, len(output.TotalDues))
	for memberID, due := range output.TotalDues {
		totals[memberID.String()] = due.String()
	}

	ctx.JSON(http.StatusOK, dto.DueSheetResponse{
		Rows:      rows,
		TotalDues: totals,
	})
}

// handleCollectionError maps collection, group and member errors to HTTP responses.
func (c *CollectionController) handleCollectionError(ctx *gin.Context, err error) {
	var collectionErr *domainerror.CollectionError
	if errors.As(err, &collectionErr) {
		ctx.JSON(statusCodeForCollectionError(collectionErr.Code), dto.ErrorResponse{
			Error: collectionErr.Message,
			Code:  string(collectionErr.Code),
		})
		return
	}

	var groupErr *domainerror.GroupError
	if errors.As(err, &groupErr) {
		ctx.JSON(statusCodeForGroupError(groupErr.Code), dto.ErrorResponse{
			Error: groupErr.Message,
			Code:  string(groupErr.Code),
		})
		return
	}

	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		ctx.JSON(statusCodeForMemberError(memberErr.Code), dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
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

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForCollectionError maps collection error codes to HTTP status codes.
func statusCodeForCollectionError(code domainerror.CollectionErrorCode) int {
	switch code {
	case domainerror.ErrCodeCollectionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMemberNotInGroup,
		domainerror.ErrCodeInvalidCollectionAmount,
		domainerror.ErrCodeMissingCollectionFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeReceiptNumberExhausted:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
