package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/usecase/auction"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
)

// AuctionController handles auction settlement endpoints.
type AuctionController struct {
	startAuctionUseCase *auction.StartAuctionUseCase
	listAuctionsUseCase *auction.ListAuctionsUseCase
}

// NewAuctionController creates a new auction controller instance.
func NewAuctionController(
	startAuctionUseCase *auction.StartAuctionUseCase,
	listAuctionsUseCase *auction.ListAuctionsUseCase,
) *AuctionController {
	return &AuctionController{
		startAuctionUseCase: startAuctionUseCase,
		listAuctionsUseCase: listAuctionsUseCase,
	}
}

// Start handles POST /groups/:id/auctions requests. It settles the auction:
// derives the commission, dividend and per-member installment from the
// winning bid and bills every current member in one transaction.
func (c *AuctionController) Start(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeGroupNotFound),
		})
		return
	}

	var req dto.StartAuctionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingAuctionFields),
		})
		return
	}

	winnerID, err := uuid.Parse(req.WinnerMemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid winner member ID",
			Code:  string(domainerror.ErrCodeMissingAuctionFields),
		})
		return
	}

	auctionDate, err := time.Parse(dateLayout, req.AuctionDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid auction_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingAuctionFields),
		})
		return
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	input := auction.StartAuctionInput{
		GroupID:          groupID,
		AuctionNumber:    req.AuctionNumber,
		WinnerMemberID:   winnerID,
		WinningBidAmount: decimal.NewFromFloat(req.WinningBidAmount),
		AuctionDate:      auctionDate,
		AuctionTime:      req.AuctionTime,
		RecordedBy:       employeeID,
	}

	output, err := c.startAuctionUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleAuctionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAuctionResponse(output.Record))
}

// List handles GET /groups/:id/auctions requests.
func (c *AuctionController) List(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeGroupNotFound),
		})
		return
	}

	output, err := c.listAuctionsUseCase.Execute(ctx.Request.Context(), auction.ListAuctionsInput{GroupID: groupID})
	if err != nil {
		c.handleAuctionError(ctx, err)
		return
	}

	auctions := make([]dto.AuctionResponse, 0, len(output.Records))
	for _, record := range output.Records {
		auctions = append(auctions, dto.ToAuctionResponse(record))
	}

	ctx.JSON(http.StatusOK, dto.AuctionListResponse{Auctions: auctions})
}

// handleAuctionError maps auction and group errors to HTTP responses.
func (c *AuctionController) handleAuctionError(ctx *gin.Context, err error) {
	var auctionErr *domainerror.AuctionError
	if errors.As(err, &auctionErr) {
		ctx.JSON(statusCodeForAuctionError(auctionErr.Code), dto.ErrorResponse{
			Error: auctionErr.Message,
			Code:  string(auctionErr.Code),
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

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForAuctionError maps auction error codes to HTTP status codes.
func statusCodeForAuctionError(code domainerror.AuctionErrorCode) int {
	switch code {
	case domainerror.ErrCodeAuctionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeDuplicateAuctionNumber,
		domainerror.ErrCodeWinnerAlreadyWon:
		return http.StatusConflict
	case domainerror.ErrCodeAuctionNumberOutOfRange,
		domainerror.ErrCodeWinnerNotInGroup,
		domainerror.ErrCodeInvalidBidAmount,
		domainerror.ErrCodeBidBelowMinimum,
		domainerror.ErrCodeMissingAuctionFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
