package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sendhur-chits/backend/internal/application/usecase/group"
	"github.com/sendhur-chits/backend/internal/domain/entity"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/middleware"
)

const dateLayout = "2006-01-02"

// GroupController handles chit group endpoints.
type GroupController struct {
	createGroupUseCase *group.CreateGroupUseCase
	listGroupsUseCase  *group.ListGroupsUseCase
	getGroupUseCase    *group.GetGroupUseCase
	addMemberUseCase   *group.AddMemberUseCase
}

// NewGroupController creates a new group controller instance.
func NewGroupController(
	createGroupUseCase *group.CreateGroupUseCase,
	listGroupsUseCase *group.ListGroupsUseCase,
	getGroupUseCase *group.GetGroupUseCase,
	addMemberUseCase *group.AddMemberUseCase,
) *GroupController {
	return &GroupController{
		createGroupUseCase: createGroupUseCase,
		listGroupsUseCase:  listGroupsUseCase,
		getGroupUseCase:    getGroupUseCase,
		addMemberUseCase:   addMemberUseCase,
	}
}

// Create handles POST /groups requests.
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGroupFields),
		})
		return
	}

	startDate, err := time.Parse(dateLayout, req.StartDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid start_date, expected YYYY-MM-DD",
			Code:  string(domainerror.ErrCodeMissingGroupFields),
		})
		return
	}

	memberIDs := make([]uuid.UUID, 0, len(req.MemberIDs))
	for _, raw := range req.MemberIDs {
		id, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid member ID: " + raw,
				Code:  string(domainerror.ErrCodeMissingGroupFields),
			})
			return
		}
		memberIDs = append(memberIDs, id)
	}

	employeeID, _ := middleware.GetEmployeeIDFromContext(ctx)

	input := group.CreateGroupInput{
		GroupName:         req.GroupName,
		Description:       req.Description,
		TotalPeople:       req.TotalPeople,
		TotalAmount:       decimal.NewFromFloat(req.TotalAmount),
		Tenure:            req.Tenure,
		StartDate:         startDate,
		Rate:              decimal.NewFromFloat(req.Rate),
		CommissionPercent: decimal.NewFromFloat(req.CommissionPercent),
		BiddingType:       entity.BiddingType(req.BiddingType),
		MinBid:            decimal.NewFromFloat(req.MinBid),
		MemberIDs:         memberIDs,
		CreatedBy:         employeeID,
	}

	output, err := c.createGroupUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToGroupResponse(output.Group))
}

// List handles GET /groups requests.
func (c *GroupController) List(ctx *gin.Context) {
	output, err := c.listGroupsUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	groups := make([]dto.GroupListItemResponse, 0, len(output.Groups))
	for _, item := range output.Groups {
		groups = append(groups, dto.ToGroupListItemResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.GroupListResponse{Groups: groups})
}

// Get handles GET /groups/:id requests.
func (c *GroupController) Get(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeGroupNotFound),
		})
		return
	}

	output, err := c.getGroupUseCase.Execute(ctx.Request.Context(), group.GetGroupInput{GroupID: groupID})
	if err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	members := make([]dto.MemberResponse, 0, len(output.Members))
	for _, m := range output.Members {
		members = append(members, dto.ToMemberResponse(m))
	}

	auctions := make([]dto.AuctionResponse, 0, len(output.Auctions))
	for _, a := range output.Auctions {
		auctions = append(auctions, dto.ToAuctionResponse(a))
	}

	ctx.JSON(http.StatusOK, dto.GroupDetailResponse{
		Group:    dto.ToGroupResponse(output.Group),
		Members:  members,
		Auctions: auctions,
	})
}

// AddMember handles POST /groups/:id/members requests.
func (c *GroupController) AddMember(ctx *gin.Context) {
	groupID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid group ID",
			Code:  string(domainerror.ErrCodeGroupNotFound),
		})
		return
	}

	var req dto.AddGroupMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingGroupFields),
		})
		return
	}

	memberID, err := uuid.Parse(req.MemberID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	if err := c.addMemberUseCase.Execute(ctx.Request.Context(), group.AddMemberInput{
		GroupID:  groupID,
		MemberID: memberID,
	}); err != nil {
		c.handleGroupError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member added to group"})
}

// handleGroupError maps group and member errors to HTTP responses.
func (c *GroupController) handleGroupError(ctx *gin.Context, err error) {
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
		status := http.StatusBadRequest
		if memberErr.Code == domainerror.ErrCodeMemberNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForGroupError maps group error codes to HTTP status codes.
func statusCodeForGroupError(code domainerror.GroupErrorCode) int {
	switch code {
	case domainerror.ErrCodeGroupNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeGroupFull,
		domainerror.ErrCodeMemberAlreadyInGroup:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidTenure,
		domainerror.ErrCodeInvalidGroupAmounts,
		domainerror.ErrCodeTooManyInitialMembers,
		domainerror.ErrCodeMissingGroupFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
