package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/sendhur-chits/backend/internal/application/usecase/member"
	"github.com/sendhur-chits/backend/internal/application/usecase/notification"
	domainerror "github.com/sendhur-chits/backend/internal/domain/error"
	"github.com/sendhur-chits/backend/internal/integration/entrypoint/dto"
)

// MemberController handles customer member endpoints.
type MemberController struct {
	createMemberUseCase     *member.CreateMemberUseCase
	listMembersUseCase      *member.ListMembersUseCase
	getMemberUseCase        *member.GetMemberUseCase
	reconcileDueUseCase     *member.ReconcileDueUseCase
	queueDueReminderUseCase *notification.QueueDueReminderUseCase
}

// NewMemberController creates a new member controller instance.
func NewMemberController(
	createMemberUseCase *member.CreateMemberUseCase,
	listMembersUseCase *member.ListMembersUseCase,
	getMemberUseCase *member.GetMemberUseCase,
	reconcileDueUseCase *member.ReconcileDueUseCase,
	queueDueReminderUseCase *notification.QueueDueReminderUseCase,
) *MemberController {
	return &MemberController{
		createMemberUseCase:     createMemberUseCase,
		listMembersUseCase:      listMembersUseCase,
		getMemberUseCase:        getMemberUseCase,
		reconcileDueUseCase:     reconcileDueUseCase,
		queueDueReminderUseCase: queueDueReminderUseCase,
	}
}

// Create handles POST /members requests.
func (c *MemberController) Create(ctx *gin.Context) {
	var req dto.CreateMemberRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingMemberFields),
		})
		return
	}

	input := member.CreateMemberInput{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		AadhaarURL: req.AadhaarURL,
		PANURL:     req.PANURL,
		PhotoURL:   req.PhotoURL,
	}

	output, err := c.createMemberUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToMemberResponse(output.Member))
}

// List handles GET /members requests.
func (c *MemberController) List(ctx *gin.Context) {
	output, err := c.listMembersUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	members := make([]dto.MemberResponse, 0, len(output.Members))
	for _, m := range output.Members {
		members = append(members, dto.ToMemberResponse(m))
	}

	ctx.JSON(http.StatusOK, dto.MemberListResponse{Members: members})
}

// Get handles GET /members/:id requests.
func (c *MemberController) Get(ctx *gin.Context) {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	output, err := c.getMemberUseCase.Execute(ctx.Request.Context(), member.GetMemberInput{MemberID: memberID})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	groups := make([]dto.GroupListItemResponse, 0, len(output.Groups))
	for _, g := range output.Groups {
		groups = append(groups, dto.ToGroupListItemResponse(g))
	}

	ctx.JSON(http.StatusOK, dto.MemberDetailResponse{
		Member: dto.ToMemberResponse(output.Member),
		Groups: groups,
	})
}

// ReconcileDue handles POST /members/:id/reconcile requests.
// It recomputes the member's due from the auction and collection ledgers
// and corrects the stored value when they disagree.
func (c *MemberController) ReconcileDue(ctx *gin.Context) {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	output, err := c.reconcileDueUseCase.Execute(ctx.Request.Context(), member.ReconcileDueInput{MemberID: memberID})
	if err != nil {
		c.handleMemberError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToDueReconciliationResponse(output.Reconciliation))
}

// SendDueReminder handles POST /members/:id/remind requests.
func (c *MemberController) SendDueReminder(ctx *gin.Context) {
	memberID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid member ID",
			Code:  string(domainerror.ErrCodeMemberNotFound),
		})
		return
	}

	output, err := c.queueDueReminderUseCase.Execute(ctx.Request.Context(), notification.QueueDueReminderInput{MemberID: memberID})
	if err != nil {
		var notifyErr *domainerror.NotificationError
		if errors.As(err, &notifyErr) {
			status := http.StatusBadRequest
			if notifyErr.Code == domainerror.ErrCodeReminderAlreadySent {
				status = http.StatusConflict
			}
			ctx.JSON(status, dto.ErrorResponse{
				Error: notifyErr.Message,
				Code:  string(notifyErr.Code),
			})
			return
		}
		c.handleMemberError(ctx, err)
		return
	}

	if !output.Queued {
		ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "Member has no pending due"})
		return
	}

	ctx.JSON(http.StatusAccepted, dto.MessageResponse{Message: "Due reminder queued"})
}

// handleMemberError maps member errors to HTTP responses.
func (c *MemberController) handleMemberError(ctx *gin.Context, err error) {
	var memberErr *domainerror.MemberError
	if errors.As(err, &memberErr) {
		ctx.JSON(statusCodeForMemberError(memberErr.Code), dto.ErrorResponse{
			Error: memberErr.Message,
			Code:  string(memberErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// statusCodeForMemberError maps member error codes to HTTP status codes.
func statusCodeForMemberError(code domainerror.MemberErrorCode) int {
	switch code {
	case domainerror.ErrCodeMemberNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeMemberPhoneExists:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidPhone,
		domainerror.ErrCodeMissingMemberFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
