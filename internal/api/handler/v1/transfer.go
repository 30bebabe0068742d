package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/service"
)

type TransferService interface {
	Request(ctx context.Context, senderID uint, recipientEmail string, eventID uint, lines []service.TransferLine) (domain.TransferRequest, error)
	Respond(ctx context.Context, recipientID, requestID uint, accept bool) (domain.TransferRequest, error)
	ListTransfers(ctx context.Context, userID uint) ([]domain.TransferRequest, error)
}

type TransferHandler struct {
	svc TransferService
}

func NewTransferHandler(svc TransferService) *TransferHandler {
	return &TransferHandler{
		svc: svc,
	}
}

// HandleRequestTransfer godoc
// @Summary      Offer tickets to another attendee
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                      true  "event ID"
// @Param        input    body      request.TransferRequest  true  "recipient and items"
// @Success      201      {object}  domain.TransferRequest
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/transfers [post]
// @Security     UserID
func (h *TransferHandler) HandleRequestTransfer(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	eventID, respErr := paramID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.TransferRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Request(ctx.Request.Context(), userID, input.RecipientEmail, eventID, input.Lines())
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleRequestTransfer -> h.svc.Request -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleRespondTransfer godoc
// @Summary      Accept or reject a transfer
// @Description  A transfer that can no longer be carried out is recorded as rejected and answered with 409.
// @Tags         transfers
// @Accept       json
// @Produce      json
// @Param        requestID  path      int                     true  "transfer request ID"
// @Param        input      body      request.RespondRequest  true  "answer"
// @Success      200        {object}  domain.TransferRequest
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /transfers/{requestID}/respond [post]
// @Security     UserID
func (h *TransferHandler) HandleRespondTransfer(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	requestID, respErr := paramID(ctx, "requestID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.RespondRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	answered, err := h.svc.Respond(ctx.Request.Context(), userID, requestID, *input.Accept)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleRespondTransfer -> h.svc.Respond -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, answered)
}

// HandleListTransfers godoc
// @Summary      List transfers the caller sent or received
// @Tags         transfers
// @Produce      json
// @Success      200  {array}   domain.TransferRequest
// @Failure      404  {object}  response.Err
// @Router       /transfers [get]
// @Security     UserID
func (h *TransferHandler) HandleListTransfers(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	transfers, err := h.svc.ListTransfers(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleListTransfers -> h.svc.ListTransfers -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, transfers)
}
