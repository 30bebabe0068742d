package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventhub/internal/domain"
)

type CollaborationService interface {
	Request(ctx context.Context, organizerID, eventID, vendorID, serviceID uint) (domain.CollaborationRequest, error)
	Respond(ctx context.Context, vendorID, requestID uint, accept bool) (domain.CollaborationRequest, error)
	CompleteService(ctx context.Context, organizerID, serviceID uint) (domain.Service, error)
	ListCollaborations(ctx context.Context, userID uint) ([]domain.CollaborationRequest, error)
}

type CollaborationHandler struct {
	svc CollaborationService
}

func NewCollaborationHandler(svc CollaborationService) *CollaborationHandler {
	return &CollaborationHandler{
		svc: svc,
	}
}

// HandleRequestCollaboration godoc
// @Summary      Ask a vendor to serve an event
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                           true  "event ID"
// @Param        input    body      request.CollaborationRequest  true  "vendor and service"
// @Success      201      {object}  domain.CollaborationRequest
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/collaborations [post]
// @Security     UserID
func (h *CollaborationHandler) HandleRequestCollaboration(ctx *gin.Context) {
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

	var input request.CollaborationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.Request(ctx.Request.Context(), userID, eventID, input.VendorID, input.ServiceID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleRequestCollaboration -> h.svc.Request -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleRespondCollaboration godoc
// @Summary      Accept or reject a collaboration request
// @Tags         collaborations
// @Accept       json
// @Produce      json
// @Param        requestID  path      int                     true  "collaboration request ID"
// @Param        input      body      request.RespondRequest  true  "answer"
// @Success      200        {object}  domain.CollaborationRequest
// @Failure      400        {object}  response.Err
// @Failure      403        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /collaborations/{requestID}/respond [post]
// @Security     UserID
func (h *CollaborationHandler) HandleRespondCollaboration(ctx *gin.Context) {
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
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleRespondCollaboration -> h.svc.Respond -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, answered)
}

// HandleListCollaborations godoc
// @Summary      List collaboration requests the caller sent or received
// @Tags         collaborations
// @Produce      json
// @Success      200  {array}   domain.CollaborationRequest
// @Failure      404  {object}  response.Err
// @Router       /collaborations [get]
// @Security     UserID
func (h *CollaborationHandler) HandleListCollaborations(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	list, err := h.svc.ListCollaborations(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleListCollaborations -> h.svc.ListCollaborations -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleCompleteService godoc
// @Summary      Mark an assigned service as delivered
// @Tags         services
// @Produce      json
// @Param        serviceID  path      int  true  "service ID"
// @Success      200        {object}  domain.Service
// @Failure      403        {object}  response.Err
// @Failure      409        {object}  response.Err
// @Router       /services/{serviceID}/complete [post]
// @Security     UserID
func (h *CollaborationHandler) HandleCompleteService(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	serviceID, respErr := paramID(ctx, "serviceID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	svc, err := h.svc.CompleteService(ctx.Request.Context(), userID, serviceID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleCompleteService -> h.svc.CompleteService -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, svc)
}
