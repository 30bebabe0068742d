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

type CatalogService interface {
	CreateEvent(ctx context.Context, organizerID uint, draft service.EventDraft) (domain.Event, error)
	GetEvent(ctx context.Context, eventID uint) (domain.Event, error)
	ListEvents(ctx context.Context, organizerID uint) ([]domain.Event, error)
	CreateService(ctx context.Context, vendorID uint, draft service.ServiceDraft) (domain.Service, error)
	ListServices(ctx context.Context, vendorID uint) ([]domain.Service, error)
}

type CatalogHandler struct {
	svc CatalogService
}

func NewCatalogHandler(svc CatalogService) *CatalogHandler {
	return &CatalogHandler{
		svc: svc,
	}
}

// HandleListEvents godoc
// @Summary      List events
// @Description  Lists every event, or one organizer's events when organizer_id is given.
// @Tags         events
// @Produce      json
// @Param        organizer_id  query     int  false  "organizer filter"
// @Success      200           {array}   domain.Event
// @Failure      400           {object}  response.Err
// @Router       /events [get]
// @Security     UserID
func (h *CatalogHandler) HandleListEvents(ctx *gin.Context) {
	organizerID, respErr := queryID(ctx, "organizer_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	events, err := h.svc.ListEvents(ctx.Request.Context(), organizerID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleListEvents -> h.svc.ListEvents -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleGetEvent godoc
// @Summary      Get an event
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {object}  domain.Event
// @Failure      404      {object}  response.Err
// @Router       /events/{eventID} [get]
// @Security     UserID
func (h *CatalogHandler) HandleGetEvent(ctx *gin.Context) {
	eventID, respErr := paramID(ctx, "eventID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	ev, err := h.svc.GetEvent(ctx.Request.Context(), eventID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleGetEvent -> h.svc.GetEvent -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, ev)
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  Only organizers can create events.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events [post]
// @Security     UserID
func (h *CatalogHandler) HandleCreateEvent(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateEventRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	draft, err := input.Draft()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateEvent(ctx.Request.Context(), userID, draft)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}

// HandleListServices godoc
// @Summary      List vendor services
// @Tags         services
// @Produce      json
// @Param        vendor_id  query     int  false  "vendor filter"
// @Success      200        {array}   domain.Service
// @Failure      400        {object}  response.Err
// @Router       /services [get]
// @Security     UserID
func (h *CatalogHandler) HandleListServices(ctx *gin.Context) {
	vendorID, respErr := queryID(ctx, "vendor_id")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	services, err := h.svc.ListServices(ctx.Request.Context(), vendorID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleListServices -> h.svc.ListServices -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, services)
}

// HandleCreateService godoc
// @Summary      Offer a service
// @Description  Only vendors can offer services.
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateServiceRequest  true  "service details"
// @Success      201    {object}  domain.Service
// @Failure      400    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /services [post]
// @Security     UserID
func (h *CatalogHandler) HandleCreateService(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var input request.CreateServiceRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	draft, err := input.Draft()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	created, err := h.svc.CreateService(ctx.Request.Context(), userID, draft)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleCreateService -> h.svc.CreateService -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, created)
}
