package v1

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/service"
)

const (
	defaultQRSize = 256
	maxQRSize     = 1024
)

type TicketService interface {
	Purchase(ctx context.Context, attendeeID, eventID uint, cart []service.TicketQuantity, mode service.PaymentMode) (service.PurchaseReceipt, error)
	Refund(ctx context.Context, attendeeID, eventID uint, selections []service.TicketQuantity, mode service.RefundMode) (service.RefundReceipt, error)
	ListTickets(ctx context.Context, userID uint) ([]domain.Ticket, error)
	TicketQRCode(ctx context.Context, userID, ticketID uint, size int) ([]byte, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandlePurchase godoc
// @Summary      Buy tickets
// @Description  Buys every line of the cart or nothing.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                      true  "event ID"
// @Param        input    body      request.PurchaseRequest  true  "cart"
// @Success      201      {object}  response.Purchase
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/tickets/purchase [post]
// @Security     UserID
func (h *TicketHandler) HandlePurchase(ctx *gin.Context) {
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

	var input request.PurchaseRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	receipt, err := h.svc.Purchase(ctx.Request.Context(), userID, eventID, input.Cart(), service.PaymentMode(input.PaymentMode))
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandlePurchase -> h.svc.Purchase -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewPurchase(receipt))
}

// HandleRefund godoc
// @Summary      Refund tickets
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                    true  "event ID"
// @Param        input    body      request.RefundRequest  true  "selection"
// @Success      200      {object}  response.Refund
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID}/tickets/refund [post]
// @Security     UserID
func (h *TicketHandler) HandleRefund(ctx *gin.Context) {
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

	var input request.RefundRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	receipt, err := h.svc.Refund(ctx.Request.Context(), userID, eventID, input.Selections(), service.RefundMode(input.RefundMode))
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleRefund -> h.svc.Refund -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewRefund(receipt))
}

// HandleListTickets godoc
// @Summary      List the caller's tickets
// @Tags         tickets
// @Produce      json
// @Success      200  {array}   domain.Ticket
// @Failure      404  {object}  response.Err
// @Router       /tickets [get]
// @Security     UserID
func (h *TicketHandler) HandleListTickets(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	tickets, err := h.svc.ListTickets(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleListTickets -> h.svc.ListTickets -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleTicketQRCode godoc
// @Summary      Ticket QR code
// @Tags         tickets
// @Produce      png
// @Param        ticketID  path      int  true   "ticket ID"
// @Param        size      query     int  false  "image size in pixels"
// @Success      200       {file}    binary
// @Failure      403       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Router       /tickets/{ticketID}/qr [get]
// @Security     UserID
func (h *TicketHandler) HandleTicketQRCode(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	ticketID, respErr := paramID(ctx, "ticketID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	size := defaultQRSize
	if raw := ctx.Query("size"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > maxQRSize {
			response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("size must be between 1 and %d", maxQRSize)))
			return
		}
		size = n
	}

	png, err := h.svc.TicketQRCode(ctx.Request.Context(), userID, ticketID, size)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleTicketQRCode -> h.svc.TicketQRCode -> %w", err)))
		return
	}

	ctx.Data(http.StatusOK, "image/png", png)
}
