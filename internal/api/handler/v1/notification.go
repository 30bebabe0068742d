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

type NotificationService interface {
	Add(ctx context.Context, userID uint, title, body string, payload domain.NotificationPayload) (uint, error)
	List(ctx context.Context, userID uint) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uint) error
}

type NotificationHandler struct {
	svc NotificationService
}

func NewNotificationHandler(svc NotificationService) *NotificationHandler {
	return &NotificationHandler{
		svc: svc,
	}
}

// HandleListNotifications godoc
// @Summary      List the caller's notifications
// @Tags         notifications
// @Produce      json
// @Success      200  {array}   domain.Notification
// @Failure      404  {object}  response.Err
// @Router       /notifications [get]
// @Security     UserID
func (h *NotificationHandler) HandleListNotifications(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	list, err := h.svc.List(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleListNotifications -> h.svc.List -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, list)
}

// HandleAddNotification godoc
// @Summary      Post a plain notification to a user
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        input  body      request.NotificationRequest  true  "notification"
// @Success      201    {object}  response.Created
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err
// @Router       /notifications [post]
// @Security     UserID
func (h *NotificationHandler) HandleAddNotification(ctx *gin.Context) {
	var input request.NotificationRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, err := h.svc.Add(ctx.Request.Context(), input.UserID, input.Title, input.Body, domain.PlainPayload{})
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleAddNotification -> h.svc.Add -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, response.Created{ID: id})
}

// HandleMarkRead godoc
// @Summary      Mark a notification as read
// @Tags         notifications
// @Param        notificationID  path  int  true  "notification ID"
// @Success      204
// @Failure      404  {object}  response.Err
// @Router       /notifications/{notificationID}/read [post]
// @Security     UserID
func (h *NotificationHandler) HandleMarkRead(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	notificationID, respErr := paramID(ctx, "notificationID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if err := h.svc.MarkRead(ctx.Request.Context(), userID, notificationID); err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleMarkRead -> h.svc.MarkRead -> %w", err)))
		return
	}

	ctx.Status(http.StatusNoContent)
}
