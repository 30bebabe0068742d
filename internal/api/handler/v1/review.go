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

type ReviewService interface {
	SubmitEventReview(ctx context.Context, reviewerID, eventID uint, in service.ReviewInput) (domain.Review, error)
	SubmitVendorReview(ctx context.Context, organizerID, vendorID, eventID uint, in service.ReviewInput) (domain.Review, error)
	ListReviews(ctx context.Context, kind domain.ReviewKind, subjectID uint) ([]domain.Review, error)
}

type ReviewHandler struct {
	svc ReviewService
}

func NewReviewHandler(svc ReviewService) *ReviewHandler {
	return &ReviewHandler{
		svc: svc,
	}
}

func (h *ReviewHandler) bindReview(ctx *gin.Context) (request.ReviewRequest, bool) {
	var input request.ReviewRequest
	if err := ctx.ShouldBindJSON(&input); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return input, false
	}
	if err := input.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return input, false
	}
	return input, true
}

// HandleReviewEvent godoc
// @Summary      Review an event
// @Description  Attendees holding a valid ticket can review from the first day of the event.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        eventID  path      int                    true  "event ID"
// @Param        input    body      request.ReviewRequest  true  "review"
// @Success      201      {object}  domain.Review
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Router       /events/{eventID}/reviews [post]
// @Security     UserID
func (h *ReviewHandler) HandleReviewEvent(ctx *gin.Context) {
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
	input, ok := h.bindReview(ctx)
	if !ok {
		return
	}

	review, err := h.svc.SubmitEventReview(ctx.Request.Context(), userID, eventID, input.Input())
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleReviewEvent -> h.svc.SubmitEventReview -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// HandleReviewVendor godoc
// @Summary      Review a vendor
// @Description  The organizer reviews a vendor that served the event, once the event is over.
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Param        eventID   path      int                    true  "event ID"
// @Param        vendorID  path      int                    true  "vendor ID"
// @Param        input     body      request.ReviewRequest  true  "review"
// @Success      201       {object}  domain.Review
// @Failure      400       {object}  response.Err
// @Failure      403       {object}  response.Err
// @Failure      409       {object}  response.Err
// @Router       /events/{eventID}/vendors/{vendorID}/reviews [post]
// @Security     UserID
func (h *ReviewHandler) HandleReviewVendor(ctx *gin.Context) {
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
	vendorID, respErr := paramID(ctx, "vendorID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}
	input, ok := h.bindReview(ctx)
	if !ok {
		return
	}

	review, err := h.svc.SubmitVendorReview(ctx.Request.Context(), userID, vendorID, eventID, input.Input())
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("HandleReviewVendor -> h.svc.SubmitVendorReview -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, review)
}

// HandleListEventReviews godoc
// @Summary      List reviews of an event
// @Tags         reviews
// @Produce      json
// @Param        eventID  path      int  true  "event ID"
// @Success      200      {array}   domain.Review
// @Router       /events/{eventID}/reviews [get]
// @Security     UserID
func (h *ReviewHandler) HandleListEventReviews(ctx *gin.Context) {
	h.listReviews(ctx, domain.ReviewEvent, "eventID")
}

// HandleListVendorReviews godoc
// @Summary      List reviews of a vendor
// @Tags         reviews
// @Produce      json
// @Param        vendorID  path      int  true  "vendor ID"
// @Success      200       {array}   domain.Review
// @Router       /vendors/{vendorID}/reviews [get]
// @Security     UserID
func (h *ReviewHandler) HandleListVendorReviews(ctx *gin.Context) {
	h.listReviews(ctx, domain.ReviewVendor, "vendorID")
}

func (h *ReviewHandler) listReviews(ctx *gin.Context, kind domain.ReviewKind, param string) {
	subjectID, respErr := paramID(ctx, param)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	reviews, err := h.svc.ListReviews(ctx.Request.Context(), kind, subjectID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("listReviews -> h.svc.ListReviews -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, reviews)
}
