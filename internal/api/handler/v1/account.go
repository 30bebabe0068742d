package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/request"
	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventhub/internal/domain"
	"github.com/vietanh2810/eventhub/internal/service"
)

type AccountService interface {
	Register(ctx context.Context, reg service.Registration) (domain.User, error)
	Authenticate(ctx context.Context, email, password string) (domain.User, error)
	GetUser(ctx context.Context, id uint) (domain.User, error)
	CreditBalance(ctx context.Context, userID uint) (decimal.Decimal, error)
}

type AccountHandler struct {
	svc AccountService
}

func NewAccountHandler(svc AccountService) *AccountHandler {
	return &AccountHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      request.RegisterRequest  true  "request body"
// @Success      201      {object}  response.User
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /accounts/register [post]
func (h *AccountHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	user, err := h.svc.Register(ctx.Request.Context(), req.Registration())
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("v1.HandleRegister -> h.svc.Register -> %w", err)))
		return
	}

	ctx.JSON(http.StatusCreated, response.NewUser(user))
}

// HandleLogin godoc
// @Summary      Check a user's credentials
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        request  body      request.LoginRequest  true  "request body"
// @Success      200      {object}  response.LoginResponse
// @Failure      400      {object}  response.Err
// @Failure      401      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /accounts/login [post]
func (h *AccountHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Authenticate(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("v1.HandleLogin -> h.svc.Authenticate -> %w", err)))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		User: response.NewUser(user),
	})
}

// HandleGetUser godoc
// @Summary      Get a user
// @Tags         accounts
// @Produce      json
// @Param        userID  path      int  true  "user ID"
// @Success      200     {object}  response.User
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Router       /users/{userID} [get]
// @Security     UserID
func (h *AccountHandler) HandleGetUser(ctx *gin.Context) {
	userID, respErr := paramID(ctx, "userID")
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	user, err := h.svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("v1.HandleGetUser -> h.svc.GetUser -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.NewUser(user))
}

// HandleGetCredit godoc
// @Summary      Get the caller's credit balance
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  response.Balance
// @Failure      400  {object}  response.Err
// @Failure      401  {object}  response.Err
// @Router       /me/credit [get]
// @Security     UserID
func (h *AccountHandler) HandleGetCredit(ctx *gin.Context) {
	userID, respErr := callerID(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	balance, err := h.svc.CreditBalance(ctx.Request.Context(), userID)
	if err != nil {
		response.RenderErr(ctx, response.ErrDomain(fmt.Errorf("v1.HandleGetCredit -> h.svc.CreditBalance -> %w", err)))
		return
	}

	ctx.JSON(http.StatusOK, response.Balance{UserID: userID, Credit: balance})
}
