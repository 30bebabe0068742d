package v1

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
	"github.com/vietanh2810/eventhub/internal/api/middleware"
)

var errNoCaller = errors.New("caller is not identified")

// HandleHealthcheck godoc
// @Summary      Healthcheck
// @Tags         health
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       / [get]
func HandleHealthcheck(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func callerID(ctx *gin.Context) (uint, *response.Err) {
	id, ok := middleware.UserID(ctx)
	if !ok {
		return 0, response.ErrUnauthorized(errNoCaller)
	}
	return id, nil
}

func paramID(ctx *gin.Context, name string) (uint, *response.Err) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s", name))
	}
	return uint(id), nil
}

// queryID reads an optional id filter. Absent means 0.
func queryID(ctx *gin.Context, name string) (uint, *response.Err) {
	raw := ctx.Query(name)
	if raw == "" {
		return 0, nil
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, response.ErrBadRequest(fmt.Errorf("invalid %s", name))
	}
	return uint(id), nil
}
