package middleware

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/eventhub/internal/api/handler/v1/response"
)

const (
	HeaderUserID = "X-User-ID"
	// ContextUserID is the gin context key holding the caller's user id.
	ContextUserID = "userID"
)

var (
	errMissingUserID = errors.New("missing " + HeaderUserID + " header")
	errInvalidUserID = errors.New("invalid " + HeaderUserID + " header")
)

// Identify trusts the user id the local shell sends. The bridge only
// listens on loopback.
func Identify() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader(HeaderUserID)
		if raw == "" {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingUserID))
			return
		}
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil || id == 0 {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidUserID))
			return
		}

		ctx.Set(ContextUserID, uint(id))
		ctx.Next()
	}
}

// UserID returns the id Identify stored.
func UserID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(ContextUserID)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}
