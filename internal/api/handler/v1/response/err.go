package response

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/eventhub/internal/domain"
)

// Err is the JSON body of every failed request.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	StatusText string `json:"status_text"`
	Code       string `json:"code,omitempty"`
	Kind       string `json:"kind,omitempty"`
	ErrorMsg   string `json:"error_message,omitempty"`
}

func RenderErr(ctx *gin.Context, e *Err) {
	fields := []zap.Field{
		zap.String("request_id", requestid.Get(ctx)),
		zap.Int("status", e.HTTPStatusCode),
		zap.Error(e.Err),
	}
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
	} else {
		zap.L().Debug("request rejected", fields...)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func newErr(status int, err error) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
	}
	if err != nil {
		e.ErrorMsg = err.Error()
	}
	return e
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err)
}

func ErrUnauthorized(err error) *Err {
	return newErr(http.StatusUnauthorized, err)
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err)
}

func ErrNotFound(entity, field string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s %v not found", entity, field, value))
}

// ErrInternalServerError hides the cause from the client. It is logged by
// RenderErr.
func ErrInternalServerError(err error) *Err {
	e := newErr(http.StatusInternalServerError, err)
	e.ErrorMsg = ""
	return e
}

// ErrDomain maps a core error to a status by its kind. Errors from outside
// the core are treated as internal.
func ErrDomain(err error) *Err {
	var de *domain.Error
	if !errors.As(err, &de) {
		return ErrInternalServerError(err)
	}

	var e *Err
	switch de.Kind {
	case domain.KindInput:
		switch {
		case de.Code == domain.CodeInvalidCredentials:
			e = newErr(http.StatusUnauthorized, de)
		case strings.HasSuffix(string(de.Code), "NotFound"):
			e = newErr(http.StatusNotFound, de)
		default:
			e = newErr(http.StatusBadRequest, de)
		}
	case domain.KindAuthorization:
		e = newErr(http.StatusForbidden, de)
	case domain.KindTiming, domain.KindState:
		e = newErr(http.StatusConflict, de)
	default:
		e = ErrInternalServerError(err)
	}
	e.Err = err
	e.Code = string(de.Code)
	e.Kind = string(de.Kind)
	return e
}
