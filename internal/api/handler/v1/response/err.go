package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/vietanh2810/evote-api/internal/domain"
)

const (
	StatusSuccess = "success"
	StatusFailed  = "failed"
)

const (
	msgWrongCredentials = "The given credentials do not match our records"
	msgPermissionDenied = "You are not allowed to access this resource"
	msgRouteNotFound    = "The requested route does not exist"
	msgTooManyRequests  = "Too many requests, slow down"
	msgUnknown          = "An unknown error occurred"
)

// Err is the body of every failed response. Err itself is only logged.
type Err struct {
	Err            error `json:"-"`
	HTTPStatusCode int   `json:"-"`

	Status  string             `json:"status"`
	Message string             `json:"message,omitempty"`
	Errors  domain.FieldErrors `json:"errors,omitempty"`
}

func (e *Err) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Message != "" {
		return e.Message
	}

	return http.StatusText(e.HTTPStatusCode)
}

func RenderErr(ctx *gin.Context, e *Err) {
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed",
			zap.String("request_id", requestid.Get(ctx)),
			zap.String("method", ctx.Request.Method),
			zap.String("path", ctx.Request.URL.Path),
			zap.Error(e),
		)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrValidation(errs domain.FieldErrors) *Err {
	return &Err{
		Err:            errs,
		HTTPStatusCode: http.StatusUnprocessableEntity,
		Status:         StatusFailed,
		Errors:         errs,
	}
}

func ErrUnauthenticated(message string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusUnauthorized,
		Status:         StatusFailed,
		Message:        message,
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusUnauthorized,
		Status:         StatusFailed,
		Message:        msgWrongCredentials,
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusForbidden,
		Status:         StatusFailed,
		Message:        msgPermissionDenied,
	}
}

// ErrNotFound renders as "<resource> with <key> <value> not found".
func ErrNotFound(resource, key string, value any) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Status:         StatusFailed,
		Message:        fmt.Sprintf("%s with %s %v not found", resource, key, value),
	}
}

func ErrRouteNotFound() *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Status:         StatusFailed,
		Message:        msgRouteNotFound,
	}
}

func ErrTooManyRequests() *Err {
	return &Err{
		HTTPStatusCode: http.StatusTooManyRequests,
		Status:         StatusFailed,
		Message:        msgTooManyRequests,
	}
}

// ErrInternalServerError hides err from the client.
func ErrInternalServerError(err error) *Err {
	return &Err{
		Err:            err,
		HTTPStatusCode: http.StatusInternalServerError,
		Status:         StatusFailed,
		Message:        msgUnknown,
	}
}
