package v1

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/api/middleware"
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/service"
)

// parseID reads the :id path parameter. Anything that is not a positive integer cannot name
// a row, so it renders a 404 for resource.
func parseID(ctx *gin.Context, resource string) (uint, bool) {
	raw := ctx.Param("id")

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		response.RenderErr(ctx, response.ErrNotFound(resource, "id", raw))
		return 0, false
	}

	return uint(id), true
}

// bind decodes the body into req. An empty body binds nothing and is left to validation.
func bind(ctx *gin.Context, req any) bool {
	err := ctx.ShouldBind(req)
	if err == nil || errors.Is(err, io.EOF) {
		return true
	}

	response.RenderErr(ctx, response.ErrValidation(request.Malformed()))

	return false
}

func actingUserID(ctx *gin.Context) uint {
	return middleware.UserID(ctx)
}

var notFoundResources = []struct {
	err      error
	resource string
}{
	{service.ErrElectionNotFound, "Election"},
	{service.ErrCategoryNotFound, "Category"},
	{service.ErrCandidateNotFound, "Candidate"},
	{service.ErrVoterNotFound, "Voter"},
	{service.ErrUserNotFound, "User"},
}

// renderServiceErr maps a service failure to its response. id is the path id the request was
// about and path the call that failed, for the log.
func renderServiceErr(ctx *gin.Context, err error, id any, path string) {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		response.RenderErr(ctx, response.ErrValidation(fieldErrs))
		return
	}

	if errors.Is(err, service.ErrForbidden) {
		response.RenderErr(ctx, response.ErrPermissionDenied(err))
		return
	}

	for _, nf := range notFoundResources {
		if errors.Is(err, nf.err) {
			response.RenderErr(ctx, response.ErrNotFound(nf.resource, "id", id))
			return
		}
	}

	response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("%s -> %w", path, err)))
}
