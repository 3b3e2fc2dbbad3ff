package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/pagination"
	"github.com/vietanh2810/evote-api/internal/pkg/querybuilder"
)

type ElectionService interface {
	CreateElection(ctx context.Context, election domain.Election) (domain.Election, error)
	GetElection(ctx context.Context, id, userID uint) (domain.Election, error)
	UpdateElection(ctx context.Context, update domain.Election, userID uint) (domain.Election, error)
	DeleteElection(ctx context.Context, id, userID uint) error
	ListElections(ctx context.Context, q domain.ElectionQuery) ([]domain.Election, int64, error)
}

type ElectionHandler struct {
	svc     ElectionService
	queries *querybuilder.Builder
	loc     *time.Location
}

// NewElectionHandler reads request dates without an offset in loc.
func NewElectionHandler(svc ElectionService, queries *querybuilder.Builder, loc *time.Location) *ElectionHandler {
	return &ElectionHandler{
		svc:     svc,
		queries: queries,
		loc:     loc,
	}
}

// HandleCreateElection godoc
// @Summary      Create an election
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        request   body      request.ElectionRequest true "request body"
// @Success      200      {object}   response.ElectionResponse
// @Failure      401      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /elections [post]
// @Security     BearerAuth
func (h *ElectionHandler) HandleCreateElection(ctx *gin.Context) {
	var req request.ElectionRequest
	if !bind(ctx, &req) {
		return
	}

	election, errs := req.Election(h.loc)
	if errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}
	election.UserID = actingUserID(ctx)

	created, err := h.svc.CreateElection(ctx.Request.Context(), election)
	if err != nil {
		renderServiceErr(ctx, err, nil, "v1.HandleCreateElection -> h.svc.CreateElection")
		return
	}

	ctx.JSON(http.StatusOK, response.ElectionResponse{
		Status:   response.StatusSuccess,
		Election: created,
	})
}

// HandleGetElection godoc
// @Summary      Get an election
// @Tags         elections
// @Produce      json
// @Param        id   path      int  true  "Election ID"
// @Success      200      {object}   response.ElectionResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /elections/{id} [get]
// @Security     BearerAuth
func (h *ElectionHandler) HandleGetElection(ctx *gin.Context) {
	id, ok := parseID(ctx, "Election")
	if !ok {
		return
	}

	election, err := h.svc.GetElection(ctx.Request.Context(), id, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleGetElection -> h.svc.GetElection")
		return
	}

	ctx.JSON(http.StatusOK, response.ElectionResponse{
		Status:   response.StatusSuccess,
		Election: election,
	})
}

// HandleUpdateElection godoc
// @Summary      Update an election
// @Description  Overwrites name, start time and end time. The code never changes.
// @Tags         elections
// @Accept       json
// @Produce      json
// @Param        id        path      int  true  "Election ID"
// @Param        request   body      request.ElectionRequest true "request body"
// @Success      200      {object}   response.ElectionResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /elections/{id} [put]
// @Security     BearerAuth
func (h *ElectionHandler) HandleUpdateElection(ctx *gin.Context) {
	id, ok := parseID(ctx, "Election")
	if !ok {
		return
	}

	var req request.ElectionRequest
	if !bind(ctx, &req) {
		return
	}

	update, errs := req.Election(h.loc)
	if errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}
	update.ID = id

	election, err := h.svc.UpdateElection(ctx.Request.Context(), update, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleUpdateElection -> h.svc.UpdateElection")
		return
	}

	ctx.JSON(http.StatusOK, response.ElectionResponse{
		Status:   response.StatusSuccess,
		Election: election,
	})
}

// HandleDeleteElection godoc
// @Summary      Delete an election
// @Description  Categories, candidates and voters of the election are kept.
// @Tags         elections
// @Produce      json
// @Param        id   path      int  true  "Election ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /elections/{id} [delete]
// @Security     BearerAuth
func (h *ElectionHandler) HandleDeleteElection(ctx *gin.Context) {
	id, ok := parseID(ctx, "Election")
	if !ok {
		return
	}

	if err := h.svc.DeleteElection(ctx.Request.Context(), id, actingUserID(ctx)); err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleDeleteElection -> h.svc.DeleteElection")
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Status:  response.StatusSuccess,
		Message: "Election deleted",
	})
}

// HandleListElections godoc
// @Summary      List the authenticated user's elections
// @Tags         elections
// @Produce      json
// @Param        per_page           query  int     false  "page size, pagination is off without it"
// @Param        page               query  int     false  "page number, from 1"
// @Param        status             query  string  false  "open, or anything else for not open"
// @Param        start_time_before  query  string  false  "date"
// @Param        start_time_after   query  string  false  "date"
// @Param        created_before     query  string  false  "date"
// @Param        created_after      query  string  false  "date"
// @Success      200      {object}   response.ElectionsResponse
// @Failure      422      {object}   response.Err
// @Router       /elections [get]
// @Security     BearerAuth
func (h *ElectionHandler) HandleListElections(ctx *gin.Context) {
	values := ctx.Request.URL.Query()
	page := pagination.FromQuery(values)

	q, errs := h.queries.Elections(values, actingUserID(ctx), page)
	if errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	elections, total, err := h.svc.ListElections(ctx.Request.Context(), q)
	if err != nil {
		renderServiceErr(ctx, err, nil, "v1.HandleListElections -> h.svc.ListElections")
		return
	}

	ctx.JSON(http.StatusOK, response.ElectionsResponse{
		Status:            response.StatusSuccess,
		Elections:         elections,
		PaginationDetails: pagination.Decorate(ctx.Request, page, total),
	})
}
