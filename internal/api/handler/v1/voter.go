package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/pagination"
	"github.com/vietanh2810/evote-api/internal/pkg/querybuilder"
)

type VoterService interface {
	CreateVoter(ctx context.Context, voter domain.Voter, userID uint) (domain.Voter, error)
	GetVoter(ctx context.Context, id, userID uint) (domain.Voter, error)
	UpdateVoter(ctx context.Context, update domain.Voter, userID uint) (domain.Voter, error)
	DeleteVoter(ctx context.Context, id, userID uint) error
	ListVoters(ctx context.Context, scope domain.ElectionScope, userID uint) ([]domain.Voter, int64, error)
}

type VoterHandler struct {
	svc     VoterService
	queries *querybuilder.Builder
}

func NewVoterHandler(svc VoterService, queries *querybuilder.Builder) *VoterHandler {
	return &VoterHandler{
		svc:     svc,
		queries: queries,
	}
}

// HandleCreateVoter godoc
// @Summary      Register a voter on one of the user's elections
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        request   body      request.VoterRequest true "request body"
// @Success      200      {object}   response.VoterResponse
// @Failure      422      {object}   response.Err
// @Router       /voters [post]
// @Security     BearerAuth
func (h *VoterHandler) HandleCreateVoter(ctx *gin.Context) {
	var req request.VoterRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	voter, err := h.svc.CreateVoter(ctx.Request.Context(), domain.Voter{
		Name:       req.Name,
		Email:      req.Email,
		ElectionID: req.ElectionID,
	}, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, nil, "v1.HandleCreateVoter -> h.svc.CreateVoter")
		return
	}

	ctx.JSON(http.StatusOK, response.VoterResponse{
		Status: response.StatusSuccess,
		Voter:  voter,
	})
}

// HandleGetVoter godoc
// @Summary      Get a voter
// @Tags         voters
// @Produce      json
// @Param        id   path      int  true  "Voter ID"
// @Success      200      {object}   response.VoterResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /voters/{id} [get]
// @Security     BearerAuth
func (h *VoterHandler) HandleGetVoter(ctx *gin.Context) {
	id, ok := parseID(ctx, "Voter")
	if !ok {
		return
	}

	voter, err := h.svc.GetVoter(ctx.Request.Context(), id, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleGetVoter -> h.svc.GetVoter")
		return
	}

	ctx.JSON(http.StatusOK, response.VoterResponse{
		Status: response.StatusSuccess,
		Voter:  voter,
	})
}

// HandleUpdateVoter godoc
// @Summary      Update a voter
// @Tags         voters
// @Accept       json
// @Produce      json
// @Param        id        path      int  true  "Voter ID"
// @Param        request   body      request.VoterRequest true "request body"
// @Success      200      {object}   response.VoterResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /voters/{id} [put]
// @Security     BearerAuth
func (h *VoterHandler) HandleUpdateVoter(ctx *gin.Context) {
	id, ok := parseID(ctx, "Voter")
	if !ok {
		return
	}

	var req request.VoterRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	voter, err := h.svc.UpdateVoter(ctx.Request.Context(), domain.Voter{
		ID:         id,
		Name:       req.Name,
		Email:      req.Email,
		ElectionID: req.ElectionID,
	}, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleUpdateVoter -> h.svc.UpdateVoter")
		return
	}

	ctx.JSON(http.StatusOK, response.VoterResponse{
		Status: response.StatusSuccess,
		Voter:  voter,
	})
}

// HandleDeleteVoter godoc
// @Summary      Delete a voter
// @Tags         voters
// @Produce      json
// @Param        id   path      int  true  "Voter ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /voters/{id} [delete]
// @Security     BearerAuth
func (h *VoterHandler) HandleDeleteVoter(ctx *gin.Context) {
	id, ok := parseID(ctx, "Voter")
	if !ok {
		return
	}

	if err := h.svc.DeleteVoter(ctx.Request.Context(), id, actingUserID(ctx)); err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleDeleteVoter -> h.svc.DeleteVoter")
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Status:  response.StatusSuccess,
		Message: "Voter deleted",
	})
}

// HandleListVoters godoc
// @Summary      List the voters of an election
// @Tags         voters
// @Produce      json
// @Param        id         path   int  true   "Election ID"
// @Param        per_page   query  int  false  "page size, pagination is off without it"
// @Param        page       query  int  false  "page number, from 1"
// @Success      200      {object}   response.VotersResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /elections/{id}/voters [get]
// @Security     BearerAuth
func (h *VoterHandler) HandleListVoters(ctx *gin.Context) {
	electionID, ok := parseID(ctx, "Election")
	if !ok {
		return
	}

	page := pagination.FromQuery(ctx.Request.URL.Query())

	voters, total, err := h.svc.ListVoters(ctx.Request.Context(), h.queries.Scoped(electionID, page), actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, electionID, "v1.HandleListVoters -> h.svc.ListVoters")
		return
	}

	ctx.JSON(http.StatusOK, response.VotersResponse{
		Status:            response.StatusSuccess,
		Voters:            voters,
		PaginationDetails: pagination.Decorate(ctx.Request, page, total),
	})
}
