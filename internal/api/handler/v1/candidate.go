package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/api/middleware"
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/httpurl"
	"github.com/vietanh2810/evote-api/internal/pkg/pagination"
	"github.com/vietanh2810/evote-api/internal/pkg/querybuilder"
)

type CandidateService interface {
	CreateCandidate(
		ctx context.Context,
		candidate domain.Candidate,
		categoryIDs []uint,
		photo *domain.Upload,
		userID uint,
	) (domain.Candidate, error)
	GetCandidate(ctx context.Context, id, userID uint) (domain.Candidate, error)
	ListCandidates(ctx context.Context, scope domain.ElectionScope, userID uint) ([]domain.Candidate, int64, error)
}

// PhotoLinker turns a stored photo reference into an absolute URL for the request's origin.
type PhotoLinker interface {
	URL(origin, ref string) string
}

type CandidateHandler struct {
	svc     CandidateService
	photos  PhotoLinker
	queries *querybuilder.Builder
}

func NewCandidateHandler(svc CandidateService, photos PhotoLinker, queries *querybuilder.Builder) *CandidateHandler {
	return &CandidateHandler{
		svc:     svc,
		photos:  photos,
		queries: queries,
	}
}

// HandleCreateCandidate godoc
// @Summary      Create a candidate
// @Description  Accepts JSON, or a multipart form with an optional candidate_photo file.
// @Tags         candidates
// @Accept       json,mpfd
// @Produce      json
// @Param        request          body      request.CreateCandidateRequest true "request body"
// @Param        candidate_photo  formData  file  false  "candidate photo"
// @Success      200      {object}   response.CandidateResponse
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /candidates [post]
// @Security     BearerAuth
func (h *CandidateHandler) HandleCreateCandidate(ctx *gin.Context) {
	var req request.CreateCandidateRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	candidate, err := h.svc.CreateCandidate(
		ctx.Request.Context(),
		domain.Candidate{
			Name:       req.Name,
			ElectionID: req.ElectionID,
		},
		req.Categories,
		middleware.Upload(ctx),
		actingUserID(ctx),
	)
	if err != nil {
		renderServiceErr(ctx, err, nil, "v1.HandleCreateCandidate -> h.svc.CreateCandidate")
		return
	}

	ctx.JSON(http.StatusOK, response.CandidateResponse{
		Status:    response.StatusSuccess,
		Candidate: h.withPhotoURL(ctx, candidate),
	})
}

// HandleGetCandidate godoc
// @Summary      Get a candidate
// @Tags         candidates
// @Produce      json
// @Param        id   path      int  true  "Candidate ID"
// @Success      200      {object}   response.CandidateResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /candidates/{id} [get]
// @Security     BearerAuth
func (h *CandidateHandler) HandleGetCandidate(ctx *gin.Context) {
	id, ok := parseID(ctx, "Candidate")
	if !ok {
		return
	}

	candidate, err := h.svc.GetCandidate(ctx.Request.Context(), id, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleGetCandidate -> h.svc.GetCandidate")
		return
	}

	ctx.JSON(http.StatusOK, response.CandidateResponse{
		Status:    response.StatusSuccess,
		Candidate: h.withPhotoURL(ctx, candidate),
	})
}

// HandleListCandidates godoc
// @Summary      List the candidates of an election
// @Tags         candidates
// @Produce      json
// @Param        id         path   int  true   "Election ID"
// @Param        per_page   query  int  false  "page size, pagination is off without it"
// @Param        page       query  int  false  "page number, from 1"
// @Success      200      {object}   response.CandidatesResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /elections/{id}/candidates [get]
// @Security     BearerAuth
func (h *CandidateHandler) HandleListCandidates(ctx *gin.Context) {
	electionID, ok := parseID(ctx, "Election")
	if !ok {
		return
	}

	page := pagination.FromQuery(ctx.Request.URL.Query())

	candidates, total, err := h.svc.ListCandidates(ctx.Request.Context(), h.queries.Scoped(electionID, page), actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, electionID, "v1.HandleListCandidates -> h.svc.ListCandidates")
		return
	}

	for i := range candidates {
		candidates[i] = h.withPhotoURL(ctx, candidates[i])
	}

	ctx.JSON(http.StatusOK, response.CandidatesResponse{
		Status:            response.StatusSuccess,
		Candidates:        candidates,
		PaginationDetails: pagination.Decorate(ctx.Request, page, total),
	})
}

func (h *CandidateHandler) withPhotoURL(ctx *gin.Context, candidate domain.Candidate) domain.Candidate {
	if candidate.PhotoURL != "" {
		candidate.PhotoURL = h.photos.URL(httpurl.Origin(ctx.Request), candidate.PhotoURL)
	}

	return candidate
}
