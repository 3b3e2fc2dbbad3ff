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
	"github.com/vietanh2810/evote-api/internal/service"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, category domain.Category, userID uint) (domain.Category, error)
	GetCategory(ctx context.Context, id, userID uint) (domain.Category, error)
	UpdateCategory(ctx context.Context, id uint, update service.CategoryUpdate, userID uint) (domain.Category, error)
	DeleteCategory(ctx context.Context, id, userID uint) error
	ListCategories(ctx context.Context, scope domain.ElectionScope, userID uint) ([]domain.Category, int64, error)
}

type CategoryHandler struct {
	svc     CategoryService
	queries *querybuilder.Builder
}

func NewCategoryHandler(svc CategoryService, queries *querybuilder.Builder) *CategoryHandler {
	return &CategoryHandler{
		svc:     svc,
		queries: queries,
	}
}

// HandleCreateCategory godoc
// @Summary      Create a category in one of the user's elections
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        request   body      request.CreateCategoryRequest true "request body"
// @Success      200      {object}   response.CategoryResponse
// @Failure      422      {object}   response.Err
// @Router       /election_categories [post]
// @Security     BearerAuth
func (h *CategoryHandler) HandleCreateCategory(ctx *gin.Context) {
	var req request.CreateCategoryRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	category, err := h.svc.CreateCategory(ctx.Request.Context(), domain.Category{
		Name:       req.Name,
		ElectionID: req.ElectionID,
	}, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, nil, "v1.HandleCreateCategory -> h.svc.CreateCategory")
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryResponse{
		Status:   response.StatusSuccess,
		Category: category,
	})
}

// HandleGetCategory godoc
// @Summary      Get a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200      {object}   response.CategoryResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /election_categories/{id} [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleGetCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "Category")
	if !ok {
		return
	}

	category, err := h.svc.GetCategory(ctx.Request.Context(), id, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleGetCategory -> h.svc.GetCategory")
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryResponse{
		Status:   response.StatusSuccess,
		Category: category,
	})
}

// HandleUpdateCategory godoc
// @Summary      Rename a category or move it to another of the user's elections
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        id        path      int  true  "Category ID"
// @Param        request   body      request.UpdateCategoryRequest true "request body"
// @Success      200      {object}   response.CategoryResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Router       /election_categories/{id} [put]
// @Security     BearerAuth
func (h *CategoryHandler) HandleUpdateCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "Category")
	if !ok {
		return
	}

	var req request.UpdateCategoryRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	category, err := h.svc.UpdateCategory(ctx.Request.Context(), id, service.CategoryUpdate{
		Name:       req.Name,
		ElectionID: req.ElectionID,
	}, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleUpdateCategory -> h.svc.UpdateCategory")
		return
	}

	ctx.JSON(http.StatusOK, response.CategoryResponse{
		Status:   response.StatusSuccess,
		Category: category,
	})
}

// HandleDeleteCategory godoc
// @Summary      Delete a category
// @Tags         categories
// @Produce      json
// @Param        id   path      int  true  "Category ID"
// @Success      200      {object}   response.MessageResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /election_categories/{id} [delete]
// @Security     BearerAuth
func (h *CategoryHandler) HandleDeleteCategory(ctx *gin.Context) {
	id, ok := parseID(ctx, "Category")
	if !ok {
		return
	}

	if err := h.svc.DeleteCategory(ctx.Request.Context(), id, actingUserID(ctx)); err != nil {
		renderServiceErr(ctx, err, id, "v1.HandleDeleteCategory -> h.svc.DeleteCategory")
		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Status:  response.StatusSuccess,
		Message: "Category deleted",
	})
}

// HandleListCategories godoc
// @Summary      List the categories of an election
// @Tags         categories
// @Produce      json
// @Param        id         path   int  true   "Election ID"
// @Param        per_page   query  int  false  "page size, pagination is off without it"
// @Param        page       query  int  false  "page number, from 1"
// @Success      200      {object}   response.CategoriesResponse
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /elections/{id}/categories [get]
// @Security     BearerAuth
func (h *CategoryHandler) HandleListCategories(ctx *gin.Context) {
	electionID, ok := parseID(ctx, "Election")
	if !ok {
		return
	}

	page := pagination.FromQuery(ctx.Request.URL.Query())
	scope := h.queries.Scoped(electionID, page)

	categories, total, err := h.svc.ListCategories(ctx.Request.Context(), scope, actingUserID(ctx))
	if err != nil {
		renderServiceErr(ctx, err, electionID, "v1.HandleListCategories -> h.svc.ListCategories")
		return
	}

	ctx.JSON(http.StatusOK, response.CategoriesResponse{
		Status:            response.StatusSuccess,
		Categories:        categories,
		PaginationDetails: pagination.Decorate(ctx.Request, page, total),
	})
}
