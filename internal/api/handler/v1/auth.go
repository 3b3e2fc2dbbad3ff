package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/domain"
	"github.com/vietanh2810/evote-api/internal/pkg/jwthelper"
	"github.com/vietanh2810/evote-api/internal/service"
)

type AuthService interface {
	Signup(ctx context.Context, user domain.User) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.User, error)
}

type UserService interface {
	GetUser(ctx context.Context, id uint) (domain.User, error)
}

type AuthHandler struct {
	conf  *config.APIConfig
	svc   AuthService
	users UserService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService, users UserService) *AuthHandler {
	return &AuthHandler{
		conf:  conf,
		svc:   svc,
		users: users,
	}
}

// HandleRegister godoc
// @Summary      Register a new user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.RegisterRequest true "request body"
// @Success      200      {object}   response.RegisterResponse
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/register [post]
func (h *AuthHandler) HandleRegister(ctx *gin.Context) {
	var req request.RegisterRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	user, err := h.svc.Signup(ctx.Request.Context(), domain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		renderServiceErr(ctx, err, nil, "v1.HandleRegister -> h.svc.Signup")
		return
	}

	ctx.JSON(http.StatusOK, response.RegisterResponse{
		Status: response.StatusSuccess,
		User: response.RegisteredUser{
			Name:  user.Name,
			Email: user.Email,
		},
	})
}

// HandleLogin godoc
// @Summary      Login a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      422      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	var req request.LoginRequest
	if !bind(ctx, &req) {
		return
	}

	if errs := req.Validate(); errs != nil {
		response.RenderErr(ctx, response.ErrValidation(errs))
		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(err))
			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), h.conf.JWTExpiration, user.ID, user.Email, user.Name)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Status: response.StatusSuccess,
		User: response.LoginUser{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
			Token: token,
		},
	})
}

// HandleMe godoc
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Success      200      {object}   response.UserResponse
// @Failure      401      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Router       /auth/me [get]
// @Security     BearerAuth
func (h *AuthHandler) HandleMe(ctx *gin.Context) {
	userID := actingUserID(ctx)

	user, err := h.users.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		renderServiceErr(ctx, err, userID, "v1.HandleMe -> h.users.GetUser")
		return
	}

	ctx.JSON(http.StatusOK, response.UserResponse{
		Status: response.StatusSuccess,
		User:   user,
	})
}
