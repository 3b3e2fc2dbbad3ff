package api

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/docs"
	v1 "github.com/vietanh2810/evote-api/internal/api/handler/v1"
	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/evote-api/internal/api/middleware"
	"github.com/vietanh2810/evote-api/internal/config"
	"github.com/vietanh2810/evote-api/internal/pkg/querybuilder"
	"github.com/vietanh2810/evote-api/internal/repository"
	"github.com/vietanh2810/evote-api/internal/repository/dao"
	"github.com/vietanh2810/evote-api/internal/service"
	"github.com/vietanh2810/evote-api/internal/storage"
)

const candidatePhotoField = "candidate_photo"

type Server struct {
	Config  *config.AppConfig
	Router  *gin.Engine
	Metrics *middleware.Metrics

	store storage.Store
	rdb   *redis.Client
}

type handlers struct {
	auth       *v1.AuthHandler
	elections  *v1.ElectionHandler
	categories *v1.CategoryHandler
	candidates *v1.CandidateHandler
	voters     *v1.VoterHandler
	health     *v1.HealthHandler
}

// NewServer wires every layer on top of db and store. rdb is optional; without it rate
// limiting is kept in memory.
func NewServer(conf *config.AppConfig, db *gorm.DB, store storage.Store, rdb *redis.Client) (*Server, error) {
	if err := os.MkdirAll(conf.Storage.TempDir, 0o755); err != nil {
		return nil, fmt.Errorf("os.MkdirAll -> %w", err)
	}

	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config:  conf,
		Router:  engine,
		Metrics: middleware.NewMetrics(),
		store:   store,
		rdb:     rdb,
	}

	s.MountMiddlewares()
	s.MountHandlers(s.initHandlers(db))

	return s, nil
}

func (s *Server) initHandlers(db *gorm.DB) handlers {
	users := repository.NewUserRepository(dao.NewUserDAO(db))
	elections := repository.NewElectionRepository(dao.NewElectionDAO(db))
	categories := repository.NewCategoryRepository(dao.NewCategoryDAO(db))
	candidates := repository.NewCandidateRepository(dao.NewCandidateDAO(db))
	voters := repository.NewVoterRepository(dao.NewVoterDAO(db))

	loc := s.Config.API.Location()
	queries := querybuilder.New(loc)

	return handlers{
		auth: v1.NewAuthHandler(s.Config.API, service.NewAuthService(users), service.NewUserService(users)),
		elections: v1.NewElectionHandler(
			service.NewElectionService(elections),
			queries,
			loc,
		),
		categories: v1.NewCategoryHandler(
			service.NewCategoryService(categories, elections),
			queries,
		),
		candidates: v1.NewCandidateHandler(
			service.NewCandidateService(candidates, elections, categories, s.store),
			s.store,
			queries,
		),
		voters: v1.NewVoterHandler(
			service.NewVoterService(voters, elections),
			queries,
		),
		health: v1.NewHealthHandler(db, s.rdb),
	}
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.CustomRecovery(func(ctx *gin.Context, recovered any) {
		response.RenderErr(ctx, response.ErrInternalServerError(fmt.Errorf("panic: %v", recovered)))
	}))
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(s.Metrics.Instrument())

	if s.Config.RateLimit.Enabled {
		s.Router.Use(middleware.RateLimit(s.limiter()))
	}
}

func (s *Server) limiter() middleware.Limiter {
	if s.rdb != nil {
		return middleware.NewRedisLimiter(s.rdb, s.Config.RateLimit.RequestsPerMinute)
	}

	return middleware.NewMemoryLimiter(s.Config.RateLimit.RequestsPerMinute, s.Config.RateLimit.Burst)
}

func (s *Server) MountHandlers(h handlers) {
	auth := s.Router.Group("/auth")
	{
		auth.POST("/register", h.auth.HandleRegister)
		auth.POST("/login", h.auth.HandleLogin)
	}

	authed := s.Router.Group("", middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT())
	{
		authed.GET("/auth/me", h.auth.HandleMe)

		authed.GET("/elections", h.elections.HandleListElections)
		authed.POST("/elections", h.elections.HandleCreateElection)
		authed.GET("/elections/:id", h.elections.HandleGetElection)
		authed.PUT("/elections/:id", h.elections.HandleUpdateElection)
		authed.DELETE("/elections/:id", h.elections.HandleDeleteElection)
		authed.GET("/elections/:id/categories", h.categories.HandleListCategories)
		authed.GET("/elections/:id/candidates", h.candidates.HandleListCandidates)
		authed.GET("/elections/:id/voters", h.voters.HandleListVoters)

		authed.POST("/election_categories", h.categories.HandleCreateCategory)
		authed.GET("/election_categories/:id", h.categories.HandleGetCategory)
		authed.PUT("/election_categories/:id", h.categories.HandleUpdateCategory)
		authed.DELETE("/election_categories/:id", h.categories.HandleDeleteCategory)

		authed.POST("/candidates",
			middleware.TempUpload(candidatePhotoField, s.Config.Storage.TempDir),
			h.candidates.HandleCreateCandidate,
		)
		authed.GET("/candidates/:id", h.candidates.HandleGetCandidate)

		authed.POST("/voters", h.voters.HandleCreateVoter)
		authed.GET("/voters/:id", h.voters.HandleGetVoter)
		authed.PUT("/voters/:id", h.voters.HandleUpdateVoter)
		authed.DELETE("/voters/:id", h.voters.HandleDeleteVoter)
	}

	s.Router.GET("/", h.health.HandleHealthcheck)
	s.Router.GET("/metrics", s.Metrics.Handler())

	if local, ok := s.store.(*storage.LocalStore); ok {
		s.Router.Static(storage.PublicPath, local.Dir())
	}

	s.Router.NoRoute(func(ctx *gin.Context) {
		response.RenderErr(ctx, response.ErrRouteNotFound())
	})

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "evote API"
	docs.SwaggerInfo.Description = "Election management API: elections, categories, candidates and voters."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}

// Handler exposes the router for http.Server and tests.
func (s *Server) Handler() http.Handler {
	return s.Router
}
