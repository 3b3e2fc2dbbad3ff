package v1

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vietanh2810/evote-api/internal/api/handler/v1/response"
)

const healthTimeout = 2 * time.Second

type HealthHandler struct {
	db  *gorm.DB
	rdb *redis.Client
}

// NewHealthHandler builds the health check. rdb may be nil when redis is not configured.
func NewHealthHandler(db *gorm.DB, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{
		db:  db,
		rdb: rdb,
	}
}

// HandleHealthcheck godoc
// @Summary      Health check
// @Tags         health
// @Produce      json
// @Success      200      {object}   response.Health
// @Failure      503      {object}   response.Health
// @Router       / [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	c, cancel := context.WithTimeout(ctx.Request.Context(), healthTimeout)
	defer cancel()

	services := map[string]string{"database": "up"}
	healthy := true

	if err := h.pingDB(c); err != nil {
		services["database"] = "down"
		healthy = false
	}

	if h.rdb != nil {
		services["redis"] = "up"
		if err := h.rdb.Ping(c).Err(); err != nil {
			services["redis"] = "down"
			healthy = false
		}
	}

	if !healthy {
		ctx.JSON(http.StatusServiceUnavailable, response.Health{
			Status:   response.StatusFailed,
			Services: services,
		})
		return
	}

	ctx.JSON(http.StatusOK, response.Health{
		Status:   response.StatusSuccess,
		Services: services,
	})
}

func (h *HealthHandler) pingDB(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}

	return sqlDB.PingContext(ctx)
}
