package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/platform/redis"
)

const serviceName = "creon-backend"

// Pinger is anything the readiness probe has to reach.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	store Pinger
	rdb   redis.RedisClient
}

// NewHealthHandler builds the probes. rdb may be nil when redis is disabled.
func NewHealthHandler(store Pinger, rdb redis.RedisClient) *HealthHandler {
	return &HealthHandler{store: store, rdb: rdb}
}

func (h *HealthHandler) RegisterRoutes(router gin.IRoutes) {
	router.GET("/health", h.Health)
	router.GET("/live", h.Live)
	router.GET("/ready", h.Ready)
}

// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
		"service":   serviceName,
	})
}

// Live is the liveness probe.
func (h *HealthHandler) Live(c *gin.Context) {
	c.Status(http.StatusOK)
}

// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	// Проверка хранилища
	if err := h.store.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unready",
			"error":  "storage unavailable",
		})
		return
	}

	// Проверка Redis
	if h.rdb != nil {
		if err := h.rdb.Ping(ctx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status": "unready",
				"error":  "redis unavailable",
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ready",
		"timestamp": time.Now().UTC(),
		"service":   serviceName,
	})
}
