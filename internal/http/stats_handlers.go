package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/middleware"
	"creon-backend/internal/service/stats"
)

type StatsHandler struct {
	service *stats.Service
}

func NewStatsHandler(service *stats.Service) *StatsHandler {
	return &StatsHandler{service: service}
}

func (h *StatsHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.GET("/:id/stats", h.GetStats)
		users.PATCH("/:id/stats", h.UpdateStats)
	}
}

// @Summary Get user stats
// @Tags stats
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} domain.UserStats
// @Failure 404 {object} middleware.ErrorResponse "Stats not found"
// @Router /users/{id}/stats [get]
func (h *StatsHandler) GetStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	st, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, st)
}

// @Summary Update user stats
// @Description Merges the given counters onto the stats row, creating it when missing.
// @Tags stats
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param stats body updateStatsRequest true "Counters to change"
// @Success 200 {object} domain.UserStats
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input or unknown user"
// @Router /users/{id}/stats [patch]
func (h *StatsHandler) UpdateStats(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req updateStatsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}
	patch, err := req.toDomain()
	if err != nil {
		_ = c.Error(err)
		return
	}

	st, err := h.service.Update(c.Request.Context(), id, patch)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, st)
}
