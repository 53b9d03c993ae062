package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/middleware"
	"creon-backend/internal/service/tip"
)

type TipHandler struct {
	service *tip.Service
	limit   gin.HandlerFunc
}

// NewTipHandler wires the tip endpoints. limit guards tip creation and may
// be nil.
func NewTipHandler(service *tip.Service, limit gin.HandlerFunc) *TipHandler {
	return &TipHandler{service: service, limit: limit}
}

func (h *TipHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/tips", withLimit(h.limit, h.CreateTip)...)

	users := router.Group("/users")
	{
		users.GET("/:id/tips", h.ListReceived)
		users.GET("/:id/tips/sent", h.ListSent)
	}
}

// @Summary Send a tip
// @Description Records the tip as pending and adds it to the recipient's tipCount and totalEarnings.
// @Tags tips
// @Accept json
// @Produce json
// @Param tip body createTipRequest true "Tip"
// @Success 201 {object} domain.Tip
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input or unknown user"
// @Failure 429 {object} middleware.ErrorResponse "Rate limit exceeded"
// @Failure 502 {object} middleware.ErrorResponse "Chain oracle failure"
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /tips [post]
func (h *TipHandler) CreateTip(c *gin.Context) {
	var req createTipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	t, err := h.service.Create(c.Request.Context(), req.toInput())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, t)
}

// @Summary List tips received by a user
// @Tags tips
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.Tip
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/{id}/tips [get]
func (h *TipHandler) ListReceived(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tips, err := h.service.ListReceived(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tips)
}

// @Summary List tips sent by a user
// @Tags tips
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {array} domain.Tip
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /users/{id}/tips/sent [get]
func (h *TipHandler) ListSent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	tips, err := h.service.ListSent(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, tips)
}
