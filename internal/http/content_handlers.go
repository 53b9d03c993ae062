package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"creon-backend/internal/common/cache"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/common/middleware"
	"creon-backend/internal/platform/redis"
	"creon-backend/internal/service/content"
)

const contentPath = "/token-gated-content"

type ContentHandler struct {
	service *content.Service
	rdb     redis.RedisClient
	cache   *cache.CacheService
	ttl     time.Duration
}

// NewContentHandler wires the catalog endpoints. With a nil rdb the catalog
// is served without the response cache.
func NewContentHandler(service *content.Service, rdb redis.RedisClient, ttl time.Duration) *ContentHandler {
	h := &ContentHandler{service: service, rdb: rdb, ttl: ttl}
	if rdb != nil {
		h.cache = cache.NewCacheService(rdb)
	}
	return h
}

func (h *ContentHandler) RegisterRoutes(router *gin.RouterGroup) {
	items := router.Group(contentPath)
	{
		items.GET("", middleware.ResponseCache(h.rdb, h.ttl), h.ListContent)
		items.POST("", h.CreateContent)
		items.GET("/:id", h.GetContent)
		items.GET("/:id/access", h.CheckAccess)
	}
}

// @Summary List active token-gated content
// @Tags content
// @Produce json
// @Success 200 {array} domain.TokenGatedContent
// @Failure 500 {object} middleware.ErrorResponse "Internal server error"
// @Router /token-gated-content [get]
func (h *ContentHandler) ListContent(c *gin.Context) {
	items, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, items)
}

// @Summary Get token-gated content
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Success 200 {object} domain.TokenGatedContent
// @Failure 404 {object} middleware.ErrorResponse "Content not found"
// @Router /token-gated-content/{id} [get]
func (h *ContentHandler) GetContent(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	item, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, item)
}

// @Summary Create token-gated content
// @Tags content
// @Accept json
// @Produce json
// @Param content body createContentRequest true "Content"
// @Success 201 {object} domain.TokenGatedContent
// @Failure 400 {object} middleware.ValidationErrorResponse "Invalid input"
// @Router /token-gated-content [post]
func (h *ContentHandler) CreateContent(c *gin.Context) {
	var req createContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		_ = c.Error(middleware.BindingError(err))
		return
	}

	item, err := h.service.Create(c.Request.Context(), req.toDomain())
	if err != nil {
		_ = c.Error(err)
		return
	}

	if h.cache != nil {
		pattern := middleware.ResponseCachePattern(c.Request.URL.Path)
		if err := h.cache.DeletePattern(c.Request.Context(), pattern); err != nil {
			logger.Warn().Err(err).Str("pattern", pattern).Msg("Failed to invalidate catalog cache")
		}
	}

	c.JSON(http.StatusCreated, item)
}

// @Summary Check access to token-gated content
// @Description Asks the chain oracle whether the wallet holds the required token balance or NFT.
// @Tags content
// @Produce json
// @Param id path int true "Content ID"
// @Param wallet query string true "Wallet address"
// @Success 200 {object} content.AccessResult
// @Failure 400 {object} middleware.ValidationErrorResponse "Missing or malformed wallet"
// @Failure 404 {object} middleware.ErrorResponse "Content not found or inactive"
// @Failure 502 {object} middleware.ErrorResponse "Chain oracle failure"
// @Router /token-gated-content/{id}/access [get]
func (h *ContentHandler) CheckAccess(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	res, err := h.service.CheckAccess(c.Request.Context(), id, c.Query("wallet"))
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, res)
}
