package http

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"creon-backend/internal/common/metrics"
	"creon-backend/internal/common/middleware"
	"creon-backend/internal/platform/redis"
	"creon-backend/internal/service/content"
	"creon-backend/internal/service/grant"
	"creon-backend/internal/service/nft"
	"creon-backend/internal/service/stats"
	"creon-backend/internal/service/tip"
	"creon-backend/internal/service/user"
)

// Services groups everything the API delegates to.
type Services struct {
	Users   *user.Service
	NFTs    *nft.Service
	Grants  *grant.Service
	Tips    *tip.Service
	Content *content.Service
	Stats   *stats.Service
}

type RouterConfig struct {
	Origin string
	// Store is pinged by the readiness probe.
	Store Pinger
	// Redis is optional; it backs the catalog response cache and the
	// readiness probe.
	Redis    redis.RedisClient
	CacheTTL time.Duration
	// RateLimiter guards tip creation and wallet connection. Nil disables it.
	RateLimiter *middleware.RateLimiter
	// Swagger mounts /swagger/*any.
	Swagger bool
}

// NewRouter builds the gin engine with middleware and every route wired.
func NewRouter(svc Services, cfg RouterConfig) *gin.Engine {
	router := gin.New()

	// Добавляем middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Metrics())
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())

	// Настраиваем CORS
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PATCH", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Accept", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "X-Cache"}
	router.Use(cors.New(corsConfig))

	var limit gin.HandlerFunc
	if cfg.RateLimiter != nil {
		limit = cfg.RateLimiter.Handler()
	}

	api := router.Group("/api")
	NewUserHandler(svc.Users).RegisterRoutes(api)
	NewWalletHandler(svc.Users, limit).RegisterRoutes(api)
	NewNFTHandler(svc.NFTs).RegisterRoutes(api)
	NewGrantHandler(svc.Grants).RegisterRoutes(api)
	NewTipHandler(svc.Tips, limit).RegisterRoutes(api)
	NewContentHandler(svc.Content, cfg.Redis, cfg.CacheTTL).RegisterRoutes(api)
	NewStatsHandler(svc.Stats).RegisterRoutes(api)

	NewHealthHandler(cfg.Store, cfg.Redis).RegisterRoutes(router)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	if cfg.Swagger {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return router
}
