package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	_ "creon-backend/docs"
	"creon-backend/internal/chain"
	"creon-backend/internal/common/cache"
	"creon-backend/internal/common/config"
	"creon-backend/internal/common/logger"
	"creon-backend/internal/common/middleware"
	"creon-backend/internal/common/validation"
	"creon-backend/internal/domain"
	api "creon-backend/internal/http"
	"creon-backend/internal/platform/postgres"
	"creon-backend/internal/platform/redis"
	"creon-backend/internal/repository/memory"
	pgrepo "creon-backend/internal/repository/postgres"
	"creon-backend/internal/service/content"
	"creon-backend/internal/service/grant"
	"creon-backend/internal/service/nft"
	"creon-backend/internal/service/stats"
	"creon-backend/internal/service/tip"
	"creon-backend/internal/service/user"
)

// @title           Creon API
// @version         1.0
// @description     Backend for the Creon creator platform: profiles, NFTs, grants, tips and token-gated content.

// @host      localhost:8080
// @BasePath  /api

// @tag.name users
// @tag.description Creator profiles

// @tag.name wallet
// @tag.description Wallet connection

// @tag.name nfts
// @tag.description NFT showcase

// @tag.name grants
// @tag.description Grants and applications

// @tag.name tips
// @tag.description Tips between users

// @tag.name content
// @tag.description Token-gated content catalog

// @tag.name stats
// @tag.description Creator statistics

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger.Init("creon-backend", cfg.Debug)

	logger.Info().
		Str("version", "1.0.0").
		Str("storage", cfg.Storage.Driver).
		Str("oracle", cfg.Chain.Oracle).
		Msg("Starting Creon backend")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Инициализируем хранилище
	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to open storage")
	}
	defer closeStore()

	// Инициализируем Redis
	var rdb redis.RedisClient
	var userCache *cache.CacheService
	if cfg.Redis.Enabled {
		client, err := redis.Open(ctx, cfg.RedisAddr(), cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to connect to Redis")
		}
		defer client.Close()
		rdb = client
		userCache = cache.NewCacheService(client)
		logger.Info().Str("addr", cfg.RedisAddr()).Msg("Redis cache enabled")
	}

	oracle, closeOracle, err := openOracle(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to set up chain oracle")
	}
	defer closeOracle()

	// Инициализируем сервисы
	svc := api.Services{
		Users:   user.NewService(store, userCache, cfg.Redis.CacheTTL),
		NFTs:    nft.NewService(store),
		Grants:  grant.NewService(store),
		Tips:    tip.NewService(store, store, oracle),
		Content: content.NewService(store, oracle),
		Stats:   stats.NewService(store),
	}

	if err := validation.Setup(); err != nil {
		logger.Fatal().Err(err).Msg("Failed to register validators")
	}

	// Настраиваем Gin
	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := api.NewRouter(svc, api.RouterConfig{
		Origin:      cfg.Server.Origin,
		Store:       store,
		Redis:       rdb,
		CacheTTL:    cfg.Redis.CacheTTL,
		RateLimiter: middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst),
		Swagger:     true,
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Запускаем сервер в горутине
	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Ждем сигнала для graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}

	logger.Info().Msg("Server exited")
}

func openStore(ctx context.Context, cfg *config.Config) (domain.Gateway, func(), error) {
	if cfg.Storage.Driver == config.StorageMemory {
		logger.Warn().Msg("Using in-memory storage with sample data; nothing survives a restart")
		return memory.New(memory.WithSampleData()), func() {}, nil
	}

	client, err := postgres.NewClient(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	if cfg.Postgres.AutoMigrate {
		if err := client.Migrate(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("migrate: %w", err)
		}
		logger.Info().Msg("Database migrations applied")
	}
	logger.Info().Msg("Database connection established")

	return pgrepo.New(client.GetDB()), func() { _ = client.Close() }, nil
}

func openOracle(ctx context.Context, cfg *config.Config) (chain.Oracle, func(), error) {
	switch cfg.Chain.Oracle {
	case config.OracleEVM:
		evm, client, err := chain.DialEVM(ctx, cfg.Chain.RPCURL)
		if err != nil {
			return nil, nil, err
		}
		logger.Info().Msg("EVM chain oracle connected")
		return evm, client.Close, nil
	case config.OracleTON:
		logger.Info().Str("tonapi", cfg.Chain.TonAPIURL).Msg("TON chain oracle configured")
		return chain.NewTON(cfg.Chain.TonAPIURL, cfg.Chain.TonAPIToken, nil), func() {}, nil
	default:
		logger.Warn().Msg("Using stub chain oracle; balances and transactions are simulated")
		return chain.NewStub(), func() {}, nil
	}
}
