package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dealScout/app/echo-server/router"
	"dealScout/business/catalog"
	"dealScout/business/matcher"
	"dealScout/business/ranking"
	userService "dealScout/business/user"
	"dealScout/domain"
	"dealScout/internal/middleware"
	psqlRepo "dealScout/internal/repository/postgres"
	redisRepo "dealScout/internal/repository/redis"
	"dealScout/internal/rest"
	"dealScout/pkg/config"
	"dealScout/pkg/database"
	redisdb "dealScout/pkg/database/redis"
	"dealScout/pkg/logger"
	"dealScout/pkg/metrics"
	"dealScout/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting DealScout", "version", cfg.App.Version)

	utils.InitJWT(cfg.JWT.SecretKey)

	db, err := database.InitPostgres(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	logger.Info("Database connected successfully")

	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Product{},
		&domain.Variant{},
		&domain.Offer{},
		&domain.ModelArtifact{},
	); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	redisClient, err := redisdb.NewRedisClient(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to redis", "error", err)
	}
	defer func() {
		if err := redisdb.CloseRedisClient(redisClient); err != nil {
			logger.Error("Failed to close redis client", err)
		}
	}()

	// Init validate
	validate := validator.New()

	// Init repo
	userRepo := psqlRepo.NewUserRepository(db)
	catalogRepo := psqlRepo.NewCatalogRepository(db)
	artifactRepo := psqlRepo.NewArtifactRepository(db)
	tokenRepo := redisRepo.NewTokenRepository(redisClient)

	startCtx, startCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer startCancel()

	// Init service
	usrService := userService.NewUserService(userRepo, validate, tokenRepo)
	if cfg.App.AdminEmail != "" && cfg.App.AdminPassword != "" {
		if err := usrService.EnsureAdmin(startCtx, cfg.App.AdminEmail, cfg.App.AdminPassword); err != nil {
			logger.Fatal("Failed to seed admin user", "error", err)
		}
	}

	catalogService := catalog.NewCatalogService(catalogRepo)
	if err := catalogService.Load(startCtx); err != nil {
		logger.Fatal("Failed to load catalog", "error", err)
	}
	logger.Info("Catalog loaded", "products", len(catalogService.ProductNames()))

	// Pick the scoring strategy once at startup. A missing or invalid
	// artifact degrades to the heuristic, never a crash.
	strategy := ranking.SelectStrategy(startCtx, artifactRepo)
	logger.Info("Scoring strategy selected", "strategy", strategy.Name())

	nameMatcher := matcher.New(cfg.Ranking.MatchCutoff)
	rankingService := ranking.NewRankingService(catalogService, nameMatcher, strategy)

	// Init handler
	rankingHandler := rest.NewRankingHandler(rankingService, cfg.Ranking.TopK)
	catalogHandler := rest.NewCatalogHandler(catalogService)
	modelHandler := rest.NewModelHandler(artifactRepo, rankingService.StrategyName)
	userHandler := rest.NewUserHandler(usrService)

	metrics.Init()

	// Init echo
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// HTTP error handler
	e.HTTPErrorHandler = middleware.ErrorHandler

	// Global middleware
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"http://localhost:3000", "http://localhost:8080"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(middleware.TraceMiddleware())

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Auth middleware
	authRequired := middleware.AuthMiddlewareWithRedis(tokenRepo)
	adminOnly := middleware.AdminOnly()

	// Setup routes
	api := e.Group("/api/v1")
	router.SetupRankingRoutes(api, rankingHandler)
	router.SetupAuthRoutes(api, userHandler)
	router.SetupAdminRoutes(api, catalogHandler, modelHandler, authRequired, adminOnly)

	// Goroutine server
	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown server
	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
