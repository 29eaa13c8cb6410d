package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "drivehub-admin-backend/docs"
	"drivehub-admin-backend/internal/common/cache"
	"drivehub-admin-backend/internal/common/config"
	"drivehub-admin-backend/internal/common/logger"
	"drivehub-admin-backend/internal/common/middleware"
	confirmationsHTTP "drivehub-admin-backend/internal/features/confirmations/delivery/http"
	confirmationsRepo "drivehub-admin-backend/internal/features/confirmations/repository/redis"
	confirmationsService "drivehub-admin-backend/internal/features/confirmations/service"
	directoryHTTP "drivehub-admin-backend/internal/features/directory/delivery/http"
	directoryService "drivehub-admin-backend/internal/features/directory/service"
	reportsHTTP "drivehub-admin-backend/internal/features/reports/delivery/http"
	reportsService "drivehub-admin-backend/internal/features/reports/service"
	"drivehub-admin-backend/internal/platform/bookingapi"
	"drivehub-admin-backend/internal/platform/redis"
)

// @title           DriveHub Admin Console API
// @version         1.0
// @description     Backend for the driving-lesson booking platform's admin console: user directory, instructor earnings reports with XLSX/PDF/CSV export, and a confirmation gate for destructive actions. All durable data lives in the booking platform API.

// @host      localhost:8080
// @BasePath  /api/v1

// @tag.name directory
// @tag.description User directory - listing, search, admin creation and profile edits

// @tag.name reports
// @tag.description Instructor earnings, revenue analytics and report export

// @tag.name actions
// @tag.description Confirmation gate for status changes and deletions

func main() {
	cfg := config.Load()

	logger.Init("drivehub-admin-backend", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := redis.Open(ctx, cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer redisClient.Close()
	logger.Info().Msg("Redis connection established")

	gateway := bookingapi.NewClient(cfg.Gateway.BaseURL, cfg.Gateway.APIKey, cfg.GatewayTimeout())
	cacheService := cache.New(redisClient)

	directorySvc := directoryService.NewService(gateway, cacheService, cfg.DirectoryCacheTTL(), cfg.PasswordMinLength)
	reportsSvc := reportsService.NewService(gateway, cacheService, cfg.EarningsCacheTTL(), cfg.Reports.FetchWorkers)
	confirmationsSvc := confirmationsService.NewService(
		gateway,
		confirmationsRepo.NewConfirmationRepository(redisClient),
		cacheService,
		cfg.ConfirmationTTL(),
	)
	logger.Info().Msg("Services initialized")

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "X-Admin-ID", "X-Request-ID"}
	router.Use(cors.New(corsConfig))

	v1 := router.Group("/api/v1")
	directoryHTTP.NewDirectoryHandler(directorySvc).RegisterRoutes(v1)
	reportsHTTP.NewReportsHandler(reportsSvc).RegisterRoutes(v1)
	confirmationsHTTP.NewConfirmationsHandler(confirmationsSvc).RegisterRoutes(v1)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   "drivehub-admin-backend",
		})
	})

	router.GET("/ready", func(c *gin.Context) {
		probeCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := redisClient.Ping(probeCtx).Err(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "redis unavailable",
				"details": err.Error(),
			})
			return
		}

		if err := gateway.Health(probeCtx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unready",
				"error":   "booking platform unavailable",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
		os.Exit(1)
	}

	logger.Info().Msg("Server exited")
}
