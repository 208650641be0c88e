package main

import (
	"context"
	"errors"
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

	_ "raffle-manager-backend/docs"
	"raffle-manager-backend/internal/common/config"
	apperrors "raffle-manager-backend/internal/common/errors"
	"raffle-manager-backend/internal/common/logger"
	"raffle-manager-backend/internal/common/middleware"
	authhttp "raffle-manager-backend/internal/features/auth/delivery/http"
	authservice "raffle-manager-backend/internal/features/auth/service"
	rafflehttp "raffle-manager-backend/internal/features/raffle/delivery/http"
	"raffle-manager-backend/internal/features/raffle/draw"
	"raffle-manager-backend/internal/features/raffle/notify"
	raffleservice "raffle-manager-backend/internal/features/raffle/service"
	"raffle-manager-backend/internal/platform/telegram"
	"raffle-manager-backend/internal/utils/random"
)

const serviceName = "raffle-manager-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(serviceName, cfg.Debug)
	logger.Info().
		Str("version", "1.0.0").
		Bool("debug", cfg.Debug).
		Str("storage", cfg.Storage.Driver).
		Msg("Starting Raffle Manager Backend")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	storage, err := openBackend(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize storage")
	}

	hub := raffleservice.NewHub(32)
	store, err := raffleservice.NewRaffleStore(ctx, storage.storage, draw.NewEngine(random.CryptoSource{}), hub)
	if err != nil {
		storage.Close(context.Background())
		logger.Fatal().Err(err).Msg("Failed to load raffles")
	}

	var authn middleware.Authenticator
	var authSvc authservice.AuthService
	if cfg.AuthEnabled() {
		authSvc, err = authservice.NewAuthService(authservice.Config{
			JWTSecret:         cfg.Auth.JWTSecret,
			TokenTTL:          cfg.Auth.JWTTTL,
			AdminUsername:     cfg.Auth.AdminUsername,
			AdminPassword:     cfg.Auth.AdminPassword,
			AdminPasswordHash: cfg.Auth.AdminPasswordHash,
			BotToken:          cfg.Telegram.BotToken,
			AdminIDs:          cfg.Telegram.AdminIDs,
			InitDataTTL:       cfg.Telegram.InitDataTTL,
		})
		if err != nil {
			storage.Close(context.Background())
			logger.Fatal().Err(err).Msg("Failed to initialize auth")
		}
		authn = authSvc
	} else {
		logger.Warn().Msg("JWT_SECRET and BOT_TOKEN are empty, admin endpoints are open")
	}

	if cfg.Telegram.NotifyDraws && cfg.Telegram.BotToken != "" && len(cfg.Telegram.AdminIDs) > 0 {
		notifier := notify.NewNotifier(telegram.NewClient(cfg.Telegram.BotToken), store, cfg.Telegram.AdminIDs)
		go notifier.Run(ctx, hub)
	}

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger("/health", "/live", "/ready"))
	router.Use(middleware.ErrorHandler())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = []string{cfg.Server.Origin}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization", "Accept", "init_data", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	router.Use(cors.New(corsConfig))

	setupRoutes(router, store, hub, authSvc, authn, storage)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		// no WriteTimeout: /raffles/events streams indefinitely
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	<-ctx.Done()
	stop()
	logger.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	}
	storage.Close(shutdownCtx)

	logger.Info().Msg("Server exited")
}

func setupRoutes(router *gin.Engine, store *raffleservice.RaffleStore, hub *raffleservice.Hub, authSvc authservice.AuthService, authn middleware.Authenticator, storage *backend) {
	v1 := router.Group("/api/v1")

	if authSvc != nil {
		authhttp.NewAuthHandler(authSvc).RegisterRoutes(v1)
	}
	rafflehttp.NewRaffleHandler(store, hub).RegisterRoutes(v1, authn)
	router.NoRoute(middleware.NoRoute())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
		})
	})

	router.GET("/live", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	router.GET("/ready", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		for name, check := range storage.checks {
			if err := check(ctx); err != nil {
				middleware.RespondError(c, apperrors.NewStorageError(name+" health check", err))
				return
			}
		}
		if err := store.HealthCheck(ctx); err != nil {
			middleware.RespondError(c, apperrors.NewStorageError("storage health check", err))
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "ready",
			"timestamp": time.Now().UTC(),
			"service":   serviceName,
			"listeners": hub.SubscriberCount(),
		})
	})
}
