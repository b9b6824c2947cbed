package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redmonkez12/adventure-api/internal/auth"
	"github.com/redmonkez12/adventure-api/internal/config"
	"github.com/redmonkez12/adventure-api/internal/database"
	httpServer "github.com/redmonkez12/adventure-api/internal/http"
	"github.com/redmonkez12/adventure-api/internal/logging"
	"github.com/redmonkez12/adventure-api/internal/ratelimit"
	"github.com/redmonkez12/adventure-api/internal/user"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func run() error {
	// Load configuration; a missing secret or store URI is fatal here,
	// never a per-request error
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	logger := logging.NewLogger(cfg.Server.IsDevelopment())
	logger.Info("starting application",
		"env", cfg.Server.Env,
		"port", cfg.Server.Port,
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize store connection
	client, err := database.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		disconnectCtx, cancelDisconnect := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancelDisconnect()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Warn("failed to disconnect from mongo", "error", err.Error())
		}
	}()

	db := client.Database(cfg.Mongo.Database)

	// Initialize repository; the unique email index is the real
	// uniqueness guarantee for registration
	userRepo := user.NewRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// Initialize token service
	tokenService, err := auth.NewJWTService(cfg.Auth.Secret, cfg.Auth.TokenExpiry)
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}

	// Initialize rate limiter with a background sweep of expired keys
	limiter := ratelimit.NewLimiter(cfg.RateLimit.Window, cfg.RateLimit.MaxRequests)
	limiter.StartSweeping(ctx, cfg.RateLimit.Window)

	// Initialize auth service and HTTP handlers
	authService := auth.NewService(userRepo, tokenService, logger, cfg.Auth.MinPasswordLength)
	authHandler := auth.NewHandler(authService, logger)
	authMiddleware := auth.NewMiddleware(tokenService)
	healthHandler := httpServer.NewHealthHandler(database.NewHealthChecker(client))

	// Initialize router
	router := httpServer.NewRouter(cfg, authHandler, authMiddleware, healthHandler, limiter, logger)

	// Initialize HTTP server
	server := httpServer.NewServer(
		":"+cfg.Server.Port,
		router,
		cfg.Server.ReadTimeout,
		cfg.Server.WriteTimeout,
		logger,
	)

	// Start server in a goroutine
	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.Start()
	}()

	// Wait for interrupt signal or server error
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case sig := <-shutdown:
		logger.Info("received shutdown signal", "signal", sig.String())

		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}
