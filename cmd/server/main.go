package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/formboard/server/internal/auth"
	"codeberg.org/formboard/server/internal/config"
	"codeberg.org/formboard/server/internal/logger"
)

// @title Formboard API
// @version 1.0
// @description Form sharing and completion tracking
// @description
// @description Features:
// @description - Post links to externally-hosted survey forms
// @description - Complete forms, leave ratings and feedback
// @description - Per-user rolling statistics and activity feeds
// @description - Password and OAuth authentication (Google, GitHub)

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token for authenticated requests. Format: Bearer {token}

func main() {
	logger.Info("starting formboard server")

	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	// initialize OAuth providers (no-op when none are configured)
	if err := auth.InitializeProviders(); err != nil {
		logger.Fatal("failed to initialize OAuth providers", "error", err)
	}

	// create server with all dependencies
	srv, err := NewServer(cfg)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	// get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", "error", err)
		}
	}()

	// start link checker with cancellable context
	checkerCtx, checkerCancel := context.WithCancel(context.Background())
	go srv.checker.Start(checkerCtx)

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// stop link checker
	checkerCancel()

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	// close database connection
	if srv.db != nil {
		srv.db.Close()
	}

	logger.Info("server stopped")
}
