package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"htmldeploy/internal/config"
	"htmldeploy/internal/logger"
	"htmldeploy/internal/presentation"
	"htmldeploy/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title HTML Deploy API
// @version 1.0
// @description Publishes a single HTML page as a static Vercel deployment

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl := logger.New(cfg.App.Development)
	defer logger.Sync(zl)

	if cfg.Vercel.Token == "" {
		zl.Warn("VERCEL_TOKEN is not set, deploy requests will fail")
	}

	// Set Gin mode
	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := telemetry.InitTracing(context.Background(), cfg.Tracing.ServiceName, cfg.Tracing.Exporter)
	if err != nil {
		zl.Fatal("failed to initialize tracing", zap.Error(err))
	}

	router := presentation.NewRouter(cfg, zl)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      telemetry.WrapHandler(router),
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		zl.Info("server starting", zap.String("addr", cfg.GetServerAddress()), zap.String("env", cfg.App.Environment))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zl.Info("shutting down server")

	// Give outstanding requests 30 seconds to complete
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		zl.Fatal("server forced to shutdown", zap.Error(err))
	}
	if err := shutdownTracing(ctx); err != nil {
		zl.Warn("failed to flush traces", zap.Error(err))
	}

	zl.Info("server exited")
}
