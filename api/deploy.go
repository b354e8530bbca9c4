package handler

import (
	"context"
	"net/http"
	"sync"

	"htmldeploy/internal/config"
	"htmldeploy/internal/logger"
	"htmldeploy/internal/presentation"
	"htmldeploy/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	initOnce sync.Once
	router   http.Handler
)

// Handler is the entry point for Vercel's Go runtime
func Handler(w http.ResponseWriter, r *http.Request) {
	initOnce.Do(func() {
		gin.SetMode(gin.ReleaseMode)
		router = newHandler()
	})
	router.ServeHTTP(w, r)
}

func newHandler() http.Handler {
	cfg, err := config.Load()
	if err != nil {
		log := logger.New(false)
		log.Error("failed to load configuration", zap.Error(err))
		return presentation.NewUnavailableRouter(err, log)
	}

	log := logger.New(cfg.App.Development)
	if _, err := telemetry.InitTracing(context.Background(), cfg.Tracing.ServiceName, cfg.Tracing.Exporter); err != nil {
		log.Warn("tracing disabled", zap.Error(err))
	}

	return telemetry.WrapHandler(presentation.NewRouter(cfg, log))
}
