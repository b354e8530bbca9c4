package presentation

import (
	"htmldeploy/internal/application/service"
	"htmldeploy/internal/config"
	infraVercel "htmldeploy/internal/infrastructure/vercel"
	"htmldeploy/internal/middleware"
	"htmldeploy/internal/presentation/handlers"
	"htmldeploy/internal/telemetry"
	"htmldeploy/internal/vercel"

	_ "htmldeploy/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// DeployPath is where the deploy endpoint is mounted. It matches the
// serverless function path so both hosting modes expose the same URL.
const DeployPath = "/api/deploy"

// NewRouter wires the layers together and returns the HTTP engine
func NewRouter(cfg *config.Config, log *zap.Logger) *gin.Engine {
	// External service clients
	vercelClient := vercel.NewClient(cfg.Vercel.APIURL, cfg.Vercel.TeamID, cfg.VercelTimeout())

	// Infrastructure implementations of domain services
	platform := infraVercel.NewVercelService(vercelClient, log)

	// Application services
	deploymentService := service.NewDeploymentService(platform, cfg.Vercel.Token)

	// HTTP handlers
	healthHandler := handlers.NewHealthHandler(cfg.App.Environment, cfg.Vercel.Token != "")
	deployHandler := handlers.NewDeployHandler(deploymentService, log, cfg.App.Development)

	router := newEngine()
	router.POST(DeployPath, deployHandler.Deploy)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthHandler.Health)
	}

	router.GET("/metrics", gin.WrapH(telemetry.MetricsHandler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}

// NewUnavailableRouter serves the deploy endpoint when configuration failed to load.
// The CORS and method contract is unchanged; the cause is logged, never returned.
func NewUnavailableRouter(cause error, log *zap.Logger) *gin.Engine {
	router := newEngine()
	router.POST(DeployPath, handlers.NewUnavailableHandler(cause, log).Deploy)
	return router
}

// newEngine sets up the middleware chain. Any method a path was not registered
// for, standard or not, gets the JSON 405.
func newEngine() *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.Metrics())
	router.Use(middleware.CORS())
	router.NoMethod(handlers.MethodNotAllowed)
	return router
}
