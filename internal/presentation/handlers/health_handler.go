package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness and whether deploys can be attempted
type HealthHandler struct {
	environment     string
	tokenConfigured bool
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(environment string, tokenConfigured bool) *HealthHandler {
	return &HealthHandler{
		environment:     environment,
		tokenConfigured: tokenConfigured,
	}
}

// Health handles GET /api/v1/health
// @Summary Health check
// @Description Returns service liveness and whether a deployment token is configured
// @Tags Health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	status := "healthy"
	if !h.tokenConfigured {
		// still alive, but every deploy will fail with a 500
		status = "degraded"
	}
	c.JSON(http.StatusOK, HealthResponse{
		Status:          status,
		Environment:     h.environment,
		TokenConfigured: h.tokenConfigured,
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status          string `json:"status" example:"healthy"`
	Environment     string `json:"environment" example:"production"`
	TokenConfigured bool   `json:"tokenConfigured"`
}
