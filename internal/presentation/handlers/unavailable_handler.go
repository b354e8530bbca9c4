package handlers

import (
	"net/http"

	"htmldeploy/internal/application/dto"
	"htmldeploy/internal/domain/deployment"
	"htmldeploy/internal/telemetry"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UnavailableHandler stands in for DeployHandler when configuration could not be loaded.
// Requests are still validated so callers see the usual 400s; valid ones get a generic 500.
type UnavailableHandler struct {
	cause error
	log   *zap.Logger
}

// NewUnavailableHandler creates a handler that reports cause only to the log
func NewUnavailableHandler(cause error, log *zap.Logger) *UnavailableHandler {
	return &UnavailableHandler{cause: cause, log: log}
}

// Deploy handles POST /api/deploy while the service is misconfigured
func (h *UnavailableHandler) Deploy(c *gin.Context) {
	var req dto.DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		rejectNoHTML(c)
		return
	}
	if _, err := deployment.NewHTMLContent(req.HTML); err != nil {
		rejectNoHTML(c)
		return
	}

	h.log.Error("deploy refused, service is misconfigured", zap.Error(h.cause))
	telemetry.RecordDeployment(telemetry.OutcomeFailed)
	c.JSON(http.StatusInternalServerError, dto.DeployResult{
		Success: false,
		Error:   deployment.DefaultFailureMessage,
	})
}
