package handlers

import (
	"fmt"
	"net/http"

	"htmldeploy/internal/application/dto"
	"htmldeploy/internal/application/service"
	"htmldeploy/internal/domain/deployment"
	"htmldeploy/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DeployHandler handles HTML deploy requests
type DeployHandler struct {
	deploymentService *service.DeploymentService
	log               *zap.Logger
	development       bool
}

// NewDeployHandler creates a new deploy handler.
// When development is set, failure responses carry a stack trace in details.
func NewDeployHandler(deploymentService *service.DeploymentService, log *zap.Logger, development bool) *DeployHandler {
	return &DeployHandler{
		deploymentService: deploymentService,
		log:               log,
		development:       development,
	}
}

// Deploy handles POST /api/deploy
// @Summary Deploy an HTML page
// @Description Publishes the given HTML as index.html of a new static Vercel deployment and returns its URL
// @Tags Deployments
// @Accept json
// @Produce json
// @Param request body dto.DeployRequest true "HTML to deploy"
// @Success 200 {object} dto.DeployResult
// @Failure 400 {object} dto.DeployResult
// @Failure 405 {object} dto.MethodNotAllowedResponse
// @Failure 500 {object} dto.DeployResult
// @Router /api/deploy [post]
func (h *DeployHandler) Deploy(c *gin.Context) {
	var req dto.DeployRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Warn("invalid deploy request body", zap.Error(err))
		rejectNoHTML(c)
		return
	}

	result, err := h.deploymentService.Deploy(c.Request.Context(), &req)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.log.Info("deployment created",
		zap.String("project_name", result.Name),
		zap.String("project_id", result.ProjectID),
		zap.String("url", result.URL),
	)
	telemetry.RecordDeployment(telemetry.OutcomeSucceeded)
	c.JSON(http.StatusOK, result)
}

// MethodNotAllowed answers a known path requested with an unsupported method.
// OPTIONS never gets here; the CORS middleware answers it first.
func MethodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, dto.MethodNotAllowedResponse{
		Error: deployment.ErrMethodNotAllowed.Error(),
	})
}

func rejectNoHTML(c *gin.Context) {
	telemetry.RecordDeployment(telemetry.OutcomeRejected)
	c.JSON(http.StatusBadRequest, dto.DeployResult{
		Success: false,
		Error:   deployment.ErrNoHTML.Error(),
	})
}

func (h *DeployHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, deployment.ErrNoHTML):
		h.log.Warn("deploy request without html")
		rejectNoHTML(c)
		return

	case errors.Is(err, deployment.ErrMissingToken):
		h.log.Error("deployment token is not configured")
		telemetry.RecordDeployment(telemetry.OutcomeFailed)
		c.JSON(http.StatusInternalServerError, dto.DeployResult{
			Success: false,
			Error:   deployment.ErrMissingToken.Error(),
		})
		return
	}

	h.log.Error("deployment failed", zap.Error(err))
	telemetry.RecordDeployment(telemetry.OutcomeFailed)

	result := dto.DeployResult{
		Success: false,
		Error:   failureMessage(err),
	}
	if h.development {
		result.Details = stackTrace(err)
	}
	c.JSON(http.StatusInternalServerError, result)
}

// failureMessage picks the caller-facing reason for a failed deploy
func failureMessage(err error) string {
	var domainErr *deployment.DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.Message
	}
	if msg := err.Error(); msg != "" {
		return msg
	}
	return deployment.DefaultFailureMessage
}

type stackTracer interface {
	StackTrace() errors.StackTrace
}

// stackTrace renders the error with the stack captured where it was first wrapped
func stackTrace(err error) string {
	var tracer stackTracer
	if errors.As(err, &tracer) {
		return fmt.Sprintf("%s%+v", err.Error(), tracer.StackTrace())
	}
	return err.Error()
}
