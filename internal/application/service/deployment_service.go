package service

import (
	"context"
	"fmt"
	"time"

	"htmldeploy/internal/application/dto"
	"htmldeploy/internal/domain/deployment"
)

// DeploymentService handles the deploy-html use case
type DeploymentService struct {
	platform deployment.Platform
	token    string
	now      func() time.Time
}

// NewDeploymentService creates a new deployment service.
// An empty token is accepted; every Deploy call then fails with deployment.ErrMissingToken.
func NewDeploymentService(platform deployment.Platform, token string) *DeploymentService {
	return &DeploymentService{
		platform: platform,
		token:    token,
		now:      time.Now,
	}
}

// Deploy publishes the request's HTML as a new production deployment.
// Input is validated before the credential is checked, and both before any platform call.
func (s *DeploymentService) Deploy(ctx context.Context, req *dto.DeployRequest) (*dto.DeployResult, error) {
	if req == nil {
		return nil, deployment.ErrNoHTML
	}

	dep, err := deployment.NewDeployment(req.HTML, s.now())
	if err != nil {
		return nil, err
	}

	if s.token == "" {
		return nil, deployment.ErrMissingToken
	}

	created, err := s.platform.CreateDeployment(ctx, s.token, dep)
	if err != nil {
		dep.MarkFailed()
		return nil, fmt.Errorf("deploy %s: %w", dep.Name(), err)
	}

	if err := dep.MarkDeployed(created.ID, created.URL); err != nil {
		return nil, fmt.Errorf("deploy %s: %w", dep.Name(), err)
	}

	return s.toDTO(dep), nil
}

func (s *DeploymentService) toDTO(dep *deployment.Deployment) *dto.DeployResult {
	return &dto.DeployResult{
		Success:   true,
		URL:       dep.URL(),
		ProjectID: dep.RemoteID(),
		Name:      dep.Name().String(),
	}
}
