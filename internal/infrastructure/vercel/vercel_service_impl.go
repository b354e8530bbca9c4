package vercel

import (
	"context"

	"htmldeploy/internal/domain/deployment"
	"htmldeploy/internal/vercel"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// APIClient is the subset of the Vercel client the platform service needs
type APIClient interface {
	CreateDeployment(ctx context.Context, token string, body *vercel.CreateDeploymentRequest) (*vercel.Deployment, error)
}

// VercelServiceImpl implements the domain deployment.Platform interface
type VercelServiceImpl struct {
	client APIClient
	log    *zap.Logger
}

// NewVercelService creates a new Vercel platform implementation
func NewVercelService(client APIClient, log *zap.Logger) deployment.Platform {
	return &VercelServiceImpl{client: client, log: log}
}

// CreateDeployment publishes d as a single-file static site
func (v *VercelServiceImpl) CreateDeployment(ctx context.Context, token string, d *deployment.Deployment) (*deployment.PlatformDeployment, error) {
	req := &vercel.CreateDeploymentRequest{
		Name: d.Name().String(),
		Files: []vercel.File{
			{File: deployment.IndexFile, Data: d.HTML().String()},
		},
		ProjectSettings: vercel.ProjectSettings{Framework: nil},
		Target:          d.Target().String(),
	}

	created, err := v.client.CreateDeployment(ctx, token, req)
	if err != nil {
		var apiErr *vercel.APIError
		if errors.As(err, &apiErr) {
			v.log.Error("vercel API error",
				zap.String("project_name", req.Name),
				zap.Int("status", apiErr.StatusCode),
				zap.String("code", apiErr.Code),
				zap.String("body", apiErr.Body),
			)
			return nil, deployment.ErrPlatformRejected(apiErr.StatusCode, apiErr.Message, err)
		}
		return nil, deployment.ErrPlatformUnavailable(err)
	}

	return &deployment.PlatformDeployment{
		ID:  created.ID,
		URL: created.URL,
	}, nil
}
