package deployment

import (
	"context"
)

// PlatformDeployment is what the hosting platform reports for a created deployment
type PlatformDeployment struct {
	ID  string
	URL string
}

// Platform is a domain service interface for the external hosting platform
// Implementation will be in infrastructure layer
type Platform interface {
	// CreateDeployment publishes the deployment's files and returns the platform identifiers
	CreateDeployment(ctx context.Context, token string, d *Deployment) (*PlatformDeployment, error)
}
