package deployment

import (
	"fmt"
	"strings"
	"time"
)

// Deployment is a single request-scoped static-site deployment
type Deployment struct {
	name      ProjectName
	html      HTMLContent
	target    Target
	status    DeploymentStatus
	remoteID  string
	host      string
	createdAt time.Time
}

// NewDeployment creates a pending production deployment with a freshly generated name
func NewDeployment(html string, now time.Time) (*Deployment, error) {
	content, err := NewHTMLContent(html)
	if err != nil {
		return nil, err
	}

	return &Deployment{
		name:      NewProjectName(now),
		html:      content,
		target:    TargetProduction,
		status:    StatusPending,
		createdAt: now,
	}, nil
}

// MarkDeployed records the identifiers assigned by the platform
func (d *Deployment) MarkDeployed(remoteID, host string) error {
	if d.status != StatusPending {
		return fmt.Errorf("%w: cannot transition from %s to %s", ErrInvalidStatusTransition, d.status, StatusDeployed)
	}
	if remoteID == "" || host == "" {
		d.status = StatusFailed
		return ErrIncompleteResponse
	}

	d.remoteID = remoteID
	d.host = strings.TrimPrefix(host, "https://")
	d.status = StatusDeployed
	return nil
}

// MarkFailed moves a pending deployment to the failed state
func (d *Deployment) MarkFailed() {
	if d.status == StatusPending {
		d.status = StatusFailed
	}
}

// URL returns the public address of a deployed site
func (d *Deployment) URL() string {
	if d.host == "" {
		return ""
	}
	return "https://" + d.host
}

// Getters

func (d *Deployment) Name() ProjectName {
	return d.name
}

func (d *Deployment) HTML() HTMLContent {
	return d.html
}

func (d *Deployment) Target() Target {
	return d.target
}

func (d *Deployment) Status() DeploymentStatus {
	return d.status
}

func (d *Deployment) RemoteID() string {
	return d.remoteID
}

func (d *Deployment) CreatedAt() time.Time {
	return d.createdAt
}

// String returns string representation (for debugging)
func (d *Deployment) String() string {
	return fmt.Sprintf("Deployment{name: %s, target: %s, status: %s}",
		d.name.String(), d.target.String(), d.status.String())
}
