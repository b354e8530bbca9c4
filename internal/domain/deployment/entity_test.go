package deployment_test

import (
	"errors"
	"testing"
	"time"

	"htmldeploy/internal/domain/deployment"
)

func TestNewDeployment(t *testing.T) {
	now := time.Now()

	d, err := deployment.NewDeployment("PGgxPkhpPC9oMT4=", now)
	if err != nil {
		t.Fatalf("NewDeployment() error = %v", err)
	}

	if d.Status() != deployment.StatusPending {
		t.Errorf("Status() = %s, want %s", d.Status(), deployment.StatusPending)
	}
	if d.Target() != deployment.TargetProduction {
		t.Errorf("Target() = %s, want %s", d.Target(), deployment.TargetProduction)
	}
	if !projectNamePattern.MatchString(d.Name().String()) {
		t.Errorf("Name() = %q, does not match %s", d.Name(), projectNamePattern)
	}
	if d.URL() != "" {
		t.Errorf("URL() = %q, want empty before deploy", d.URL())
	}
	if !d.CreatedAt().Equal(now) {
		t.Errorf("CreatedAt() = %v, want %v", d.CreatedAt(), now)
	}
}

func TestNewDeployment_EmptyHTML(t *testing.T) {
	_, err := deployment.NewDeployment("", time.Now())
	if !errors.Is(err, deployment.ErrNoHTML) {
		t.Errorf("NewDeployment() error = %v, want ErrNoHTML", err)
	}
}

func TestDeployment_MarkDeployed(t *testing.T) {
	tests := []struct {
		name       string
		remoteID   string
		host       string
		wantErr    error
		wantURL    string
		wantStatus deployment.DeploymentStatus
	}{
		{"bare host", "dpl_1", "foo.vercel.app", nil, "https://foo.vercel.app", deployment.StatusDeployed},
		{"host with scheme", "dpl_1", "https://foo.vercel.app", nil, "https://foo.vercel.app", deployment.StatusDeployed},
		{"missing id", "", "foo.vercel.app", deployment.ErrIncompleteResponse, "", deployment.StatusFailed},
		{"missing host", "dpl_1", "", deployment.ErrIncompleteResponse, "", deployment.StatusFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := deployment.NewDeployment("<p>x</p>", time.Now())
			if err != nil {
				t.Fatalf("NewDeployment() error = %v", err)
			}

			err = d.MarkDeployed(tt.remoteID, tt.host)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("MarkDeployed() error = %v, want %v", err, tt.wantErr)
			}
			if d.URL() != tt.wantURL {
				t.Errorf("URL() = %q, want %q", d.URL(), tt.wantURL)
			}
			if d.Status() != tt.wantStatus {
				t.Errorf("Status() = %s, want %s", d.Status(), tt.wantStatus)
			}
		})
	}
}

func TestDeployment_MarkDeployedTwice(t *testing.T) {
	d, _ := deployment.NewDeployment("<p>x</p>", time.Now())
	if err := d.MarkDeployed("dpl_1", "foo.vercel.app"); err != nil {
		t.Fatalf("MarkDeployed() error = %v", err)
	}

	err := d.MarkDeployed("dpl_2", "bar.vercel.app")
	if !errors.Is(err, deployment.ErrInvalidStatusTransition) {
		t.Errorf("MarkDeployed() error = %v, want ErrInvalidStatusTransition", err)
	}
	if d.RemoteID() != "dpl_1" {
		t.Errorf("RemoteID() = %q, want dpl_1", d.RemoteID())
	}
}

func TestDeployment_MarkFailed(t *testing.T) {
	d, _ := deployment.NewDeployment("<p>x</p>", time.Now())
	d.MarkFailed()
	if d.Status() != deployment.StatusFailed {
		t.Errorf("Status() = %s, want %s", d.Status(), deployment.StatusFailed)
	}
}
