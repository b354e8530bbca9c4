package vercel_test

import (
	"context"
	"testing"
	"time"

	"htmldeploy/internal/domain/deployment"
	infraVercel "htmldeploy/internal/infrastructure/vercel"
	"htmldeploy/internal/vercel"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type mockAPIClient struct {
	gotToken string
	gotBody  *vercel.CreateDeploymentRequest
	resp     *vercel.Deployment
	err      error
}

func (m *mockAPIClient) CreateDeployment(ctx context.Context, token string, body *vercel.CreateDeploymentRequest) (*vercel.Deployment, error) {
	m.gotToken = token
	m.gotBody = body
	return m.resp, m.err
}

func newDeployment(t *testing.T) *deployment.Deployment {
	t.Helper()
	d, err := deployment.NewDeployment("PGgxPkhpPC9oMT4=", time.Now())
	require.NoError(t, err)
	return d
}

func TestCreateDeployment_BuildsPayload(t *testing.T) {
	client := &mockAPIClient{resp: &vercel.Deployment{ID: "dpl_1", URL: "foo.vercel.app"}}
	svc := infraVercel.NewVercelService(client, zap.NewNop())
	d := newDeployment(t)

	created, err := svc.CreateDeployment(context.Background(), "tok_123", d)
	require.NoError(t, err)

	assert.Equal(t, "dpl_1", created.ID)
	assert.Equal(t, "foo.vercel.app", created.URL)

	assert.Equal(t, "tok_123", client.gotToken)
	require.NotNil(t, client.gotBody)
	assert.Equal(t, d.Name().String(), client.gotBody.Name)
	assert.Equal(t, []vercel.File{{File: "index.html", Data: "PGgxPkhpPC9oMT4="}}, client.gotBody.Files)
	assert.Nil(t, client.gotBody.ProjectSettings.Framework)
	assert.Equal(t, "production", client.gotBody.Target)
}

func TestCreateDeployment_Rejected(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	client := &mockAPIClient{err: errors.WithStack(&vercel.APIError{
		StatusCode: 400,
		Code:       "bad_request",
		Message:    "bad file",
		Body:       `{"error":{"code":"bad_request","message":"bad file"}}`,
	})}
	svc := infraVercel.NewVercelService(client, zap.New(core))

	_, err := svc.CreateDeployment(context.Background(), "tok", newDeployment(t))
	require.Error(t, err)

	var domainErr *deployment.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, deployment.CodePlatformRejected, domainErr.Code)
	assert.Equal(t, "bad file", domainErr.Message)
	assert.Equal(t, 400, domainErr.StatusCode)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "vercel API error", entry.Message)
	assert.Equal(t, int64(400), entry.ContextMap()["status"])
}

func TestCreateDeployment_RejectedWithoutMessage(t *testing.T) {
	client := &mockAPIClient{err: &vercel.APIError{StatusCode: 500}}
	svc := infraVercel.NewVercelService(client, zap.NewNop())

	_, err := svc.CreateDeployment(context.Background(), "tok", newDeployment(t))

	var domainErr *deployment.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, deployment.DefaultRejectionMessage, domainErr.Message)
}

func TestCreateDeployment_Unavailable(t *testing.T) {
	cause := errors.New("failed to send deployment request: connection refused")
	client := &mockAPIClient{err: cause}
	svc := infraVercel.NewVercelService(client, zap.NewNop())

	_, err := svc.CreateDeployment(context.Background(), "tok", newDeployment(t))

	var domainErr *deployment.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, deployment.CodePlatformUnavailable, domainErr.Code)
	assert.Equal(t, cause.Error(), domainErr.Message)
	assert.True(t, errors.Is(err, cause))
}
