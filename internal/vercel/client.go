package vercel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/trace"
)

const deploymentsPath = "/v13/deployments"

// Client handles Vercel REST API interactions
type Client struct {
	httpClient *http.Client
	baseURL    string
	teamID     string
}

// ClientOption configures a Client
type ClientOption func(*clientOptions)

type clientOptions struct {
	tracing []otelhttp.Option
}

// WithTracerProvider records outbound spans on tp instead of the global provider
func WithTracerProvider(tp trace.TracerProvider) ClientOption {
	return func(o *clientOptions) {
		o.tracing = append(o.tracing, otelhttp.WithTracerProvider(tp))
	}
}

// NewClient creates a new Vercel API client. Every call is traced as a client span.
func NewClient(baseURL, teamID string, timeout time.Duration, opts ...ClientOption) *Client {
	var o clientOptions
	for _, opt := range opts {
		opt(&o)
	}

	return &Client{
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport, o.tracing...),
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		teamID:  teamID,
	}
}

// File is one inline file of a deployment
type File struct {
	File string `json:"file"`
	Data string `json:"data"`
}

// ProjectSettings overrides project detection. A nil Framework is sent as null (static site).
type ProjectSettings struct {
	Framework *string `json:"framework"`
}

// CreateDeploymentRequest is the body of POST /v13/deployments
type CreateDeploymentRequest struct {
	Name            string          `json:"name"`
	Files           []File          `json:"files"`
	ProjectSettings ProjectSettings `json:"projectSettings"`
	Target          string          `json:"target"`
}

// Deployment represents a deployment from the API
type Deployment struct {
	ID         string `json:"id"`
	URL        string `json:"url"`
	Name       string `json:"name"`
	ReadyState string `json:"readyState"`
}

// APIError is returned when the API answers with a non-2xx status
type APIError struct {
	StatusCode int
	Code       string
	Message    string
	Body       string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("vercel API returned status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("vercel API returned status %d", e.StatusCode)
}

type errorEnvelope struct {
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// CreateDeployment creates a deployment using the given bearer token. A single attempt is made.
func (c *Client) CreateDeployment(ctx context.Context, token string, body *CreateDeploymentRequest) (*Deployment, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode deployment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.deploymentsURL(), bytes.NewReader(payload))
	if err != nil {
		return nil, errors.Wrap(err, "failed to create request")
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", token))
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send deployment request")
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read deployment response")
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
		var envelope errorEnvelope
		if json.Unmarshal(respBody, &envelope) == nil && envelope.Error != nil {
			apiErr.Code = envelope.Error.Code
			apiErr.Message = envelope.Error.Message
		}
		return nil, errors.WithStack(apiErr)
	}

	var deployment Deployment
	if err := json.Unmarshal(respBody, &deployment); err != nil {
		return nil, errors.Wrap(err, "failed to decode deployment")
	}

	return &deployment, nil
}

func (c *Client) deploymentsURL() string {
	u := c.baseURL + deploymentsPath
	if c.teamID != "" {
		u += "?teamId=" + url.QueryEscape(c.teamID)
	}
	return u
}
