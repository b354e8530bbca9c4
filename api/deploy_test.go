package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"htmldeploy/internal/application/dto"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler_Deploys(t *testing.T) {
	gin.SetMode(gin.TestMode)
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok_fn", r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":"dpl_1","url":"foo.vercel.app"}`))
	}))
	defer upstream.Close()

	t.Setenv("VERCEL_TOKEN", "tok_fn")
	t.Setenv("VERCEL_API_URL", upstream.URL)
	t.Setenv("VERCEL_TIMEOUT", "5")

	h := newHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/deploy", strings.NewReader(`{"html":"PGgxPkhpPC9oMT4="}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var result dto.DeployResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, "https://foo.vercel.app", result.URL)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestNewHandler_Misconfigured(t *testing.T) {
	gin.SetMode(gin.TestMode)
	t.Setenv("VERCEL_API_URL", "not-a-url")

	h := newHandler()

	tests := []struct {
		name     string
		method   string
		body     string
		wantCode int
		wantBody string
	}{
		{"preflight", http.MethodOptions, "", http.StatusOK, ""},
		{"wrong method", http.MethodGet, "", http.StatusMethodNotAllowed, `{"error":"method not allowed"}`},
		{"no html", http.MethodPost, `{}`, http.StatusBadRequest, `{"success":false,"error":"no HTML file"}`},
		{"valid request", http.MethodPost, `{"html":"PGgxPkhpPC9oMT4="}`, http.StatusInternalServerError, `{"success":false,"error":"an unexpected error occurred"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/api/deploy", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
			if tt.wantBody == "" {
				assert.Empty(t, w.Body.String())
			} else {
				assert.JSONEq(t, tt.wantBody, w.Body.String())
			}
			assert.NotContains(t, w.Body.String(), "VERCEL_API_URL")
		})
	}
}
