package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/deppfellow/storefront-api/internal/config"
	"github.com/deppfellow/storefront-api/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPinger struct{ err error }

func (p stubPinger) Ping(context.Context) error { return p.err }

func newTestServer() *server.Server {
	logger := zerolog.Nop()
	return &server.Server{
		Config: &config.Config{
			Primary:       config.Primary{Env: "test"},
			Observability: config.DefaultObservabilityConfig(),
		},
		Logger: &logger,
	}
}

var fixedNow = time.Date(2024, 5, 6, 7, 8, 9, 123_000_000, time.FixedZone("CET", 3600))

func newHealthHandler(p Pinger) *HealthHandler {
	h := NewHealthHandler(newTestServer())
	h.db = p
	h.now = func() time.Time { return fixedNow }
	return h
}

func serve(t *testing.T, fn echo.HandlerFunc) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	require.NoError(t, fn(c))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec, body
}

func TestHealth(t *testing.T) {
	rec, body := serve(t, newHealthHandler(nil).Health)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]any{
		"success":   true,
		"message":   "Backend is running",
		"status":    "ok",
		"timestamp": "2024-05-06T06:08:09.123Z",
	}, body)
}

func TestCheckHealth_Healthy(t *testing.T) {
	rec, body := serve(t, newHealthHandler(stubPinger{}).CheckHealth)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "healthy", body["status"])
	assert.Equal(t, "test", body["environment"])
	assert.Equal(t, "2024-05-06T06:08:09.123Z", body["timestamp"])

	db := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "healthy", db["status"])
	assert.NotContains(t, db, "error")
}

func TestCheckHealth_Unhealthy(t *testing.T) {
	rec, body := serve(t, newHealthHandler(stubPinger{err: errors.New("connection refused")}).CheckHealth)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "unhealthy", body["status"])

	db := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, "unhealthy", db["status"])
	assert.Equal(t, "connection refused", db["error"])
}

func TestCheckHealth_NoDatabase(t *testing.T) {
	h := NewHealthHandler(newTestServer())
	rec, body := serve(t, h.CheckHealth)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	db := body["checks"].(map[string]any)["database"].(map[string]any)
	assert.Equal(t, errDatabaseUnavailable.Error(), db["error"])
}

func TestGetCustomerRequest_CustomerID(t *testing.T) {
	tests := []struct {
		name string
		req  GetCustomerRequest
		want string
	}{
		{"path", GetCustomerRequest{PathID: "c1"}, "c1"},
		{"path wins over query", GetCustomerRequest{PathID: "c1", QueryIDs: []string{"c2"}}, "c1"},
		{"first query value", GetCustomerRequest{QueryIDs: []string{"c2", "c3"}}, "c2"},
		{"empty", GetCustomerRequest{}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.req.CustomerID())
		})
	}

	empty := &GetCustomerRequest{}
	assert.Error(t, empty.Validate())
	assert.Equal(t, "Invalid customer ID", empty.FailureMessage())
}

func TestOpenAPIUI(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "openapi.html"), []byte("<html>docs</html>"), 0o600))

	h := NewOpenAPIHandler(newTestServer())
	h.dir = dir

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), rec)
	require.NoError(t, h.ServeOpenAPIUI(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no-cache", rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "docs")

	h.dir = filepath.Join(dir, "missing")
	assert.Error(t, h.ServeOpenAPIUI(e.NewContext(httptest.NewRequest(http.MethodGet, "/docs", nil), httptest.NewRecorder())))
}
