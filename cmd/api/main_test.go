package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fkhayef/ghusers/internal/config"
	"github.com/fkhayef/ghusers/internal/logging"
)

func TestNewServer_ServesRoutes(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[{"login":"a","name":"A","html_url":"h1"}]`))
	}))
	t.Cleanup(upstream.Close)

	cfg := &config.Config{
		Port:         "9999",
		GitHubAPIURL: upstream.URL,
		UserAgent:    "ghusers-test",
		HTTPTimeout:  time.Second,
	}
	var logs bytes.Buffer
	srv := newServer(cfg, logging.New(logging.Config{Format: "json", Output: &logs}))
	assert.Equal(t, ":9999", srv.Addr)

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<p>@a</p>")
	assert.Contains(t, logs.String(), `"component":"http"`)
}
