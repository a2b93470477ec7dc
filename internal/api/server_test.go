package api_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/api"
	"github.com/taibuivan/artistly/internal/core/artist"
	"github.com/taibuivan/artistly/internal/core/onboard"
	"github.com/taibuivan/artistly/internal/core/reference"
	"github.com/taibuivan/artistly/internal/core/submission"
	"github.com/taibuivan/artistly/internal/platform/config"
	"github.com/taibuivan/artistly/internal/platform/fixture"
	"github.com/taibuivan/artistly/internal/web"
)

func newTestServer(t *testing.T, deps api.HealthDependencies) http.Handler {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{ServerPort: "0", Environment: "development", RateLimitRPS: 1000, RateLimitBurst: 1000}

	artistRepo, err := artist.LoadRepository(fixture.Embedded())
	require.NoError(t, err)
	submissionRepo, err := submission.LoadRepository(fixture.Embedded())
	require.NoError(t, err)
	catalogues, err := reference.NewService()
	require.NoError(t, err)

	artists := artist.NewService(artistRepo, logger)
	submissions := submission.NewService(submissionRepo, logger, nil)
	wizard := onboard.NewService(onboard.NewMemoryStore(time.Hour, nil), logger, onboard.Options{SubmitDelay: -1})

	liveness, readiness := api.NewHealthHandlers(deps, logger)
	server := api.NewServer(ctx, cfg, logger, api.Handlers{
		Liveness:    liveness,
		Readiness:   readiness,
		Artists:     artist.NewHandler(artists),
		Submissions: submission.NewHandler(submissions),
		Onboard:     onboard.NewHandler(wizard),
		Reference:   reference.NewHandler(catalogues),
		Pages: web.NewHandler(web.Services{
			Artists:     artists,
			Submissions: submissions,
			Wizard:      wizard,
			Reference:   catalogues,
		}, false).Routes(),
	})
	return server.Handler()
}

func get(t *testing.T, handler http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, target, nil))
	return recorder
}

func TestServer_Routes(t *testing.T) {
	handler := newTestServer(t, api.HealthDependencies{})

	for _, target := range []string{
		"/health",
		"/ready",
		"/api/v1/artists?category=DJ",
		"/api/v1/artists/1",
		"/api/v1/submissions/stats",
		"/api/v1/reference/filters",
		"/",
		"/artists",
		"/dashboard",
		"/onboard",
	} {
		recorder := get(t, handler, target)
		assert.Equal(t, http.StatusOK, recorder.Code, target)
		assert.NotEmpty(t, recorder.Header().Get("X-Request-ID"), target)
	}

	// Counters are registered once the first request has been observed.
	metrics := get(t, handler, "/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	assert.Contains(t, metrics.Body.String(), "artistly_http_requests_total")
}

func TestServer_Readiness(t *testing.T) {
	healthy := newTestServer(t, api.HealthDependencies{
		CheckFixtures: func() error { return nil },
	})
	recorder := get(t, healthy, "/ready")
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"ready"`)

	degraded := newTestServer(t, api.HealthDependencies{
		CheckFixtures: func() error { return nil },
		CheckCache:    func() error { return errors.New("redis: ping failed") },
	})
	recorder = get(t, degraded, "/ready")
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "degraded")
	assert.Contains(t, recorder.Body.String(), "redis: ping failed")
}
