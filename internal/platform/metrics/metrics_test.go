package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/artistly/internal/platform/metrics"
)

func TestHandler_ExposesCollectors(t *testing.T) {
	metrics.ObserveRequest("GET", "/api/v1/artists", 200, 15*time.Millisecond)
	metrics.QuoteRequested(7)
	metrics.StatusChanged("pending", "approved")
	metrics.StepRejected(1)

	recorder := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(recorder, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(recorder.Result().Body)
	require.NoError(t, err)

	text := string(body)
	assert.Contains(t, text, `artistly_http_requests_total{method="GET",route="/api/v1/artists",status="200"}`)
	assert.Contains(t, text, `artistly_quote_requests_total{artist_id="7"}`)
	assert.Contains(t, text, `artistly_submission_status_changes_total{from="pending",to="approved"}`)
	assert.Contains(t, text, `artistly_onboard_step_rejections_total{step="1"}`)
}
