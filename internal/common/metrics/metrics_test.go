package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainCounters(t *testing.T) {
	before := testutil.ToFloat64(tipsCreated.WithLabelValues("DAI"))
	RecordTip("DAI")
	RecordTip("DAI")
	assert.Equal(t, before+2, testutil.ToFloat64(tipsCreated.WithLabelValues("DAI")))

	created := testutil.ToFloat64(walletConnections.WithLabelValues("created"))
	RecordWalletConnection(true)
	assert.Equal(t, created+1, testutil.ToFloat64(walletConnections.WithLabelValues("created")))

	violations := testutil.ToFloat64(statsInvariantViolations)
	RecordStatsInvariantViolation()
	assert.Equal(t, violations+1, testutil.ToFloat64(statsInvariantViolations))
}

func TestHandlerExposesHTTPMetrics(t *testing.T) {
	ObserveHTTPRequest(http.MethodGet, "/api/users/:id", http.StatusOK, 12*time.Millisecond)

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `creon_http_requests_total{method="GET",path="/api/users/:id",status="200"}`)
	assert.Contains(t, rec.Body.String(), "creon_http_request_duration_seconds_bucket")
}
