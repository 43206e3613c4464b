package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsServiceRecordsAndExposes(t *testing.T) {
	service := NewMetricsService()

	service.ObserveHTTPRequest(http.MethodGet, "/api/v1/portal/sessions", 200, 15*time.Millisecond)
	service.ObserveUpstreamRequest("sessions", http.MethodGet, 0, time.Second)
	service.RecordCacheOperation(true, time.Millisecond)
	service.RecordCacheOperation(false, time.Millisecond)

	recorder := httptest.NewRecorder()
	service.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body, err := io.ReadAll(recorder.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `portal_http_requests_total{method="GET",path="/api/v1/portal/sessions",status="200"} 1`)
	assert.Contains(t, string(body), `portal_upstream_requests_total{method="GET",resource="sessions",status="0"} 1`)
	assert.Contains(t, string(body), `portal_unread_cache_lookups_total{result="hit"} 1`)
	assert.Contains(t, string(body), `portal_unread_cache_lookups_total{result="miss"} 1`)
}

func TestNilMetricsServiceIsSafe(t *testing.T) {
	var service *MetricsService

	assert.NotPanics(t, func() {
		service.ObserveHTTPRequest(http.MethodGet, "/", 200, time.Millisecond)
		service.ObserveUpstreamRequest("x", http.MethodGet, 200, time.Millisecond)
		service.RecordCacheOperation(true, time.Millisecond)
	})

	recorder := httptest.NewRecorder()
	service.Handler().ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, recorder.Code)
}
