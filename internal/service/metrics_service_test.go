package service

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

func TestMetricsServiceNilSafe(t *testing.T) {
	var m *MetricsService
	m.ObserveHTTPRequest("GET", "/", 200, time.Millisecond)
	m.RecordCacheOperation(true, time.Millisecond)
	m.AckSubmitted(models.AckEnroll)
	m.AckAcknowledged(models.AckEnroll, time.Second)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestMetricsServiceExposesAckCounters(t *testing.T) {
	m := NewMetricsService()
	m.AckSubmitted(models.AckEnroll)
	m.AckSubmitted(models.AckDrop)
	m.AckAcknowledged(models.AckEnroll, time.Second)
	m.ObserveHTTPRequest(http.MethodGet, "/api/v1/student/record", http.StatusOK, 5*time.Millisecond)

	families, err := m.Registry().Gather()
	require.NoError(t, err)
	values := map[string]float64{}
	for _, mf := range families {
		for _, metric := range mf.GetMetric() {
			switch {
			case metric.GetCounter() != nil:
				values[mf.GetName()] += metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				values[mf.GetName()] = metric.GetGauge().GetValue()
			}
		}
	}
	assert.Equal(t, 2.0, values["acks_submitted_total"])
	assert.Equal(t, 1.0, values["acks_acknowledged_total"])
	assert.Equal(t, 1.0, values["acks_pending"])
	assert.Equal(t, 1.0, values["http_requests_total"])

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `acks_submitted_total{kind="enroll"} 1`))
}
