package service

import (
	"fmt"
	"net/http"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/campus-portal-api/internal/models"
)

// MetricsService encapsulates Prometheus instrumentation for the portal.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	cacheLatency    prometheus.Observer
	cacheWrite      prometheus.Observer
	cacheHitRatio   prometheus.Gauge
	cacheHits       prometheus.Counter
	cacheMisses     prometheus.Counter
	snapshotLoad    *prometheus.HistogramVec
	acksSubmitted   *prometheus.CounterVec
	acksCompleted   *prometheus.CounterVec
	ackLatency      prometheus.Observer
	acksPending     prometheus.Gauge

	cacheHitCount  uint64
	cacheMissCount uint64
	pendingAcks    int64
}

// NewMetricsService registers the portal collectors on a private registry.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	cacheLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_latency_seconds",
		Help:    "Latency for cache operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheWrite := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "cache_write_seconds",
		Help:    "Latency for cache set operations",
		Buckets: prometheus.DefBuckets,
	})

	cacheHitRatio := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "cache_hit_ratio",
		Help: "Ratio of cache hits to total cache lookups",
	})

	cacheHits := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_hits_total",
		Help: "Total cache hits",
	})

	cacheMisses := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "cache_misses_total",
		Help: "Total cache misses",
	})

	snapshotLoad := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "snapshot_load_duration_seconds",
		Help:    "Duration of academic snapshot loads",
		Buckets: prometheus.DefBuckets,
	}, []string{"source"})

	acksSubmitted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acks_submitted_total",
		Help: "Simulated writes accepted for acknowledgement",
	}, []string{"kind"})

	acksCompleted := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "acks_acknowledged_total",
		Help: "Simulated writes acknowledged",
	}, []string{"kind"})

	ackLatency := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "ack_latency_seconds",
		Help:    "Time from submission to acknowledgement",
		Buckets: []float64{0.25, 0.5, 1, 1.5, 2, 5, 10},
	})

	acksPending := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "acks_pending",
		Help: "Simulated writes awaiting acknowledgement",
	})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, cacheLatency, cacheWrite, cacheHitRatio, cacheHits, cacheMisses,
		snapshotLoad, acksSubmitted, acksCompleted, ackLatency, acksPending, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		cacheLatency:    cacheLatency,
		cacheWrite:      cacheWrite,
		cacheHitRatio:   cacheHitRatio,
		cacheHits:       cacheHits,
		cacheMisses:     cacheMisses,
		snapshotLoad:    snapshotLoad,
		acksSubmitted:   acksSubmitted,
		acksCompleted:   acksCompleted,
		ackLatency:      ackLatency,
		acksPending:     acksPending,
	}
}

// Handler exposes the Prometheus HTTP handler.
func (m *MetricsService) Handler() http.Handler {
	if m == nil {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusServiceUnavailable)
		})
	}
	return m.handler
}

// Registry returns the underlying registry.
func (m *MetricsService) Registry() *prometheus.Registry {
	if m == nil {
		return nil
	}
	return m.registry
}

// ObserveHTTPRequest records request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := fmt.Sprintf("%d", status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
}

// RecordCacheOperation records cache hit/miss metrics and updates hit ratio.
func (m *MetricsService) RecordCacheOperation(hit bool, duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheLatency.Observe(duration.Seconds())
	if hit {
		m.cacheHits.Inc()
		atomic.AddUint64(&m.cacheHitCount, 1)
	} else {
		m.cacheMisses.Inc()
		atomic.AddUint64(&m.cacheMissCount, 1)
	}
	hits := atomic.LoadUint64(&m.cacheHitCount)
	misses := atomic.LoadUint64(&m.cacheMissCount)
	if total := hits + misses; total > 0 {
		m.cacheHitRatio.Set(float64(hits) / float64(total))
	}
}

// ObserveCacheWrite tracks the duration for cache write operations.
func (m *MetricsService) ObserveCacheWrite(duration time.Duration) {
	if m == nil {
		return
	}
	m.cacheWrite.Observe(duration.Seconds())
}

// ObserveSnapshotLoad records how long loading the dataset from source took.
func (m *MetricsService) ObserveSnapshotLoad(source string, duration time.Duration) {
	if m == nil {
		return
	}
	m.snapshotLoad.WithLabelValues(source).Observe(duration.Seconds())
}

// AckSubmitted counts a simulated write entering the acknowledgement queue.
func (m *MetricsService) AckSubmitted(kind models.AckKind) {
	if m == nil {
		return
	}
	m.acksSubmitted.WithLabelValues(string(kind)).Inc()
	m.acksPending.Set(float64(atomic.AddInt64(&m.pendingAcks, 1)))
}

// AckAcknowledged counts a completed acknowledgement and its latency.
func (m *MetricsService) AckAcknowledged(kind models.AckKind, latency time.Duration) {
	if m == nil {
		return
	}
	m.acksCompleted.WithLabelValues(string(kind)).Inc()
	m.ackLatency.Observe(latency.Seconds())
	m.acksPending.Set(float64(atomic.AddInt64(&m.pendingAcks, -1)))
}
