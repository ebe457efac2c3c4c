package service

import (
	"net/http"
	"runtime"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/aps-console/pkg/apsclient"
)

// MetricsSnapshot is a cheap summary of the console's counters.
type MetricsSnapshot struct {
	RequestsTotal            uint64    `json:"requestsTotal"`
	AverageRequestDurationMs float64   `json:"averageRequestDurationMs"`
	BackendCallsTotal        uint64    `json:"backendCallsTotal"`
	BackendErrorsTotal       uint64    `json:"backendErrorsTotal"`
	AverageBackendDurationMs float64   `json:"averageBackendDurationMs"`
	ActiveSessions           int64     `json:"activeSessions"`
	Goroutines               int       `json:"goroutines"`
	GeneratedAt              time.Time `json:"generatedAt"`
}

// MetricsService encapsulates Prometheus instrumentation and provides lightweight snapshots.
type MetricsService struct {
	registry        *prometheus.Registry
	handler         http.Handler
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	backendDuration *prometheus.HistogramVec
	backendTotal    *prometheus.CounterVec
	sessions        prometheus.Gauge
	notifications   *prometheus.CounterVec

	requestCount         uint64
	requestDurationTotal uint64
	backendCount         uint64
	backendErrors        uint64
	backendDurationTotal uint64
	activeSessions       int64
}

// NewMetricsService registers core Prometheus collectors.
func NewMetricsService() *MetricsService {
	registry := prometheus.NewRegistry()

	requestDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "Duration of console HTTP requests in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	requestTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Total number of console HTTP requests",
	}, []string{"method", "path", "status"})

	backendDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "aps_backend_request_duration_seconds",
		Help:    "Duration of calls to the APS backend",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "status"})

	backendTotal := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aps_backend_requests_total",
		Help: "Total number of calls to the APS backend",
	}, []string{"operation", "status"})

	sessions := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "aps_console_active_sessions",
		Help: "Number of open console sessions",
	})

	notifications := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "aps_console_notifications_total",
		Help: "Notifications shown to operators by type",
	}, []string{"type"})

	goroutines := prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "goroutines_total",
		Help: "Total number of goroutines",
	}, func() float64 {
		return float64(runtime.NumGoroutine())
	})

	registry.MustRegister(requestDuration, requestTotal, backendDuration, backendTotal, sessions, notifications, goroutines)

	return &MetricsService{
		registry:        registry,
		handler:         promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		requestDuration: requestDuration,
		requestTotal:    requestTotal,
		backendDuration: backendDuration,
		backendTotal:    backendTotal,
		sessions:        sessions,
		notifications:   notifications,
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

// ObserveHTTPRequest records console request metrics.
func (m *MetricsService) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	labelStatus := strconv.Itoa(status)
	m.requestDuration.WithLabelValues(method, path, labelStatus).Observe(duration.Seconds())
	m.requestTotal.WithLabelValues(method, path, labelStatus).Inc()
	atomic.AddUint64(&m.requestCount, 1)
	atomic.AddUint64(&m.requestDurationTotal, uint64(duration.Nanoseconds()))
}

// ObserveBackendCall records one APS backend round-trip. It matches apsclient.Hook.
func (m *MetricsService) ObserveBackendCall(call apsclient.Call) {
	if m == nil {
		return
	}
	status := strconv.Itoa(call.Status)
	if call.Status == 0 {
		status = "error"
	}
	m.backendDuration.WithLabelValues(call.Operation, status).Observe(call.Duration.Seconds())
	m.backendTotal.WithLabelValues(call.Operation, status).Inc()
	atomic.AddUint64(&m.backendCount, 1)
	atomic.AddUint64(&m.backendDurationTotal, uint64(call.Duration.Nanoseconds()))
	if call.Err != nil {
		atomic.AddUint64(&m.backendErrors, 1)
	}
}

// SessionOpened bumps the active sessions gauge.
func (m *MetricsService) SessionOpened() {
	if m == nil {
		return
	}
	m.sessions.Inc()
	atomic.AddInt64(&m.activeSessions, 1)
}

// SessionClosed lowers the active sessions gauge.
func (m *MetricsService) SessionClosed() {
	if m == nil {
		return
	}
	m.sessions.Dec()
	atomic.AddInt64(&m.activeSessions, -1)
}

// ObserveNotification counts a notification by type.
func (m *MetricsService) ObserveNotification(kind string) {
	if m == nil {
		return
	}
	m.notifications.WithLabelValues(kind).Inc()
}

// Snapshot returns aggregated counters.
func (m *MetricsService) Snapshot() MetricsSnapshot {
	if m == nil {
		return MetricsSnapshot{}
	}
	requests := atomic.LoadUint64(&m.requestCount)
	reqDuration := atomic.LoadUint64(&m.requestDurationTotal)
	calls := atomic.LoadUint64(&m.backendCount)
	callDuration := atomic.LoadUint64(&m.backendDurationTotal)

	var avgRequestMs float64
	if requests > 0 {
		avgRequestMs = float64(reqDuration) / float64(requests) / float64(time.Millisecond)
	}
	var avgBackendMs float64
	if calls > 0 {
		avgBackendMs = float64(callDuration) / float64(calls) / float64(time.Millisecond)
	}

	return MetricsSnapshot{
		RequestsTotal:            requests,
		AverageRequestDurationMs: avgRequestMs,
		BackendCallsTotal:        calls,
		BackendErrorsTotal:       atomic.LoadUint64(&m.backendErrors),
		AverageBackendDurationMs: avgBackendMs,
		ActiveSessions:           atomic.LoadInt64(&m.activeSessions),
		Goroutines:               runtime.NumGoroutine(),
		GeneratedAt:              time.Now().UTC(),
	}
}
