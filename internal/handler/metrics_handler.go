package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/aps-console/internal/service"
	"github.com/noah-isme/aps-console/pkg/eventbus"
)

type readinessProbe interface {
	Count() int
	EventStats() eventbus.Stats
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics  *service.MetricsService
	sessions readinessProbe
}

// NewMetricsHandler constructs a metrics handler.
func NewMetricsHandler(metrics *service.MetricsService, sessions *service.SessionService) *MetricsHandler {
	h := &MetricsHandler{metrics: metrics}
	if sessions != nil {
		h.sessions = sessions
	}
	return h
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.Handler().ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness usage.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports readiness with open sessions and aggregate request counters.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.sessions == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "starting"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":   "ready",
		"sessions": h.sessions.Count(),
		"events":   h.sessions.EventStats(),
		"metrics":  h.metrics.Snapshot(),
	})
}
