package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "HTTP requests by route, method and status."},
		[]string{"path", "method", "status"},
	)
	HTTPLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{Name: "http_request_duration_seconds", Help: "HTTP request latency in seconds.", Buckets: prometheus.DefBuckets},
		[]string{"path", "method"},
	)
	LeadsCreated = prometheus.NewCounter(prometheus.CounterOpts{Name: "leads_created_total", Help: "Leads stored."})
	StoreErrors  = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "lead_store_errors_total", Help: "Lead store failures by kind."},
		[]string{"kind"},
	)
	LeadsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "leads_rejected_total", Help: "Lead writes refused for client-correctable reasons."},
		[]string{"reason"},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequests, HTTPLatency, LeadsCreated, StoreErrors, LeadsRejected)
}

// Handler records request count and latency per route template.
func Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPLatency.WithLabelValues(path, c.Request.Method).Observe(time.Since(start).Seconds())
		HTTPRequests.WithLabelValues(path, c.Request.Method, strconv.Itoa(c.Writer.Status())).Inc()
	}
}

func Exposer() gin.HandlerFunc { return gin.WrapH(promhttp.Handler()) }
