package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "Count of HTTP requests.",
	}, []string{"method", "route", "code"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "Duration of HTTP requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route", "code"})
	httpLoginThrottledTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "login_throttled_total",
		Help:      "Login attempts rejected by the rate limiter.",
	})
)

// HTTP tracks request metrics for the REST surface.
type HTTP struct{}

// NewHTTP creates an HTTP metrics collector.
func NewHTTP() *HTTP {
	return &HTTP{}
}

// Observe records a finished request. route is the matched route pattern.
func (m HTTP) Observe(method, route string, code int, started time.Time) {
	route = orUnknown(route)
	c := strconv.Itoa(code)
	httpRequestsTotal.WithLabelValues(method, route, c).Inc()
	httpRequestDuration.WithLabelValues(method, route, c).Observe(time.Since(started).Seconds())
}

func (m HTTP) ObserveLoginThrottled() {
	httpLoginThrottledTotal.Inc()
}
