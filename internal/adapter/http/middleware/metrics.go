package middleware

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "path"},
	)

	httpRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_requests_in_flight",
			Help: "Number of HTTP requests currently being processed",
		},
	)
)

// Metrics middleware records HTTP metrics.
func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		httpRequestsInFlight.Inc()
		defer httpRequestsInFlight.Dec()

		wrapped := &metricsRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(wrapped, r)

		duration := time.Since(start).Seconds()
		path := normalizePath(r.URL.Path)

		httpRequestsTotal.WithLabelValues(r.Method, path, strconv.Itoa(wrapped.statusCode)).Inc()
		httpRequestDuration.WithLabelValues(r.Method, path).Observe(duration)
	})
}

type metricsRecorder struct {
	http.ResponseWriter

	statusCode int
}

func (r *metricsRecorder) WriteHeader(code int) {
	r.statusCode = code
	r.ResponseWriter.WriteHeader(code)
}

// normalizePath collapses path parameters to keep label cardinality low.
// /api/accounts/42/balance -> /api/accounts/:id/balance
func normalizePath(path string) string {
	switch {
	case strings.HasPrefix(path, "/api/accounts/by-name/"):
		return "/api/accounts/by-name/:name"

	case strings.HasPrefix(path, "/api/accounts/"):
		rest := path[len("/api/accounts/"):]
		if rest == "" || rest == "transfer" {
			return path
		}
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			return "/api/accounts/:id" + rest[idx:]
		}
		return "/api/accounts/:id"

	case strings.HasPrefix(path, "/api/banks/"):
		rest := path[len("/api/banks/"):]
		if rest == "" {
			return path
		}
		if idx := strings.IndexByte(rest, '/'); idx >= 0 {
			return "/api/banks/:id" + rest[idx:]
		}
		return "/api/banks/:id"
	}

	return path
}
