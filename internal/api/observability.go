package api

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics with bounded cardinality: endpoints are route patterns, never
// raw paths or player names.
var (
	requestLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "asteroids_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "endpoint"})

	requestTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asteroids_http_requests_total",
		Help: "Total HTTP requests",
	}, []string{"method", "endpoint", "status"})

	requestRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "asteroids_http_rejected_total",
		Help: "Requests rejected before reaching a handler",
	}, []string{"reason"}) // Bounded: "rate_limit"

	scoresSubmitted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "asteroids_scores_submitted_total",
		Help: "Scores saved through the API",
	})
)

// metricsMiddleware records latency and status per route pattern.
func metricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		endpoint := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			if p := rctx.RoutePattern(); p != "" {
				endpoint = p
			}
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		RecordRequest(r.Method, endpoint, status, time.Since(start))
	})
}

// RecordRequest records HTTP request metrics
func RecordRequest(method, endpoint string, status int, duration time.Duration) {
	requestLatency.WithLabelValues(method, endpoint).Observe(duration.Seconds())
	requestTotal.WithLabelValues(method, endpoint, strconv.Itoa(status)).Inc()
}

// RecordRejected increments the rejection counter.
func RecordRejected(reason string) {
	requestRejected.WithLabelValues(reason).Inc()
}
