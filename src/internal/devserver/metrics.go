package devserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/VictoriaMetrics/metrics"
	"github.com/go-chi/chi/v5"
)

// MeterRequests counts requests and their durations per route pattern and
// status in set.
func MeterRequests(set *metrics.Set) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			path := r.URL.Path
			if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
				path = rctx.RoutePattern()
			}
			labels := fmt.Sprintf(`{method=%q,path=%q,status="%d"}`, r.Method, path, wrapped.statusCode)
			set.GetOrCreateCounter(`http_requests_total` + labels).Inc()
			set.GetOrCreateHistogram(`http_request_duration_seconds` + labels).UpdateDuration(start)
		})
	}
}

// metricsHandler writes set and the process metrics in Prometheus text format.
func metricsHandler(set *metrics.Set) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		set.WritePrometheus(w)
		metrics.WriteProcessMetrics(w)
	}
}
