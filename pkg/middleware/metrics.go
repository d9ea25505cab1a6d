package middleware

import (
	"net/http"
	"strconv"
	"time"

	"business-buddy/pkg/metrics"
)

// Metrics instruments requests with Prometheus counters and histograms
func Metrics() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

			next.ServeHTTP(rw, r)

			metrics.ObserveHTTPRequest(r.Method, r.URL.Path, strconv.Itoa(rw.statusCode), time.Since(start))
		})
	}
}
