package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "businessbuddy_http_requests_total",
		Help: "Total number of HTTP requests",
	}, []string{"method", "path", "status"})

	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "businessbuddy_http_request_duration_seconds",
		Help:    "Duration of HTTP requests",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path", "status"})

	registrationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "businessbuddy_registrations_total",
		Help: "Count of registration attempts by result",
	}, []string{"result"})

	loginsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "businessbuddy_logins_total",
		Help: "Count of login attempts by result",
	}, []string{"result"})

	bookingsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "businessbuddy_bookings_total",
		Help: "Count of mentoring booking operations by operation and result",
	}, []string{"operation", "result"})

	chatStreamsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "businessbuddy_chat_streams_total",
		Help: "Count of chat completion streams by result",
	}, []string{"result"})
)

// ObserveHTTPRequest records an HTTP request metric
func ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	httpRequestDuration.WithLabelValues(method, path, status).Observe(duration.Seconds())
}

// CountRegistration records a registration attempt outcome
func CountRegistration(result string) {
	registrationsTotal.WithLabelValues(result).Inc()
}

// CountLogin records a login attempt outcome
func CountLogin(result string) {
	loginsTotal.WithLabelValues(result).Inc()
}

// CountBooking records a booking operation outcome
func CountBooking(operation, result string) {
	bookingsTotal.WithLabelValues(operation, result).Inc()
}

// CountChatStream records a chat stream outcome
func CountChatStream(result string) {
	chatStreamsTotal.WithLabelValues(result).Inc()
}
