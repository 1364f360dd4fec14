// Package metrics provides Prometheus metrics for the token gateway.
// Metrics are organized by domain: HTTP requests and token issuance.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	namespace = "meetgate"
)

// Issuance outcomes used as the "result" label of TokensIssuedTotal.
const (
	ResultIssued   = "issued"
	ResultFallback = "fallback"
	ResultFailed   = "failed"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, route, and status code",
		},
		[]string{"method", "route", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"method", "route"},
	)

	// Token metrics - track issuance by role, path and outcome
	TokensIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tokens",
			Name:      "issued_total",
			Help:      "Total number of meeting token requests by role, mode (guest or credentials), and result",
		},
		[]string{"role", "mode", "result"},
	)

	CredentialFailuresTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "auth",
			Name:      "credential_failures_total",
			Help:      "Total number of rejected email/password pairs",
		},
	)

	TokensVerifiedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "tokens",
			Name:      "verified_total",
			Help:      "Total number of token verification requests by result",
		},
		[]string{"result"},
	)
)

// RecordIssuance counts one token request.
func RecordIssuance(role, mode, result string) {
	TokensIssuedTotal.WithLabelValues(role, mode, result).Inc()
}

// RecordCredentialFailure counts one rejected credential pair.
func RecordCredentialFailure() {
	CredentialFailuresTotal.Inc()
}

// RecordVerification counts one token verification.
func RecordVerification(valid bool) {
	result := "invalid"
	if valid {
		result = "valid"
	}
	TokensVerifiedTotal.WithLabelValues(result).Inc()
}

// Middleware records request counts and latency labeled by the chi route pattern,
// which keeps label cardinality bounded.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		route := "unmatched"
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		HTTPRequestsTotal.WithLabelValues(r.Method, route, strconv.Itoa(status)).Inc()
		HTTPRequestDuration.WithLabelValues(r.Method, route).Observe(time.Since(start).Seconds())
	})
}

// Handler returns the Prometheus exposition handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
