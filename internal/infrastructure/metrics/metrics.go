package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Portal-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10},
		},
		[]string{"method", "endpoint", "status"},
	)

	// Identity resolutions by winning source
	ResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "identity_resolutions_total",
			Help:      "Identity resolutions by winning source and cache outcome",
		},
		[]string{"source", "cache"},
	)

	// Claims synchronization
	ClaimSyncTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "claim_sync_total",
			Help:      "Claims synchronization outcomes",
		},
		[]string{"outcome"},
	)

	// Impersonated requests
	ImpersonatedRequestsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "impersonated_requests_total",
			Help:      "Requests served under an active view-as directive",
		},
	)

	// Authorization denials
	AuthorizationDenialsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "authorization_denials_total",
			Help:      "Capability authorization denials by reason",
		},
		[]string{"capability", "reason"},
	)

	// Auth requests
	AuthRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "auth_requests_total",
			Help:      "Total authentication requests",
		},
		[]string{"status"},
	)

	// Notification sweep
	NotificationsPrunedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "portal",
			Subsystem: "portal_api",
			Name:      "notifications_pruned_total",
			Help:      "Expired notifications removed by the retention sweep",
		},
	)
)

// RecordRequest records an HTTP request with duration
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint, status).Observe(durationSec)
}

// RecordResolution records an identity resolution by source
func RecordResolution(source string, fromCache bool) {
	cache := "miss"
	if fromCache {
		cache = "hit"
	}
	ResolutionsTotal.WithLabelValues(source, cache).Inc()
}

// RecordClaimSync records a claims synchronization outcome
func RecordClaimSync(synced bool) {
	outcome := "noop"
	if synced {
		outcome = "synced"
	}
	ClaimSyncTotal.WithLabelValues(outcome).Inc()
}

// RecordDenial records an authorization denial
func RecordDenial(capability, reason string) {
	if reason == "" {
		reason = "unknown"
	}
	AuthorizationDenialsTotal.WithLabelValues(capability, reason).Inc()
}

// RecordAuthRequest records an authentication attempt outcome
func RecordAuthRequest(status string) {
	AuthRequestsTotal.WithLabelValues(status).Inc()
}
