package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	RequestsCreated   *prometheus.CounterVec
	TrustChecksFailed prometheus.Counter
	DecisionsRecorded *prometheus.CounterVec
	RequestsFinalized *prometheus.CounterVec

	NotificationsSent    prometheus.Counter
	NotificationFailures prometheus.Counter

	EndpointLatency *prometheus.HistogramVec
}

// New creates and registers all Prometheus metrics.
func New() *Metrics {
	return &Metrics{
		RequestsCreated: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "remit_requests_created_total",
			Help: "Total number of approval requests created, labeled by kind",
		}, []string{"kind"}),
		TrustChecksFailed: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remit_trust_checks_failed_total",
			Help: "Total number of transfers blocked by the mutual trust check",
		}),
		DecisionsRecorded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "remit_decisions_recorded_total",
			Help: "Total number of approver decisions recorded, labeled by decision",
		}, []string{"decision"}),
		RequestsFinalized: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "remit_requests_finalized_total",
			Help: "Total number of requests reaching a terminal status, labeled by status",
		}, []string{"status"}),
		NotificationsSent: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remit_notifications_sent_total",
			Help: "Total number of push notifications delivered",
		}),
		NotificationFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "remit_notification_failures_total",
			Help: "Total number of push notification deliveries that failed",
		}),
		EndpointLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "remit_endpoint_latency_seconds",
			Help:    "Latency of endpoints in seconds",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
	}
}
