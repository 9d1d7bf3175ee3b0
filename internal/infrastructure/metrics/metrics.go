package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Metrics holds the service collectors on a private registry
type Metrics struct {
	Registry *prometheus.Registry

	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	NotificationsSent    prometheus.Counter
	NotificationsFailed  prometheus.Counter
	NotificationsDropped prometheus.Counter
	QueueDepth           prometheus.Gauge
}

// New creates and registers all collectors
func New() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		Registry: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airdrop",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status.",
		}, []string{"method", "route", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "airdrop",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		NotificationsSent: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "airdrop",
			Name:      "notifications_sent_total",
			Help:      "Telegram messages delivered.",
		}),
		NotificationsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "airdrop",
			Name:      "notifications_failed_total",
			Help:      "Telegram messages that failed to deliver.",
		}),
		NotificationsDropped: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "airdrop",
			Name:      "notifications_dropped_total",
			Help:      "Telegram messages dropped because the queue was full.",
		}),
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "airdrop",
			Name:      "notification_queue_depth",
			Help:      "Messages waiting in the delivery queue.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.HTTPRequests,
		m.HTTPDuration,
		m.NotificationsSent,
		m.NotificationsFailed,
		m.NotificationsDropped,
		m.QueueDepth,
	)
	return m
}
