package monitoring

import "github.com/prometheus/client_golang/prometheus"

var (
	HttpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"path"},
	)

	HttpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path"},
	)

	ActiveConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "active_connections",
			Help: "Number of active connections",
		},
	)

	PageCacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_cache_lookups_total",
			Help: "Home page cache lookups by result",
		},
		[]string{"result"},
	)

	FollowOperations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "follow_operations_total",
			Help: "Follow graph mutations by operation and outcome",
		},
		[]string{"operation", "outcome"},
	)

	MailDispatches = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mail_dispatches_total",
			Help: "Emails handed to the SMTP sender by outcome",
		},
		[]string{"outcome"},
	)
)

func init() {
	prometheus.MustRegister(
		HttpRequestsTotal,
		HttpRequestDuration,
		ActiveConnections,
		PageCacheLookups,
		FollowOperations,
		MailDispatches,
	)
}
