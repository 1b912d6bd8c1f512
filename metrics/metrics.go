package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// DepositsTotal tracks the number of successful deposits.
	DepositsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timevault_deposits_total",
		Help: "Total number of successful deposits",
	})
	// ClaimsTotal tracks the number of successful claims.
	ClaimsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timevault_claims_total",
		Help: "Total number of successful claims",
	})
	// ActiveLocks reports the number of locks currently held.
	ActiveLocks = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "timevault_active_locks",
		Help: "Current number of active locks",
	})
	// FeedPublishTotal tracks the number of claim events published to the feed.
	FeedPublishTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "timevault_feed_publish_total",
		Help: "Total number of claim events published to the feed",
	})
)

// NewRegistry creates a new Prometheus registry.
func NewRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

// RegisterCoreMetrics registers timevault core metrics on the provided registry.
func RegisterCoreMetrics(reg prometheus.Registerer) {
	reg.MustRegister(DepositsTotal, ClaimsTotal, ActiveLocks, FeedPublishTotal)
}
