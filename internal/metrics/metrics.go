package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "repopulse"

// Refresh outcome label values.
const (
	OutcomeSuccess    = "success"
	OutcomeEmpty      = "empty"
	OutcomeValidation = "validation_error"
	OutcomeAPIError   = "api_error"
	OutcomeError      = "error"
)

// Collector owns the Prometheus registry and every metric the service
// records. All components share one instance.
type Collector struct {
	registry *prometheus.Registry

	refreshTotal       *prometheus.CounterVec
	refreshDuration    *prometheus.HistogramVec
	lastRefreshCommits prometheus.Gauge

	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

// NewCollector creates a collector backed by the given registry. A nil
// registry gets a fresh private one, keeping the exposition free of
// default-registry noise.
func NewCollector(registry *prometheus.Registry) *Collector {
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	c := &Collector{
		registry: registry,

		refreshTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "dashboard",
				Name:      "refresh_total",
				Help:      "Total number of dashboard refresh cycles by outcome",
			},
			[]string{"outcome"},
		),

		refreshDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "dashboard",
				Name:      "refresh_duration_seconds",
				Help:      "Duration of dashboard refresh cycles in seconds",
				Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),

		lastRefreshCommits: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: "dashboard",
				Name:      "last_refresh_commits",
				Help:      "Number of commit rows produced by the most recent refresh",
			},
		),

		httpRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests served",
			},
			[]string{"method", "path", "status"},
		),

		httpDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "Duration of HTTP requests in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "path"},
		),
	}

	registry.MustRegister(
		c.refreshTotal,
		c.refreshDuration,
		c.lastRefreshCommits,
		c.httpRequests,
		c.httpDuration,
	)

	return c
}

// ObserveRefresh records one completed refresh cycle.
func (c *Collector) ObserveRefresh(outcome string, duration time.Duration, commits int) {
	c.refreshTotal.WithLabelValues(outcome).Inc()
	c.refreshDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	c.lastRefreshCommits.Set(float64(commits))
}

// ObserveRequest records one served HTTP request. Path should be the
// route template, not the raw URL, to keep cardinality bounded.
func (c *Collector) ObserveRequest(method, path string, status int, duration time.Duration) {
	c.httpRequests.WithLabelValues(method, path, strconv.Itoa(status)).Inc()
	c.httpDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// Registry returns the registry backing this collector, for mounting
// the /metrics handler.
func (c *Collector) Registry() *prometheus.Registry {
	return c.registry
}
