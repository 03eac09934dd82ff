package metric

import (
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "velocity"

// Load results.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Registry holds the configuration check metrics.
type Registry struct {
	registry *prometheus.Registry

	LoadsTotal      *prometheus.CounterVec
	LoadDuration    prometheus.Histogram
	Valid           prometheus.Gauge
	Servers         prometheus.Gauge
	FallbackServers prometheus.Gauge
	Issues          *prometheus.GaugeVec
}

var (
	global     *Registry
	globalOnce sync.Once
)

// Global returns the process wide registry.
func Global() *Registry {
	globalOnce.Do(func() {
		global = NewRegistry()
	})
	return global
}

// NewRegistry creates a registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		LoadsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "loads_total",
			Help:      "Configuration documents read, by result.",
		}, []string{"result"}),

		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "load_duration_seconds",
			Help:      "Time spent reading a configuration document.",
			Buckets:   []float64{.0005, .001, .0025, .005, .01, .025, .05, .1},
		}),

		Valid: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "valid",
			Help:      "1 if the last checked configuration passed validation.",
		}),

		Servers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "servers",
			Help:      "Backend servers in the last checked configuration.",
		}),

		FallbackServers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "fallback_servers",
			Help:      "Entries in the fallback order of the last checked configuration.",
		}),

		Issues: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "config",
			Name:      "validation_issues",
			Help:      "Validation errors in the last checked configuration, by check.",
		}, []string{"check"}),
	}

	r.registry.MustRegister(
		r.LoadsTotal,
		r.LoadDuration,
		r.Valid,
		r.Servers,
		r.FallbackServers,
		r.Issues,
	)

	return r
}

// Gatherer returns the underlying prometheus registry.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// RecordLoad counts a read attempt and how long it took.
func (r *Registry) RecordLoad(err error, elapsed time.Duration) {
	result := ResultOK
	if err != nil {
		result = ResultError
	}
	r.LoadsTotal.WithLabelValues(result).Inc()
	r.LoadDuration.Observe(elapsed.Seconds())
}

// Check is the outcome of validating one configuration.
type Check struct {
	Valid           bool
	Servers         int
	FallbackServers int
	// Issues counts validation errors per check name.
	Issues map[string]int
}

// RecordCheck replaces the gauges with the outcome of a validation.
func (r *Registry) RecordCheck(c Check) {
	if c.Valid {
		r.Valid.Set(1)
	} else {
		r.Valid.Set(0)
	}
	r.Servers.Set(float64(c.Servers))
	r.FallbackServers.Set(float64(c.FallbackServers))

	r.Issues.Reset()
	for check, n := range c.Issues {
		r.Issues.WithLabelValues(check).Set(float64(n))
	}
}

// WriteTextfile writes every metric to path in the text exposition format.
// The file is written to a temporary name and renamed into place.
func (r *Registry) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
