package bench

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics records benchmark trials in a dedicated Prometheus registry so a
// run can be exported as a node_exporter style text file.
type Metrics struct {
	registry *prometheus.Registry

	trialDuration  *prometheus.HistogramVec
	trials         *prometheus.CounterVec
	elementsSorted *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them in a new registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		trialDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "sortbench_trial_duration_seconds",
			Help:    "Wall time of a single sort call",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 14), //nolint:mnd
		}, []string{"algorithm", "size", "element"}),
		trials: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortbench_trials_total",
			Help: "The total number of trials run, by outcome",
		}, []string{"algorithm", "result"}),
		elementsSorted: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "sortbench_elements_sorted_total",
			Help: "The total number of elements passed through successful trials",
		}, []string{"algorithm"}),
	}
}

// Registry exposes the registry, for gathering or serving.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) observe(c benchCase, elapsed time.Duration, err error) {
	alg := c.algorithm.String()

	m.trialDuration.WithLabelValues(alg, strconv.Itoa(c.size), string(c.element)).Observe(elapsed.Seconds())

	if err != nil {
		m.trials.WithLabelValues(alg, "failed").Inc()

		return
	}

	m.trials.WithLabelValues(alg, "ok").Inc()
	m.elementsSorted.WithLabelValues(alg).Add(float64(c.size))
}

// WriteToTextfile atomically writes every metric to path in the text
// exposition format.
func (m *Metrics) WriteToTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
