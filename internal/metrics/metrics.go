package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

var (
	registry = prometheus.NewRegistry()

	filesRemoved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deployjanitor",
			Name:      "files_removed_total",
			Help:      "Files and directories removed, labeled by category",
		},
		[]string{"category"},
	)

	bytesFreed = prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "deployjanitor",
			Name:      "bytes_freed_total",
			Help:      "Total bytes freed across all cleanup steps",
		},
	)

	stepFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "deployjanitor",
			Name:      "step_failures_total",
			Help:      "Cleanup steps that reported an error, by step name",
		},
		[]string{"step"},
	)

	runDuration = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "deployjanitor",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of the last cleanup run",
		},
	)
)

// Init registers collectors.
func Init() {
	registry.MustRegister(filesRemoved, bytesFreed, stepFailures, runDuration)
}

func IncRemoved(category string) { filesRemoved.WithLabelValues(category).Inc() }

func AddBytesFreed(n int64) {
	if n > 0 {
		bytesFreed.Add(float64(n))
	}
}

func IncStepFailure(step string) { stepFailures.WithLabelValues(step).Inc() }

func ObserveRunDuration(d time.Duration) { runDuration.Set(d.Seconds()) }

// Push sends the collected metrics to a Prometheus Pushgateway. A one-shot
// job has no /metrics endpoint to scrape, so the gateway is the only way
// the counters survive the process. Best effort.
func Push(gatewayURL, job string) error {
	if gatewayURL == "" {
		return nil
	}
	return push.New(gatewayURL, job).Gatherer(registry).Add()
}
