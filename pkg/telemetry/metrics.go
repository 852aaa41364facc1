package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ScrapeTaskDuration times one kind's whole scrape.ReadAll fan-out
	// across every target.
	ScrapeTaskDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ybstats_scrape_task_duration_seconds",
			Help:    "Time taken to scrape and decode one data kind across every target",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		},
		[]string{"kind"},
	)

	// OrchestratorRunTotal counts perform_snapshot/snapshot_diff/adhoc_diff
	// runs by operation and outcome.
	OrchestratorRunTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ybstats_orchestrator_run_total",
			Help: "Total number of orchestrator operations by outcome",
		},
		[]string{"operation", "status"}, // operation: perform_snapshot|snapshot_diff|adhoc_diff; status: ok|error
	)

	// OrchestratorRunDuration times a complete orchestrator run.
	OrchestratorRunDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ybstats_orchestrator_run_duration_seconds",
			Help:    "Time taken by a complete orchestrator operation",
			Buckets: []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
		[]string{"operation"},
	)

	// RecordsCaptured is the number of records captured for a kind in the
	// most recent scrape, by kind.
	RecordsCaptured = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "ybstats_records_captured",
			Help: "Number of records captured for a data kind in the most recent scrape",
		},
		[]string{"kind"},
	)
)

// ObserveScrapeTask records one scrape task's duration against its kind.
func ObserveScrapeTask(kind string, d time.Duration) {
	ScrapeTaskDuration.WithLabelValues(kind).Observe(d.Seconds())
}

// ObserveOrchestratorRun records one orchestrator run's outcome and
// duration against its operation name.
func ObserveOrchestratorRun(operation, status string, d time.Duration) {
	OrchestratorRunTotal.WithLabelValues(operation, status).Inc()
	OrchestratorRunDuration.WithLabelValues(operation).Observe(d.Seconds())
}

// SetRecordsCaptured records how many rows a kind produced in the most
// recent scrape.
func SetRecordsCaptured(kind string, n int) {
	RecordsCaptured.WithLabelValues(kind).Set(float64(n))
}
