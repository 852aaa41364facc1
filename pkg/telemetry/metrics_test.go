package telemetry

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestObserveScrapeTask_RecordsSample(t *testing.T) {
	ObserveScrapeTask("metrics", 250*time.Millisecond)
	if !metricHasSamples(t, "ybstats_scrape_task_duration_seconds") {
		t.Fatal("expected scrape task duration histogram to have a sample")
	}
}

func TestObserveOrchestratorRun_IncrementsCounterAndHistogram(t *testing.T) {
	ObserveOrchestratorRun("snapshot", "success", time.Second)
	if !metricHasSamples(t, "ybstats_orchestrator_run_total") {
		t.Fatal("expected orchestrator run counter to have a sample")
	}
	if !metricHasSamples(t, "ybstats_orchestrator_run_duration_seconds") {
		t.Fatal("expected orchestrator run duration histogram to have a sample")
	}
}

func TestSetRecordsCaptured_SetsGauge(t *testing.T) {
	SetRecordsCaptured("keyspaces", 7)
	if !metricHasSamples(t, "ybstats_records_captured") {
		t.Fatal("expected records captured gauge to have a sample")
	}
}

func metricHasSamples(t *testing.T, name string) bool {
	t.Helper()
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		t.Fatalf("Gather: %v", err)
	}
	for _, f := range families {
		if f.GetName() == name {
			return len(f.GetMetric()) > 0
		}
	}
	return false
}
