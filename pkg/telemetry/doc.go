// Package telemetry is the self-instrumentation layer (§4.14): a
// histogram for scrape-task duration, a counter for orchestrator run
// outcomes by status, and a gauge for records captured per kind, all
// exposed via promauto, the way the rest of this codebase instruments
// concurrent work.
package telemetry
