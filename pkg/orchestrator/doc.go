// Package orchestrator wires the scraper, snapshot store, and diff
// engines into the three top-level operations a caller drives (§4.9):
// perform_snapshot (capture and persist), snapshot_diff (read two
// persisted snapshots and diff), and adhoc_diff (in-memory before/after
// diff that never touches the store). Each run is stamped with a
// google/uuid run id carried through its slog logger and reported to
// pkg/telemetry, with each data kind scraped by its own errgroup task.
package orchestrator
