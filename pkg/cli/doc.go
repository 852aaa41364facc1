// Package cli implements the command-line interface for yb_stats, a
// diagnostic snapshot and diff tool for a YugabyteDB cluster.
//
// # Overview
//
// yb_stats is a single binary with four mutually exclusive modes,
// selected by a flag rather than a subcommand:
//
//	yb_stats --snapshot [--snapshot-comment "..."] [--silent]
//	yb_stats --snapshot-diff [--begin N] [--end N]
//	yb_stats --snapshot-list
//	yb_stats --adhoc-diff
//
// --snapshot scrapes every configured host:port pair, persists the
// result to the snapshot store, and prints the allocated snapshot
// number. --snapshot-diff diffs two persisted snapshots, prompting for
// any number not supplied via --begin/--end. --snapshot-list prints the
// store's index. --adhoc-diff scrapes twice in memory, waiting for the
// operator to press return between captures, and never touches the
// store.
//
// # Common flags
//
//	--hosts, --ports         the hosts x ports product the scraper fans out over
//	--parallel               scraper worker-pool size
//	--rate-limit             cap on scrape task starts per second (0 = unlimited)
//	--hostname-match         regex: only print rows matching this hostname:port
//	--stat-name-match        regex: only print rows matching this stat name
//	--table-name-match       regex: only print value/countsum rows matching this table name ("" for non-table rows)
//	--details-enable         disable per-object rollup
//	--gauges-enable          include gauge metrics in the diff
//	--sql-length             presentation-only statement truncation length
//	--output                 json, yaml, or table (default table)
//	--log-level              debug, info, warn, error
//	--store-root             snapshot store root directory
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to:
//   - pkg/orchestrator - scrape/persist/diff pipeline
//   - pkg/scrape, pkg/fetch - HTTP fan-out
//   - pkg/store - snapshot persistence
//   - pkg/serializer - output formatting
//   - pkg/logging - structured logging
package cli
