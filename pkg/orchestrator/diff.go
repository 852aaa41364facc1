package orchestrator

import (
	"log/slog"
	"time"

	"github.com/yugabyte/ybstats/pkg/entitydiff"
	"github.com/yugabyte/ybstats/pkg/metricdiff"
	"github.com/yugabyte/ybstats/pkg/model"
)

// Options controls presentation-affecting diff behavior (§4.7, §6):
// whether per-object metrics are rolled up, whether gauges are included,
// and the three print-time regex filters.
type Options struct {
	DetailsEnabled bool
	GaugesEnabled  bool
	Filters        metricdiff.Filters
}

// Result is the complete diff output across every kind (§4.7, §4.8),
// ready for a serializer to print.
type Result struct {
	Values       []metricdiff.ValueRow
	CountSums    []metricdiff.CountSumRow
	CountSumRows []metricdiff.CountSumRowsRow

	Keyspaces []entitydiff.KeyspaceRow
	Tables    []entitydiff.Row[model.Table]
	Tablets   []entitydiff.Row[model.Tablet]
	Replicas  []entitydiff.Row[entitydiff.ReplicaEntry]

	Masters       []entitydiff.Row[model.Master]
	TabletServers []entitydiff.Row[model.TabletServer]
	Versions      []entitydiff.Row[model.VersionLine]
	Varz          []entitydiff.Row[model.VarzLine]
	Health        []entitydiff.Row[model.HealthItem]
	Clocks        []entitydiff.Row[model.Clocks]
}

// Diff builds the complete diff between two captures per §4.6-§4.8,
// applying rollup and filters to the metric kinds.
func Diff(first, second Capture, firstSnapshotTime time.Time, opts Options) (Result, error) {
	opts.Filters = opts.Filters.EnsureDefaults()

	var result Result
	var err error

	if result.Values, err = diffValues(first, second, firstSnapshotTime, opts); err != nil {
		return Result{}, err
	}
	if result.CountSums, err = diffCountSums(first, second, firstSnapshotTime, opts); err != nil {
		return Result{}, err
	}
	if result.CountSumRows, err = diffCountSumRows(first, second, firstSnapshotTime, opts); err != nil {
		return Result{}, err
	}

	if first.MasterLeaderHostnamePort == "" || second.MasterLeaderHostnamePort == "" {
		slog.Debug("orchestrator: master leader not found in one or both captures, skipping entity diff")
	} else {
		firstEntities := model.Entities{Keyspaces: first.Keyspaces, Tables: first.Tables, Tablets: first.Tablets}
		secondEntities := model.Entities{Keyspaces: second.Keyspaces, Tables: second.Tables, Tablets: second.Tablets}

		if result.Keyspaces, err = entitydiff.DiffKeyspaces(firstEntities, secondEntities, firstSnapshotTime); err != nil {
			return Result{}, err
		}
		if result.Tables, err = entitydiff.DiffTables(first.Tables, second.Tables, firstSnapshotTime); err != nil {
			return Result{}, err
		}
		if result.Tablets, err = entitydiff.DiffTablets(first.Tablets, second.Tablets, firstSnapshotTime); err != nil {
			return Result{}, err
		}
		if result.Replicas, err = entitydiff.DiffReplicas(first.Tablets, second.Tablets, firstSnapshotTime); err != nil {
			return Result{}, err
		}
	}
	if result.Masters, err = entitydiff.DiffMasters(first.Masters, second.Masters, firstSnapshotTime); err != nil {
		return Result{}, err
	}
	if result.TabletServers, err = entitydiff.DiffTabletServers(first.TabletServers, second.TabletServers, firstSnapshotTime); err != nil {
		return Result{}, err
	}
	if result.Versions, err = entitydiff.DiffVersions(first.Versions, second.Versions, firstSnapshotTime); err != nil {
		return Result{}, err
	}
	if result.Varz, err = entitydiff.DiffVarz(first.Varz, second.Varz, firstSnapshotTime); err != nil {
		return Result{}, err
	}
	if result.Health, err = entitydiff.DiffHealth(first.Health, second.Health, firstSnapshotTime); err != nil {
		return Result{}, err
	}
	if result.Clocks, err = entitydiff.DiffClocks(first.Clocks, second.Clocks, firstSnapshotTime); err != nil {
		return Result{}, err
	}

	return result, nil
}

func diffValues(first, second Capture, firstSnapshotTime time.Time, opts Options) ([]metricdiff.ValueRow, error) {
	rows, err := metricdiff.DiffValues(first.Values, second.Values, firstSnapshotTime, opts.GaugesEnabled)
	if err != nil {
		return nil, err
	}
	if !opts.DetailsEnabled {
		if rows, err = metricdiff.RollupValues(rows); err != nil {
			return nil, err
		}
	}
	rows = filterValueRows(rows, opts.Filters)
	metricdiff.SortValueRows(rows)
	return rows, nil
}

func diffCountSums(first, second Capture, firstSnapshotTime time.Time, opts Options) ([]metricdiff.CountSumRow, error) {
	rows, err := metricdiff.DiffCountSums(first.CountSums, second.CountSums, firstSnapshotTime)
	if err != nil {
		return nil, err
	}
	if !opts.DetailsEnabled {
		rows = metricdiff.RollupCountSums(rows)
	}
	rows = filterCountSumRows(rows, opts.Filters)
	metricdiff.SortCountSumRows(rows)
	return rows, nil
}

func diffCountSumRows(first, second Capture, firstSnapshotTime time.Time, opts Options) ([]metricdiff.CountSumRowsRow, error) {
	rows, err := metricdiff.DiffCountSumRows(first.CountSumRows, second.CountSumRows, firstSnapshotTime)
	if err != nil {
		return nil, err
	}
	rows = filterCountSumRowsRows(rows, opts.Filters)
	metricdiff.SortCountSumRowsRows(rows)
	return rows, nil
}

func filterCountSumRowsRows(rows []metricdiff.CountSumRowsRow, filters metricdiff.Filters) []metricdiff.CountSumRowsRow {
	out := rows[:0]
	for _, r := range rows {
		if filters.MatchCountSumRows(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterValueRows(rows []metricdiff.ValueRow, filters metricdiff.Filters) []metricdiff.ValueRow {
	out := rows[:0]
	for _, r := range rows {
		if filters.MatchValue(r) {
			out = append(out, r)
		}
	}
	return out
}

func filterCountSumRows(rows []metricdiff.CountSumRow, filters metricdiff.Filters) []metricdiff.CountSumRow {
	out := rows[:0]
	for _, r := range rows {
		if filters.MatchCountSum(r) {
			out = append(out, r)
		}
	}
	return out
}
