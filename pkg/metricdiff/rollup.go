package metricdiff

import (
	"github.com/yugabyte/ybstats/pkg/model"
)

func rollupKey(k model.MetricKey) model.MetricKey {
	if k.MetricType.IsPerObject() {
		k.IDOrDash = "-"
	}
	return k
}

// RollupValues collapses per-object value rows to one row per
// (hostname_port, metric_type, "-", name) when details are disabled
// (§4.7), summing first_value/second_value. Rows whose metric_type isn't
// per-object pass through unchanged since they're already "-"-keyed.
func RollupValues(rows []ValueRow) ([]ValueRow, error) {
	rolled := make(map[model.MetricKey]ValueRow, len(rows))
	for _, r := range rows {
		key := rollupKey(r.Key)
		existing, ok := rolled[key]
		if !ok {
			r.Key = key
			rolled[key] = r
			continue
		}
		existing.First += r.First
		existing.Second += r.Second
		existing.Delta += r.Delta
		rolled[key] = existing
	}
	return flattenValueRows(rolled), nil
}

func flattenValueRows(m map[model.MetricKey]ValueRow) []ValueRow {
	out := make([]ValueRow, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}

// RollupCountSums collapses per-object CountSum rows the same way,
// summing count_delta and sum_delta. Percentiles, min, max,
// and mean cannot be merged soundly and are dropped from rolled-up rows
// (§4.7).
func RollupCountSums(rows []CountSumRow) []CountSumRow {
	rolled := make(map[model.MetricKey]CountSumRow, len(rows))
	for _, r := range rows {
		key := rollupKey(r.Key)
		existing, ok := rolled[key]
		if !ok {
			r.Key = key
			rolled[key] = r
			continue
		}
		existing.CountDelta += r.CountDelta
		existing.SumDelta += r.SumDelta
		rolled[key] = existing
	}
	out := make([]CountSumRow, 0, len(rolled))
	for _, v := range rolled {
		if v.CountDelta > 0 {
			v.Avg = float64(v.SumDelta) / float64(v.CountDelta)
		}
		out = append(out, v)
	}
	return out
}
