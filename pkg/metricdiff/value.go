package metricdiff

import (
	"time"

	"github.com/yugabyte/ybstats/pkg/diff"
	"github.com/yugabyte/ybstats/pkg/model"
)

// ValueRow is one diffed Value observation, keyed canonically
// (§4.5) and classified by the statistic-kind table (§1C).
type ValueRow struct {
	Key           model.MetricKey
	Attributes    model.MetricAttributes
	Info          model.StatInfo
	First         int64
	Second        int64
	Delta         int64
	RatePerSecond float64
	ElapsedMs     int64
}

// DiffValues joins two batches of Value observations and computes, per
// row, the delta and rate (counters) or level and change (gauges) per
// §4.7. Second-only rows treat the first side as zero at the imputed
// first-snapshot time; first-only rows are discarded rather than
// reported as a negative delta.
func DiffValues(first, second []model.ValueObservation, firstSnapshotTime time.Time, gaugesEnabled bool) ([]ValueRow, error) {
	joined, err := diff.Join(first, second, func(v model.ValueObservation) model.MetricKey { return v.Key() }, firstSnapshotTime)
	if err != nil {
		return nil, err
	}

	rows := make([]ValueRow, 0, len(joined))
	for key, pair := range joined {
		if pair.Second == nil {
			continue // first-only: subject destroyed, never report a negative delta
		}
		info := model.ClassifyStat(key.Name)

		var firstValue int64
		var firstTime time.Time
		if pair.First != nil {
			firstValue = pair.First.Value
			firstTime = pair.First.Timestamp
		} else {
			firstTime = pair.ImputedFirstTime
		}

		elapsedMs := pair.Second.Timestamp.Sub(firstTime).Milliseconds()
		delta := pair.Second.Value - firstValue

		row := ValueRow{
			Key: key, Attributes: pair.Second.Attributes, Info: info,
			First: firstValue, Second: pair.Second.Value,
			Delta: delta, ElapsedMs: elapsedMs,
		}
		if info.Kind == model.StatKindCounter {
			if delta == 0 {
				continue
			}
			if elapsedMs > 0 {
				row.RatePerSecond = float64(delta) * 1000 / float64(elapsedMs)
			}
		} else if !gaugesEnabled {
			continue
		}
		rows = append(rows, row)
	}
	return rows, nil
}
