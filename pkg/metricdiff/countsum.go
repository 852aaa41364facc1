package metricdiff

import (
	"time"

	"github.com/yugabyte/ybstats/pkg/diff"
	"github.com/yugabyte/ybstats/pkg/model"
)

// CountSumRow is one diffed CountSum observation (§4.7): count/sum
// deltas, rate, and the per-call average over the interval.
type CountSumRow struct {
	Key                model.MetricKey
	Attributes         model.MetricAttributes
	CountDelta         uint64
	CountRatePerSecond float64
	Avg                float64
	SumDelta           uint64
	ElapsedMs          int64
}

// DiffCountSums joins two batches of CountSum observations and computes
// count_delta, count_rate, avg, and sum_delta per §4.7. Rows with
// count_delta == 0 are skipped; first-only rows are discarded.
func DiffCountSums(first, second []model.CountSumObservation, firstSnapshotTime time.Time) ([]CountSumRow, error) {
	joined, err := diff.Join(first, second, func(v model.CountSumObservation) model.MetricKey { return v.Key() }, firstSnapshotTime)
	if err != nil {
		return nil, err
	}

	rows := make([]CountSumRow, 0, len(joined))
	for key, pair := range joined {
		if pair.Second == nil {
			continue
		}

		var firstCount, firstSum uint64
		var firstTime time.Time
		if pair.First != nil {
			firstCount = pair.First.TotalCount
			firstSum = pair.First.TotalSum
			firstTime = pair.First.Timestamp
		} else {
			firstTime = pair.ImputedFirstTime
		}

		countDelta := pair.Second.TotalCount - firstCount
		if countDelta == 0 {
			continue
		}
		sumDelta := pair.Second.TotalSum - firstSum
		elapsedMs := pair.Second.Timestamp.Sub(firstTime).Milliseconds()

		row := CountSumRow{
			Key: key, Attributes: pair.Second.Attributes, CountDelta: countDelta, SumDelta: sumDelta, ElapsedMs: elapsedMs,
			Avg: float64(sumDelta) / float64(countDelta),
		}
		if elapsedMs > 0 {
			row.CountRatePerSecond = float64(countDelta) * 1000 / float64(elapsedMs)
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// CountSumRowsRow is one diffed CountSumRows observation (§4.7):
// statement-shaped metrics report latency in microseconds and a row
// count alongside the call count.
type CountSumRowsRow struct {
	Key          model.CountSumRowsKey
	CountDelta   uint64
	AvgMsPerCall float64
	TotalMs      float64
	RowsPerCall  float64
	RowsDelta    uint64
}

// DiffCountSumRows joins two batches of CountSumRows observations and
// computes per-call latency/row averages plus totals over the interval
// (§4.7). Rows with count_delta == 0 are skipped; first-only rows are
// discarded.
func DiffCountSumRows(first, second []model.CountSumRowsObservation, firstSnapshotTime time.Time) ([]CountSumRowsRow, error) {
	joined, err := diff.Join(first, second, func(v model.CountSumRowsObservation) model.CountSumRowsKey { return v.Key() }, firstSnapshotTime)
	if err != nil {
		return nil, err
	}

	rows := make([]CountSumRowsRow, 0, len(joined))
	for key, pair := range joined {
		if pair.Second == nil {
			continue
		}

		var firstCount, firstSum, firstRows uint64
		if pair.First != nil {
			firstCount = pair.First.Count
			firstSum = pair.First.Sum
			firstRows = pair.First.Rows
		}

		countDelta := pair.Second.Count - firstCount
		if countDelta == 0 {
			continue
		}
		sumDelta := pair.Second.Sum - firstSum
		rowsDelta := pair.Second.Rows - firstRows

		rows = append(rows, CountSumRowsRow{
			Key:          key,
			CountDelta:   countDelta,
			AvgMsPerCall: float64(sumDelta) / 1000 / float64(countDelta),
			TotalMs:      float64(sumDelta) / 1000,
			RowsPerCall:  float64(rowsDelta) / float64(countDelta),
			RowsDelta:    rowsDelta,
		})
	}
	return rows, nil
}
