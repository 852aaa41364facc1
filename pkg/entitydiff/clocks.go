package entitydiff

import (
	"time"

	"github.com/yugabyte/ybstats/pkg/model"
)

// DiffClocks classifies clocks-record pairs per §4.8, keyed by
// hostname_port. The source HTML table reports heartbeat RTT and
// hybrid/physical time as free-text strings with no fixed unit, so a
// presentation-only skew threshold cannot be computed reliably; any
// textual change to a modified field is surfaced instead.
func DiffClocks(first, second []model.Clocks, firstSnapshotTime time.Time) ([]Row[model.Clocks], error) {
	rows, err := Classify(first, second, func(c model.Clocks) string { return c.Key() }, firstSnapshotTime, clocksFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(c model.Clocks) string { return c.Key() }, func(a, b string) bool { return a < b })
	return rows, nil
}

func clocksFields(first, second model.Clocks) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("heartbeat_rtt", first.HeartbeatRTT, second.HeartbeatRTT); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("physical_time_utc", first.PhysicalTimeUTC, second.PhysicalTimeUTC); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("hybrid_time_utc", first.HybridTimeUTC, second.HybridTimeUTC); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("status_uptime", first.StatusUptime, second.StatusUptime); ok {
		changes = append(changes, c)
	}
	return changes
}
