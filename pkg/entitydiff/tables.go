package entitydiff

import (
	"time"

	"github.com/yugabyte/ybstats/pkg/model"
)

// DiffTables classifies table pairs per §4.8, keyed on table_id.
func DiffTables(first, second []model.Table, firstSnapshotTime time.Time) ([]Row[model.Table], error) {
	rows, err := Classify(first, second, func(t model.Table) string { return t.Key() }, firstSnapshotTime, tableFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(t model.Table) string { return t.Key() }, func(a, b string) bool { return a < b })
	return rows, nil
}

func tableFields(first, second model.Table) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("table_name", first.TableName, second.TableName); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("state", first.State, second.State); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("keyspace_id", first.KeyspaceID, second.KeyspaceID); ok {
		changes = append(changes, c)
	}
	return changes
}
