package entitydiff

import (
	"fmt"
	"time"

	"github.com/yugabyte/ybstats/pkg/model"
)

// DiffTablets classifies tablet pairs per §4.8, keyed on tablet_id.
// Replica placement within a tablet is diffed separately by DiffReplicas.
func DiffTablets(first, second []model.Tablet, firstSnapshotTime time.Time) ([]Row[model.Tablet], error) {
	rows, err := Classify(first, second, func(t model.Tablet) string { return t.Key() }, firstSnapshotTime, tabletFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(t model.Tablet) string { return t.Key() }, func(a, b string) bool { return a < b })
	return rows, nil
}

func tabletFields(first, second model.Tablet) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("state", first.State, second.State); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("leader", first.Leader, second.Leader); ok {
		changes = append(changes, c)
	}
	return changes
}

// ReplicaEntry flattens one tablet's replica list into an independently
// keyed row, per the (tablet_id, server_uuid) canonical key (§4.5).
type ReplicaEntry struct {
	Key     model.ReplicaKey
	Replica model.Replica
}

func flattenReplicas(tablets []model.Tablet) []ReplicaEntry {
	var out []ReplicaEntry
	for _, t := range tablets {
		for _, r := range t.Replicas {
			out = append(out, ReplicaEntry{Key: model.ReplicaKey{TabletID: t.TabletID, ServerUUID: r.ServerUUID}, Replica: r})
		}
	}
	return out
}

// DiffReplicas classifies per-replica placement changes across all tablets
// in two snapshots, keyed on (tablet_id, server_uuid).
func DiffReplicas(firstTablets, secondTablets []model.Tablet, firstSnapshotTime time.Time) ([]Row[ReplicaEntry], error) {
	rows, err := Classify(flattenReplicas(firstTablets), flattenReplicas(secondTablets),
		func(e ReplicaEntry) model.ReplicaKey { return e.Key }, firstSnapshotTime, replicaFields)
	if err != nil {
		return nil, err
	}
	SortByKey(rows, func(e ReplicaEntry) model.ReplicaKey { return e.Key }, lessReplicaKey)
	return rows, nil
}

func lessReplicaKey(a, b model.ReplicaKey) bool {
	if a.TabletID != b.TabletID {
		return a.TabletID < b.TabletID
	}
	return a.ServerUUID < b.ServerUUID
}

func replicaFields(first, second ReplicaEntry) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("type", string(first.Replica.Type), string(second.Replica.Type)); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("addr", first.Replica.Addr, second.Replica.Addr); ok {
		changes = append(changes, c)
	}
	return changes
}

// Label returns a human-readable identifier for a replica row.
func (e ReplicaEntry) Label() string {
	return fmt.Sprintf("%s/%s", e.Key.TabletID, e.Key.ServerUUID)
}
