package entitydiff

import (
	"sort"
	"time"

	"github.com/yugabyte/ybstats/pkg/diff"
	"github.com/yugabyte/ybstats/pkg/model"
)

// KeyspaceStatus extends Status with the tombstone-resistant "deleted"
// outcome YSQL keyspaces require (§4.8): YSQL never removes a dropped
// database's row from the keyspace list, so deletion is inferred from its
// table count dropping to zero rather than from the row disappearing.
type KeyspaceStatus string

const (
	KeyspaceAdded      KeyspaceStatus = KeyspaceStatus(StatusAdded)
	KeyspaceRemoved    KeyspaceStatus = KeyspaceStatus(StatusRemoved)
	KeyspaceModified   KeyspaceStatus = KeyspaceStatus(StatusModified)
	KeyspaceDeleted    KeyspaceStatus = "deleted" // YSQL tombstone: present in both, tables 0 in second
	KeyspaceLogicError KeyspaceStatus = "error"   // zero tables before, some after: flagged, not undeleted
)

// KeyspaceRow is one classified keyspace pair. The table counts that the
// tombstone rule reads are not stored on the row.
type KeyspaceRow struct {
	First, Second *model.Keyspace
	Status        KeyspaceStatus
	Changes       []FieldChange
	Colocated     bool
}

// DiffKeyspaces classifies keyspace pairs per §4.8, applying the YSQL
// tombstone-resistant deletion rule: YSQL never removes a dropped
// database's row from the keyspace list, so a present-in-both YSQL
// keyspace is checked against its table count even when its own fields
// are unchanged — unlike every other kind, "unchanged row" is not the
// final word here. Zero tables on both sides is suppressed; zero tables
// before and some after is a logical error the core flags rather than
// silently accepting as an "undelete".
func DiffKeyspaces(firstEntities, secondEntities model.Entities, firstSnapshotTime time.Time) ([]KeyspaceRow, error) {
	joined, err := diff.Join(firstEntities.Keyspaces, secondEntities.Keyspaces,
		func(k model.Keyspace) string { return k.Key() }, firstSnapshotTime)
	if err != nil {
		return nil, err
	}

	out := make([]KeyspaceRow, 0, len(joined))
	for _, pair := range joined {
		switch {
		case pair.First == nil:
			out = append(out, KeyspaceRow{
				Second: pair.Second, Status: KeyspaceAdded,
				Colocated: secondEntities.IsColocatedKeyspace(pair.Second.KeyspaceID),
			})
		case pair.Second == nil:
			out = append(out, KeyspaceRow{
				First: pair.First, Status: KeyspaceRemoved,
				Colocated: firstEntities.IsColocatedKeyspace(pair.First.KeyspaceID),
			})
		default:
			row := KeyspaceRow{
				First: pair.First, Second: pair.Second,
				Colocated: secondEntities.IsColocatedKeyspace(pair.Second.KeyspaceID),
			}
			if pair.Second.IsYSQL() {
				firstCount := firstEntities.TableCountForKeyspace(pair.Second.KeyspaceID)
				secondCount := secondEntities.TableCountForKeyspace(pair.Second.KeyspaceID)
				switch {
				case firstCount > 0 && secondCount == 0:
					row.Status = KeyspaceDeleted
				case firstCount == 0 && secondCount == 0:
					continue // suppressed: stayed deleted
				case firstCount == 0 && secondCount > 0:
					row.Status = KeyspaceLogicError
				default:
					changes := keyspaceFields(*pair.First, *pair.Second)
					if len(changes) == 0 {
						continue // unchanged, suppressed
					}
					row.Status, row.Changes = KeyspaceModified, changes
				}
			} else {
				changes := keyspaceFields(*pair.First, *pair.Second)
				if len(changes) == 0 {
					continue // unchanged, suppressed
				}
				row.Status, row.Changes = KeyspaceModified, changes
			}
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return keyspaceRowKey(out[i]) < keyspaceRowKey(out[j])
	})
	return out, nil
}

func keyspaceRowKey(r KeyspaceRow) string {
	if r.First != nil {
		return r.First.KeyspaceID
	}
	return r.Second.KeyspaceID
}

func keyspaceFields(first, second model.Keyspace) []FieldChange {
	var changes []FieldChange
	if c, ok := changeIfDiffer("keyspace_name", first.KeyspaceName, second.KeyspaceName); ok {
		changes = append(changes, c)
	}
	if c, ok := changeIfDiffer("keyspace_type", first.KeyspaceType, second.KeyspaceType); ok {
		changes = append(changes, c)
	}
	return changes
}
