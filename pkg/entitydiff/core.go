package entitydiff

import (
	"sort"
	"time"

	"github.com/yugabyte/ybstats/pkg/diff"
)

// Row is one classified entity pair: First/Second mirror diff.Pair, Status
// is the §4.8 classification, and Changes lists the specific fields that
// differ for a modified row (empty for added/removed/unchanged).
type Row[V any] struct {
	First   *V
	Second  *V
	Status  Status
	Changes []FieldChange
}

// Classify joins two batches by canonical key and classifies each pair per
// §4.8: first-only is removed, second-only is added, present-in-both is
// modified (if fieldsOf detects differences) or unchanged (suppressed from
// the result). fieldsOf receives both sides of a present-in-both pair and
// returns the FieldChanges between them; an empty result means unchanged.
func Classify[K comparable, V any](
	a, b []V,
	keyOf func(V) K,
	firstSnapshotTime time.Time,
	fieldsOf func(first, second V) []FieldChange,
) ([]Row[V], error) {
	joined, err := diff.Join(a, b, keyOf, firstSnapshotTime)
	if err != nil {
		return nil, err
	}

	rows := make([]Row[V], 0, len(joined))
	for _, pair := range joined {
		switch {
		case pair.First == nil:
			rows = append(rows, Row[V]{Second: pair.Second, Status: StatusAdded})
		case pair.Second == nil:
			rows = append(rows, Row[V]{First: pair.First, Status: StatusRemoved})
		default:
			changes := fieldsOf(*pair.First, *pair.Second)
			if len(changes) == 0 {
				continue // unchanged, suppressed
			}
			rows = append(rows, Row[V]{First: pair.First, Second: pair.Second, Status: StatusModified, Changes: changes})
		}
	}
	return rows, nil
}

// subject returns whichever of First/Second is present: First for
// removed/modified rows, Second for added rows.
func subject[V any](r Row[V]) V {
	if r.First != nil {
		return *r.First
	}
	return *r.Second
}

// SortByKey orders rows by canonical key (§5), since Classify's map
// iteration order is randomized. less compares two keys extracted by
// keyOf from whichever side of the row is present.
func SortByKey[K comparable, V any](rows []Row[V], keyOf func(V) K, less func(a, b K) bool) {
	sort.Slice(rows, func(i, j int) bool {
		return less(keyOf(subject(rows[i])), keyOf(subject(rows[j])))
	})
}

func changeIfDiffer(field, first, second string) (FieldChange, bool) {
	if first == second {
		return FieldChange{}, false
	}
	return FieldChange{Field: field, First: first, Second: second}, true
}
