package diff

import (
	"time"

	cnsErrors "github.com/yugabyte/ybstats/pkg/errors"
)

// Pair is one joined row: whichever of First/Second exists for a given
// canonical key. When First is nil (a second-only row), ImputedFirstTime
// carries the first-snapshot wall time so downstream rate math has a
// well-defined elapsed interval (§4.6) instead of measuring from zero.
type Pair[V any] struct {
	First           *V
	Second          *V
	ImputedFirstTime time.Time
}

// Join pairs two batches by canonical key (§4.6). A key present only in a
// is a first-only pair; a key present only in b is a second-only pair
// with ImputedFirstTime set to firstSnapshotTime; a key present in both
// gets a pair with both sides set, without comparing them. Duplicate keys within a are a hard programming-invariant
// violation (§3, §7) and are reported as an error rather than silently
// overwriting the earlier entry.
func Join[K comparable, V any](a, b []V, keyOf func(V) K, firstSnapshotTime time.Time) (map[K]Pair[V], error) {
	joined := make(map[K]Pair[V], len(a)+len(b))

	for i := range a {
		key := keyOf(a[i])
		if _, exists := joined[key]; exists {
			return nil, cnsErrors.NewWithContext(cnsErrors.ErrCodeInvariant,
				"duplicate canonical key within first batch", map[string]any{"key": key})
		}
		v := a[i]
		joined[key] = Pair[V]{First: &v}
	}

	for i := range b {
		key := keyOf(b[i])
		v := b[i]
		existing, ok := joined[key]
		if !ok {
			joined[key] = Pair[V]{Second: &v, ImputedFirstTime: firstSnapshotTime}
			continue
		}
		existing.Second = &v
		joined[key] = existing
	}

	return joined, nil
}
