// Package diff implements the generic two-pass join engine (§4.6): given
// a canonical key function and two batches, it produces a map from key to
// a Pair holding whichever of the first/second record exists for that
// key. Specializations (pkg/metricdiff, pkg/entitydiff) interpret the
// resulting pairs.
package diff
