// Package store implements the snapshot store (§4.4): a CSV index of
// allocated snapshot numbers under ./yb_stats.snapshots/snapshot.index,
// and one JSON array file per record kind under
// ./yb_stats.snapshots/<number>/<kind>.json. The index is the single
// source of truth for what snapshots exist; the store never infers
// snapshots from directory listings.
package store
