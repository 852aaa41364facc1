// Package model defines the typed records scraped from a YugabyteDB-like
// cluster: metric observations, catalog entities, RPC connections, and the
// small fixed-schema records (masters, tablet servers, versions, vars,
// health-check items, clocks). Every record kind defines a canonical key
// used by pkg/diff to pair first/second snapshots.
package model
