// Package entitydiff specializes pkg/diff for catalog and cluster-topology
// kinds (§4.8): keyspaces/tables/tablets, masters, tablet servers,
// versions/vars, health-check faults, and clocks. Unlike pkg/metricdiff
// (which reports numeric deltas), entitydiff classifies each pair as
// added, removed, modified, or unchanged, and highlights the specific
// fields that changed.
package entitydiff
