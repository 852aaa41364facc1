package model

import "time"

// Snapshot is one entry in the snapshot store's index (§3, §4.4).
type Snapshot struct {
	Number    int       `csv:"number" json:"number"`
	Timestamp time.Time `csv:"timestamp" json:"timestamp"`
	Comment   string    `csv:"comment" json:"comment"`
}

// Kind names one of the per-snapshot JSON files the store persists.
type Kind string

const (
	KindValues        Kind = "values"
	KindCountSum      Kind = "countsum"
	KindCountSumRows  Kind = "countsumrows"
	KindKeyspaces     Kind = "keyspaces"
	KindTables        Kind = "tables"
	KindTablets       Kind = "tablets"
	KindRpczYSQL      Kind = "rpcz_ysql"
	KindRpczTserver   Kind = "rpcz_tserver"
	KindMasters       Kind = "masters"
	KindTabletServers Kind = "tablet_servers"
	KindVersions      Kind = "versions"
	KindVarz          Kind = "varz"
	KindHealth        Kind = "health"
	KindClocks        Kind = "clocks"
	KindMasterLeader  Kind = "master_leader"
)

// AllKinds lists every kind the orchestrator fans out over for a full
// snapshot (§4.9).
func AllKinds() []Kind {
	return []Kind{
		KindValues, KindCountSum, KindCountSumRows,
		KindKeyspaces, KindTables, KindTablets,
		KindRpczYSQL, KindRpczTserver,
		KindMasters, KindTabletServers,
		KindVersions, KindVarz, KindHealth, KindClocks,
		KindMasterLeader,
	}
}
