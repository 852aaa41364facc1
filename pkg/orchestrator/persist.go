package orchestrator

import (
	"github.com/yugabyte/ybstats/pkg/model"
	"github.com/yugabyte/ybstats/pkg/store"
)

// WriteCapture persists every kind of a Capture to the store under number
// (§4.4). Each kind is written independently; a kind with zero records
// still gets an empty-array file, matching store.WriteKind's contract.
func WriteCapture(s *store.Store, number int, c Capture) error {
	writers := []func() error{
		func() error { return store.WriteKind(s, number, model.KindValues, c.Values) },
		func() error { return store.WriteKind(s, number, model.KindCountSum, c.CountSums) },
		func() error { return store.WriteKind(s, number, model.KindCountSumRows, c.CountSumRows) },
		func() error { return store.WriteKind(s, number, model.KindKeyspaces, c.Keyspaces) },
		func() error { return store.WriteKind(s, number, model.KindTables, c.Tables) },
		func() error { return store.WriteKind(s, number, model.KindTablets, c.Tablets) },
		func() error { return store.WriteKind(s, number, model.KindRpczYSQL, c.RpczYSQL) },
		func() error { return store.WriteKind(s, number, model.KindRpczTserver, c.RpczTserver) },
		func() error { return store.WriteKind(s, number, model.KindMasters, c.Masters) },
		func() error { return store.WriteKind(s, number, model.KindTabletServers, c.TabletServers) },
		func() error { return store.WriteKind(s, number, model.KindVersions, c.Versions) },
		func() error { return store.WriteKind(s, number, model.KindVarz, c.Varz) },
		func() error { return store.WriteKind(s, number, model.KindHealth, c.Health) },
		func() error { return store.WriteKind(s, number, model.KindClocks, c.Clocks) },
		func() error { return store.WriteKind(s, number, model.KindMasterLeader, masterLeaderRows(c)) },
	}
	for _, write := range writers {
		if err := write(); err != nil {
			return err
		}
	}
	return nil
}

// masterLeaderRows encodes a Capture's resolved leader as a 0-or-1-row
// slice so it round-trips through store.WriteKind/ReadKind like every
// other kind, rather than needing a dedicated persistence format.
func masterLeaderRows(c Capture) []model.MasterLeader {
	if c.MasterLeaderHostnamePort == "" {
		return nil
	}
	return []model.MasterLeader{{Envelope: model.Envelope{HostnamePort: c.MasterLeaderHostnamePort}}}
}

// ReadCapture loads every kind of a persisted snapshot from the store.
// A missing per-kind file is non-fatal (§7): that field is left nil and
// the caller's diff for that kind is silently skipped.
func ReadCapture(s *store.Store, number int) (Capture, error) {
	var c Capture
	var err error

	if c.Values, err = store.ReadKind[model.ValueObservation](s, number, model.KindValues); err != nil {
		return Capture{}, err
	}
	if c.CountSums, err = store.ReadKind[model.CountSumObservation](s, number, model.KindCountSum); err != nil {
		return Capture{}, err
	}
	if c.CountSumRows, err = store.ReadKind[model.CountSumRowsObservation](s, number, model.KindCountSumRows); err != nil {
		return Capture{}, err
	}
	if c.Keyspaces, err = store.ReadKind[model.Keyspace](s, number, model.KindKeyspaces); err != nil {
		return Capture{}, err
	}
	if c.Tables, err = store.ReadKind[model.Table](s, number, model.KindTables); err != nil {
		return Capture{}, err
	}
	if c.Tablets, err = store.ReadKind[model.Tablet](s, number, model.KindTablets); err != nil {
		return Capture{}, err
	}
	if c.RpczYSQL, err = store.ReadKind[model.YSQLConnection](s, number, model.KindRpczYSQL); err != nil {
		return Capture{}, err
	}
	if c.RpczTserver, err = store.ReadKind[model.InboundOutboundConnections](s, number, model.KindRpczTserver); err != nil {
		return Capture{}, err
	}
	if c.Masters, err = store.ReadKind[model.Master](s, number, model.KindMasters); err != nil {
		return Capture{}, err
	}
	if c.TabletServers, err = store.ReadKind[model.TabletServer](s, number, model.KindTabletServers); err != nil {
		return Capture{}, err
	}
	if c.Versions, err = store.ReadKind[model.VersionLine](s, number, model.KindVersions); err != nil {
		return Capture{}, err
	}
	if c.Varz, err = store.ReadKind[model.VarzLine](s, number, model.KindVarz); err != nil {
		return Capture{}, err
	}
	if c.Health, err = store.ReadKind[model.HealthItem](s, number, model.KindHealth); err != nil {
		return Capture{}, err
	}
	if c.Clocks, err = store.ReadKind[model.Clocks](s, number, model.KindClocks); err != nil {
		return Capture{}, err
	}
	leaderRows, err := store.ReadKind[model.MasterLeader](s, number, model.KindMasterLeader)
	if err != nil {
		return Capture{}, err
	}
	if len(leaderRows) > 0 {
		c.MasterLeaderHostnamePort = leaderRows[0].HostnamePort
	}
	return c, nil
}
