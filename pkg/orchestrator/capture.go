package orchestrator

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/yugabyte/ybstats/pkg/decode"
	"github.com/yugabyte/ybstats/pkg/model"
	"github.com/yugabyte/ybstats/pkg/scrape"
	"github.com/yugabyte/ybstats/pkg/telemetry"
)

// Endpoint paths (§6). Several kinds share a single scrape, split
// afterward: /metrics produces KindValues/CountSum/CountSumRows,
// /dump-entities produces KindKeyspaces/Tables/Tablets, and /rpcz
// produces KindRpczYSQL/KindRpczTserver depending on each node's shape.
const (
	pathMetrics       = "/metrics"
	pathDumpEntities  = "/dump-entities"
	pathRpcz          = "/rpcz"
	pathMasters       = "/api/v1/masters"
	pathTabletServers = "/api/v1/tablet-servers"
	pathVersion       = "/api/v1/version"
	pathVarz          = "/varz"
	pathHealthCheck   = "/api/v1/health-check"
	pathClocks        = "/tablet-server-clocks"
	pathIsLeader      = "/api/v1/is-leader"
)

// Capture is everything one scrape pass produces across every data kind
// (§4.9), ready to persist or diff.
type Capture struct {
	Values        []model.ValueObservation
	CountSums     []model.CountSumObservation
	CountSumRows  []model.CountSumRowsObservation
	Keyspaces     []model.Keyspace
	Tables        []model.Table
	Tablets       []model.Tablet
	RpczYSQL      []model.YSQLConnection
	RpczTserver   []model.InboundOutboundConnections
	Masters       []model.Master
	TabletServers []model.TabletServer
	Versions      []model.VersionLine
	Varz          []model.VarzLine
	Health        []model.HealthItem
	Clocks        []model.Clocks

	// MasterLeaderHostnamePort is the hostname_port of the master that
	// answered /api/v1/is-leader affirmatively during this capture, or ""
	// if no leader was found among the scraped targets. Keyspaces/Tables/
	// Tablets are already filtered down to this host (§3); Diff uses its
	// presence on both sides to decide whether an entity diff is possible.
	MasterLeaderHostnamePort string
}

// ScrapeAll runs every kind's scrape concurrently, one errgroup task per
// kind, and assembles a Capture. Each task writes to its own Capture
// fields, so no shared mutable state needs locking.
func ScrapeAll(ctx context.Context, s *scrape.Scraper, targets []scrape.Target) (Capture, error) {
	var capture Capture

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathMetrics, decode.DecodeMetrics, isEmptyMetricBatch)
		for _, b := range batches {
			capture.Values = append(capture.Values, b.Values...)
			capture.CountSums = append(capture.CountSums, b.CountSums...)
			capture.CountSumRows = append(capture.CountSumRows, b.CountSumRows...)
		}
		telemetry.ObserveScrapeTask("metrics", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		entities := scrape.ReadAll(gctx, s, targets, pathDumpEntities, decode.DecodeEntities, isEmptyEntities)
		for _, e := range entities {
			capture.Keyspaces = append(capture.Keyspaces, e.Keyspaces...)
			capture.Tables = append(capture.Tables, e.Tables...)
			capture.Tablets = append(capture.Tablets, e.Tablets...)
		}
		telemetry.ObserveScrapeTask("entities", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		probes := scrape.ReadAll(gctx, s, targets, pathIsLeader, decode.DecodeIsLeader, isEmptyMasterLeader)
		capture.MasterLeaderHostnamePort = resolveMasterLeader(probes)
		telemetry.ObserveScrapeTask("is_leader", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		rpczResults := scrape.ReadAll(gctx, s, targets, pathRpcz, decode.DecodeRpcz, isEmptyRpcz)
		for _, r := range rpczResults {
			switch r.Shape {
			case model.RpczShapeYSQL:
				capture.RpczYSQL = append(capture.RpczYSQL, r.YSQLConnections...)
			case model.RpczShapeInboundOutbound:
				if r.TabletServer != nil {
					capture.RpczTserver = append(capture.RpczTserver, *r.TabletServer)
				}
			}
		}
		telemetry.ObserveScrapeTask("rpcz", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathMasters, decode.DecodeMasters, isEmptySlice[model.Master])
		for _, b := range batches {
			capture.Masters = append(capture.Masters, b...)
		}
		telemetry.ObserveScrapeTask("masters", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathTabletServers, decode.DecodeTabletServers, isEmptySlice[model.TabletServer])
		for _, b := range batches {
			capture.TabletServers = append(capture.TabletServers, b...)
		}
		telemetry.ObserveScrapeTask("tablet_servers", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathVersion, decode.DecodeVersion, isEmptySlice[model.VersionLine])
		for _, b := range batches {
			capture.Versions = append(capture.Versions, b...)
		}
		telemetry.ObserveScrapeTask("versions", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathVarz, decode.DecodeVarz, isEmptySlice[model.VarzLine])
		for _, b := range batches {
			capture.Varz = append(capture.Varz, b...)
		}
		telemetry.ObserveScrapeTask("varz", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathHealthCheck, decode.DecodeHealthCheck, isEmptySlice[model.HealthItem])
		for _, b := range batches {
			capture.Health = append(capture.Health, b...)
		}
		telemetry.ObserveScrapeTask("health", time.Since(start))
		return nil
	})

	g.Go(func() error {
		start := time.Now()
		batches := scrape.ReadAll(gctx, s, targets, pathClocks, decode.DecodeClocksHTML, isEmptySlice[model.Clocks])
		for _, b := range batches {
			capture.Clocks = append(capture.Clocks, b...)
		}
		telemetry.ObserveScrapeTask("clocks", time.Since(start))
		return nil
	})

	if err := g.Wait(); err != nil {
		return Capture{}, err
	}

	filterEntitiesToLeader(&capture)
	recordCaptureCounts(capture)
	return capture, nil
}

// resolveMasterLeader picks the single host that answered /api/v1/is-leader
// affirmatively. Zero responses means the leader wasn't found among the
// scraped targets; more than one (a mid-election window, or a
// misconfigured target list) is logged and treated the same as not
// found, since neither catalog copy can be trusted as authoritative alone.
func resolveMasterLeader(probes []model.MasterLeader) string {
	switch len(probes) {
	case 0:
		return ""
	case 1:
		return probes[0].HostnamePort
	default:
		slog.Debug("capture: multiple hosts answered /api/v1/is-leader", "count", len(probes))
		return ""
	}
}

// filterEntitiesToLeader discards every keyspace/table/tablet row not
// captured from the resolved master leader (§3): on a replicated
// cluster every master serves the same catalog from /dump-entities, and
// only the leader's copy is authoritative. If no leader was found, the
// whole entity capture is discarded rather than kept unfiltered.
func filterEntitiesToLeader(c *Capture) {
	if c.MasterLeaderHostnamePort == "" {
		slog.Debug("capture: master leader not found among scraped targets, discarding entity capture")
		c.Keyspaces, c.Tables, c.Tablets = nil, nil, nil
		return
	}
	c.Keyspaces = filterLeaderRows(c.Keyspaces, c.MasterLeaderHostnamePort, func(k model.Keyspace) string { return k.HostnamePort })
	c.Tables = filterLeaderRows(c.Tables, c.MasterLeaderHostnamePort, func(t model.Table) string { return t.HostnamePort })
	c.Tablets = filterLeaderRows(c.Tablets, c.MasterLeaderHostnamePort, func(t model.Tablet) string { return t.HostnamePort })
}

func filterLeaderRows[T any](rows []T, leader string, hostnamePortOf func(T) string) []T {
	out := rows[:0]
	for _, r := range rows {
		if hostnamePortOf(r) == leader {
			out = append(out, r)
		}
	}
	return out
}

func recordCaptureCounts(c Capture) {
	telemetry.SetRecordsCaptured(string(model.KindValues), len(c.Values))
	telemetry.SetRecordsCaptured(string(model.KindCountSum), len(c.CountSums))
	telemetry.SetRecordsCaptured(string(model.KindCountSumRows), len(c.CountSumRows))
	telemetry.SetRecordsCaptured(string(model.KindKeyspaces), len(c.Keyspaces))
	telemetry.SetRecordsCaptured(string(model.KindTables), len(c.Tables))
	telemetry.SetRecordsCaptured(string(model.KindTablets), len(c.Tablets))
	telemetry.SetRecordsCaptured(string(model.KindRpczYSQL), len(c.RpczYSQL))
	telemetry.SetRecordsCaptured(string(model.KindRpczTserver), len(c.RpczTserver))
	telemetry.SetRecordsCaptured(string(model.KindMasters), len(c.Masters))
	telemetry.SetRecordsCaptured(string(model.KindTabletServers), len(c.TabletServers))
	telemetry.SetRecordsCaptured(string(model.KindVersions), len(c.Versions))
	telemetry.SetRecordsCaptured(string(model.KindVarz), len(c.Varz))
	telemetry.SetRecordsCaptured(string(model.KindHealth), len(c.Health))
	telemetry.SetRecordsCaptured(string(model.KindClocks), len(c.Clocks))
	leaderCount := 0
	if c.MasterLeaderHostnamePort != "" {
		leaderCount = 1
	}
	telemetry.SetRecordsCaptured(string(model.KindMasterLeader), leaderCount)
}

func isEmptyMetricBatch(b model.MetricBatch) bool {
	return len(b.Values) == 0 && len(b.CountSums) == 0 && len(b.CountSumRows) == 0
}

func isEmptyEntities(e model.Entities) bool {
	return len(e.Keyspaces) == 0 && len(e.Tables) == 0 && len(e.Tablets) == 0
}

func isEmptyRpcz(r model.Rpcz) bool {
	return r.Shape == model.RpczShapeEmpty || r.Shape == ""
}

func isEmptySlice[T any](s []T) bool {
	return len(s) == 0
}

func isEmptyMasterLeader(m model.MasterLeader) bool {
	return m.HostnamePort == ""
}
