/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	cnsErrors "github.com/yugabyte/ybstats/pkg/errors"
	"github.com/yugabyte/ybstats/pkg/fetch"
	"github.com/yugabyte/ybstats/pkg/header"
	"github.com/yugabyte/ybstats/pkg/metricdiff"
	"github.com/yugabyte/ybstats/pkg/orchestrator"
	"github.com/yugabyte/ybstats/pkg/scrape"
	"github.com/yugabyte/ybstats/pkg/serializer"
	"github.com/yugabyte/ybstats/pkg/store"
)

const apiVersion = "ybstats/v1"

// envelope stamps an output payload with a Kind so a reader of a saved
// JSON/YAML diff or list output can tell what it's looking at without
// guessing from shape alone.
type envelope struct {
	*header.Header `json:",inline" yaml:",inline"`
	Data           any `json:"data" yaml:"data"`
}

func withHeader(kind header.Kind, data any) envelope {
	h := header.New()
	h.Init(kind, apiVersion, version)
	return envelope{Header: h, Data: data}
}

var (
	snapshotModeFlag = &cli.BoolFlag{
		Name:  "snapshot",
		Usage: "capture a full snapshot and print the allocated number",
	}
	snapshotDiffModeFlag = &cli.BoolFlag{
		Name:  "snapshot-diff",
		Usage: "diff two persisted snapshots",
	}
	snapshotListModeFlag = &cli.BoolFlag{
		Name:  "snapshot-list",
		Usage: "list every snapshot in the store's index",
	}
	adhocDiffModeFlag = &cli.BoolFlag{
		Name:  "adhoc-diff",
		Usage: "in-memory before/after diff that never touches the snapshot store",
	}
)

// runSelectedMode dispatches to exactly one of the four operations based
// on which mode flag was set (§4.10, §6). Exactly one must be set.
func runSelectedMode(ctx context.Context, cmd *cli.Command) error {
	modes := map[string]bool{
		"snapshot":      cmd.Bool("snapshot"),
		"snapshot-diff": cmd.Bool("snapshot-diff"),
		"snapshot-list": cmd.Bool("snapshot-list"),
		"adhoc-diff":    cmd.Bool("adhoc-diff"),
	}
	selected := ""
	for name, set := range modes {
		if !set {
			continue
		}
		if selected != "" {
			return cnsErrors.NewWithContext(cnsErrors.ErrCodeInput,
				"only one of --snapshot, --snapshot-diff, --snapshot-list, --adhoc-diff may be given",
				map[string]any{"first": selected, "second": name})
		}
		selected = name
	}
	if selected == "" {
		return cnsErrors.New(cnsErrors.ErrCodeInput,
			"one of --snapshot, --snapshot-diff, --snapshot-list, --adhoc-diff is required")
	}

	s := store.New(cmd.String("store-root"))

	switch selected {
	case "snapshot":
		return runSnapshot(ctx, cmd, s)
	case "snapshot-diff":
		return runSnapshotDiff(ctx, cmd, s)
	case "snapshot-list":
		return runSnapshotList(cmd, s)
	case "adhoc-diff":
		return runAdhocDiff(ctx, cmd)
	}
	return nil
}

func runSnapshot(ctx context.Context, cmd *cli.Command, s *store.Store) error {
	scraper, targets := buildScraper(cmd)
	_, err := orchestrator.PerformSnapshot(ctx, s, scraper, targets,
		cmd.String("snapshot-comment"), cmd.Bool("silent"), os.Stdout)
	return err
}

func runSnapshotDiff(ctx context.Context, cmd *cli.Command, s *store.Store) error {
	opts, err := buildDiffOptions(cmd)
	if err != nil {
		return err
	}
	w, err := buildWriter(cmd)
	if err != nil {
		return err
	}
	defer closeWriter(w)

	begin := intFlagPointer(cmd, "begin")
	end := intFlagPointer(cmd, "end")
	return orchestrator.SnapshotDiff(ctx, s, begin, end, os.Stdin, os.Stderr, opts, w)
}

func runSnapshotList(cmd *cli.Command, s *store.Store) error {
	snapshots, err := s.List()
	if err != nil {
		return err
	}
	w, err := buildWriter(cmd)
	if err != nil {
		return err
	}
	defer closeWriter(w)
	return w.Serialize(context.Background(), withHeader(header.KindSnapshotList, snapshots))
}

func runAdhocDiff(ctx context.Context, cmd *cli.Command) error {
	opts, err := buildDiffOptions(cmd)
	if err != nil {
		return err
	}
	w, err := buildWriter(cmd)
	if err != nil {
		return err
	}
	defer closeWriter(w)

	scraper, targets := buildScraper(cmd)
	return orchestrator.AdhocDiff(ctx, scraper, targets, os.Stdin, os.Stderr, opts, w)
}

func buildScraper(cmd *cli.Command) (*scrape.Scraper, []scrape.Target) {
	hosts, ports := targetsFromFlags(cmd)
	fetcher := fetch.NewHTTPFetcher("http")
	scraper := scrape.NewScraper(fetcher, int(cmd.Int("parallel")), cmd.Float("rate-limit"))
	return scraper, scrape.Targets(hosts, ports)
}

func buildDiffOptions(cmd *cli.Command) (orchestrator.Options, error) {
	filters, err := metricdiff.NewFilters(
		cmd.String("hostname-match"), cmd.String("stat-name-match"), cmd.String("table-name-match"))
	if err != nil {
		return orchestrator.Options{}, err
	}
	return orchestrator.Options{
		DetailsEnabled: cmd.Bool("details-enable"),
		GaugesEnabled:  cmd.Bool("gauges-enable"),
		Filters:        filters,
	}, nil
}

func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("output"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q", f)
	}
	return f, nil
}

func buildWriter(cmd *cli.Command) (serializer.Serializer, error) {
	format, err := parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	return serializer.NewStdoutWriter(format), nil
}

func closeWriter(w serializer.Serializer) {
	if c, ok := w.(serializer.Closer); ok {
		_ = c.Close()
	}
}
