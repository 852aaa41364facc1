/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/yugabyte/ybstats/pkg/logging"
)

const (
	name           = "yb_stats"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Root builds the yb_stats root command (§4.10): one mode flag selects
// which of the four top-level operations runs, mirroring the original
// tool's single-binary, flag-selected-mode design rather than a
// subcommand tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Usage:                 "diagnostic snapshot and diff tool for a YugabyteDB cluster",
		Version:               version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			snapshotModeFlag,
			snapshotDiffModeFlag,
			snapshotListModeFlag,
			adhocDiffModeFlag,
			hostsFlag, portsFlag, parallelFlag, rateLimitFlag,
			hostnameMatchFlag, statNameMatchFlag, tableNameMatchFlag,
			detailsEnableFlag, gaugesEnableFlag, sqlLengthFlag,
			outputFlag, logLevelFlag, storeRootFlag,
			beginFlag, endFlag, snapshotCommentFlag, silentFlag,
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.InfoContext(ctx, "starting", "name", name, "version", version, "commit", commit, "date", date)
			return ctx, nil
		},
		Action: runSelectedMode,
	}
}

// Execute runs the root command against the process arguments, logging
// and translating any returned error into a process exit code (§6, §7).
func Execute(ctx context.Context, args []string) {
	if err := Root().Run(ctx, args); err != nil {
		slog.Error("yb_stats exited with an error", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
