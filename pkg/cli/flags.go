package cli

import "github.com/urfave/cli/v3"

// Flags shared across the root command's modes (§4.10, §6). Each binds to a
// YBSTATS_-prefixed environment variable the way the teacher's flags bind
// to CNS_-prefixed ones.
var (
	hostsFlag = &cli.StringSliceFlag{
		Name:    "hosts",
		Usage:   "cluster node hostnames/IPs to scrape (repeatable, comma-separated)",
		Sources: cli.EnvVars("YBSTATS_HOSTS"),
		Value:   []string{"localhost"},
	}
	portsFlag = &cli.IntSliceFlag{
		Name:    "ports",
		Usage:   "ports to scrape on each host (repeatable); the scraper fans out over the full hosts x ports product",
		Sources: cli.EnvVars("YBSTATS_PORTS"),
		Value:   []int64{7000, 9000},
	}
	parallelFlag = &cli.IntFlag{
		Name:    "parallel",
		Usage:   "scraper worker-pool size",
		Sources: cli.EnvVars("YBSTATS_PARALLEL"),
		Value:   8,
	}
	rateLimitFlag = &cli.FloatFlag{
		Name:    "rate-limit",
		Usage:   "cap on scrape task starts per second; 0 = unlimited",
		Sources: cli.EnvVars("YBSTATS_RATE_LIMIT"),
		Value:   0,
	}
	hostnameMatchFlag = &cli.StringFlag{
		Name:    "hostname-match",
		Usage:   "only print rows whose hostname:port matches this regex",
		Sources: cli.EnvVars("YBSTATS_HOSTNAME_MATCH"),
	}
	statNameMatchFlag = &cli.StringFlag{
		Name:    "stat-name-match",
		Usage:   "only print rows whose stat name matches this regex",
		Sources: cli.EnvVars("YBSTATS_STAT_NAME_MATCH"),
	}
	tableNameMatchFlag = &cli.StringFlag{
		Name:    "table-name-match",
		Usage:   "only print value/countsum rows whose table name (empty for non-table rows) matches this regex",
		Sources: cli.EnvVars("YBSTATS_TABLE_NAME_MATCH"),
	}
	detailsEnableFlag = &cli.BoolFlag{
		Name:    "details-enable",
		Usage:   "disable rollup of per-object metrics and list keyspaces/tables/tablets individually",
		Sources: cli.EnvVars("YBSTATS_DETAILS_ENABLE"),
	}
	gaugesEnableFlag = &cli.BoolFlag{
		Name:    "gauges-enable",
		Usage:   "include gauge metrics in the diff",
		Sources: cli.EnvVars("YBSTATS_GAUGES_ENABLE"),
	}
	sqlLengthFlag = &cli.IntFlag{
		Name:    "sql-length",
		Usage:   "presentation-only truncation length for statement text",
		Sources: cli.EnvVars("YBSTATS_SQL_LENGTH"),
		Value:   80,
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "serializer format: json, yaml, or table",
		Sources: cli.EnvVars("YBSTATS_OUTPUT"),
		Value:   "table",
	}
	logLevelFlag = &cli.StringFlag{
		Name:    "log-level",
		Usage:   "log level (debug, info, warn, error)",
		Sources: cli.EnvVars("YBSTATS_LOG_LEVEL", "LOG_LEVEL"),
		Value:   "info",
	}
	storeRootFlag = &cli.StringFlag{
		Name:    "store-root",
		Usage:   "snapshot store root directory",
		Sources: cli.EnvVars("YBSTATS_STORE_ROOT"),
	}
	beginFlag = &cli.IntFlag{
		Name:  "begin",
		Usage: "begin snapshot number (prompted for if omitted)",
	}
	endFlag = &cli.IntFlag{
		Name:  "end",
		Usage: "end snapshot number (prompted for if omitted)",
	}
	snapshotCommentFlag = &cli.StringFlag{
		Name:  "snapshot-comment",
		Usage: "comment recorded alongside the allocated snapshot number",
	}
	silentFlag = &cli.BoolFlag{
		Name:  "silent",
		Usage: "suppress printing the allocated snapshot number",
	}
)

func targetsFromFlags(cmd *cli.Command) (hosts []string, ports []int) {
	hosts = cmd.StringSlice("hosts")
	for _, p := range cmd.IntSlice("ports") {
		ports = append(ports, int(p))
	}
	return hosts, ports
}

func intFlagPointer(cmd *cli.Command, name string) *int {
	if !cmd.IsSet(name) {
		return nil
	}
	v := int(cmd.Int(name))
	return &v
}
