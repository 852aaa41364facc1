package model

// StatKind classifies how a metric's value should be diffed (§1C, §4.7):
// gauges report a sampled level, counters/timers are monotonic and are
// diffed as a delta/rate.
type StatKind int

const (
	StatKindCounter StatKind = iota
	StatKindGauge
)

// StatInfo is one entry of the statistic-kind lookup table: a metric
// name's kind and a display-only unit.
type StatInfo struct {
	Kind StatKind
	Unit string
}

// statKindTable is the supplemented (§1C) statistic-kind lookup,
// classifying the well-known metric names the core understands. Names
// absent from the table default to StatKindCounter with an empty unit,
// matching a monotonic counter with no particular display unit.
var statKindTable = map[string]StatInfo{
	"mem_tracker":                              {StatKindGauge, "bytes"},
	"mem_tracker_Call":                         {StatKindGauge, "bytes"},
	"mem_tracker_Compressed_Blocks":            {StatKindGauge, "bytes"},
	"mem_tracker_Read_Buffer":                  {StatKindGauge, "bytes"},
	"mem_tracker_Tablets":                      {StatKindGauge, "bytes"},
	"tcmalloc_current_total_thread_cache_bytes": {StatKindGauge, "bytes"},
	"glog_info_messages":                       {StatKindCounter, ""},
	"glog_warning_messages":                    {StatKindCounter, ""},
	"glog_error_messages":                      {StatKindCounter, ""},
	"rpcs_in_queue_yb_tserver_TabletServerService": {StatKindGauge, ""},
	"threads_running":                          {StatKindGauge, ""},
	"threads_started":                          {StatKindCounter, ""},
	"generic_current_allocated_bytes":          {StatKindGauge, "bytes"},
	"generic_heap_size":                        {StatKindGauge, "bytes"},
	"handler_latency_yb_tserver_TabletServerService_Read": {StatKindCounter, "us"},
	"handler_latency_yb_tserver_TabletServerService_Write": {StatKindCounter, "us"},
	"log_sync_latency": {StatKindCounter, "us"},
	"log_append_latency": {StatKindCounter, "us"},
	"ql_write_op":  {StatKindCounter, ""},
	"ql_read_op":   {StatKindCounter, ""},
	"rocksdb_number_db_seek": {StatKindCounter, ""},
	"rocksdb_number_db_next": {StatKindCounter, ""},
	"rocksdb_current_version_sst_files_size": {StatKindGauge, "bytes"},
}

// ClassifyStat returns the StatInfo for a metric name, defaulting to a
// counter with no unit when the name is not in the lookup table.
func ClassifyStat(name string) StatInfo {
	if info, ok := statKindTable[name]; ok {
		return info
	}
	return StatInfo{Kind: StatKindCounter, Unit: ""}
}
