// Package metricdiff specializes pkg/diff for metric observations (§4.7):
// it classifies each metric name as a gauge or counter/timer via the
// statistic-kind lookup (pkg/model), computes deltas/rates, rolls up
// per-object rows when details are disabled, and applies hostname/name/
// table-name regex filters at print time.
package metricdiff
