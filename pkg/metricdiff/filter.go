package metricdiff

import (
	"regexp"
	"sort"

	cnsErrors "github.com/yugabyte/ybstats/pkg/errors"
	"github.com/yugabyte/ybstats/pkg/model"
)

// Filters is the three independent print-time filter predicates (§4.7):
// a row is shown only if all three match. An empty pattern matches
// everything.
type Filters struct {
	Hostname  *regexp.Regexp
	StatName  *regexp.Regexp
	TableName *regexp.Regexp
}

// NewFilters compiles the three regex patterns from CLI flags (§6). An
// empty pattern compiles to a filter that matches everything.
func NewFilters(hostnamePattern, statNamePattern, tableNamePattern string) (Filters, error) {
	hostname, err := compileOrMatchAll(hostnamePattern)
	if err != nil {
		return Filters{}, cnsErrors.WrapWithContext(cnsErrors.ErrCodeInput, "invalid --hostname-match pattern", err,
			map[string]any{"pattern": hostnamePattern})
	}
	statName, err := compileOrMatchAll(statNamePattern)
	if err != nil {
		return Filters{}, cnsErrors.WrapWithContext(cnsErrors.ErrCodeInput, "invalid --stat-name-match pattern", err,
			map[string]any{"pattern": statNamePattern})
	}
	tableName, err := compileOrMatchAll(tableNamePattern)
	if err != nil {
		return Filters{}, cnsErrors.WrapWithContext(cnsErrors.ErrCodeInput, "invalid --table-name-match pattern", err,
			map[string]any{"pattern": tableNamePattern})
	}
	return Filters{Hostname: hostname, StatName: statName, TableName: tableName}, nil
}

func compileOrMatchAll(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return regexp.MustCompile(".*"), nil
	}
	return regexp.Compile(pattern)
}

// matchAll compiles once and is shared by every zero-value Filters so a
// caller that forgets NewFilters still gets "match everything" instead of
// a nil-pointer panic.
var matchAll = regexp.MustCompile(".*")

// EnsureDefaults fills any unset (nil) filter with one that matches
// everything, so a zero-value Filters behaves like NewFilters("","","").
func (f Filters) EnsureDefaults() Filters {
	if f.Hostname == nil {
		f.Hostname = matchAll
	}
	if f.StatName == nil {
		f.StatName = matchAll
	}
	if f.TableName == nil {
		f.TableName = matchAll
	}
	return f
}

// MatchValue reports whether a ValueRow passes all three filters. An
// empty table name is matched against TableName like any other value, so
// a non-trivial --table-name-match correctly suppresses cluster/server
// rows rather than letting them through unconditionally.
func (f Filters) MatchValue(row ValueRow) bool {
	return f.Hostname.MatchString(row.Key.HostnamePort) &&
		f.StatName.MatchString(row.Key.Name) &&
		f.TableName.MatchString(row.Attributes.TableName)
}

// MatchCountSum reports whether a CountSumRow passes all three filters,
// the same way MatchValue does.
func (f Filters) MatchCountSum(row CountSumRow) bool {
	return f.Hostname.MatchString(row.Key.HostnamePort) &&
		f.StatName.MatchString(row.Key.Name) &&
		f.TableName.MatchString(row.Attributes.TableName)
}

// MatchCountSumRows reports whether a CountSumRowsRow passes the hostname
// and stat-name filters. CountSumRowsRow carries no table context, so the
// table-name filter does not apply to this row kind.
func (f Filters) MatchCountSumRows(row CountSumRowsRow) bool {
	return f.Hostname.MatchString(row.Key.HostnamePort) &&
		f.StatName.MatchString(row.Key.Name)
}

// SortValueRows orders rows by canonical key with a stable lexicographic
// comparison (§4.7) so diffs are reproducible.
func SortValueRows(rows []ValueRow) {
	sort.Slice(rows, func(i, j int) bool {
		return compareMetricKeys(rows[i].Key, rows[j].Key)
	})
}

// SortCountSumRows orders CountSum rows the same way.
func SortCountSumRows(rows []CountSumRow) {
	sort.Slice(rows, func(i, j int) bool {
		return compareMetricKeys(rows[i].Key, rows[j].Key)
	})
}

// SortCountSumRowsRows orders CountSumRowsRow the same way as the other
// two metric kinds, by canonical key (§5).
func SortCountSumRowsRows(rows []CountSumRowsRow) {
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i].Key, rows[j].Key
		if a.HostnamePort != b.HostnamePort {
			return a.HostnamePort < b.HostnamePort
		}
		if a.MetricType != b.MetricType {
			return a.MetricType < b.MetricType
		}
		if a.ID != b.ID {
			return a.ID < b.ID
		}
		return a.Name < b.Name
	})
}

func compareMetricKeys(a, b model.MetricKey) bool {
	if a.HostnamePort != b.HostnamePort {
		return a.HostnamePort < b.HostnamePort
	}
	if a.MetricType != b.MetricType {
		return a.MetricType < b.MetricType
	}
	if a.IDOrDash != b.IDOrDash {
		return a.IDOrDash < b.IDOrDash
	}
	return a.Name < b.Name
}
