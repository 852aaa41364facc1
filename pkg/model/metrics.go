package model

// MetricType classifies what a metric entity is attached to.
type MetricType string

const (
	MetricTypeServer MetricType = "server"
	MetricTypeCluster MetricType = "cluster"
	MetricTypeTable   MetricType = "table"
	MetricTypeTablet  MetricType = "tablet"
	MetricTypeCDC     MetricType = "cdc"
	MetricTypeCDCSDK  MetricType = "cdcsdk"
)

// IsPerObject reports whether this metric type is keyed by a concrete
// object id (table/tablet/cdc/cdcsdk) rather than shared across a whole
// server or cluster.
func (t MetricType) IsPerObject() bool {
	switch t {
	case MetricTypeTable, MetricTypeTablet, MetricTypeCDC, MetricTypeCDCSDK:
		return true
	default:
		return false
	}
}

// IDOrDash collapses the id to "-" for non-per-object metric types, so
// server/cluster metrics (which share a well-known id such as
// "yb.master") key uniquely per host instead of by that shared id.
func (t MetricType) IDOrDash(id string) string {
	if t.IsPerObject() {
		return id
	}
	return "-"
}

// MetricAttributes carries the optional identifying context a metric
// entity may report alongside its id.
type MetricAttributes struct {
	Namespace string `json:"namespace,omitempty"`
	TableName string `json:"table_name,omitempty"`
	TableID   string `json:"table_id,omitempty"`
}

// MetricKey is the canonical key shared by Value and CountSum
// observations (§4.5): non-per-object metric types collapse their id to
// "-" so they don't collide on a shared well-known identifier.
type MetricKey struct {
	HostnamePort string
	MetricType   MetricType
	IDOrDash     string
	Name         string
}

// CountSumRowsKey is the canonical key for CountSumRows observations,
// which (unlike Value/CountSum) key on the raw object id rather than
// collapsing non-per-object types to "-".
type CountSumRowsKey struct {
	HostnamePort string
	MetricType   MetricType
	ID           string
	Name         string
}

// ValueObservation is a single integer-valued metric sample.
type ValueObservation struct {
	Envelope
	MetricType MetricType       `json:"metric_type"`
	ID         string           `json:"id"`
	Attributes MetricAttributes `json:"attributes"`
	Name       string           `json:"name"`
	Value      int64            `json:"value"`
}

// Key returns this observation's canonical diff key.
func (v ValueObservation) Key() MetricKey {
	return MetricKey{
		HostnamePort: v.HostnamePort,
		MetricType:   v.MetricType,
		IDOrDash:     v.MetricType.IDOrDash(v.ID),
		Name:         v.Name,
	}
}

// CountSumObservation is a coarse histogram: count, sum, min/max/mean and
// a fixed set of percentiles.
type CountSumObservation struct {
	Envelope
	MetricType     MetricType       `json:"metric_type"`
	ID             string           `json:"id"`
	Attributes     MetricAttributes `json:"attributes"`
	Name           string           `json:"name"`
	TotalCount     uint64           `json:"total_count"`
	TotalSum       uint64           `json:"total_sum"`
	Min            int64            `json:"min"`
	Max            int64            `json:"max"`
	Mean           float64          `json:"mean"`
	Percentile75   uint64           `json:"percentile_75"`
	Percentile95   uint64           `json:"percentile_95"`
	Percentile99   uint64           `json:"percentile_99"`
	Percentile999  uint64           `json:"percentile_99_9"`
	Percentile9999 uint64           `json:"percentile_99_99"`
}

// Key returns this observation's canonical diff key.
func (c CountSumObservation) Key() MetricKey {
	return MetricKey{
		HostnamePort: c.HostnamePort,
		MetricType:   c.MetricType,
		IDOrDash:     c.MetricType.IDOrDash(c.ID),
		Name:         c.Name,
	}
}

// CountSumRowsObservation reports call count, summed latency (microseconds)
// and summed row count for a statement-shaped metric.
type CountSumRowsObservation struct {
	Envelope
	MetricType MetricType       `json:"metric_type"`
	ID         string           `json:"id"`
	Attributes MetricAttributes `json:"attributes"`
	Name       string           `json:"name"`
	Count      uint64           `json:"count"`
	Sum        uint64           `json:"sum"`
	Rows       uint64           `json:"rows"`
}

// Key returns this observation's canonical diff key.
func (c CountSumRowsObservation) Key() CountSumRowsKey {
	return CountSumRowsKey{
		HostnamePort: c.HostnamePort,
		MetricType:   c.MetricType,
		ID:           c.ID,
		Name:         c.Name,
	}
}

// MetricBatch is everything pkg/decode extracts from one node's /metrics
// response: the three observation variants, already classified and with
// rejected observations (§3) dropped.
type MetricBatch struct {
	Values       []ValueObservation
	CountSums    []CountSumObservation
	CountSumRows []CountSumRowsObservation
}
