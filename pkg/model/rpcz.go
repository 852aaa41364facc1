package model

// RpczShape discriminates which of the three /rpcz response shapes a
// node returned (§3, §4.2): ysql connections, inbound/outbound tablet
// server connections, or an empty payload.
type RpczShape string

const (
	RpczShapeYSQL           RpczShape = "ysql"
	RpczShapeInboundOutbound RpczShape = "inbound_outbound"
	RpczShapeEmpty          RpczShape = "empty"
)

// YSQLConnection is one backend connection reported by a YSQL (PostgreSQL
// API) node's /rpcz.
type YSQLConnection struct {
	Envelope
	ProcessStartTime        string `json:"process_start_time"`
	ApplicationName         string `json:"application_name"`
	BackendType             string `json:"backend_type"`
	BackendStatus           string `json:"backend_status"`
	DBOid                   int64  `json:"db_oid,omitempty"`
	DBName                  string `json:"db_name,omitempty"`
	Host                    string `json:"host,omitempty"`
	Port                    int64  `json:"port,omitempty"`
	Query                   string `json:"query,omitempty"`
	QueryStartTime          string `json:"query_start_time,omitempty"`
	TransactionStartTime    string `json:"transaction_start_time,omitempty"`
	ProcessRunningForMs     int64  `json:"process_running_for_ms,omitempty"`
	TransactionRunningForMs int64  `json:"transaction_running_for_ms,omitempty"`
	QueryRunningForMs       int64  `json:"query_running_for_ms,omitempty"`
}

// CQLConnectionDetails is the CQL-specific portion of an inbound
// connection's details.
type CQLConnectionDetails struct {
	Keyspace string `json:"keyspace,omitempty"`
}

// ConnectionDetails wraps the protocol-specific connection details an
// inbound connection may carry.
type ConnectionDetails struct {
	CQLConnectionDetails *CQLConnectionDetails `json:"cql_connection_details,omitempty"`
}

// CQLCallDetail is one statement within a CQL batch call.
type CQLCallDetail struct {
	SQLID     string `json:"sql_id,omitempty"`
	SQLString string `json:"sql_string"`
	Params    string `json:"params,omitempty"`
}

// CQLDetails describes a CQL call in flight.
type CQLDetails struct {
	CallType    string          `json:"call_type"`
	CallDetails []CQLCallDetail `json:"call_details,omitempty"`
}

// RemoteMethod identifies a generic RPC call's target.
type RemoteMethod struct {
	ServiceName string `json:"service_name"`
	MethodName  string `json:"method_name"`
}

// CallHeader describes a generic (non-CQL) RPC call in flight.
type CallHeader struct {
	CallID        int64        `json:"call_id"`
	RemoteMethod  RemoteMethod `json:"remote_method"`
	TimeoutMillis int64        `json:"timeout_millis"`
}

// CallInFlight is one in-progress call on an inbound connection: either a
// CQL call (CQLDetails set) or a generic RPC call (Header set).
type CallInFlight struct {
	CQLDetails    *CQLDetails `json:"cql_details,omitempty"`
	Header        *CallHeader `json:"header,omitempty"`
	ElapsedMillis int64       `json:"elapsed_millis"`
	State         string      `json:"state,omitempty"`
}

// InboundConnection is one connection into a tablet server.
type InboundConnection struct {
	RemoteIP            string             `json:"remote_ip"`
	State               string             `json:"state"`
	ProcessedCallCount  int64              `json:"processed_call_count,omitempty"`
	ConnectionDetails   *ConnectionDetails `json:"connection_details,omitempty"`
	CallsInFlight       []CallInFlight     `json:"calls_in_flight,omitempty"`
}

// OutboundConnection is one connection a tablet server initiated to a peer.
type OutboundConnection struct {
	RemoteIP      string         `json:"remote_ip"`
	State         string         `json:"state"`
	CallsInFlight []CallInFlight `json:"calls_in_flight,omitempty"`
}

// InboundOutboundConnections is the tablet-server /rpcz shape: inbound
// connections are always present; outbound connections are optional.
type InboundOutboundConnections struct {
	Envelope
	InboundConnections  []InboundConnection  `json:"inbound_connections"`
	OutboundConnections []OutboundConnection `json:"outbound_connections,omitempty"`
}

// Rpcz is the decoded, shape-discriminated capture of one node's /rpcz
// response. Exactly one of the typed fields is populated, matching Shape.
type Rpcz struct {
	Envelope
	Shape           RpczShape
	YSQLConnections []YSQLConnection
	TabletServer    *InboundOutboundConnections
}
