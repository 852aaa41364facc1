package decode

import (
	"encoding/json"
	"log/slog"

	"github.com/yugabyte/ybstats/pkg/model"
)

// DecodeRpcz discriminates one node's /rpcz response into one of the
// three shapes (§3, §4.2): an object with a connections key, or a bare
// array of connections, means YSQL connections; an object with
// inbound_connections means a tablet server's inbound/outbound shape;
// anything else (including empty body) is the empty shape.
func DecodeRpcz(body []byte, env model.Envelope) model.Rpcz {
	if len(body) == 0 {
		return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
	}

	switch firstNonSpace(body) {
	case '[':
		var conns []model.YSQLConnection
		if err := json.Unmarshal(body, &conns); err != nil {
			slog.Debug("decode: malformed ysql /rpcz payload", "error", err)
			return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
		}
		for i := range conns {
			conns[i].Envelope = env
		}
		return model.Rpcz{Envelope: env, Shape: model.RpczShapeYSQL, YSQLConnections: conns}

	case '{':
		var probe map[string]json.RawMessage
		if err := json.Unmarshal(body, &probe); err != nil {
			slog.Debug("decode: malformed /rpcz object payload", "error", err)
			return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
		}
		if hasField(probe, "connections") {
			var ysql struct {
				Connections []model.YSQLConnection `json:"connections"`
			}
			if err := json.Unmarshal(body, &ysql); err != nil {
				slog.Debug("decode: malformed ysql /rpcz payload", "error", err)
				return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
			}
			for i := range ysql.Connections {
				ysql.Connections[i].Envelope = env
			}
			return model.Rpcz{Envelope: env, Shape: model.RpczShapeYSQL, YSQLConnections: ysql.Connections}
		}
		if !hasField(probe, "inbound_connections") {
			return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
		}
		var io model.InboundOutboundConnections
		if err := json.Unmarshal(body, &io); err != nil {
			slog.Debug("decode: malformed tablet-server /rpcz payload", "error", err)
			return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
		}
		io.Envelope = env
		return model.Rpcz{Envelope: env, Shape: model.RpczShapeInboundOutbound, TabletServer: &io}

	default:
		return model.Rpcz{Envelope: env, Shape: model.RpczShapeEmpty}
	}
}

func firstNonSpace(body []byte) byte {
	for _, b := range body {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b
		}
	}
	return 0
}
