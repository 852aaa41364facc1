package decode

import (
	"encoding/json"
	"log/slog"

	"github.com/yugabyte/ybstats/pkg/model"
)

// DecodeMasters decodes /api/v1/masters into a list of Master rows.
func DecodeMasters(body []byte, env model.Envelope) []model.Master {
	if len(body) == 0 {
		return nil
	}
	var raw struct {
		Masters []model.Master `json:"masters"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("decode: malformed /api/v1/masters payload", "error", err)
		return nil
	}
	for i := range raw.Masters {
		raw.Masters[i].Envelope = env
	}
	return raw.Masters
}

// DecodeTabletServers decodes /api/v1/tablet-servers into a list of
// TabletServer rows.
func DecodeTabletServers(body []byte, env model.Envelope) []model.TabletServer {
	if len(body) == 0 {
		return nil
	}
	var raw struct {
		TabletServers []model.TabletServer `json:"tablet_servers"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("decode: malformed /api/v1/tablet-servers payload", "error", err)
		return nil
	}
	for i := range raw.TabletServers {
		raw.TabletServers[i].Envelope = env
	}
	return raw.TabletServers
}

// DecodeVersion decodes /api/v1/version, a flat key/value object, into a
// list of VersionLine rows (one per top-level field).
func DecodeVersion(body []byte, env model.Envelope) []model.VersionLine {
	return decodeKeyValueObject(body, env, "/api/v1/version")
}

// DecodeVarz decodes /varz, a flat gflags object, into a list of VarzLine
// rows.
func DecodeVarz(body []byte, env model.Envelope) []model.VarzLine {
	lines := decodeKeyValueObject(body, env, "/varz")
	out := make([]model.VarzLine, len(lines))
	for i, l := range lines {
		out[i] = model.VarzLine{Envelope: l.Envelope, Key: l.Key, Value: l.Value}
	}
	return out
}

func decodeKeyValueObject(body []byte, env model.Envelope, source string) []model.VersionLine {
	if len(body) == 0 {
		return nil
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("decode: malformed key/value payload", "source", source, "error", err)
		return nil
	}
	lines := make([]model.VersionLine, 0, len(raw))
	for key, val := range raw {
		lines = append(lines, model.VersionLine{
			Envelope: env,
			Key:      key,
			Value:    decodeScalarAsString(val),
		})
	}
	return lines
}

func decodeScalarAsString(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	return string(raw)
}

// DecodeIsLeader decodes /api/v1/is-leader. YugabyteDB's master leader
// answers this endpoint with HTTP 200 and a body; every other master
// returns a non-2xx status, which pkg/fetch.Fetcher collapses to an
// empty body indistinguishable from an unreachable host — either way, a
// non-leader contributes nothing here.
func DecodeIsLeader(body []byte, env model.Envelope) model.MasterLeader {
	if len(body) == 0 {
		return model.MasterLeader{}
	}
	return model.MasterLeader{Envelope: env}
}

// DecodeHealthCheck decodes /api/v1/health-check into a list of
// HealthItem rows: one per failed tablet, one per under-replicated
// tablet.
func DecodeHealthCheck(body []byte, env model.Envelope) []model.HealthItem {
	if len(body) == 0 {
		return nil
	}
	var raw struct {
		FailedTablets          []string `json:"failed_tablets"`
		UnderReplicatedTablets []string `json:"under_replicated_tablets"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("decode: malformed /api/v1/health-check payload", "error", err)
		return nil
	}
	items := make([]model.HealthItem, 0, len(raw.FailedTablets)+len(raw.UnderReplicatedTablets))
	for _, id := range raw.FailedTablets {
		items = append(items, model.HealthItem{Envelope: env, Category: model.HealthCategoryFailedTablet, SubjectID: id})
	}
	for _, id := range raw.UnderReplicatedTablets {
		items = append(items, model.HealthItem{Envelope: env, Category: model.HealthCategoryUnderReplicatedTablet, SubjectID: id})
	}
	return items
}
