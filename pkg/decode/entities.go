package decode

import (
	"encoding/json"
	"log/slog"

	"github.com/yugabyte/ybstats/pkg/model"
)

type rawEntities struct {
	Keyspaces []model.Keyspace `json:"keyspaces"`
	Tables    []model.Table    `json:"tables"`
	Tablets   []model.Tablet   `json:"tablets"`
}

// DecodeEntities decodes one node's /dump-entities response, stamping
// every row with the shared envelope.
func DecodeEntities(body []byte, env model.Envelope) model.Entities {
	if len(body) == 0 {
		return model.Entities{}
	}

	var raw rawEntities
	if err := json.Unmarshal(body, &raw); err != nil {
		slog.Debug("decode: malformed /dump-entities payload", "error", err)
		return model.Entities{}
	}

	for i := range raw.Keyspaces {
		raw.Keyspaces[i].Envelope = env
	}
	for i := range raw.Tables {
		raw.Tables[i].Envelope = env
	}
	for i := range raw.Tablets {
		raw.Tablets[i].Envelope = env
	}

	return model.Entities{Keyspaces: raw.Keyspaces, Tables: raw.Tables, Tablets: raw.Tablets}
}
