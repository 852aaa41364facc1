package decode

import (
	"encoding/json"
	"log/slog"

	"github.com/yugabyte/ybstats/pkg/model"
)

type rawMetricEntity struct {
	Type       model.MetricType      `json:"type"`
	ID         string                 `json:"id"`
	Attributes model.MetricAttributes `json:"attributes"`
	Metrics    []json.RawMessage      `json:"metrics"`
}

// DecodeMetrics decodes one node's /metrics response into the three
// observation variants, discriminating each metric object by field
// presence (value / total_count / count) and dropping rejected
// observations (§3): zero/overflowing Value observations, CountSum
// observations with total_count == 0, CountSumRows observations with
// count == 0.
func DecodeMetrics(body []byte, env model.Envelope) model.MetricBatch {
	var batch model.MetricBatch
	if len(body) == 0 {
		return batch
	}

	var entities []rawMetricEntity
	if err := json.Unmarshal(body, &entities); err != nil {
		slog.Debug("decode: malformed /metrics payload", "error", err)
		return batch
	}

	for _, entity := range entities {
		for _, raw := range entity.Metrics {
			decodeOneMetric(&batch, env, entity, raw)
		}
	}
	return batch
}

func decodeOneMetric(batch *model.MetricBatch, env model.Envelope, entity rawMetricEntity, raw json.RawMessage) {
	var probe map[string]json.RawMessage
	if err := json.Unmarshal(raw, &probe); err != nil {
		slog.Debug("decode: malformed metric observation", "error", err)
		return
	}

	name := decodeStringField(probe["name"])

	switch {
	case hasField(probe, "total_count"):
		var shape struct {
			TotalCount     uint64  `json:"total_count"`
			TotalSum       uint64  `json:"total_sum"`
			Min            int64   `json:"min"`
			Max            int64   `json:"max"`
			Mean           float64 `json:"mean"`
			Percentile75   uint64  `json:"percentile_75"`
			Percentile95   uint64  `json:"percentile_95"`
			Percentile99   uint64  `json:"percentile_99"`
			Percentile999  uint64  `json:"percentile_99_9"`
			Percentile9999 uint64  `json:"percentile_99_99"`
		}
		if err := json.Unmarshal(raw, &shape); err != nil {
			slog.Debug("decode: malformed count-sum metric", "error", err)
			return
		}
		if shape.TotalCount == 0 {
			return
		}
		batch.CountSums = append(batch.CountSums, model.CountSumObservation{
			Envelope: env, MetricType: entity.Type, ID: entity.ID, Attributes: entity.Attributes,
			Name: name, TotalCount: shape.TotalCount, TotalSum: shape.TotalSum,
			Min: shape.Min, Max: shape.Max, Mean: shape.Mean,
			Percentile75: shape.Percentile75, Percentile95: shape.Percentile95,
			Percentile99: shape.Percentile99, Percentile999: shape.Percentile999,
			Percentile9999: shape.Percentile9999,
		})

	case hasField(probe, "count") && hasField(probe, "rows"):
		var shape struct {
			Count uint64 `json:"count"`
			Sum   uint64 `json:"sum"`
			Rows  uint64 `json:"rows"`
		}
		if err := json.Unmarshal(raw, &shape); err != nil {
			slog.Debug("decode: malformed count-sum-rows metric", "error", err)
			return
		}
		if shape.Count == 0 {
			return
		}
		batch.CountSumRows = append(batch.CountSumRows, model.CountSumRowsObservation{
			Envelope: env, MetricType: entity.Type, ID: entity.ID, Attributes: entity.Attributes,
			Name: name, Count: shape.Count, Sum: shape.Sum, Rows: shape.Rows,
		})

	case hasField(probe, "value"):
		var shape struct {
			Value json.Number `json:"value"`
		}
		if err := json.Unmarshal(raw, &shape); err != nil {
			slog.Debug("decode: malformed value metric", "error", err)
			return
		}
		v, ok := decodeSignedValue(shape.Value)
		if !ok || v == 0 {
			return
		}
		batch.Values = append(batch.Values, model.ValueObservation{
			Envelope: env, MetricType: entity.Type, ID: entity.ID, Attributes: entity.Attributes,
			Name: name, Value: v,
		})

	default:
		slog.Debug("decode: unrecognized metric observation shape", "name", name)
	}
}

// decodeSignedValue rejects booleans (json.Number never parses "true" so
// those already fail ok==false upstream) and u64 magnitudes that overflow
// i64, per the Value rejection rule in §3.
func decodeSignedValue(n json.Number) (int64, bool) {
	v, err := n.Int64()
	if err == nil {
		return v, true
	}
	// Value didn't fit in int64 (e.g. large uint64); reject per §3.
	return 0, false
}

func hasField(m map[string]json.RawMessage, key string) bool {
	_, ok := m[key]
	return ok
}

func decodeStringField(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	_ = json.Unmarshal(raw, &s)
	return s
}
