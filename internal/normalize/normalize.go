package normalize

import (
	"github.com/murl-digital/throw-cruncher/internal/model"
)

// Normalizer clamps parsed ratings into the documented scale bounds. It is
// the only stage allowed to alter a numeric value after parsing.
type Normalizer struct {
	Min float64
	Max float64
}

// NewNormalizer creates a normalizer for the inclusive range [min, max]
func NewNormalizer(min, max float64) *Normalizer {
	return &Normalizer{Min: min, Max: max}
}

// Record returns a copy of rec with present ratings pulled to the nearest
// bound. Absent ratings stay absent; intent and notes pass through.
func (n *Normalizer) Record(rec model.ItemRecord) model.ItemRecord {
	rec.ExpectedRancidness = n.clamp(rec.ExpectedRancidness)
	rec.DesiredRancidness = n.clamp(rec.DesiredRancidness)
	return rec
}

// Response normalizes every item record in a row
func (n *Normalizer) Response(resp model.Response) model.Response {
	out := make(model.Response, len(resp))
	for name, rec := range resp {
		out[name] = n.Record(rec)
	}
	return out
}

func (n *Normalizer) clamp(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	if c < n.Min {
		c = n.Min
	}
	if c > n.Max {
		c = n.Max
	}
	return &c
}
