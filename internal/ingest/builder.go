package ingest

import (
	"fmt"
	"strings"

	"github.com/murl-digital/throw-cruncher/internal/cache"
	"github.com/murl-digital/throw-cruncher/internal/model"
	"github.com/murl-digital/throw-cruncher/internal/parse"
)

// NoteSeparator joins the expected and desired provenance notes when both
// rating cells needed recovery.
const NoteSeparator = " | "

// Builder assembles typed item records from raw survey cells.
type Builder struct {
	items      []string
	memo       cache.ScaleCache // nil disables memoization
	freshValue float64          // rating substituted by the fresh-word fallback
}

// NewBuilder creates a builder over the fixed item schema. freshValue is
// the bottom of the rating scale.
func NewBuilder(memo cache.ScaleCache, freshValue float64) *Builder {
	return &Builder{
		items:      model.Items,
		memo:       memo,
		freshValue: freshValue,
	}
}

// Record consumes the next three cells (would-throw flag, expected rating,
// desired rating) and assembles one item record. A malformed flag or an
// exhausted row aborts the whole row.
func (b *Builder) Record(cur *Cursor) (model.ItemRecord, error) {
	cell, err := cur.Next()
	if err != nil {
		return model.ItemRecord{}, err
	}
	wouldThrow, err := parse.WouldThrow(cell)
	if err != nil {
		return model.ItemRecord{}, fmt.Errorf("would_throw: %w", err)
	}

	var notes strings.Builder

	cell, err = cur.Next()
	if err != nil {
		return model.ItemRecord{}, err
	}
	expected := b.rating(cell, &notes)

	cell, err = cur.Next()
	if err != nil {
		return model.ItemRecord{}, err
	}
	desired := b.rating(cell, &notes)

	return model.ItemRecord{
		WouldThrow:         wouldThrow,
		ExpectedRancidness: expected,
		DesiredRancidness:  desired,
		Notes:              notes.String(),
	}, nil
}

// Response builds one record per tracked item from a row whose leading
// metadata columns have already been stripped.
func (b *Builder) Response(cells []string) (model.Response, error) {
	cur := NewCursor(cells)
	resp := make(model.Response, len(b.items))
	for _, name := range b.items {
		rec, err := b.Record(cur)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		resp[name] = rec
	}
	return resp, nil
}

// rating resolves one rating cell and appends provenance to notes when the
// strict parse failed. A cell with no extractable number that still mentions
// "fresh" resolves to the bottom of the scale: some respondents wrote the
// word instead of a rating, and 1 is what they meant.
func (b *Builder) rating(raw string, notes *strings.Builder) *float64 {
	out := b.scale(raw)

	if out.Note != "" {
		if notes.Len() > 0 {
			notes.WriteString(NoteSeparator)
		}
		notes.WriteString(out.Note)
	}

	if out.Value == nil {
		if strings.Contains(strings.ToLower(out.Note), "fresh") {
			v := b.freshValue
			return &v
		}
		return nil
	}

	// Copy so records never share a pointer with the memo cache.
	v := *out.Value
	return &v
}

// scale runs the best-effort parser through the memo cache when enabled
func (b *Builder) scale(raw string) parse.Outcome {
	if b.memo != nil {
		if out, found := b.memo.Get(raw); found {
			return out
		}
	}
	out := parse.Scale(raw)
	if b.memo != nil {
		b.memo.Set(raw, out)
	}
	return out
}
