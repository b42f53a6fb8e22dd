package normalize

import (
	"reflect"
	"testing"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

func ptr(v float64) *float64 { return &v }

func TestNormalizer_Clamp(t *testing.T) {
	n := NewNormalizer(1, 5)

	tests := []struct {
		name string
		in   *float64
		want *float64
	}{
		{"below range", ptr(-2), ptr(1)},
		{"above range", ptr(9.5), ptr(5)},
		{"at lower bound", ptr(1), ptr(1)},
		{"at upper bound", ptr(5), ptr(5)},
		{"in range", ptr(3.5), ptr(3.5)},
		{"absent", nil, nil},
	}

	for _, tt := range tests {
		rec := n.Record(model.ItemRecord{ExpectedRancidness: tt.in, DesiredRancidness: tt.in})
		for field, got := range map[string]*float64{
			"expected": rec.ExpectedRancidness,
			"desired":  rec.DesiredRancidness,
		} {
			if (got == nil) != (tt.want == nil) {
				t.Errorf("%s: %s = %v, want %v", tt.name, field, got, tt.want)
				continue
			}
			if got != nil && *got != *tt.want {
				t.Errorf("%s: %s = %v, want %v", tt.name, field, *got, *tt.want)
			}
		}
	}
}

func TestNormalizer_PassThrough(t *testing.T) {
	n := NewNormalizer(1, 5)

	rec := n.Record(model.ItemRecord{
		WouldThrow:         true,
		ExpectedRancidness: ptr(12),
		Notes:              "12 at least",
	})

	if !rec.WouldThrow {
		t.Error("WouldThrow must pass through unchanged")
	}
	if rec.Notes != "12 at least" {
		t.Errorf("Notes = %q, must pass through unchanged", rec.Notes)
	}
}

func TestNormalizer_Idempotent(t *testing.T) {
	n := NewNormalizer(1, 5)

	resp := model.Response{
		"artichoke": {WouldThrow: true, ExpectedRancidness: ptr(7), DesiredRancidness: ptr(0.5), Notes: "7!!"},
		"avocado":   {ExpectedRancidness: ptr(3)},
		"banana":    {},
	}

	once := n.Response(resp)
	twice := n.Response(once)

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("normalizing twice changed the result:\nonce:  %+v\ntwice: %+v", once, twice)
	}

	if got := once["artichoke"].ExpectedRancidness; got == nil || *got != 5 {
		t.Errorf("artichoke expected = %v, want 5", got)
	}
	if got := once["artichoke"].DesiredRancidness; got == nil || *got != 1 {
		t.Errorf("artichoke desired = %v, want 1", got)
	}
}
