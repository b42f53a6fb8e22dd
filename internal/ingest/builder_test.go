package ingest

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/murl-digital/throw-cruncher/internal/cache"
	"github.com/murl-digital/throw-cruncher/internal/model"
	"github.com/murl-digital/throw-cruncher/internal/parse"
)

func newTestBuilder() *Builder {
	return NewBuilder(nil, 1)
}

func TestBuilder_CleanRecord(t *testing.T) {
	rec, err := newTestBuilder().Record(NewCursor([]string{"No", "2", "4.5"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.WouldThrow {
		t.Error("WouldThrow = true, want false")
	}
	if rec.ExpectedRancidness == nil || *rec.ExpectedRancidness != 2 {
		t.Errorf("ExpectedRancidness = %v, want 2", rec.ExpectedRancidness)
	}
	if rec.DesiredRancidness == nil || *rec.DesiredRancidness != 4.5 {
		t.Errorf("DesiredRancidness = %v, want 4.5", rec.DesiredRancidness)
	}
	if rec.Notes != "" {
		t.Errorf("Notes = %q, want empty for a clean row", rec.Notes)
	}
}

func TestBuilder_FreshFallback(t *testing.T) {
	// would_throw="Yes", expected="3", desired="Fresh" is the canonical
	// recovery case: the word stands in for the bottom of the scale.
	rec, err := newTestBuilder().Record(NewCursor([]string{"Yes", "3", "Fresh"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !rec.WouldThrow {
		t.Error("WouldThrow = false, want true")
	}
	if rec.ExpectedRancidness == nil || *rec.ExpectedRancidness != 3 {
		t.Errorf("ExpectedRancidness = %v, want 3", rec.ExpectedRancidness)
	}
	if rec.DesiredRancidness == nil || *rec.DesiredRancidness != 1 {
		t.Errorf("DesiredRancidness = %v, want 1 via fresh fallback", rec.DesiredRancidness)
	}
	if rec.Notes != "Fresh" {
		t.Errorf("Notes = %q, want %q", rec.Notes, "Fresh")
	}
}

func TestBuilder_FreshFallbackCaseInsensitive(t *testing.T) {
	rec, err := newTestBuilder().Record(NewCursor([]string{"No", "FRESH as can be", "2"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ExpectedRancidness == nil || *rec.ExpectedRancidness != 1 {
		t.Errorf("ExpectedRancidness = %v, want 1 via fresh fallback", rec.ExpectedRancidness)
	}
}

func TestBuilder_FreshWithNumberPrefersNumber(t *testing.T) {
	// The fallback only applies to total failures; an embedded number wins.
	rec, err := newTestBuilder().Record(NewCursor([]string{"No", "2 but fresh", "3"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ExpectedRancidness == nil || *rec.ExpectedRancidness != 2 {
		t.Errorf("ExpectedRancidness = %v, want 2", rec.ExpectedRancidness)
	}
	if rec.Notes != "2 but fresh" {
		t.Errorf("Notes = %q, want the original text", rec.Notes)
	}
}

func TestBuilder_NoteSeparator(t *testing.T) {
	rec, err := newTestBuilder().Record(NewCursor([]string{"No", "about 2 i think", "unsure"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if rec.ExpectedRancidness == nil || *rec.ExpectedRancidness != 2 {
		t.Errorf("ExpectedRancidness = %v, want 2", rec.ExpectedRancidness)
	}
	if rec.DesiredRancidness != nil {
		t.Errorf("DesiredRancidness = %v, want nil", *rec.DesiredRancidness)
	}
	if want := "about 2 i think | unsure"; rec.Notes != want {
		t.Errorf("Notes = %q, want %q", rec.Notes, want)
	}
}

func TestBuilder_SecondNoteOnly(t *testing.T) {
	// No separator when the expected rating parsed cleanly.
	rec, err := newTestBuilder().Record(NewCursor([]string{"No", "3", "unsure"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.Notes != "unsure" {
		t.Errorf("Notes = %q, want %q", rec.Notes, "unsure")
	}
}

func TestBuilder_MalformedBoolean(t *testing.T) {
	_, err := newTestBuilder().Record(NewCursor([]string{"maybe", "1", "2"}))
	if err == nil {
		t.Fatal("expected error for malformed boolean")
	}
	var malformed *parse.MalformedBooleanError
	if !errors.As(err, &malformed) {
		t.Errorf("expected MalformedBooleanError, got %T", err)
	}
}

func TestBuilder_EndOfRow(t *testing.T) {
	_, err := newTestBuilder().Record(NewCursor([]string{"Yes", "3"}))
	if err == nil {
		t.Fatal("expected error for exhausted row")
	}
	var endOfRow *UnexpectedEndOfRowError
	if !errors.As(err, &endOfRow) {
		t.Errorf("expected UnexpectedEndOfRowError, got %T", err)
	}
}

func TestBuilder_Response(t *testing.T) {
	cells := make([]string, 0, len(model.Items)*3)
	for range model.Items {
		cells = append(cells, "Yes", "3", "Fresh")
	}

	resp, err := newTestBuilder().Response(cells)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(resp) != len(model.Items) {
		t.Fatalf("got %d records, want %d", len(resp), len(model.Items))
	}
	for _, name := range model.Items {
		rec, ok := resp[name]
		if !ok {
			t.Fatalf("missing record for %s", name)
		}
		if !rec.WouldThrow || rec.DesiredRancidness == nil || *rec.DesiredRancidness != 1 {
			t.Errorf("%s: unexpected record %+v", name, rec)
		}
	}
}

func TestBuilder_ResponseShortRow(t *testing.T) {
	cells := []string{"Yes", "3", "2", "No"} // one full item plus a dangling flag

	_, err := newTestBuilder().Response(cells)
	if err == nil {
		t.Fatal("expected error for short row")
	}
	var endOfRow *UnexpectedEndOfRowError
	if !errors.As(err, &endOfRow) {
		t.Errorf("expected UnexpectedEndOfRowError, got %T", err)
	}
	// The error names the item whose cells ran out.
	if !strings.Contains(err.Error(), model.Items[1]) {
		t.Errorf("error %q should name item %q", err, model.Items[1])
	}
}

func TestBuilder_MemoizedParsing(t *testing.T) {
	memo := cache.NewMemoryCache(time.Minute, time.Minute)
	b := NewBuilder(memo, 1)

	first, err := b.Record(NewCursor([]string{"No", "about 2", "about 2"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := b.Record(NewCursor([]string{"No", "about 2", "3"}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.ExpectedRancidness == nil || second.ExpectedRancidness == nil {
		t.Fatal("expected recovered values on both records")
	}
	if *first.ExpectedRancidness != 2 || *second.ExpectedRancidness != 2 {
		t.Errorf("memoized values = %v, %v, want 2, 2", *first.ExpectedRancidness, *second.ExpectedRancidness)
	}
	if first.ExpectedRancidness == second.ExpectedRancidness {
		t.Error("records must not share a value pointer with the memo")
	}
	if want := "about 2 | about 2"; first.Notes != want {
		t.Errorf("Notes = %q, want %q", first.Notes, want)
	}
}
