package cache

import (
	"testing"
	"time"

	"github.com/murl-digital/throw-cruncher/internal/parse"
)

func TestMemoryCache_RoundTrip(t *testing.T) {
	c := NewMemoryCache(time.Minute, time.Minute)

	if _, found := c.Get("about 2"); found {
		t.Fatal("expected miss on empty cache")
	}

	v := 2.0
	c.Set("about 2", parse.Outcome{Value: &v, Note: "about 2"})

	out, found := c.Get("about 2")
	if !found {
		t.Fatal("expected hit after Set")
	}
	if out.Value == nil || *out.Value != 2 {
		t.Errorf("cached value = %v, want 2", out.Value)
	}
	if out.Note != "about 2" {
		t.Errorf("cached note = %q, want %q", out.Note, "about 2")
	}
}

func TestKey_DistinguishesValues(t *testing.T) {
	if Key("3") == Key("3 ") {
		t.Error("keys for distinct raw cells should differ")
	}
}
