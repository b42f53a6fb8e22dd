package worker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// markerBuild fakes row parsing by stashing the first cell in a record's
// notes, so order can be checked without a real builder.
func markerBuild(cells []string) (model.Response, error) {
	if cells[0] == "boom" {
		return nil, errors.New("bad row")
	}
	return model.Response{"artichoke": model.ItemRecord{Notes: cells[0]}}, nil
}

func TestRowProcessor_PreservesOrder(t *testing.T) {
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{string(rune('a' + i%26))}
	}

	for _, workers := range []int{1, 4} {
		p := NewRowProcessor(markerBuild, workers)
		responses, err := p.Process(context.Background(), rows)
		if err != nil {
			t.Fatalf("workers=%d: unexpected error: %v", workers, err)
		}
		if len(responses) != len(rows) {
			t.Fatalf("workers=%d: got %d responses, want %d", workers, len(responses), len(rows))
		}
		for i, resp := range responses {
			if got := resp["artichoke"].Notes; got != rows[i][0] {
				t.Errorf("workers=%d: row %d out of order: got %q, want %q", workers, i, got, rows[i][0])
			}
		}
	}
}

func TestRowProcessor_FailFastReportsFirstRow(t *testing.T) {
	rows := [][]string{{"a"}, {"b"}, {"boom"}, {"d"}, {"boom"}}

	for _, workers := range []int{1, 4} {
		p := NewRowProcessor(markerBuild, workers)
		_, err := p.Process(context.Background(), rows)
		if err == nil {
			t.Fatalf("workers=%d: expected error", workers)
		}
		if !strings.Contains(err.Error(), "row 3") {
			t.Errorf("workers=%d: error %q should name row 3", workers, err)
		}
	}
}

func TestRowProcessor_EmptyBatch(t *testing.T) {
	p := NewRowProcessor(markerBuild, 4)
	responses, err := p.Process(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(responses) != 0 {
		t.Errorf("got %d responses, want 0", len(responses))
	}
}

func TestRowProcessor_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	p := NewRowProcessor(markerBuild, 2)
	_, err := p.Process(ctx, [][]string{{"a"}})
	if err == nil {
		t.Fatal("expected context error")
	}
}
