package worker

import (
	"context"
	"fmt"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// RowProcessor parses a batch of rows, concurrently when configured, while
// always returning results in input order.
type RowProcessor struct {
	build       BuildFunc
	concurrency int
}

// NewRowProcessor creates a new row processor
func NewRowProcessor(build BuildFunc, concurrency int) *RowProcessor {
	return &RowProcessor{
		build:       build,
		concurrency: concurrency,
	}
}

// Process parses every row. The ingest is fail-fast: the first failing row
// in input order aborts the batch, reported with its 1-based row number.
func (p *RowProcessor) Process(ctx context.Context, rows [][]string) ([]model.Response, error) {
	if len(rows) == 0 {
		return []model.Response{}, nil
	}

	if p.concurrency <= 1 {
		return p.processSequential(ctx, rows)
	}

	pool := NewPool(p.concurrency, p.build)
	pool.Start()

	for i, cells := range rows {
		if err := ctx.Err(); err != nil {
			pool.Shutdown()
			return nil, err
		}
		pool.Submit(RowJob{Index: i, Cells: cells})
	}

	results := pool.Wait()

	responses := make([]model.Response, len(rows))
	failedRow := -1
	var failure error
	for _, res := range results {
		if res.Err != nil {
			if failedRow == -1 || res.Index < failedRow {
				failedRow = res.Index
				failure = res.Err
			}
			continue
		}
		responses[res.Index] = res.Response
	}

	if failure != nil {
		return nil, fmt.Errorf("row %d: %w", failedRow+1, failure)
	}
	return responses, nil
}

func (p *RowProcessor) processSequential(ctx context.Context, rows [][]string) ([]model.Response, error) {
	responses := make([]model.Response, 0, len(rows))
	for i, cells := range rows {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		resp, err := p.build(cells)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		responses = append(responses, resp)
	}
	return responses, nil
}
