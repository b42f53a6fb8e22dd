package worker

import (
	"context"
	"sync"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// BuildFunc parses one row's item cells into a response.
type BuildFunc func(cells []string) (model.Response, error)

// RowJob is one raw survey row awaiting parsing. Index is the 0-based data
// row position, used to restore input order after concurrent parsing.
type RowJob struct {
	Index int
	Cells []string
}

// RowResult pairs a parsed response with its original row position.
type RowResult struct {
	Index    int
	Response model.Response
	Err      error
}

// Pool fans row parsing out over a fixed set of goroutines. Rows are
// independent during parsing, so no shared state crosses workers beyond the
// read-only builder.
type Pool struct {
	workers    int
	build      BuildFunc
	jobQueue   chan RowJob
	results    chan RowResult
	wg         sync.WaitGroup
	ctx        context.Context
	cancelFunc context.CancelFunc
	closeOnce  sync.Once
}

// NewPool creates a worker pool with the specified number of workers
func NewPool(workers int, build BuildFunc) *Pool {
	if workers <= 0 {
		workers = 1
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Pool{
		workers:    workers,
		build:      build,
		jobQueue:   make(chan RowJob, workers*2), // Buffered to prevent blocking
		results:    make(chan RowResult, workers*2),
		ctx:        ctx,
		cancelFunc: cancel,
	}
}

// Start starts the worker pool
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.ctx.Done():
			return
		case job, ok := <-p.jobQueue:
			if !ok {
				return
			}
			resp, err := p.build(job.Cells)
			result := RowResult{Index: job.Index, Response: resp, Err: err}
			select {
			case p.results <- result:
			case <-p.ctx.Done():
				return
			}
		}
	}
}

// Submit submits a row to the pool for parsing
func (p *Pool) Submit(job RowJob) {
	select {
	case <-p.ctx.Done():
		return
	case p.jobQueue <- job:
	}
}

// Wait waits for all submitted rows to be parsed and returns the results
// in completion order.
func (p *Pool) Wait() []RowResult {
	close(p.jobQueue)

	go func() {
		p.wg.Wait()
		p.closeResults()
	}()

	var results []RowResult
	for result := range p.results {
		results = append(results, result)
	}

	return results
}

// Shutdown shuts down the worker pool immediately
func (p *Pool) Shutdown() {
	p.cancelFunc()
	p.wg.Wait()
	p.closeResults()
}

func (p *Pool) closeResults() {
	p.closeOnce.Do(func() {
		close(p.results)
	})
}
