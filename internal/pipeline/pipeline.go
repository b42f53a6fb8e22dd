package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/murl-digital/throw-cruncher/internal/aggregate"
	"github.com/murl-digital/throw-cruncher/internal/cache"
	"github.com/murl-digital/throw-cruncher/internal/ingest"
	"github.com/murl-digital/throw-cruncher/internal/llm"
	"github.com/murl-digital/throw-cruncher/internal/model"
	"github.com/murl-digital/throw-cruncher/internal/normalize"
	"github.com/murl-digital/throw-cruncher/internal/store"
	"github.com/murl-digital/throw-cruncher/internal/worker"
)

// Pipeline orchestrates the complete ingest: read rows, build records,
// normalize, aggregate, render artifacts.
type Pipeline struct {
	builder    *ingest.Builder
	normalizer *normalize.Normalizer
	processor  *worker.RowProcessor
	renderer   *Renderer
	summarizer *llm.Summarizer // Optional LLM summarizer (nil if disabled)
	config     *model.Config
}

// NewPipeline creates a new pipeline with the given configuration
func NewPipeline(cfg *model.Config) *Pipeline {
	var memo cache.ScaleCache
	if cfg.Cache.Enabled {
		memo = cache.NewMemoryCache(cfg.Cache.TTL, 2*cfg.Cache.TTL)
	}

	builder := ingest.NewBuilder(memo, cfg.Scale.Min)

	var summarizer *llm.Summarizer
	if cfg.LLM.Provider != "" {
		s, err := llm.NewSummarizer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			summarizer = s
		}
	}

	return &Pipeline{
		builder:    builder,
		normalizer: normalize.NewNormalizer(cfg.Scale.Min, cfg.Scale.Max),
		processor:  worker.NewRowProcessor(builder.Response, cfg.Concurrency.Workers),
		renderer:   NewRenderer(),
		summarizer: summarizer,
		config:     cfg,
	}
}

// Result contains every collection an ingest produces.
type Result struct {
	Raw        []model.Response
	Normalized []model.Response
	Report     model.Report
	Rows       int
}

// Run ingests the survey at path. Any row-level failure (malformed boolean,
// exhausted row) aborts the whole dataset; rating noise never does.
func (p *Pipeline) Run(ctx context.Context, path string) (*Result, error) {
	rows, err := ReadRows(path, p.config.Input)
	if err != nil {
		return nil, err
	}

	raw, err := p.processor.Process(ctx, rows)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	normalized := make([]model.Response, len(raw))
	for i, resp := range raw {
		normalized[i] = p.normalizer.Response(resp)
	}

	report := aggregate.Aggregate(normalized)

	return &Result{
		Raw:        raw,
		Normalized: normalized,
		Report:     report,
		Rows:       len(rows),
	}, nil
}

// OutputPaths names the artifacts to write. Empty paths are skipped.
type OutputPaths struct {
	RawJSON        string
	NormalizedJSON string
	FlatCSV        string
	ReportCSV      string
	SQLite         string
	SummaryMD      string
}

// RenderResult writes the requested artifacts for a finished ingest.
func (p *Pipeline) RenderResult(ctx context.Context, result *Result, paths OutputPaths, verbose bool) error {
	if paths.RawJSON != "" {
		if err := p.renderer.RenderJSON(result.Raw, paths.RawJSON); err != nil {
			return fmt.Errorf("render raw JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote raw JSON: %s\n", paths.RawJSON)
		}
	}

	if paths.NormalizedJSON != "" {
		if err := p.renderer.RenderJSON(result.Normalized, paths.NormalizedJSON); err != nil {
			return fmt.Errorf("render normalized JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote normalized JSON: %s\n", paths.NormalizedJSON)
		}
	}

	if paths.FlatCSV != "" {
		if err := p.renderer.RenderFlattenedCSV(result.Normalized, paths.FlatCSV); err != nil {
			return fmt.Errorf("render flattened CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote flattened CSV: %s\n", paths.FlatCSV)
		}
	}

	if paths.ReportCSV != "" {
		if err := p.renderer.RenderReportCSV(result.Report, paths.ReportCSV); err != nil {
			return fmt.Errorf("render report CSV: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote report CSV: %s\n", paths.ReportCSV)
		}
	}

	if paths.SQLite != "" {
		if err := store.Write(paths.SQLite, result.Normalized, result.Report); err != nil {
			return fmt.Errorf("write sqlite: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote SQLite: %s\n", paths.SQLite)
		}
	}

	// Generate the LLM summary last; a failure here never invalidates the
	// artifacts already written.
	if p.summarizer != nil && p.summarizer.IsEnabled() && paths.SummaryMD != "" {
		summary, err := p.summarizer.Summarize(ctx, result.Report, result.Rows)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: LLM summary generation failed: %v\n", err)
		} else if err := os.WriteFile(paths.SummaryMD, []byte(summary), 0644); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write LLM summary: %v\n", err)
		} else if verbose {
			fmt.Printf("✓ Wrote LLM summary: %s\n", paths.SummaryMD)
		}
	}

	p.renderer.RenderSummary(result)

	return nil
}
