package llm

import (
	"context"
	"fmt"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// Summarizer wraps a provider and renders its output as a Markdown
// artifact. The summary is generated after every data artifact is written
// and never feeds back into them.
type Summarizer struct {
	provider Provider
	config   Config
}

// NewSummarizer creates a summarizer for the configured provider
func NewSummarizer(config Config) (*Summarizer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Summarizer{
		provider: provider,
		config:   config,
	}, nil
}

// IsEnabled reports whether a provider is configured
func (s *Summarizer) IsEnabled() bool {
	return s != nil && s.provider != nil
}

// Summarize generates a Markdown data-quality summary of the report
func (s *Summarizer) Summarize(ctx context.Context, report model.Report, rows int) (string, error) {
	resp, err := s.provider.Summarize(ctx, SummarizeRequest{
		Report:    report,
		Rows:      rows,
		Model:     s.config.Model,
		MaxTokens: s.config.MaxTokens,
	})
	if err != nil {
		return "", err
	}

	md := "# Survey Summary\n\n"
	md += resp.Summary + "\n\n"
	md += fmt.Sprintf("---\n\n*Generated by %s/%s from the aggregate report; the numbers in the data artifacts are authoritative.*\n", s.provider.Name(), resp.Model)
	return md, nil
}
