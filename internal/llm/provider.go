package llm

import (
	"context"
	"fmt"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Summarize generates a data-quality summary of an aggregate report
	Summarize(ctx context.Context, req SummarizeRequest) (*SummarizeResponse, error)
}

// SummarizeRequest contains the input for LLM summarization
type SummarizeRequest struct {
	// Report is the aggregate report to summarize
	Report model.Report

	// Rows is the number of ingested survey responses
	Rows int

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// SummarizeResponse contains the LLM's summary output
type SummarizeResponse struct {
	// Summary is the generated summary text
	Summary string

	// Model is the model that generated the response
	Model string

	// TokensUsed tracks token consumption
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai", ""
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests
	Timeout int // seconds

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Provider:  "", // Disabled by default
		Timeout:   30,
		MaxTokens: 1000,
	}
}

// ConfigFromModel converts the application LLM settings
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// BuildPrompt constructs the default summarization prompt. The numbers are
// already final when this runs; the model comments on them, it never
// produces them.
func BuildPrompt(report model.Report, rows int) string {
	prompt := fmt.Sprintf(`You are summarizing the aggregate results of a produce-spoilage survey. %d respondents rated how rancid they expect each item to be before throwing it out (scale 1-5, 1 = fresh) and how rancid they would want it to be, plus a yes/no "would you throw it out" intent.

CRITICAL RULES:
1. Use ONLY the numbers below. Do not invent, recompute, or extrapolate values.
2. An average of 0 means no respondent gave a usable rating for that field, not a rating of zero.
3. Focus on data quality and notable skews (items everyone would throw, large gaps between expected and desired).

Per-item results (would throw / would not, avg expected, avg desired):
`, rows)

	for _, name := range model.Items {
		stats := report[name]
		prompt += fmt.Sprintf("- %s: %d/%d, %.2f, %.2f\n",
			name, stats.WouldThrowCount, stats.WouldNotThrowCount,
			stats.AverageExpectedRancidness, stats.AverageDesiredRancidness)
	}

	prompt += "\nProvide a 4-6 sentence summary of the dataset's quality and the clearest patterns."

	return prompt
}
