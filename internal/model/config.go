package model

import "time"

// Config holds the complete throw-cruncher configuration
type Config struct {
	Input       InputConfig       `yaml:"input" mapstructure:"input"`
	Scale       ScaleConfig       `yaml:"scale" mapstructure:"scale"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// InputConfig describes the shape of the survey export
type InputConfig struct {
	HasHeader   bool `yaml:"has_header" mapstructure:"has_header"`     // first CSV line is a header row
	MetaColumns int  `yaml:"meta_columns" mapstructure:"meta_columns"` // leading non-item columns per row
}

// ScaleConfig documents the rating scale bounds
type ScaleConfig struct {
	Min float64 `yaml:"min" mapstructure:"min"`
	Max float64 `yaml:"max" mapstructure:"max"`
}

// ConcurrencyConfig controls parallel row parsing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// CacheConfig controls the parse-outcome memo cache
type CacheConfig struct {
	Enabled bool          `yaml:"enabled" mapstructure:"enabled"`
	TTL     time.Duration `yaml:"ttl" mapstructure:"ttl"`
}

// OutputConfig controls artifact rendering
type OutputConfig struct {
	Dir     string `yaml:"dir" mapstructure:"dir"`
	Verbose bool   `yaml:"verbose" mapstructure:"verbose"`
}

// LLMConfig holds optional summarizer settings. The summary never alters
// any artifact; it is generated last, from the finished report.
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "" disables the summarizer
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"`
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns the standard configuration
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{
			HasHeader:   true,
			MetaColumns: 3,
		},
		Scale: ScaleConfig{
			Min: 1,
			Max: 5,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 1,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     5 * time.Minute,
		},
		Output: OutputConfig{
			Dir: ".",
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}
