package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/murl-digital/throw-cruncher/internal/model"
	"github.com/murl-digital/throw-cruncher/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	outDir         string
	rawJSON        string
	normalizedJSON string
	flatCSV        string
	reportCSV      string
	sqlitePath     string
	summaryMD      string
	metaColumns    int
	concurrency    int
	noCache        bool
	ingestTimeout  time.Duration
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <survey.csv>",
	Short: "Ingest a survey export and write all result artifacts",
	Long: `Ingest parses every row of a survey export:
- Recover a numeric rating from each free-text cell where possible
- Keep the original text of every cell that needed recovery
- Clamp ratings into the documented 1-5 scale
- Aggregate per-item counts and running averages

The ingest is all-or-nothing: a malformed would-throw flag or a row with
missing cells aborts the whole dataset, because either one means the export
does not match the schema.

Example:
  throw-cruncher ingest throwcsv.csv
  throw-cruncher ingest throwcsv.csv --out-dir ./results --concurrency 8
  throw-cruncher ingest throwcsv.csv --sqlite results.db
  throw-cruncher ingest throwcsv.csv --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runIngest,
}

func init() {
	rootCmd.AddCommand(ingestCmd)

	// Output flags
	ingestCmd.Flags().StringVar(&outDir, "out-dir", ".", "output directory for artifacts")
	ingestCmd.Flags().StringVar(&rawJSON, "raw-json", "result_ingested.json", "raw parsed records JSON filename (empty to skip)")
	ingestCmd.Flags().StringVar(&normalizedJSON, "normalized-json", "result_massaged.json", "normalized records JSON filename (empty to skip)")
	ingestCmd.Flags().StringVar(&flatCSV, "flat-csv", "result_massaged.csv", "flattened normalized CSV filename (empty to skip)")
	ingestCmd.Flags().StringVar(&reportCSV, "report-csv", "result.csv", "aggregate report CSV filename (empty to skip)")
	ingestCmd.Flags().StringVar(&sqlitePath, "sqlite", "", "also write responses and report to a SQLite database")
	ingestCmd.Flags().StringVar(&summaryMD, "summary-md", "result_summary.md", "LLM summary filename (used with --llm)")

	// Ingest flags
	ingestCmd.Flags().IntVar(&metaColumns, "meta-columns", 3, "leading metadata columns to skip per row")
	ingestCmd.Flags().IntVar(&concurrency, "concurrency", 1, "number of concurrent row-parsing workers")
	ingestCmd.Flags().BoolVar(&noCache, "no-cache", false, "disable parse memoization")
	ingestCmd.Flags().DurationVar(&ingestTimeout, "timeout", 2*time.Minute, "overall ingest timeout")

	// LLM flags
	ingestCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable LLM summary generation")
	ingestCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	ingestCmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runIngest(cmd *cobra.Command, args []string) error {
	input := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), ingestTimeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Ingesting: %s\n", input)
		fmt.Fprintf(os.Stderr, "Workers: %d\n", concurrency)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	// Build configuration from flags
	cfg := model.DefaultConfig()
	cfg.Input.MetaColumns = metaColumns
	cfg.Concurrency.Workers = concurrency
	cfg.Cache.Enabled = !noCache
	cfg.Output.Dir = outDir
	cfg.Output.Verbose = verbose

	// Configure LLM if enabled
	if llmEnabled {
		cfg.LLM.Provider = llmProvider
		cfg.LLM.Model = llmModel

		switch llmProvider {
		case "openai":
			cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
			if cfg.LLM.APIKey == "" {
				return fmt.Errorf("OPENAI_API_KEY environment variable not set")
			}
		}
	}

	// Create output directory
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// Create pipeline
	p := pipeline.NewPipeline(cfg)

	result, err := p.Run(ctx, input)
	if err != nil {
		return fmt.Errorf("ingest failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Parsed %d responses\n", result.Rows)
		fmt.Fprintln(os.Stderr)
	}

	paths := pipeline.OutputPaths{
		RawJSON:        joinArtifact(outDir, rawJSON),
		NormalizedJSON: joinArtifact(outDir, normalizedJSON),
		FlatCSV:        joinArtifact(outDir, flatCSV),
		ReportCSV:      joinArtifact(outDir, reportCSV),
		SQLite:         sqlitePath,
	}
	if llmEnabled {
		paths.SummaryMD = joinArtifact(outDir, summaryMD)
	}

	if err := p.RenderResult(ctx, result, paths, verbose); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// joinArtifact resolves an artifact filename under the output directory,
// keeping an empty name empty so the artifact stays skipped.
func joinArtifact(dir, name string) string {
	if name == "" {
		return ""
	}
	return filepath.Join(dir, name)
}
