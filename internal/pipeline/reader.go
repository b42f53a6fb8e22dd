package pipeline

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/murl-digital/throw-cruncher/internal/ingest"
	"github.com/murl-digital/throw-cruncher/internal/model"
)

// ReadRows loads the survey CSV and strips the header row and the leading
// metadata columns, returning only item cells per data row. Respondent
// metadata (timestamp, consent, contact) is handled elsewhere and never
// reaches the parsers.
func ReadRows(path string, cfg model.InputConfig) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // short rows surface as end-of-row errors, not CSV errors

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	if cfg.HasHeader && len(rows) > 0 {
		rows = rows[1:]
	}

	out := make([][]string, 0, len(rows))
	for i, row := range rows {
		if len(row) < cfg.MetaColumns {
			return nil, fmt.Errorf("row %d: %w", i+1, &ingest.UnexpectedEndOfRowError{Pos: cfg.MetaColumns, Len: len(row)})
		}
		out = append(out, row[cfg.MetaColumns:])
	}

	return out, nil
}
