package pipeline

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// Renderer writes ingest artifacts to disk.
type Renderer struct{}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{}
}

// RenderJSON writes v as pretty-printed JSON
func (r *Renderer) RenderJSON(v interface{}, path string) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}

// FlattenedHeader returns the per-response CSV column names: three columns
// per item in schema order.
func FlattenedHeader() []string {
	header := make([]string, 0, len(model.Items)*3)
	for _, name := range model.Items {
		header = append(header,
			name+"_would_throw",
			name+"_expected_rancidness",
			name+"_desired_rancidness",
		)
	}
	return header
}

// FlattenResponse renders one normalized response as a flat CSV row.
// Absent ratings become empty cells, which can never be read back as zero.
func FlattenResponse(resp model.Response) []string {
	row := make([]string, 0, len(model.Items)*3)
	for _, name := range model.Items {
		rec := resp[name]
		row = append(row,
			strconv.FormatBool(rec.WouldThrow),
			formatRating(rec.ExpectedRancidness),
			formatRating(rec.DesiredRancidness),
		)
	}
	return row
}

// ReportHeader returns the aggregate CSV column names: four columns per
// item in schema order.
func ReportHeader() []string {
	header := make([]string, 0, len(model.Items)*4)
	for _, name := range model.Items {
		header = append(header,
			name+"_would_throw_count",
			name+"_would_not_throw_count",
			name+"_average_expected_rancidness",
			name+"_average_desired_rancidness",
		)
	}
	return header
}

// FlattenReport renders the aggregate report as a single flat CSV row.
func FlattenReport(report model.Report) []string {
	row := make([]string, 0, len(model.Items)*4)
	for _, name := range model.Items {
		stats := report[name]
		row = append(row,
			strconv.Itoa(stats.WouldThrowCount),
			strconv.Itoa(stats.WouldNotThrowCount),
			strconv.FormatFloat(stats.AverageExpectedRancidness, 'f', -1, 64),
			strconv.FormatFloat(stats.AverageDesiredRancidness, 'f', -1, 64),
		)
	}
	return row
}

// RenderFlattenedCSV writes the normalized collection in tabular form
func (r *Renderer) RenderFlattenedCSV(responses []model.Response, path string) error {
	rows := make([][]string, 0, len(responses)+1)
	rows = append(rows, FlattenedHeader())
	for _, resp := range responses {
		rows = append(rows, FlattenResponse(resp))
	}
	return writeCSV(path, rows)
}

// RenderReportCSV writes the aggregate report as a single tabular row
func (r *Renderer) RenderReportCSV(report model.Report, path string) error {
	return writeCSV(path, [][]string{ReportHeader(), FlattenReport(report)})
}

// RenderSummary prints run statistics to stderr
func (r *Renderer) RenderSummary(result *Result) {
	noted := 0
	for _, resp := range result.Raw {
		for _, name := range model.Items {
			if resp[name].Notes != "" {
				noted++
				break
			}
		}
	}

	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "  Responses:           %d\n", result.Rows)
	fmt.Fprintf(os.Stderr, "  Tracked items:       %d\n", len(model.Items))
	fmt.Fprintf(os.Stderr, "  Rows with recovered or missing ratings: %d\n", noted)
	fmt.Fprintf(os.Stderr, "\n")
}

func formatRating(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func writeCSV(path string, rows [][]string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, closeErr)
		}
	}()

	w := csv.NewWriter(f)
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}
