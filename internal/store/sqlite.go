package store

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/murl-digital/throw-cruncher/internal/model"
)

// Write persists the normalized responses and the aggregate report to a
// fresh SQLite database at path. The responses table mirrors the flattened
// CSV (one row per respondent, three columns per item, NULL for absent
// ratings); the report table holds one row per item.
func Write(path string, responses []model.Response, report model.Report) error {
	_ = os.Remove(path)

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := writeResponses(db, responses); err != nil {
		return err
	}
	return writeReport(db, report)
}

func writeResponses(db *sql.DB, responses []model.Response) error {
	defs := []string{`"id" INTEGER PRIMARY KEY`}
	var cols []string
	for _, name := range model.Items {
		defs = append(defs,
			fmt.Sprintf("%q INTEGER NOT NULL", name+"_would_throw"),
			fmt.Sprintf("%q REAL", name+"_expected_rancidness"),
			fmt.Sprintf("%q REAL", name+"_desired_rancidness"),
			fmt.Sprintf("%q TEXT NOT NULL", name+"_notes"),
		)
		cols = append(cols,
			name+"_would_throw",
			name+"_expected_rancidness",
			name+"_desired_rancidness",
			name+"_notes",
		)
	}

	if _, err := db.Exec(`CREATE TABLE "responses" (` + strings.Join(defs, ",") + `)`); err != nil {
		return fmt.Errorf("create responses table: %w", err)
	}

	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	placeholders := strings.TrimRight(strings.Repeat("?,", len(cols)), ",")

	stmt, err := db.Prepare(`INSERT INTO "responses" (` + strings.Join(quoted, ",") + `) VALUES (` + placeholders + `)`)
	if err != nil {
		return fmt.Errorf("prepare responses insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, resp := range responses {
		args := make([]interface{}, 0, len(cols))
		for _, name := range model.Items {
			rec := resp[name]
			args = append(args, rec.WouldThrow, ratingArg(rec.ExpectedRancidness), ratingArg(rec.DesiredRancidness), rec.Notes)
		}
		if _, err := stmt.Exec(args...); err != nil {
			return fmt.Errorf("insert response: %w", err)
		}
	}

	return nil
}

func writeReport(db *sql.DB, report model.Report) error {
	create := `CREATE TABLE "report" (
		"item" TEXT PRIMARY KEY,
		"would_throw_count" INTEGER NOT NULL,
		"would_not_throw_count" INTEGER NOT NULL,
		"average_expected_rancidness" REAL NOT NULL,
		"average_desired_rancidness" REAL NOT NULL
	)`
	if _, err := db.Exec(create); err != nil {
		return fmt.Errorf("create report table: %w", err)
	}

	stmt, err := db.Prepare(`INSERT INTO "report" VALUES (?,?,?,?,?)`)
	if err != nil {
		return fmt.Errorf("prepare report insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, name := range model.Items {
		stats := report[name]
		if _, err := stmt.Exec(name, stats.WouldThrowCount, stats.WouldNotThrowCount, stats.AverageExpectedRancidness, stats.AverageDesiredRancidness); err != nil {
			return fmt.Errorf("insert report row for %s: %w", name, err)
		}
	}

	return nil
}

// ratingArg maps an absent rating to SQL NULL, never to zero.
func ratingArg(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
