// Package ingest reads raw casting listings from CSV or XLSX feeds into
// RawRecords. It validates the presence of the required columns and ignores
// any extras; row content is never validated here.
package ingest

import (
	"context"
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	apperrors "castpulse/internal/errors"
	"castpulse/pkg/contracts/domain"
)

// requiredColumns must all be present in the input header, by name.
var requiredColumns = []string{
	"posted_date",
	"work_location",
	"project_type",
	"role_type",
	"union",
	"rate",
	"role_description",
}

// ReadRecords reads all listings from the given file. The format is chosen
// by extension: .xlsx/.xlsm go through excelize, everything else is CSV.
// An unreadable file or a header missing required columns is fatal.
func ReadRecords(ctx context.Context, path string) ([]domain.RawRecord, error) {
	var (
		rows [][]string
		err  error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		rows, err = readXLSXRows(path)
	default:
		rows, err = readCSVRows(path)
	}
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return nil, apperrors.NewParsingError("input file has no header row", nil).
			WithContext("path", path)
	}

	columns, err := mapColumns(rows[0])
	if err != nil {
		return nil, err
	}

	records := make([]domain.RawRecord, 0, len(rows)-1)
	for _, row := range rows[1:] {
		records = append(records, domain.RawRecord{
			PostedDate:      cell(row, columns["posted_date"]),
			WorkLocation:    cell(row, columns["work_location"]),
			ProjectType:     cell(row, columns["project_type"]),
			RoleType:        cell(row, columns["role_type"]),
			Union:           cell(row, columns["union"]),
			Rate:            cell(row, columns["rate"]),
			RoleDescription: cell(row, columns["role_description"]),
		})
	}

	slog.InfoContext(ctx, "loaded raw casting records",
		slog.String("path", path),
		slog.Int("record_count", len(records)))

	return records, nil
}

// readCSVRows reads all rows of a CSV file. Ragged rows are tolerated; the
// record builder substitutes empty strings for short rows.
func readCSVRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open input file", err).
			WithContext("path", path)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read CSV input", err).
			WithContext("path", path)
	}
	return stripBOM(rows), nil
}

// readXLSXRows reads the first sheet of an XLSX workbook.
func readXLSXRows(path string) ([][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewParsingError("failed to open XLSX input", err).
			WithContext("path", path)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, apperrors.NewParsingError("XLSX input has no sheets", nil).
			WithContext("path", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, apperrors.NewParsingError("failed to read XLSX sheet", err).
			WithContext("path", path).
			WithContext("sheet", sheets[0])
	}
	return rows, nil
}

// mapColumns resolves header names to indexes and checks that every
// required column is present. Matching is case-insensitive and ignores
// surrounding whitespace; unknown columns are ignored.
func mapColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}

	var missing []string
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperrors.NewParsingError(
			fmt.Sprintf("input is missing required columns: %s", strings.Join(missing, ", ")), nil)
	}

	return columns, nil
}

// cell returns row[idx], or "" when the row is too short.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

// stripBOM removes a UTF-8 BOM from the first header cell if present.
func stripBOM(rows [][]string) [][]string {
	if len(rows) > 0 && len(rows[0]) > 0 {
		rows[0][0] = strings.TrimPrefix(rows[0][0], "\uFEFF")
	}
	return rows
}
