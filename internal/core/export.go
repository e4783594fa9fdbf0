package core

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// SpreadsheetExt is the extension every exported file name carries.
const SpreadsheetExt = ".xlsx"

// SpreadsheetContentType is the MIME type of exported workbooks.
const SpreadsheetContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// exportSheet is the only sheet of an exported workbook.
const exportSheet = "Sheet1"

// ExportFilename appends the spreadsheet extension when name lacks it.
// No other sanitization is performed.
func ExportFilename(name string) string {
	if strings.HasSuffix(name, SpreadsheetExt) {
		return name
	}
	return name + SpreadsheetExt
}

// ExportColumns returns the header row for records: the keys of the first
// record in order, followed by keys first seen in later records in the
// order they are encountered.
func ExportColumns(records []Record) []string {
	var cols []string
	seen := make(map[string]bool)
	for _, r := range records {
		for _, k := range r.keys {
			if seen[k] {
				continue
			}
			seen[k] = true
			cols = append(cols, k)
		}
	}
	return cols
}

// Export writes records as a single-sheet xlsx workbook to w.
//
// The sheet holds one header row (see ExportColumns) and one row per
// record in the order given. Fields a record lacks are left empty. All
// values are written as strings.
func Export(w io.Writer, records []Record) error {
	f := excelize.NewFile()
	defer f.Close()

	cols := ExportColumns(records)
	if len(cols) > 0 {
		if err := writeRow(f, 1, toCells(cols)); err != nil {
			return fmt.Errorf("export header: %w", err)
		}
	}

	for i, r := range records {
		row := make([]any, len(cols))
		for j, col := range cols {
			if v, ok := r.Get(col); ok {
				row[j] = v
			}
		}
		if err := writeRow(f, i+2, row); err != nil {
			return fmt.Errorf("export row %d: %w", i+1, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("export write: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, rowNum int, cells []any) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return err
	}
	return f.SetSheetRow(exportSheet, cell, &cells)
}

func toCells(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
