// Package sheet implements the spreadsheet parsing pipeline: raw row
// extraction from workbook bytes and normalization of vendor table-export
// sheets into field metadata.
package sheet

import (
	"bytes"
	"strconv"

	"github.com/sapfs/fsgen/internal/core"
	"github.com/xuri/excelize/v2"
)

// ExtractRows extracts the ordered rows of every sheet in a workbook.
// Row and column order are preserved exactly as stored; no filtering or
// trimming is applied. Returns a *core.LoadError if the bytes are not a
// well-formed workbook container.
func ExtractRows(data []byte) ([]core.SheetRows, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &core.LoadError{Err: err}
	}
	defer f.Close()

	var out []core.SheetRows
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, &core.LoadError{Err: err}
		}

		dump := core.SheetRows{Name: name, Rows: make([][]any, 0, len(rows))}
		for _, row := range rows {
			values := make([]any, len(row))
			for i, cell := range row {
				values[i] = parseValue(cell)
			}
			dump.Rows = append(dump.Rows, values)
		}
		out = append(out, dump)
	}

	return out, nil
}

// parseValue re-types a cell's string rendering as a number when it parses
// as one. Returns int64 for integers, float64 for decimals, or the original
// string.
func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}
