package sheet

import (
	"bytes"
	"strings"

	"github.com/sapfs/fsgen/internal/core"
	"github.com/xuri/excelize/v2"
)

// Fixed column positions in a vendor table-export sheet (0-based).
// Extraction is positional on purpose: the exports carry no reliable header
// names, so reordered columns are misparsed rather than guessed at.
const (
	colFieldName = iota
	colDataType
	colLength
	colDescription
)

// ParseTableDefinition interprets the first sheet of a vendor table-export
// workbook as a table definition.
//
// Row 1, cell 1 becomes the table name (any non-empty value is accepted,
// including header-looking labels). Every later row contributes a field iff
// its first cell is non-empty after trimming and does not start with "#";
// separator and comment rows are silently skipped. The table-level
// description is always empty.
func ParseTableDefinition(data []byte) (core.TableInfo, error) {
	info := core.TableInfo{Fields: []core.FieldMapping{}}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return info, &core.LoadError{Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return info, core.ErrMissingSheet
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return info, &core.LoadError{Err: err}
	}

	for i, row := range rows {
		if i == 0 {
			info.TableName = strings.TrimSpace(cellAt(row, colFieldName))
			continue
		}

		fieldName := strings.TrimSpace(cellAt(row, colFieldName))
		if fieldName == "" || strings.HasPrefix(fieldName, "#") {
			continue
		}

		info.Fields = append(info.Fields, core.FieldMapping{
			FieldName:   fieldName,
			DataType:    strings.TrimSpace(cellAt(row, colDataType)),
			Length:      strings.TrimSpace(cellAt(row, colLength)),
			Description: strings.TrimSpace(cellAt(row, colDescription)),
		})
	}

	return info, nil
}

// cellAt returns the cell at idx, or "" when the row is shorter.
func cellAt(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return row[idx]
}
