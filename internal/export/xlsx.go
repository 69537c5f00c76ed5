package export

import (
	"github.com/sapfs/fsgen/internal/core"
	"github.com/xuri/excelize/v2"
)

// XlsxContentType is the MIME type of rendered spreadsheets.
const XlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// XlsxFilename is the suggested download filename for field-mapping exports.
const XlsxFilename = "Field-Mappings.xlsx"

const mappingSheet = "字段映射"

// Column widths match the original export layout.
var columnWidths = [4]float64{20, 15, 10, 40}

// FieldMappings renders a single-sheet workbook with the fixed four-column
// header and one row per mapping in input order. An empty input still
// produces a valid header-only workbook. Encoding failures surface as
// *core.RenderError.
func FieldMappings(fields []core.FieldMapping) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", mappingSheet); err != nil {
		return nil, &core.RenderError{Format: "xlsx", Err: err}
	}

	for i, h := range tableHeader {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(mappingSheet, cell, h)

		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(mappingSheet, col, col, columnWidths[i])
	}

	for r, fm := range fields {
		values := [4]string{fm.FieldName, fm.DataType, fm.Length, fm.Description}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			f.SetCellValue(mappingSheet, cell, v)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, &core.RenderError{Format: "xlsx", Err: err}
	}
	return buf.Bytes(), nil
}
