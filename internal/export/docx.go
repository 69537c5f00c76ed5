// Package export renders structured FS content to downloadable artifacts:
// a word-processing document for the full specification and a spreadsheet
// for field mappings.
package export

import (
	"bytes"

	"github.com/fumiama/go-docx"
	"github.com/sapfs/fsgen/internal/core"
)

// DocxContentType is the MIME type of rendered documents.
const DocxContentType = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"

// DocxFilename is the suggested download filename for rendered documents.
const DocxFilename = "FS-Document.docx"

const defaultTitle = "功能规格文档"

var tableHeader = [4]string{"字段名", "数据类型", "长度", "描述"}

// Document renders an FS document: the title, one heading and paragraph per
// non-empty section, and a field-mapping table when mappings are present.
// Sections with an empty body are omitted entirely, not rendered as empty
// headings. Encoding failures surface as *core.RenderError.
func Document(data core.FSDocumentData) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	title := data.Title
	if title == "" {
		title = defaultTitle
	}
	doc.AddParagraph().Justification("center").AddText(title).Size("36").Bold()

	sections := []struct {
		title string
		body  string
	}{
		{"1. 文档概述", data.Overview},
		{"2. 业务背景与目标", data.BusinessBackground},
		{"3. 功能需求描述", data.FunctionalRequirements},
		{"4. 业务流程", data.ProcessFlow},
		{"5. 接口需求", data.InterfaceRequirements},
		{"6. 数据要求", data.DataRequirements},
		{"7. 异常处理", data.ErrorHandling},
		{"8. 验收标准", data.AcceptanceCriteria},
	}

	for _, s := range sections {
		if s.body == "" {
			continue
		}
		doc.AddParagraph().AddText(s.title).Size("28").Bold()
		doc.AddParagraph().AddText(s.body)
	}

	if len(data.FieldMappings) > 0 {
		doc.AddParagraph().AddText("9. 字段映射表").Size("28").Bold()

		tbl := doc.AddTable(len(data.FieldMappings)+1, len(tableHeader), 0, nil)
		for i, h := range tableHeader {
			tbl.TableRows[0].TableCells[i].AddParagraph().AddText(h).Bold()
		}
		for r, fm := range data.FieldMappings {
			cells := tbl.TableRows[r+1].TableCells
			cells[0].AddParagraph().AddText(fm.FieldName)
			cells[1].AddParagraph().AddText(fm.DataType)
			cells[2].AddParagraph().AddText(fm.Length)
			cells[3].AddParagraph().AddText(fm.Description)
		}
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, &core.RenderError{Format: "docx", Err: err}
	}
	return buf.Bytes(), nil
}
