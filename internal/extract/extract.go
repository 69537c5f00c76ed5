// Package extract converts uploaded reference files into template content
// for prompt assembly: plain text for word-processing files, a structured
// sheet dump for spreadsheets.
package extract

import (
	"bytes"
	"encoding/base64"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/sapfs/fsgen/internal/core"
	"github.com/sapfs/fsgen/internal/sheet"
)

// Content extracts template content from an uploaded file.
//
// Extraction degrades rather than fails: a reference template that cannot be
// parsed must not block document generation, so any decode or parse failure
// yields a placeholder naming the file instead of an error. Files of an
// unrecognized type yield empty text.
func Content(file core.UploadedFile) core.TemplateContent {
	switch file.Type {
	case core.FileDocx:
		data, err := base64.StdEncoding.DecodeString(file.Content)
		if err != nil {
			return placeholder(file.Name)
		}
		text, err := docxText(data)
		if err != nil {
			return placeholder(file.Name)
		}
		return core.TextContent(text)

	case core.FileXlsx:
		data, err := base64.StdEncoding.DecodeString(file.Content)
		if err != nil {
			return placeholder(file.Name)
		}
		sheets, err := sheet.ExtractRows(data)
		if err != nil {
			return placeholder(file.Name)
		}
		return core.SheetDump(sheets)

	default:
		return core.TextContent("")
	}
}

// placeholder marks a file whose content could not be parsed.
func placeholder(name string) core.TextContent {
	return core.TextContent("[MOCK PARSED CONTENT for " + name + "] 这是模拟的文件解析内容。")
}

// docxText extracts the raw text of a word-processing document, one line per
// paragraph or table.
func docxText(data []byte) (string, error) {
	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, item := range doc.Document.Body.Items {
		switch v := item.(type) {
		case *docx.Paragraph:
			b.WriteString(v.String())
			b.WriteByte('\n')
		case *docx.Table:
			b.WriteString(v.String())
			b.WriteByte('\n')
		}
	}
	return b.String(), nil
}
