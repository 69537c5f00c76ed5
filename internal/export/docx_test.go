package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fumiama/go-docx"
	"github.com/sapfs/fsgen/internal/core"
)

// documentText re-parses rendered bytes and concatenates all body text.
func documentText(t *testing.T, data []byte) string {
	t.Helper()

	doc, err := docx.Parse(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("rendered document is not readable: %v", err)
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
	return b.String()
}

func TestDocument_OmitsEmptySections(t *testing.T) {
	data := core.FSDocumentData{
		Title:                  "测试文档",
		Overview:               "",
		FunctionalRequirements: "X",
	}

	out, err := Document(data)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	text := documentText(t, out)
	if strings.Contains(text, "1. 文档概述") {
		t.Error("empty overview section should be omitted")
	}
	if !strings.Contains(text, "3. 功能需求描述") {
		t.Error("non-empty section heading missing")
	}
	if !strings.Contains(text, "X") {
		t.Error("section body missing")
	}
}

func TestDocument_DefaultTitle(t *testing.T) {
	out, err := Document(core.FSDocumentData{})
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if len(out) == 0 {
		t.Fatal("empty output")
	}
	if !strings.Contains(documentText(t, out), defaultTitle) {
		t.Error("default title missing from all-empty document")
	}
}

func TestDocument_FieldMappingTable(t *testing.T) {
	data := core.FSDocumentData{
		Title:    "带表格的文档",
		Overview: "概述内容",
		FieldMappings: []core.FieldMapping{
			{FieldName: "MANDT", DataType: "CHAR", Length: "3", Description: "Client"},
		},
	}

	out, err := Document(data)
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}

	text := documentText(t, out)
	if !strings.Contains(text, "9. 字段映射表") {
		t.Error("field-mapping heading missing")
	}
	if !strings.Contains(text, "MANDT") {
		t.Error("field-mapping row missing")
	}
}

func TestDocument_NoMappingTableWithoutMappings(t *testing.T) {
	out, err := Document(core.FSDocumentData{Title: "t", Overview: "o"})
	if err != nil {
		t.Fatalf("Document failed: %v", err)
	}
	if strings.Contains(documentText(t, out), "9. 字段映射表") {
		t.Error("mapping table rendered for input without mappings")
	}
}
