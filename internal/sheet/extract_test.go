package sheet

import (
	"reflect"
	"testing"

	"github.com/xuri/excelize/v2"
)

// buildWorkbook creates an in-memory xlsx and returns its bytes.
func buildWorkbook(t *testing.T, fill func(f *excelize.File)) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	fill(f)

	buf, err := f.WriteToBuffer()
	if err != nil {
		t.Fatalf("failed to build workbook: %v", err)
	}
	return buf.Bytes()
}

func TestExtractRows(t *testing.T) {
	data := buildWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "Header1")
		f.SetCellValue("Sheet1", "B1", "Header2")
		f.SetCellValue("Sheet1", "A2", 100)
		f.SetCellValue("Sheet1", "B2", 200.5)
		f.SetCellValue("Sheet1", "A3", "Text")
	})

	sheets, err := ExtractRows(data)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(sheets) != 1 {
		t.Fatalf("expected 1 sheet, got %d", len(sheets))
	}
	if sheets[0].Name != "Sheet1" {
		t.Errorf("sheet name = %q, want %q", sheets[0].Name, "Sheet1")
	}
	if len(sheets[0].Rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(sheets[0].Rows))
	}

	if got := sheets[0].Rows[0][0]; got != "Header1" {
		t.Errorf("row 1 col 1 = %v, want %q", got, "Header1")
	}
	if got := sheets[0].Rows[1][0]; got != int64(100) {
		t.Errorf("row 2 col 1 = %v (%T), want int64(100)", got, got)
	}
	if got := sheets[0].Rows[1][1]; got != 200.5 {
		t.Errorf("row 2 col 2 = %v, want 200.5", got)
	}
}

func TestExtractRows_MultipleSheets(t *testing.T) {
	data := buildWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "first")
		f.NewSheet("Details")
		f.SetCellValue("Details", "A1", "second")
	})

	sheets, err := ExtractRows(data)
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %d", len(sheets))
	}
	if sheets[0].Name != "Sheet1" || sheets[1].Name != "Details" {
		t.Errorf("sheet order = [%q, %q], want [Sheet1, Details]", sheets[0].Name, sheets[1].Name)
	}
	if !reflect.DeepEqual(sheets[1].Rows[0], []any{"second"}) {
		t.Errorf("Details row 1 = %v, want [second]", sheets[1].Rows[0])
	}
}

func TestExtractRows_InvalidBytes(t *testing.T) {
	if _, err := ExtractRows([]byte("not a workbook")); err == nil {
		t.Fatal("expected error for malformed bytes")
	}
}

func TestExtractRows_Idempotent(t *testing.T) {
	data := buildWorkbook(t, func(f *excelize.File) {
		f.SetCellValue("Sheet1", "A1", "x")
		f.SetCellValue("Sheet1", "B2", 42)
	})

	first, err := ExtractRows(data)
	if err != nil {
		t.Fatalf("first ExtractRows failed: %v", err)
	}
	second, err := ExtractRows(data)
	if err != nil {
		t.Fatalf("second ExtractRows failed: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("repeated extraction of identical bytes differs")
	}
}

func TestParseValue(t *testing.T) {
	tests := []struct {
		input    string
		expected any
	}{
		{"123", int64(123)},
		{"123.45", 123.45},
		{"-100", int64(-100)},
		{"hello", "hello"},
		{"", ""},
	}

	for _, tt := range tests {
		result := parseValue(tt.input)
		if result != tt.expected {
			t.Errorf("parseValue(%q) = %v (%T), want %v (%T)",
				tt.input, result, result, tt.expected, tt.expected)
		}
	}
}
