package store

import (
	"encoding/base64"
	"os"
	"path/filepath"
	"testing"

	"github.com/sapfs/fsgen/internal/core"
)

func TestSave(t *testing.T) {
	s := New(t.TempDir())

	file, err := s.Save("requirements.docx", []byte("payload"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if file.ID == "" {
		t.Error("expected a generated id")
	}
	if file.Name != "requirements.docx" {
		t.Errorf("Name = %q, want %q", file.Name, "requirements.docx")
	}
	if file.Type != core.FileDocx {
		t.Errorf("Type = %q, want %q", file.Type, core.FileDocx)
	}
	if file.UploadedAt == 0 {
		t.Error("UploadedAt should be set")
	}

	decoded, err := base64.StdEncoding.DecodeString(file.Content)
	if err != nil {
		t.Fatalf("content is not valid base64: %v", err)
	}
	if string(decoded) != "payload" {
		t.Errorf("decoded content = %q, want %q", decoded, "payload")
	}
}

func TestSave_WritesToDisk(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested")
	s := New(dir)

	file, err := s.Save("table.xlsx", []byte("rows"))
	if err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, file.ID+".xlsx"))
	if err != nil {
		t.Fatalf("stored file not readable: %v", err)
	}
	if string(data) != "rows" {
		t.Errorf("stored content = %q, want %q", data, "rows")
	}
}

func TestSave_TypeClassification(t *testing.T) {
	tests := []struct {
		name string
		want core.FileType
	}{
		{"a.docx", core.FileDocx},
		{"b.xlsx", core.FileXlsx},
		{"legacy.XLS", core.FileXlsx},
		{"notes.txt", core.FileOther},
		{"noext", core.FileOther},
	}

	s := New(t.TempDir())
	for _, tt := range tests {
		file, err := s.Save(tt.name, []byte("x"))
		if err != nil {
			t.Fatalf("Save(%q) failed: %v", tt.name, err)
		}
		if file.Type != tt.want {
			t.Errorf("Save(%q).Type = %q, want %q", tt.name, file.Type, tt.want)
		}
	}
}
