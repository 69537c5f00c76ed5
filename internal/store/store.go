// Package store persists uploaded files to a local directory and builds the
// UploadedFile records echoed back to clients. Files are transient: nothing
// here tracks them after the response is written.
package store

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sapfs/fsgen/internal/core"
)

// Store writes uploads under a base directory.
type Store struct {
	dir string
}

// New creates a store rooted at dir. The directory is created lazily on
// first save.
func New(dir string) *Store {
	return &Store{dir: dir}
}

// Save writes data under a fresh UUID and returns the UploadedFile record.
// The declared type is derived from the original filename's extension.
func (s *Store) Save(name string, data []byte) (core.UploadedFile, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return core.UploadedFile{}, fmt.Errorf("create upload dir: %w", err)
	}

	id := uuid.New().String()
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))

	stored := id
	if ext != "" {
		stored += "." + ext
	}
	if err := os.WriteFile(filepath.Join(s.dir, stored), data, 0o644); err != nil {
		return core.UploadedFile{}, fmt.Errorf("write upload: %w", err)
	}

	return core.UploadedFile{
		ID:         id,
		Name:       name,
		Type:       core.FileTypeFromExt(ext),
		Content:    base64.StdEncoding.EncodeToString(data),
		UploadedAt: time.Now().UnixMilli(),
	}, nil
}
