package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qwhomes/proposal-service/internal/usecase/interfaces"
)

const defaultExportDir = "exports"

// FileStore writes rendered documents under the export directory
// (EXPORT_PATH, default "exports") and returns the stored path.

type FileStore struct {
	dir string
}

var _ interfaces.IFileStore = (*FileStore)(nil)

func NewFileStore() *FileStore {
	dir := os.Getenv("EXPORT_PATH")
	if dir == "" {
		dir = defaultExportDir
	}
	return &FileStore{dir: dir}
}

func (s *FileStore) Save(name string, data []byte) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write export file: %w", err)
	}
	return path, nil
}
