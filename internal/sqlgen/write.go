package sqlgen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jwalitptl/careconnect-api/internal/model"
)

// WriteFile renders ds and replaces path with the result. The script is
// written to a temporary file next to path and renamed into place, so path
// is either left untouched or holds the complete script.
func WriteFile(path string, ds *model.Dataset) (int, error) {
	data := Render(ds)

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return 0, fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return 0, fmt.Errorf("failed to sync %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return 0, fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return 0, fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return 0, fmt.Errorf("failed to move output into %s: %w", path, err)
	}

	return len(data), nil
}
