package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// Default locations, relative to the project root.
const (
	DataFile       = "dashboard/public/data.json"
	ScreenshotFile = "error-screenshot.png"
)

// Resolve returns p unchanged when absolute, otherwise joined onto root.
func Resolve(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// EnsureParent creates the directory that will hold path.
func EnsureParent(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create directory %s: %w", dir, err)
	}
	return nil
}
