package utils

import "path/filepath"

// GetAbsolutePath returns path if it is absolute or empty, otherwise joins it
// with baseDir.
func GetAbsolutePath(path, baseDir string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Clean(filepath.Join(baseDir, path))
}
