// Package filex contains small filesystem helpers for attachment handling.
package filex

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"
)

// Stat returns the base name and size of the file at path. The file must
// exist and be a regular file.
func Stat(path string) (name string, size int64, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", 0, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return "", 0, fmt.Errorf("%s is a directory", path)
	}
	return filepath.Base(path), info.Size(), nil
}

// MimeType guesses a content type from the file extension, defaulting to
// image/jpeg for unknown extensions since the pipeline only handles photos.
func MimeType(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if t := mime.TypeByExtension(ext); t != "" {
		return t
	}
	return "image/jpeg"
}
