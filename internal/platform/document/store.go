// Package document renders issued treatment plans into downloadable files:
// a PDF laid out like the printed 生活習慣病療養計画書 form, and a populated
// macro-enabled workbook derived from a fixed template. Rendered files land
// in a temp directory served by the download handler.
package document

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrFileNotFound is returned when a requested download does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrInvalidFilename is returned for names that escape the temp dir.
	ErrInvalidFilename = errors.New("invalid filename")
)

// Store manages the temp directory rendered documents are written to.
type Store struct {
	dir string
}

// NewStore creates the directory if it does not exist.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create temp dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the managed directory.
func (s *Store) Dir() string {
	return s.dir
}

// Path resolves filename inside the temp dir. Names containing path
// separators or parent references are rejected so a crafted download URL
// cannot reach outside the directory.
func (s *Store) Path(filename string) (string, error) {
	if filename == "" {
		return "", ErrInvalidFilename
	}
	if strings.ContainsAny(filename, `/\`) || strings.Contains(filename, "..") {
		return "", ErrInvalidFilename
	}
	if filepath.Base(filename) != filename {
		return "", ErrInvalidFilename
	}
	return filepath.Join(s.dir, filename), nil
}

// Open returns the resolved path of an existing file.
func (s *Store) Open(filename string) (string, error) {
	path, err := s.Path(filename)
	if err != nil {
		return "", err
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", ErrFileNotFound
		}
		return "", fmt.Errorf("stat %s: %w", filename, err)
	}
	return path, nil
}
