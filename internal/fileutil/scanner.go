package fileutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrNotExist is returned (wrapped) when the directory to scan does not exist.
var ErrNotExist = errors.New("directory does not exist")

// ScanOptions configures the directory scanning behavior
type ScanOptions struct {
	// Extensions is a list of file extensions to include (e.g., ".md").
	// An empty list includes every file.
	Extensions []string
}

// Entry is a single matched file.
type Entry struct {
	// Name is the filename within the scanned directory
	Name string
	// Path is the path to open, built from the scanned directory
	Path string
}

// ScanDirectory lists the files directly inside dir that match opts, sorted
// by name. Subdirectories are not entered.
func ScanDirectory(dir string, opts ScanOptions) ([]Entry, error) {
	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", dir, ErrNotExist)
		}
		return nil, fmt.Errorf("failed to access directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("path is not a directory: %s", dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	exts := normalizeExtensions(opts.Extensions)
	entries := make([]Entry, 0, len(dirEntries))
	for _, d := range dirEntries {
		if d.IsDir() || !matchesExtension(d.Name(), exts) {
			continue
		}
		entries = append(entries, Entry{
			Name: d.Name(),
			Path: filepath.Join(dir, d.Name()),
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Name < entries[j].Name
	})

	return entries, nil
}

func normalizeExtensions(extensions []string) []string {
	exts := make([]string, 0, len(extensions))
	for _, ext := range extensions {
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// matchesExtension reports whether name ends with one of exts. Matching is
// case-sensitive. An empty set matches every file.
func matchesExtension(name string, exts []string) bool {
	if len(exts) == 0 {
		return true
	}
	for _, ext := range exts {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
