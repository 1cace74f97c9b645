// Package export concatenates a directory of markdown notes into a single
// aggregated export file.
//
// The export starts with a "# <title>" heading. Every source document then
// follows as a block introduced by "# Source: <filename>". A document that
// cannot be read is replaced by an error placeholder and the merge goes on.
package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/harrison/notectx/internal/filelock"
	"github.com/harrison/notectx/internal/fileutil"
)

// DefaultTitle is the heading written at the top of an export.
const DefaultTitle = "VerseRidge Obsidian Export"

// ErrInvalidUTF8 marks a source document that is not valid UTF-8 text.
var ErrInvalidUTF8 = errors.New("invalid UTF-8 content")

// Logger receives merge diagnostics.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Source records the outcome for one merged document.
type Source struct {
	Name string
	// Err is the read failure written as a placeholder, nil on success
	Err error
}

// Result summarizes a completed merge.
type Result struct {
	OutputFile string
	Sources    []Source
}

// Failed returns the sources that were replaced by an error placeholder.
func (r *Result) Failed() []Source {
	var failed []Source
	for _, s := range r.Sources {
		if s.Err != nil {
			failed = append(failed, s)
		}
	}
	return failed
}

// Merger builds an export from the markdown files of SourceDir.
type Merger struct {
	SourceDir  string
	OutputFile string
	Title      string
	logger     Logger
}

// NewMerger creates a Merger. An empty title uses DefaultTitle; a nil logger
// discards diagnostics.
func NewMerger(sourceDir, outputFile, title string, logger Logger) *Merger {
	if title == "" {
		title = DefaultTitle
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Merger{
		SourceDir:  sourceDir,
		OutputFile: outputFile,
		Title:      title,
		logger:     logger,
	}
}

// Merge writes the export to OutputFile. The file is replaced atomically
// while holding OutputFile's lock, so an interrupted merge leaves the previous
// export in place.
func (m *Merger) Merge() (*Result, error) {
	if m.OutputFile == "" {
		return nil, fmt.Errorf("output file is not set")
	}

	entries, err := m.documents()
	if err != nil {
		return nil, err
	}

	var sources []Source
	err = filelock.LockAndWrite(m.OutputFile, func(w io.Writer) error {
		var writeErr error
		sources, writeErr = m.write(w, entries)
		return writeErr
	})
	if err != nil {
		return nil, fmt.Errorf("merge into %s: %w", m.OutputFile, err)
	}

	return &Result{
		OutputFile: m.OutputFile,
		Sources:    sources,
	}, nil
}

// Render writes the export to w and returns one Source per document, in the
// order they were written. Only a failure to list SourceDir or to write to w
// is returned as an error.
func (m *Merger) Render(w io.Writer) ([]Source, error) {
	entries, err := m.documents()
	if err != nil {
		return nil, err
	}
	return m.write(w, entries)
}

func (m *Merger) write(w io.Writer, entries []fileutil.Entry) ([]Source, error) {
	if _, err := fmt.Fprintf(w, "# %s\n\n", m.Title); err != nil {
		return nil, err
	}

	sources := make([]Source, 0, len(entries))
	for _, entry := range entries {
		if _, err := fmt.Fprintf(w, "\n\n# Source: %s\n", entry.Name); err != nil {
			return nil, err
		}

		content, readErr := readDocument(entry.Path)
		if readErr != nil {
			m.logger.LogWarn(fmt.Sprintf("could not read %s: %v", entry.Name, readErr))
			if _, err := fmt.Fprintf(w, "\n[Error reading file: %v]\n", readErr); err != nil {
				return nil, err
			}
		} else {
			m.logger.LogDebug(fmt.Sprintf("merged %s (%d bytes)", entry.Name, len(content)))
			if _, err := w.Write(content); err != nil {
				return nil, err
			}
		}

		sources = append(sources, Source{Name: entry.Name, Err: readErr})
	}

	return sources, nil
}

// documents lists the markdown files to merge. Hidden files and the export
// itself, when it lives inside SourceDir, are left out.
func (m *Merger) documents() ([]fileutil.Entry, error) {
	scanned, err := fileutil.ScanDirectory(m.SourceDir, fileutil.ScanOptions{
		Extensions: []string{".md"},
	})
	if err != nil {
		return nil, fmt.Errorf("list source directory: %w", err)
	}

	output := absPath(m.OutputFile)
	entries := make([]fileutil.Entry, 0, len(scanned))
	for _, entry := range scanned {
		if strings.HasPrefix(entry.Name, ".") {
			continue
		}
		if output != "" && absPath(entry.Path) == output {
			m.logger.LogDebug(fmt.Sprintf("skipping %s: it is the export file", entry.Name))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func readDocument(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(content) {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), ErrInvalidUTF8)
	}
	return content, nil
}

func absPath(path string) string {
	if path == "" {
		return ""
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string)  {}
