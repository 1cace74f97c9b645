// Package brief finds NotebookLM briefs: markdown documents that carry the
// #notebooklm marker anywhere in their text.
package brief

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/notectx/internal/fileutil"
)

// DefaultMarker tags a document as a NotebookLM brief.
const DefaultMarker = "#notebooklm"

// ErrDirNotFound is returned (wrapped) when the directory to scan does not exist.
var ErrDirNotFound = errors.New("directory not found")

// Logger receives scan diagnostics.
type Logger interface {
	LogDebug(message string)
	LogWarn(message string)
}

// Brief is a document that contains the marker.
type Brief struct {
	// Name is the filename relative to the scanned directory
	Name string
	// Path is the file's location on disk
	Path string
	// Title is the text of the first markdown heading, empty when there is none
	Title string
}

// Finder scans a directory for briefs.
type Finder struct {
	marker     string
	extensions []string
	logger     Logger
}

// NewFinder creates a Finder for marker. An empty marker uses DefaultMarker;
// a nil logger discards diagnostics.
func NewFinder(marker string, logger Logger) *Finder {
	if marker == "" {
		marker = DefaultMarker
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Finder{
		marker:     marker,
		extensions: []string{".md"},
		logger:     logger,
	}
}

// Marker returns the substring the Finder looks for.
func (f *Finder) Marker() string {
	return f.marker
}

// Find returns the briefs directly inside dir, ordered by filename.
//
// A missing dir yields an empty result and an error wrapping ErrDirNotFound.
// Files that cannot be read are logged and skipped.
func (f *Finder) Find(dir string) ([]Brief, error) {
	entries, err := fileutil.ScanDirectory(dir, fileutil.ScanOptions{
		Extensions: f.extensions,
	})
	if err != nil {
		if errors.Is(err, fileutil.ErrNotExist) {
			return []Brief{}, fmt.Errorf("%s: %w", dir, ErrDirNotFound)
		}
		return []Brief{}, err
	}

	briefs := make([]Brief, 0)
	for _, entry := range entries {
		content, err := os.ReadFile(entry.Path)
		if err != nil {
			f.logger.LogWarn(fmt.Sprintf("skipping %s: %v", entry.Name, err))
			continue
		}
		if !ContainsMarker(string(content), f.marker) {
			f.logger.LogDebug(fmt.Sprintf("%s: no marker", entry.Name))
			continue
		}
		f.logger.LogDebug(fmt.Sprintf("%s: marker found", entry.Name))
		briefs = append(briefs, Brief{
			Name:  entry.Name,
			Path:  entry.Path,
			Title: FirstHeading(content),
		})
	}

	return briefs, nil
}

type nopLogger struct{}

func (nopLogger) LogDebug(string) {}
func (nopLogger) LogWarn(string)  {}
