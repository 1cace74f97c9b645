// Package fileutil enumerates the markdown documents that notectx reads.
//
// Both notectx commands start from the same step: list the files of one
// directory that carry a given extension. ScanDirectory does that listing
// and returns the matches in a deterministic order, so a scan and a merge
// over the same directory always agree on which documents exist and in what
// order they appear.
//
// # Ordering
//
// Entries are sorted by filename. The operating system's own enumeration
// order is not stable across platforms, and the merge export is expected to
// be reproducible.
//
// # Extension matching
//
// Extensions are matched case-sensitively, so "notes.MD" is not a markdown
// document. Extensions may be given with or without the leading dot.
//
// # Errors
//
// A missing directory is reported as ErrNotExist (wrapped), which callers
// check with errors.Is.
//
// Example:
//
//	entries, err := fileutil.ScanDirectory("./.agent/docs", fileutil.ScanOptions{
//	    Extensions: []string{".md"},
//	})
//	if err != nil {
//	    return err
//	}
//	for _, entry := range entries {
//	    fmt.Println(entry.Name)
//	}
package fileutil
