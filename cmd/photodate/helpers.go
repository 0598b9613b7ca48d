package main

import (
	"fmt"
	"io"
	"sort"

	"photodate/internal/extract"
	"photodate/internal/organizer"
	"photodate/internal/pathmatch"
)

// expandFiles resolves patterns to concrete paths, longest path first so
// generated commands touch deeply nested paths before their parents.
func expandFiles(patterns []string, recursive bool) ([]string, error) {
	files, err := pathmatch.Expand(patterns, recursive)
	if err != nil {
		return nil, err
	}
	sort.Slice(files, func(i, j int) bool {
		if len(files[i]) != len(files[j]) {
			return len(files[i]) > len(files[j])
		}
		return files[i] < files[j]
	})
	return files, nil
}

// entriesFor runs extraction over every file.
func entriesFor(provider extract.Provider, files []string, modTimeFallback bool) []organizer.Entry {
	entries := make([]organizer.Entry, 0, len(files))
	for _, path := range files {
		res := provider.Extract(path, modTimeFallback)
		entries = append(entries, organizer.Entry{
			Path:      path,
			Date:      res.Date,
			Remainder: res.Remainder,
		})
	}
	return entries
}

// comment prints a '#'-prefixed diagnostic line among the shell output.
func comment(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "# "+format+"\n", args...)
}
