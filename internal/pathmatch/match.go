package pathmatch

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Expand resolves a set of path arguments to concrete paths. Directories are
// expanded to their contents (all nesting levels when recursive); glob
// patterns are evaluated relative to the working directory. Patterns without
// glob metacharacters that match nothing are kept verbatim.
func Expand(patterns []string, recursive bool) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			entries, err := listDir(pattern, nil, recursive)
			if err != nil {
				return nil, err
			}
			out = append(out, entries...)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			if !hasGlobMeta(pattern) {
				out = append(out, pattern)
			}
			continue
		}
		out = append(out, matches...)
	}
	return out, nil
}

// Dirs resolves a set of path arguments to existing directories. A literal
// path naming a directory is kept as-is; glob patterns contribute their
// directory matches and anything else is dropped.
func Dirs(patterns []string) ([]string, error) {
	var out []string
	for _, pattern := range patterns {
		if info, err := os.Stat(pattern); err == nil && info.IsDir() {
			out = append(out, pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if info, err := os.Stat(match); err == nil && info.IsDir() {
				out = append(out, match)
			}
		}
	}
	return out, nil
}

// FilesMatching lists files under dir whose base name matches at least one of
// the provided glob patterns. An empty pattern list matches everything.
// Subdirectories themselves are never returned.
func FilesMatching(dir string, patterns []string, recursive bool) ([]string, error) {
	return listDir(dir, patterns, recursive)
}

func listDir(dir string, patterns []string, recursive bool) ([]string, error) {
	var out []string
	if recursive {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			if matchesAny(d.Name(), patterns) {
				out = append(out, path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if matchesAny(entry.Name(), patterns) {
			out = append(out, filepath.Join(dir, entry.Name()))
		}
	}
	return out, nil
}

func matchesAny(name string, patterns []string) bool {
	if len(patterns) == 0 {
		return true
	}
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		if ok, err := filepath.Match(strings.ToLower(pattern), lower); err == nil && ok {
			return true
		}
	}
	return false
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[")
}
