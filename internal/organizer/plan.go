package organizer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"photodate/internal/textutil"
)

// Entry is one dated file ready for planning.
type Entry struct {
	Path      string
	Date      string
	Remainder string
}

// Rename is a single planned move.
type Rename struct {
	Src string
	Dst string
}

// RenameTargets computes "<date><separator><suffix>" destinations for every
// entry. The remainder's leading separators are stripped before the
// configured separator is applied, so "IMG_20230615_final.png" becomes
// "2023-06-15 final.png" rather than keeping the device underscore. Entries
// without a date keep their original name and show up as no-op renames the
// caller skips.
func RenameTargets(entries []Entry, targetDir, separator string) []Rename {
	renames := make([]Rename, 0, len(entries))
	for _, e := range entries {
		dir := targetDir
		if dir == "" {
			dir = filepath.Dir(e.Path)
		}

		name := filepath.Base(e.Path)
		if e.Date != "" {
			suffix := strings.TrimLeft(e.Remainder, textutil.Separators)
			if suffix != "" {
				suffix = separator + suffix
			}
			name = e.Date + suffix
		}

		renames = append(renames, Rename{Src: e.Path, Dst: filepath.Join(dir, name)})
	}
	return renames
}

// ResolveConflicts disambiguates renames that share a destination by
// inserting "-N" before the extension of every colliding rename after the
// first. Output is sorted by destination, then source, so numbering is
// deterministic regardless of input order. Each resolution is reported as a
// note for the caller's diagnostic output.
func ResolveConflicts(renames []Rename) ([]Rename, []string) {
	sorted := append([]Rename{}, renames...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Dst != sorted[j].Dst {
			return sorted[i].Dst < sorted[j].Dst
		}
		return sorted[i].Src < sorted[j].Src
	})

	var notes []string
	resolved := make([]Rename, 0, len(sorted))
	prevDst, prevSrc := "", ""
	counter := 0
	for _, r := range sorted {
		if prevDst != "" && r.Dst == prevDst {
			counter++
			dst := numberedName(r.Dst, counter)
			notes = append(notes, fmt.Sprintf(
				"Resolving conflict between %q and %q -> %q.", r.Src, prevSrc, dst))
			resolved = append(resolved, Rename{Src: r.Src, Dst: dst})
			continue
		}
		prevDst, prevSrc = r.Dst, r.Src
		counter = 0
		resolved = append(resolved, r)
	}
	return resolved, notes
}

// numberedName inserts "-n" before the final extension, or appends it when
// there is none.
func numberedName(path string, n int) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), n, ext)
}
