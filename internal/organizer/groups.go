package organizer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// DirPlan is one destination directory with the files headed into it.
type DirPlan struct {
	Dir   string
	Files []string
}

// GroupByDate buckets entries by their date label. Undated entries land under
// the empty key; the caller decides whether that bucket goes to the common
// directory or is skipped.
func GroupByDate(entries []Entry) map[string][]string {
	groups := make(map[string][]string)
	for _, e := range entries {
		groups[e.Date] = append(groups[e.Date], e.Path)
	}
	return groups
}

// DirPlans turns date-keyed groups into concrete directory plans under
// targetDir, applying the configured name prefix and suffix. Groups smaller
// than minFiles are folded into targetDir itself, each fold reported as a
// note. Plans come back sorted by directory so the rendered script is stable.
func DirPlans(groups map[string][]string, targetDir, prefix, suffix string, minFiles int) ([]DirPlan, []string) {
	targetDir = strings.TrimRight(targetDir, string(filepath.Separator))
	if targetDir == "" {
		targetDir = "."
	}

	var notes []string
	merged := make(map[string][]string)
	var common []string
	for label, files := range groups {
		if label == "" || len(files) < minFiles {
			if label != "" {
				notes = append(notes, fmt.Sprintf(
					"Too few files (%d) for %s. Moving them to the common directory.", len(files), label))
			}
			common = append(common, files...)
			continue
		}
		dir := filepath.Join(targetDir, prefix+label+suffix)
		merged[dir] = append(merged[dir], files...)
	}
	if len(common) > 0 {
		merged[targetDir] = append(merged[targetDir], common...)
	}

	plans := make([]DirPlan, 0, len(merged))
	for dir, files := range merged {
		sort.Strings(files)
		plans = append(plans, DirPlan{Dir: dir, Files: files})
	}
	sort.Slice(plans, func(i, j int) bool { return plans[i].Dir < plans[j].Dir })
	return plans, notes
}

// ResolveBaseNames maps each file in a directory plan to its destination base
// name, numbering duplicates the same way ResolveConflicts numbers full
// paths. Files are considered in base-name order.
func ResolveBaseNames(files []string) ([]Rename, []string) {
	sorted := append([]string{}, files...)
	sort.Slice(sorted, func(i, j int) bool {
		return filepath.Base(sorted[i]) < filepath.Base(sorted[j])
	})

	var notes []string
	renames := make([]Rename, 0, len(sorted))
	prevName, prevPath := "", ""
	counter := 0
	for _, path := range sorted {
		name := filepath.Base(path)
		if prevName != "" && name == prevName {
			counter++
			name = filepath.Base(numberedName(name, counter))
			notes = append(notes, fmt.Sprintf(
				"Conflict between %q and %q resolved by renaming to %q.", prevPath, path, name))
			renames = append(renames, Rename{Src: path, Dst: name})
			continue
		}
		prevName, prevPath = name, path
		counter = 0
		renames = append(renames, Rename{Src: path, Dst: name})
	}
	return renames, notes
}
