package organizer

import (
	"path/filepath"
	"strings"

	"photodate/internal/dateparse"
	"photodate/internal/textutil"
)

// DateFrontName moves an embedded full date to the front of a file name and
// tidies what is left: underscores become spaces, separator runs collapse,
// and the extension is lowercased. The second return is false only when the
// name carries no full date; a name already starting with one comes back
// unchanged.
func DateFrontName(name string, bounds dateparse.Bounds) (string, bool) {
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)
	ext = strings.ToLower(ext)

	m, ok := dateparse.FindBounded(stem, bounds)
	if !ok || len(m.Date) != len("2006-01-02") {
		return "", false
	}
	if m.Start == 0 {
		return name, true
	}

	remainder := dateparse.Remainder(stem, m)
	remainder = strings.ReplaceAll(remainder, "_", " ")
	remainder = textutil.TrimSeparators(textutil.CollapseSeparators(remainder))

	if remainder == "" {
		return m.Date + ext, true
	}
	return m.Date + " " + remainder + ext, true
}
