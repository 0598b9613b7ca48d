package dateparse

import (
	"fmt"
	"time"

	"photodate/internal/textutil"
)

// Bounds restricts the plausible year range for date candidates.
type Bounds struct {
	MinYear int
	MaxYear int
}

// Strict is the default year range. Historical widens it for scanned
// collections of older material.
var (
	Strict     = Bounds{MinYear: 1950, MaxYear: 2050}
	Historical = Bounds{MinYear: 1900, MaxYear: 2100}
)

func (b Bounds) yearOK(year int) bool {
	return year >= b.MinYear && year <= b.MaxYear
}

// Match is a validated date found in text. Date is normalized to YYYY,
// YYYY-MM, or YYYY-MM-DD; Start and End delimit the matched span, which
// contains only the digits and their internal separators.
type Match struct {
	Date  string
	Start int
	End   int
}

// Span returns the matched substring of the original text.
func (m Match) Span(text string) string {
	return text[m.Start:m.End]
}

// Find scans text with the default strict bounds.
func Find(text string) (Match, bool) {
	return FindBounded(text, Strict)
}

// FindBounded scans text for the highest-priority valid date. Pattern
// families are tried in order; within a family, candidates are taken in text
// order and invalid ones are skipped without falling back to a lower-priority
// family at the same position.
func FindBounded(text string, b Bounds) (Match, bool) {
	for _, family := range families {
		if m, ok := scanFamily(text, family, b); ok {
			return m, true
		}
	}
	// Six-digit YYMMDD only when nothing matched anywhere.
	if m, ok := scanFamily(text, []pattern{compactShort}, b); ok {
		return m, true
	}
	return Match{}, false
}

// Remainder removes the matched span from text once, collapses separator runs
// to a single space, and strips leading and trailing separators.
func Remainder(text string, m Match) string {
	rest := text[:m.Start] + text[m.End:]
	rest = textutil.CollapseSeparators(rest)
	return textutil.TrimSeparators(rest)
}

// ValidDate reports whether the components denote a real Gregorian calendar
// date within bounds.
func ValidDate(year, month, day int, b Bounds) bool {
	return validate(candidate{year: year, month: month, day: day}, b)
}

type candidate struct {
	start, end int
	year       int
	month      int
	day        int
}

// scanFamily merges the candidates of all patterns in the family, orders them
// by position (pattern priority breaks ties), and returns the first that
// validates.
func scanFamily(text string, family []pattern, b Bounds) (Match, bool) {
	var all []candidate
	var order []int // pattern index per candidate, for tie-breaking
	for pi, p := range family {
		for _, c := range p.candidates(text) {
			all = append(all, c)
			order = append(order, pi)
		}
	}

	best := -1
	for i, c := range all {
		if !boundaryOK(text, c.start, c.end) {
			continue
		}
		if !validate(c, b) {
			continue
		}
		if best == -1 || c.start < all[best].start ||
			(c.start == all[best].start && order[i] < order[best]) {
			best = i
		}
	}
	if best == -1 {
		return Match{}, false
	}
	return Match{Date: normalize(all[best]), Start: all[best].start, End: all[best].end}, true
}

// candidates enumerates every match position, including those overlapping a
// previously rejected candidate, by restarting the search one byte past each
// match start.
func (p pattern) candidates(text string) []candidate {
	var out []candidate
	pos := 0
	for pos <= len(text) {
		loc := p.re.FindStringSubmatchIndex(text[pos:])
		if loc == nil {
			break
		}
		c := candidate{start: pos + loc[0], end: pos + loc[1]}
		c.year = p.component(text[pos:], loc, p.year)
		c.month = p.component(text[pos:], loc, p.month)
		c.day = p.component(text[pos:], loc, p.day)
		if p.shortYear {
			c.year += 2000
		}
		out = append(out, c)
		pos += loc[0] + 1
	}
	return out
}

func (p pattern) component(text string, loc []int, group int) int {
	if group == 0 {
		return 0
	}
	value := 0
	for _, ch := range text[loc[2*group]:loc[2*group+1]] {
		value = value*10 + int(ch-'0')
	}
	return value
}

// boundaryOK rejects spans embedded in a longer digit run.
func boundaryOK(text string, start, end int) bool {
	if start > 0 && isDigit(text[start-1]) {
		return false
	}
	if end < len(text) && isDigit(text[end]) {
		return false
	}
	return true
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// validate applies year bounds and real-calendar checks. A candidate without
// a month is a bare year; without a day, a year-month.
func validate(c candidate, b Bounds) bool {
	if !b.yearOK(c.year) {
		return false
	}
	if c.month == 0 {
		return c.day == 0
	}
	if c.month < 1 || c.month > 12 {
		return false
	}
	if c.day == 0 {
		return true
	}
	if c.day < 1 || c.day > 31 {
		return false
	}
	// Round-trip through time.Date catches impossible dates like Feb 30;
	// time.Date silently normalizes them to the following month.
	t := time.Date(c.year, time.Month(c.month), c.day, 0, 0, 0, 0, time.UTC)
	return t.Year() == c.year && int(t.Month()) == c.month && t.Day() == c.day
}

func normalize(c candidate) string {
	switch {
	case c.month == 0:
		return fmt.Sprintf("%04d", c.year)
	case c.day == 0:
		return fmt.Sprintf("%04d-%02d", c.year, c.month)
	default:
		return fmt.Sprintf("%04d-%02d-%02d", c.year, c.month, c.day)
	}
}
