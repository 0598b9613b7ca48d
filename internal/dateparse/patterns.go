package dateparse

import "regexp"

// pattern couples a regular expression with the submatch indexes that carry
// the date components. An index of 0 means the component is absent from the
// pattern. The whole match is the candidate span; boundary checks against
// surrounding digits happen in the scanner, not the expression, because RE2
// has no lookaround.
type pattern struct {
	re    *regexp.Regexp
	year  int
	month int
	day   int

	// shortYear marks two-digit years interpreted as 2000+YY.
	shortYear bool
}

const sep = `[-_. ]`

// families lists the pattern table in strict priority order. Within a family
// the fully separated shape is preferred over the compact digit run at the
// same text position.
var families = [][]pattern{
	// Year-month-day, year first.
	{
		{re: regexp.MustCompile(`(\d{4})` + sep + `(\d{1,2})` + sep + `(\d{1,2})`), year: 1, month: 2, day: 3},
		{re: regexp.MustCompile(`(\d{4})(\d{2})(\d{2})`), year: 1, month: 2, day: 3},
	},
	// Day-month-year, year last.
	{
		{re: regexp.MustCompile(`(\d{1,2})` + sep + `(\d{1,2})` + sep + `(\d{4})`), day: 1, month: 2, year: 3},
		{re: regexp.MustCompile(`(\d{2})(\d{2})(\d{4})`), day: 1, month: 2, year: 3},
	},
	// Year-month.
	{
		{re: regexp.MustCompile(`(\d{4})` + sep + `(\d{1,2})`), year: 1, month: 2},
	},
	// Bare year.
	{
		{re: regexp.MustCompile(`(\d{4})`), year: 1},
	},
}

// compactShort is the YYMMDD last resort, attempted only after every family
// failed across the whole text.
var compactShort = pattern{
	re:        regexp.MustCompile(`(\d{2})(\d{2})(\d{2})`),
	year:      1,
	month:     2,
	day:       3,
	shortYear: true,
}
