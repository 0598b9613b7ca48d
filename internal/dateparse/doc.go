// Package dateparse scans arbitrary text for date-shaped substrings.
//
// Matching walks a priority-ordered table of pattern families (year-month-day,
// day-month-year, year-month, bare year) and returns the first candidate that
// survives calendar validation. Candidates that fail validation never abort
// the scan; matching continues at the next text position and then the next
// family, so "x-2024-02-30-y 2024-03-01" still yields a date. A compact
// six-digit YYMMDD reading is attempted only when nothing else matched
// anywhere in the text.
//
// Results are normalized to YYYY, YYYY-MM, or YYYY-MM-DD. The matched span
// covers only the digits and their internal separators, which lets callers
// compute the descriptive remainder of a filename precisely.
package dateparse
