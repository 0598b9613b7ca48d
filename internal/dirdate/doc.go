// Package dirdate infers a representative date, or date range, for a
// directory.
//
// The directory's own name is consulted first; failing that, the dates of the
// files inside form a sample whose quantiles (linear interpolation of the
// empirical CDF over timestamps) produce either a single-date label or a
// "YYYY-MM-DD - YYYY-MM-DD" range. A directory whose contents yield no dates
// at all is reported with ErrEmptySample rather than silently defaulted.
package dirdate
