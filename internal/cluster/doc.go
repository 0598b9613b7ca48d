// Package cluster merges groups keyed by calendar date when the dates form a
// consecutive run.
//
// Runs of exactly-adjacent days collapse into a single group labeled
// "first - last"; isolated dates keep their own key. Keys that are not plain
// YYYY-MM-DD dates (including range labels produced by an earlier merge) pass
// through untouched, which makes the operation safe to apply repeatedly.
package cluster
