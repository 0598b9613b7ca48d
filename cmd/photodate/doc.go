// Command photodate prints shell commands that rename, group, annotate, and
// deduplicate photo collections by their inferred dates. Nothing is executed;
// the output is meant to be reviewed and piped to a shell.
package main
