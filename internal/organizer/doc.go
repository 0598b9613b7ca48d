// Package organizer builds rename and grouping plans from dated files and
// renders them as shell commands.
//
// Nothing here touches the filesystem beyond what the caller already stat'd;
// every plan is a pure value the commands print as `mv`/`mkdir -p` lines for
// the user to review and pipe to a shell.
package organizer
