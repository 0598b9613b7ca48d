package organizer

import "strings"

// ShellQuote wraps s in single quotes for safe use in a printed shell
// command. Embedded single quotes close the quoting, emit an escaped
// quote, and reopen it.
func ShellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// Command renders a command line with each argument quoted.
func Command(cmd string, args ...string) string {
	parts := make([]string, 0, 1+len(args))
	parts = append(parts, cmd)
	for _, a := range args {
		parts = append(parts, ShellQuote(a))
	}
	return strings.Join(parts, " ")
}
