package textutil

import "strings"

// Separators is the set of characters that may delimit a date embedded in a
// filename. The same set delimits date and descriptive suffix in generated
// names.
const Separators = "-_. "

// IsSeparator reports whether r belongs to the date-separator set.
func IsSeparator(r rune) bool {
	return strings.ContainsRune(Separators, r)
}

// CollapseSeparators replaces every run of two or more separator characters
// with a single space. Single separators are kept verbatim so tokens like
// "Festyn-64.jpg" survive untouched.
func CollapseSeparators(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runLen := 0
	var runFirst rune
	flush := func() {
		switch {
		case runLen == 1:
			b.WriteRune(runFirst)
		case runLen >= 2:
			b.WriteByte(' ')
		}
		runLen = 0
	}
	for _, r := range s {
		if IsSeparator(r) {
			if runLen == 0 {
				runFirst = r
			}
			runLen++
			continue
		}
		flush()
		b.WriteRune(r)
	}
	flush()
	return b.String()
}

// TrimSeparators strips leading and trailing separator characters.
func TrimSeparators(s string) string {
	return strings.Trim(s, Separators)
}
