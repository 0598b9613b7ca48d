package textutil

import "golang.org/x/text/unicode/norm"

// NormalizeName returns name in NFC form. Filenames copied from macOS volumes
// are NFD-decomposed; composing them first keeps byte-oriented date matching
// and remainder arithmetic consistent across platforms.
func NormalizeName(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
