// Package textutil provides text processing utilities for filename
// normalization and date-separator handling.
//
// The primary use cases are:
//   - Normalizing filenames to NFC before pattern matching (macOS imports
//     arrive NFD-decomposed and would defeat byte-oriented matching)
//   - Collapsing and trimming the separator characters that surround embedded
//     dates in filenames
//   - Sanitizing generated names for safe filesystem use
package textutil
