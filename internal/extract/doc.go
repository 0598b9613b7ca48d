// Package extract infers the most plausible calendar date for a file path.
//
// Extraction runs an ordered cascade of strategies sharing one signature:
// known device/app prefixes, a literal YYYY-MM-DD head, the general pattern
// matcher, EXIF metadata, and finally the file modification time. The first
// strategy that produces a date wins. Extraction never fails: when every
// stage comes up empty the result carries an empty date and the original
// name, and the caller decides what that means.
//
// Every stage is independently contained; unreadable files and malformed
// metadata degrade to "this stage found nothing".
package extract
