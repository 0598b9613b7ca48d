// Package exifdate reads capture timestamps from image metadata.
//
// It is deliberately thin: the extraction cascade only needs "a capture time
// or nothing". Decode failures, missing tags, and unreadable files all report
// absence; no error ever crosses the package boundary.
package exifdate
