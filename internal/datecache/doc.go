// Package datecache persists date extraction results between runs.
//
// Results are keyed by (path, size, mtime, fallback flag), so a touched or
// rewritten file naturally misses the cache and gets re-extracted. The cache
// is a pure accelerator for large collections; every miss falls through to
// the real extractor and a broken cache only costs speed. A file lock keeps
// concurrent runs from sharing one database.
package datecache
