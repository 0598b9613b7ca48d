// Package pathmatch expands the path arguments accepted by the photodate
// commands: literal paths, shell-style globs, and directories (optionally
// walked recursively). A non-glob pattern that matches nothing passes through
// as a literal so downstream stages can report the missing file themselves.
package pathmatch
