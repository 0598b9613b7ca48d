// Package config loads, normalizes, and validates photodate configuration.
//
// Configuration lives in a single TOML file (default
// ~/.config/photodate/config.toml, with a photodate.toml project fallback)
// and is decoded over repository defaults, so a missing or partial file is
// always valid. Every section maps to one command or core concern: matching
// bounds, the extraction cascade, directory estimation, organizing, renaming,
// annotation, deduplication, the optional extraction cache, and logging.
package config
