// Package config handles loading the tempwatch startup configuration.
//
// # Overview
//
// tempwatch reads one optional TOML file at startup. The file supplies the
// initial log path, the refresh cadence, the starting display style, and
// the diagnostic log destination. Flags and the positional argument given
// to the binary override anything the file says.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/tempwatch/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # TOML Format
//
// Example config.toml, all fields optional:
//
//	log_file = "~/temps/kitchen.txt"
//	refresh_interval = "3m"
//	font_size = 10
//	background = "white"
//	debug_log = "~/.local/share/tempwatch/debug.log"
//
// Defaults: no log file, 3 minute interval, font size 10, white background,
// diagnostic logging disabled.
//
// # Validation
//
// A missing file is not an error. A file that exists but does not parse is
// a startup error, as is a refresh_interval that is not a positive Go
// duration or a font_size below 1. String fields are whitespace-trimmed;
// paths get tilde expansion and are made absolute.
//
// # One-Way Flow
//
// Configuration is read-only: nothing in tempwatch writes this file.
// Style changes made at runtime apply immediately but are deliberately not
// persisted, so every launch starts from the file (or the defaults).
package config
