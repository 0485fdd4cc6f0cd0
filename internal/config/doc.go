// Package config loads rolodeck's configuration file.
//
// # Configuration Sources
//
// Configuration resolution:
//
//  1. If an explicit path is passed, use it
//  2. Otherwise, use ~/.config/rolodeck/config.toml (default)
//  3. If the file is missing, fall back to built-in defaults
//
// # Default Locations
//
//   - Config file: ~/.config/rolodeck/config.toml
//   - Record store: ~/.local/share/rolodeck
//
// Example config.toml:
//
//	store_dir = "~/.local/share/rolodeck"
//	theme = "Slate"
//
// # Path Expansion
//
// Paths support tilde expansion ("~/.rolodeck/data") and resolve to
// absolute paths. A missing config file is not an error: rolodeck works
// out-of-the-box with no configuration, and the theme falls back to
// whatever the prefs file says.
package config
