// Package config loads and validates castmerge configuration from TOML.
//
// Configuration resolves in order: an explicit --config path, then
// ~/.config/castmerge/config.toml, then castmerge.toml in the working
// directory. A missing file falls back to defaults so read-only commands
// work out of the box. All path fields are expanded (~ and relative
// segments) before the config is returned.
package config
