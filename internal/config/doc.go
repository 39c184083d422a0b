// Package config loads, normalizes, and validates ridersettings configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files from ~/.config/ridersettings/config.toml or a
// ridersettings.toml in the working directory. The Config type tells the CLI
// which Unity project to operate on, how Rider.json is written, and how logs
// are shaped.
//
// Command-line flags override file values through SetProjectRoot and
// SetDataDir so every caller sees absolute, validated paths.
package config
