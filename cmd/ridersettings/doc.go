// Package main hosts the ridersettings CLI entrypoint and command graph.
//
// The Cobra-based command tree plays the part of the editor's "JetBrains
// Rider" project settings panel: it shows the solution name override stored
// in ProjectSettings/Rider.json, accepts edits, sanitizes them, and writes
// the result back. It centralizes configuration resolution and structured
// logging setup so subcommands can focus on output.
//
// Keep this package lean: add behavior to the internal packages first, then
// surface it through a command or flag here.
package main
