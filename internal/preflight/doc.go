// Package preflight provides readiness checks for the Unity project whose
// Rider settings are being edited.
//
// The CLI "ridersettings check" command runs RunAll and prints one status line
// per Result. Checks never modify the project.
package preflight
