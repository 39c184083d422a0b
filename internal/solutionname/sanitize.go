package solutionname

import (
	"regexp"
	"strings"
)

var (
	// invalidRun matches each maximal run of characters outside [A-Za-z0-9_-].
	invalidRun = regexp.MustCompile(`[^A-Za-z0-9_-]+`)
	// repeatedHyphens collapses consecutive hyphens.
	repeatedHyphens = regexp.MustCompile(`-{2,}`)
	// validName matches an already sanitized, non-empty name.
	validName = regexp.MustCompile(`^[A-Za-z0-9_]+(-[A-Za-z0-9_]+)*$`)
)

// Sanitize converts raw input into a solution name safe for file names and
// identifiers. The steps run in a fixed order:
//   - trim surrounding whitespace
//   - replace every run of disallowed characters with a single hyphen
//   - collapse repeated hyphens
//   - trim leading/trailing hyphens
//
// Example: "My Solution!" → "My-Solution"
func Sanitize(raw string) string {
	s := strings.TrimSpace(raw)
	s = invalidRun.ReplaceAllLiteralString(s, "-")
	s = repeatedHyphens.ReplaceAllLiteralString(s, "-")
	return strings.Trim(s, "-")
}

// Valid reports whether name is already in sanitized form. The empty string
// is valid and selects the default solution name.
func Valid(name string) bool {
	return name == "" || validName.MatchString(name)
}
