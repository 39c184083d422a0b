// Package solutionname turns free-form user input into the solution name
// override stored for the Rider integration.
//
// Names are restricted to ASCII letters, digits, underscores, and single
// internal hyphens. An empty name means "use the default", which is the name
// of the project's parent folder. Sanitize never fails; every input maps to a
// valid (possibly empty) name.
package solutionname
