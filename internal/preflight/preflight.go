package preflight

import (
	"path/filepath"

	"ridersettings/internal/config"
	"ridersettings/internal/projectsettings"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// RunAll executes the project checks for the given config.
func RunAll(cfg *config.Config) []Result {
	if cfg == nil {
		return nil
	}

	root := cfg.ProjectRoot()
	settingsPath := projectsettings.Path(root)

	return []Result{
		CheckDirectoryAccess("project root", root),
		CheckSettingsDirectory("project settings directory", filepath.Dir(settingsPath)),
		CheckSettingsFile("rider settings", settingsPath),
	}
}
