package preflight

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"

	"ridersettings/internal/projectsettings"
	"ridersettings/internal/solutionname"
)

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

// CheckSettingsDirectory accepts an existing writable directory, or a missing
// one whose parent is writable so the first save can create it.
func CheckSettingsDirectory(name, path string) Result {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		parent := filepath.Dir(path)
		if err := unix.Access(parent, unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: missing and parent not writable: %v)", path, err)}
		}
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created on first save)", path)}
	}
	return CheckDirectoryAccess(name, path)
}

// CheckSettingsFile verifies that Rider.json, when present, parses and holds
// a name in sanitized form.
func CheckSettingsFile(name, path string) Result {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Passed: true, Detail: "not present (default solution name)"}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	record, err := projectsettings.Decode(data)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: malformed: %v)", path, err)}
	}
	if !solutionname.Valid(record.SolutionName) {
		return Result{Name: name, Detail: fmt.Sprintf("solution name %q contains disallowed characters; run `ridersettings set` to fix", record.SolutionName)}
	}
	if record.SolutionName == "" {
		return Result{Name: name, Passed: true, Detail: "empty (default solution name)"}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("solution name %q", record.SolutionName)}
}
