package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ridersettings/internal/testsupport"
)

func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Fatalf("expected %q to contain %q", haystack, needle)
	}
}

func TestSanitizeCommand(t *testing.T) {
	out, _, err := runCLI(t, "sanitize", "My Solution!")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if out != "My-Solution\n" {
		t.Fatalf("unexpected output %q", out)
	}

	out, _, err = runCLI(t, "sanitize", "!!!")
	if err != nil {
		t.Fatalf("sanitize: %v", err)
	}
	if out != "\n" {
		t.Fatalf("expected empty line, got %q", out)
	}
}

func TestGetSetRoundTrip(t *testing.T) {
	root := testsupport.NewProject(t)

	out, _, err := runCLI(t, "--project", root, "get")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "(default)\n" {
		t.Fatalf("expected default, got %q", out)
	}

	out, _, err = runCLI(t, "--project", root, "set", "My", "Game!")
	if err != nil {
		t.Fatalf("set: %v", err)
	}
	requireContains(t, out, "set to My-Game")
	requireContains(t, out, `sanitized from "My Game!"`)

	if got := testsupport.ReadRiderJSON(t, root); got != `{"version":1,"solutionName":"My-Game"}` {
		t.Fatalf("unexpected Rider.json %s", got)
	}

	out, _, err = runCLI(t, "--project", root, "get")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "My-Game\n" {
		t.Fatalf("expected stored name, got %q", out)
	}

	out, _, err = runCLI(t, "--project", root, "set", "My-Game")
	if err != nil {
		t.Fatalf("set unchanged: %v", err)
	}
	requireContains(t, out, "unchanged: My-Game")

	out, _, err = runCLI(t, "--project", root, "set", "")
	if err != nil {
		t.Fatalf("set clear: %v", err)
	}
	requireContains(t, out, "cleared")

	out, _, err = runCLI(t, "--project", root, "get", "--json")
	if err != nil {
		t.Fatalf("get --json: %v", err)
	}
	var payload solutionNameOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode get output: %v", err)
	}
	if payload.SolutionName != "" || !payload.UsesDefault {
		t.Fatalf("unexpected payload %+v", payload)
	}
}

func TestSetRequiresArgument(t *testing.T) {
	root := testsupport.NewProject(t)
	if _, _, err := runCLI(t, "--project", root, "set"); err == nil {
		t.Fatal("expected error without arguments")
	}
}

func TestSetReportsWriteFailure(t *testing.T) {
	root := testsupport.NewProject(t, testsupport.WithoutProjectSettings())
	if err := os.WriteFile(filepath.Join(root, "ProjectSettings"), []byte("x"), 0o644); err != nil {
		t.Fatalf("write blocker: %v", err)
	}

	_, _, err := runCLI(t, "--project", root, "set", "Game")
	if err == nil {
		t.Fatal("expected write failure")
	}
	requireContains(t, err.Error(), "save solution name")
}

func TestGetMalformedFileFallsBackToDefault(t *testing.T) {
	root := testsupport.NewProject(t, testsupport.WithRiderJSON(`{"solutionName":`))

	out, _, err := runCLI(t, "--project", root, "--log-level", "error", "get")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if out != "(default)\n" {
		t.Fatalf("expected default, got %q", out)
	}
}

func TestDataDirFlag(t *testing.T) {
	root := testsupport.NewProject(t)

	out, _, err := runCLI(t, "--data-dir", filepath.Join(root, "Assets"), "path")
	if err != nil {
		t.Fatalf("path: %v", err)
	}
	want := filepath.Join(root, "ProjectSettings", "Rider.json")
	if strings.TrimSpace(out) != want {
		t.Fatalf("unexpected path %q, want %q", out, want)
	}
}

func TestShowCommand(t *testing.T) {
	root := testsupport.NewProject(t)

	out, _, err := runCLI(t, "--project", root, "show")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Solution Name")
	requireContains(t, out, "(default: Game)")
	requireContains(t, out, "Only letters, digits, underscores and hyphens are allowed.")

	if _, _, err := runCLI(t, "--project", root, "set", "Client"); err != nil {
		t.Fatalf("set: %v", err)
	}

	out, _, err = runCLI(t, "--project", root, "show", "--json")
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	var payload showOutput
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("decode show output: %v", err)
	}
	if payload.SolutionName != "Client" || payload.UsesDefault || !payload.FilePresent || payload.Version != 1 {
		t.Fatalf("unexpected payload %+v", payload)
	}
	if payload.DefaultName != "Game" {
		t.Fatalf("unexpected default name %q", payload.DefaultName)
	}
}

func TestCheckCommand(t *testing.T) {
	root := testsupport.NewProject(t, testsupport.WithRiderJSON(`{"version":1,"solutionName":"Game"}`))

	out, _, err := runCLI(t, "--project", root, "check")
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "Project Root:")
	requireContains(t, out, "[OK]")

	bad := testsupport.NewProject(t, testsupport.WithRiderJSON(`{"version":1,"solutionName":"My Game"}`))
	out, _, err = runCLI(t, "--project", bad, "check")
	if err == nil {
		t.Fatal("expected check failure for unsanitized name")
	}
	requireContains(t, out, "[ERROR]")
}

func TestConfigInitAndValidate(t *testing.T) {
	target := filepath.Join(t.TempDir(), "config.toml")

	out, _, err := runCLI(t, "config", "init", "--path", target)
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	requireContains(t, out, "Wrote sample configuration")

	if _, _, err := runCLI(t, "config", "init", "--path", target); err == nil {
		t.Fatal("expected error when config already exists")
	}

	out, _, err = runCLI(t, "--config", target, "config", "validate")
	if err != nil {
		t.Fatalf("config validate: %v", err)
	}
	requireContains(t, out, "Configuration valid")
}

func TestConfigFileSelectsProject(t *testing.T) {
	root := testsupport.NewProject(t)
	configPath := filepath.Join(t.TempDir(), "ridersettings.toml")
	content := "[project]\nroot = \"" + filepath.ToSlash(root) + "\"\n\n[settings]\nlock = true\n"
	if err := os.WriteFile(configPath, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, _, err := runCLI(t, "--config", configPath, "set", "Locked"); err != nil {
		t.Fatalf("set: %v", err)
	}
	if got := testsupport.ReadRiderJSON(t, root); !strings.Contains(got, `"Locked"`) {
		t.Fatalf("expected name stored in configured project, got %s", got)
	}
	if _, err := os.Stat(filepath.Join(root, "ProjectSettings", "Rider.json.lock")); err != nil {
		t.Fatalf("expected lock file from configured locking: %v", err)
	}
}
