package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ridersettings/internal/testsupport"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckSettingsDirectory_Missing(t *testing.T) {
	root := testsupport.NewProject(t, testsupport.WithoutProjectSettings())
	result := CheckSettingsDirectory("settings", filepath.Join(root, "ProjectSettings"))
	if !result.Passed {
		t.Fatalf("expected pass when directory can be created, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "created on first save") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckSettingsFile(t *testing.T) {
	cases := []struct {
		name       string
		opts       []testsupport.ProjectOption
		wantPass   bool
		wantDetail string
	}{
		{name: "absent", wantPass: true, wantDetail: "not present"},
		{name: "valid", opts: []testsupport.ProjectOption{testsupport.WithRiderJSON(`{"version":1,"solutionName":"Game"}`)}, wantPass: true, wantDetail: `"Game"`},
		{name: "empty name", opts: []testsupport.ProjectOption{testsupport.WithRiderJSON(`{"version":1,"solutionName":""}`)}, wantPass: true, wantDetail: "default"},
		{name: "malformed", opts: []testsupport.ProjectOption{testsupport.WithRiderJSON(`{"version":`)}, wantDetail: "malformed"},
		{name: "unsanitized", opts: []testsupport.ProjectOption{testsupport.WithRiderJSON(`{"version":1,"solutionName":"My Game"}`)}, wantDetail: "disallowed"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			root := testsupport.NewProject(t, tc.opts...)
			result := CheckSettingsFile("rider settings", filepath.Join(root, "ProjectSettings", "Rider.json"))
			if result.Passed != tc.wantPass {
				t.Fatalf("expected passed=%v, got %+v", tc.wantPass, result)
			}
			if !strings.Contains(result.Detail, tc.wantDetail) {
				t.Fatalf("expected detail containing %q, got %q", tc.wantDetail, result.Detail)
			}
		})
	}
}

func TestRunAll(t *testing.T) {
	root := testsupport.NewProject(t, testsupport.WithRiderJSON(`{"version":1,"solutionName":"Game"}`))
	cfg := testsupport.NewConfig(t, root)

	results := RunAll(cfg)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for _, r := range results {
		if !r.Passed {
			t.Fatalf("expected all checks to pass, %s failed: %s", r.Name, r.Detail)
		}
	}

	if RunAll(nil) != nil {
		t.Fatal("expected nil results for nil config")
	}
}

func TestRunAllMissingProject(t *testing.T) {
	cfg := testsupport.NewConfig(t, filepath.Join(t.TempDir(), "missing"))
	results := RunAll(cfg)
	if results[0].Passed {
		t.Fatalf("expected project root check to fail, got %+v", results[0])
	}
}
