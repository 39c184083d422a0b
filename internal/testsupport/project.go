package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// ProjectOption customizes a fake Unity project.
type ProjectOption func(t testing.TB, root string)

// NewProject lays out a minimal Unity project (Assets/ and ProjectSettings/)
// in a temp directory and returns its root.
func NewProject(t testing.TB, opts ...ProjectOption) string {
	t.Helper()

	root := filepath.Join(t.TempDir(), "Game")
	for _, dir := range []string{"Assets", "ProjectSettings"} {
		if err := os.MkdirAll(filepath.Join(root, dir), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", dir, err)
		}
	}
	for _, opt := range opts {
		opt(t, root)
	}
	return root
}

// WithRiderJSON writes raw content to ProjectSettings/Rider.json.
func WithRiderJSON(content string) ProjectOption {
	return func(t testing.TB, root string) {
		t.Helper()
		path := filepath.Join(root, "ProjectSettings", "Rider.json")
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			t.Fatalf("write Rider.json: %v", err)
		}
	}
}

// WithoutProjectSettings removes the ProjectSettings directory.
func WithoutProjectSettings() ProjectOption {
	return func(t testing.TB, root string) {
		t.Helper()
		if err := os.RemoveAll(filepath.Join(root, "ProjectSettings")); err != nil {
			t.Fatalf("remove ProjectSettings: %v", err)
		}
	}
}

// ReadRiderJSON returns the raw content of ProjectSettings/Rider.json.
func ReadRiderJSON(t testing.TB, root string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, "ProjectSettings", "Rider.json"))
	if err != nil {
		t.Fatalf("read Rider.json: %v", err)
	}
	return string(data)
}
