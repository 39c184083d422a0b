package testsupport

import (
	"path/filepath"
	"testing"

	"ridersettings/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config pointing at projectRoot with quiet logging.
func NewConfig(t testing.TB, projectRoot string, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	if err := cfgVal.SetProjectRoot(projectRoot); err != nil {
		t.Fatalf("set project root: %v", err)
	}
	cfgVal.Logging.Level = "error"

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}
	return builder.cfg
}

// WithLocking toggles the advisory settings lock.
func WithLocking(enabled bool) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Settings.Lock = enabled
	}
}

// WithLogFile routes debug logs to name inside a fresh temp directory. The
// resulting path is cfg.Logging.File.
func WithLogFile(name string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.File = filepath.Join(b.t.TempDir(), name)
		b.cfg.Logging.Level = "debug"
	}
}
