package testsupport

import (
	"path/filepath"
	"testing"

	"sndconvert/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t       testing.TB
	baseDir string
	cfg     *config.Config
}

// NewConfig produces a config seeded with unique temp directories per test.
// The tool directory points at stub audio tools unless overridden.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfgVal := config.Default()
	cfgVal.Paths.LogDir = ""
	cfgVal.Paths.LockDir = filepath.Join(base, "locks")
	cfgVal.Tools.Dir = WriteAudioTools(t, filepath.Join(base, "bin"))

	builder := &configBuilder{
		t:       t,
		baseDir: base,
		cfg:     &cfgVal,
	}

	for _, opt := range opts {
		opt(builder)
	}

	return builder.cfg
}

// WithTarget sets the conversion target codec.
func WithTarget(codec string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Conversion.TargetCodec = codec
	}
}

// WithWorkers sets the worker pool size.
func WithWorkers(n int) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Conversion.Workers = n
	}
}

// WithToolDir replaces the stub tool directory.
func WithToolDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Tools.Dir = dir
	}
}
