package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type sampleConfig struct {
	DSN         string        `envconfig:"DSN" split_words:"true" required:"true"`
	DialTimeout time.Duration `envconfig:"DIAL_TIMEOUT" split_words:"true" default:"5s"`
	AutoMigrate bool          `envconfig:"AUTO_MIGRATE" split_words:"true" default:"true"`
}

func TestExportEnvironmentKeepsProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	content := "RESORTTEST_DSN=postgres://file\nRESORTTEST_DIAL_TIMEOUT=2s\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("RESORTTEST_DIAL_TIMEOUT", "7s")
	t.Cleanup(func() { _ = os.Unsetenv("RESORTTEST_DSN") })

	if err := exportEnvironment(path); err != nil {
		t.Fatalf("exportEnvironment() error = %v", err)
	}
	if got := os.Getenv("RESORTTEST_DSN"); got != "postgres://file" {
		t.Fatalf("unexpected DSN: %q", got)
	}
	if got := os.Getenv("RESORTTEST_DIAL_TIMEOUT"); got != "7s" {
		t.Fatalf("process env should win, got %q", got)
	}
}

func TestExportEnvironmentIfExistsMissing(t *testing.T) {
	if err := exportEnvironmentIfExists(filepath.Join(t.TempDir(), "missing.env")); err != nil {
		t.Fatalf("missing file should be ignored, got %v", err)
	}
}

func TestNewFillsDefaults(t *testing.T) {
	t.Setenv("RESORTCFG_DSN", "postgres://env")

	conf, err := New[sampleConfig]("RESORTCFG")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if conf.DSN != "postgres://env" || conf.DialTimeout != 5*time.Second || !conf.AutoMigrate {
		t.Fatalf("unexpected config: %+v", conf)
	}
}

func TestNewRequiredMissing(t *testing.T) {
	if _, err := New[sampleConfig]("RESORTMISSING"); err == nil {
		t.Fatal("expected error for missing required DSN")
	}
}
