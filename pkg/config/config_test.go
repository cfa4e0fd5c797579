package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/go-cardkit/cardkit/pkg/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.FileName), []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return dir
}

func TestLoadOptional_MissingFile(t *testing.T) {
	cfg, err := config.LoadOptional(t.TempDir())
	if err != nil {
		t.Fatalf("missing file must not error: %v", err)
	}
	if cfg.Messaging.DefaultSurface != "" || cfg.Log.Verbose {
		t.Errorf("expected zero config, got %+v", cfg)
	}
}

func TestLoadOptional_ParsesFields(t *testing.T) {
	dir := writeConfig(t, `
messaging:
  defaultSurface: mobileapp://promos
  minExtensionVersion: v3.2.0
log:
  verbose: true
`)

	cfg, err := config.LoadOptional(dir)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if cfg.Messaging.DefaultSurface != "mobileapp://promos" {
		t.Errorf("defaultSurface mismatch: %q", cfg.Messaging.DefaultSurface)
	}
	if cfg.Messaging.MinExtensionVersion != "v3.2.0" {
		t.Errorf("minExtensionVersion mismatch: %q", cfg.Messaging.MinExtensionVersion)
	}
	if !cfg.Log.Verbose {
		t.Error("expected verbose logging enabled")
	}
}

func TestLoadOptional_MalformedYAML(t *testing.T) {
	dir := writeConfig(t, "messaging: [not a map")
	if _, err := config.LoadOptional(dir); err == nil {
		t.Error("expected parse error")
	}
}

func TestResolve_Defaults(t *testing.T) {
	resolved, err := config.Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.DefaultSurface != "mobileapp://default" {
		t.Errorf("expected default surface fallback, got %q", resolved.DefaultSurface)
	}
	if resolved.MinExtensionVersion != "" || resolved.Verbose {
		t.Errorf("unexpected resolved values: %+v", resolved)
	}
}

func TestResolve_TrimsWhitespace(t *testing.T) {
	dir := writeConfig(t, `
messaging:
  defaultSurface: "  mobileapp://promos  "
`)
	resolved, err := config.Resolve(dir)
	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}
	if resolved.DefaultSurface != "mobileapp://promos" {
		t.Errorf("expected trimmed surface, got %q", resolved.DefaultSurface)
	}
}
