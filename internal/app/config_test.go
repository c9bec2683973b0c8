package app_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ishnc/passforge/internal/app"
)

func writeConfig(t *testing.T, home, body string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	home := t.TempDir()

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Home != home || len(cfg.Profiles) != 0 {
		t.Fatalf("missing config should give empty Config: %+v", cfg)
	}
}

func TestLoadConfig_Profiles(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, `
default_profile: site
profiles:
  site:
    length: 20
    lowercase: true
    uppercase: true
    digits: true
    symbols: true
    require_each_class: true
  pin:
    length: 6
    digits: true
passphrase:
  words: 5
  separator: "."
  capitalize: true
`)

	cfg, err := app.LoadConfig(home)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DefaultProfile != "site" {
		t.Fatalf("default profile: %q", cfg.DefaultProfile)
	}
	site := cfg.Profiles["site"]
	if site.Length != 20 || !site.Symbols || !site.RequireEachClass {
		t.Fatalf("site profile wrong: %+v", site)
	}
	wp := cfg.WordlistPolicy()
	if wp.Words != 5 || wp.Separator != "." || !wp.Capitalize {
		t.Fatalf("passphrase policy wrong: %+v", wp)
	}
}

func TestLoadConfig_UnknownDefault(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "default_profile: ghost\n")

	if _, err := app.LoadConfig(home); err == nil {
		t.Fatal("expected error for unknown default profile")
	}
}

func TestLoadConfig_BadYAML(t *testing.T) {
	home := t.TempDir()
	writeConfig(t, home, "profiles: [broken")

	if _, err := app.LoadConfig(home); err == nil {
		t.Fatal("expected error for invalid yaml")
	}
}

func TestWordlistPolicy_Default(t *testing.T) {
	cfg, err := app.LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	wp := cfg.WordlistPolicy()
	if wp.Words != 6 || wp.Separator != "-" {
		t.Fatalf("want built-in passphrase defaults, got %+v", wp)
	}
}
