package config

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/text/language"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	cfg := Defaults()
	cfg.DefaultProfile = "work"
	cfg.DefaultTheme = "light"
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if loaded.DefaultProfile != "work" {
		t.Errorf("DefaultProfile = %q, want %q", loaded.DefaultProfile, "work")
	}
	if loaded.DefaultTheme != "light" {
		t.Errorf("DefaultTheme = %q, want %q", loaded.DefaultTheme, "light")
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := Load("/nonexistent/config.toml")
	if err == nil {
		t.Error("Load() expected error for missing file")
	}
}

func TestLoadKeepsDefaultsForUnsetKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_profile = \"home\"\n"), 0600); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultProfile != "home" {
		t.Errorf("DefaultProfile = %q, want home", cfg.DefaultProfile)
	}
	if cfg.DefaultCountryCode != "+91" {
		t.Errorf("DefaultCountryCode = %q, want default +91", cfg.DefaultCountryCode)
	}
}

func TestResolveMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Resolve(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if cfg.DefaultTheme != "dark" {
		t.Errorf("DefaultTheme = %q, want dark", cfg.DefaultTheme)
	}
}

func TestResolveEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_theme = \"light\"\nlocale = \"de\"\n"), 0600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("ROLODEX_THEME", "dark")

	cfg, err := Resolve(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultTheme != "dark" {
		t.Errorf("DefaultTheme = %q, want env override dark", cfg.DefaultTheme)
	}
	if cfg.Locale != "de" {
		t.Errorf("Locale = %q, want de from file", cfg.Locale)
	}
}

func TestResolveMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("default_theme = \n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := Resolve(path); err == nil {
		t.Error("Resolve() expected error for malformed toml")
	}
}

func TestTag(t *testing.T) {
	if got := (&Config{Locale: "fr"}).Tag(); got != language.French {
		t.Errorf("Tag(fr) = %v, want fr", got)
	}
	if got := (&Config{Locale: "!!"}).Tag(); got != language.Und {
		t.Errorf("Tag(!!) = %v, want und", got)
	}
}

func TestSavePermissions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")

	if err := Save(path, &Config{DefaultProfile: "main"}); err != nil {
		t.Fatal(err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if perm := info.Mode().Perm(); perm != 0600 {
		t.Errorf("file permission = %o, want 0600", perm)
	}
}
