package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matheus3301/rolodex/internal/profile"
)

func TestResolve(t *testing.T) {
	home := t.TempDir()
	t.Setenv(profile.HomeEnv, home)
	t.Setenv("ROLODEX_PROFILE", "")

	if err := os.WriteFile(filepath.Join(home, "config.toml"), []byte("default_profile = \"work\"\nlocale = \"fr\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		flag, env, want string
		wantErr         bool
	}{
		{"", "", "work", false},
		{"", "home", "home", false},
		{"cli", "home", "cli", false},
		{"Bad Name", "", "", true},
	}
	for _, tt := range tests {
		t.Setenv("ROLODEX_PROFILE", tt.env)
		p, err := Resolve(tt.flag, true)
		if (err != nil) != tt.wantErr {
			t.Errorf("Resolve(%q) error = %v, wantErr %v", tt.flag, err, tt.wantErr)
			continue
		}
		if err != nil {
			continue
		}
		if p.Profile != tt.want || !p.Ephemeral || p.Config.Locale != "fr" {
			t.Errorf("Resolve(%q) with env %q = %+v", tt.flag, tt.env, p)
		}
	}
}
