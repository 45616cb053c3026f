package main

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/matheus3301/rolodex/internal/config"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/profile"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, args...)
	if err != nil {
		t.Fatalf("rolodexctl %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func setup(t *testing.T) {
	t.Helper()
	t.Setenv(profile.HomeEnv, t.TempDir())
	t.Setenv("ROLODEX_PROFILE", "")
}

func TestContactLifecycle(t *testing.T) {
	setup(t)

	out := mustRun(t, "add", "--json", "--name", "John Doe", "--email", "john@example.com", "--phone", "+1 234 567 8900")
	var john contact.Contact
	if err := json.Unmarshal([]byte(out), &john); err != nil {
		t.Fatalf("add output %q: %v", out, err)
	}
	mustRun(t, "add", "--name", "Jane Smith", "--email", "jane@example.com", "--phone", "+1 234 567 8901")

	// Same phone once spacing is ignored.
	_, err := run(t, "add", "--name", "Johnny", "--email", "johnny@example.com", "--phone", "+1 2345678900")
	if err == nil || !strings.Contains(err.Error(), "phone") {
		t.Errorf("duplicate phone error = %v", err)
	}

	mustRun(t, "fav", john.ID)
	mustRun(t, "edit", john.ID, "--name", "John Q. Doe")

	var listed []contact.Contact
	if err := json.Unmarshal([]byte(mustRun(t, "list", "--json", "--sort", "desc")), &listed); err != nil {
		t.Fatal(err)
	}
	if len(listed) != 2 || listed[0].Name != "John Q. Doe" || !listed[0].Favorite || listed[0].ID != john.ID {
		t.Errorf("list = %+v", listed)
	}

	out = mustRun(t, "list", "--favorites")
	if !strings.Contains(out, "John Q. Doe") || strings.Contains(out, "Jane") {
		t.Errorf("favorites list:\n%s", out)
	}

	out = mustRun(t, "list", "--by", "email", "--search", "JANE@")
	if !strings.Contains(out, "Jane Smith") || strings.Contains(out, "John") {
		t.Errorf("email search:\n%s", out)
	}

	mustRun(t, "rm", john.ID)
	if _, err := run(t, "rm", john.ID); err == nil {
		t.Error("rm of a deleted id succeeded")
	}
	if out := mustRun(t, "list", "--search", "john"); !strings.Contains(out, "No contacts found.") {
		t.Errorf("list after rm:\n%s", out)
	}
}

func TestAddValidatesInput(t *testing.T) {
	setup(t)
	_, err := run(t, "add", "--name", "", "--email", "nope", "--phone", "1234")
	if err == nil {
		t.Fatal("invalid add succeeded")
	}
	for _, field := range []string{"name", "email", "phone"} {
		if !strings.Contains(err.Error(), field) {
			t.Errorf("error %q does not mention %s", err, field)
		}
	}
}

func TestTheme(t *testing.T) {
	setup(t)
	if out := mustRun(t, "theme"); strings.TrimSpace(out) != "dark" {
		t.Errorf("default theme = %q", out)
	}
	mustRun(t, "theme", "toggle")
	if out := mustRun(t, "theme"); strings.TrimSpace(out) != "light" {
		t.Errorf("theme after toggle = %q", out)
	}
	if _, err := run(t, "theme", "sepia"); err == nil {
		t.Error("unknown theme accepted")
	}
}

func TestEphemeralLeavesNothingBehind(t *testing.T) {
	setup(t)
	mustRun(t, "--ephemeral", "add", "--name", "Ada", "--email", "ada@example.org", "--phone", "+44 1")
	if out := mustRun(t, "--ephemeral", "list"); !strings.Contains(out, "No contacts found.") {
		t.Errorf("ephemeral data survived:\n%s", out)
	}
}

func TestProfilesList(t *testing.T) {
	setup(t)
	mustRun(t, "--profile", "work", "theme")
	mustRun(t, "--profile", "home", "theme")

	var got []profileStatus
	if err := json.Unmarshal([]byte(mustRun(t, "profiles", "list", "--json")), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].Name != "home" || got[1].Name != "work" || got[0].PID != 0 {
		t.Errorf("profiles = %+v", got)
	}
}

func TestProfilesUse(t *testing.T) {
	setup(t)
	if err := os.WriteFile(profile.ConfigPath(), []byte("locale = \"fr\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := run(t, "profiles", "use", "Bad Name"); err == nil {
		t.Error("profiles use accepted an invalid name")
	}
	mustRun(t, "profiles", "use", "work")
	mustRun(t, "add", "--name", "Ada", "--email", "ada@example.org", "--phone", "+44 1")

	var info profileInfo
	if err := json.Unmarshal([]byte(mustRun(t, "info", "--json")), &info); err != nil {
		t.Fatal(err)
	}
	if info.Profile != "work" || info.Contacts != 1 {
		t.Errorf("info = %+v, want the work profile", info)
	}

	cfg, err := config.Load(profile.ConfigPath())
	if err != nil {
		t.Fatal(err)
	}
	if cfg.DefaultProfile != "work" || cfg.Locale != "fr" {
		t.Errorf("config = %+v, want default_profile work and the existing locale", cfg)
	}
}

func TestUnknownID(t *testing.T) {
	setup(t)
	for _, args := range [][]string{{"fav", "nope"}, {"edit", "nope", "--name", "X"}, {"rm", "nope"}} {
		if _, err := run(t, args...); err == nil || !strings.Contains(err.Error(), "no contact") {
			t.Errorf("%v error = %v", args, err)
		}
	}
}

func TestInfo(t *testing.T) {
	setup(t)
	mustRun(t, "add", "--name", "Ada", "--email", "ada@example.org", "--phone", "+44 1", "--favorite")
	mustRun(t, "theme", "light")

	var info profileInfo
	if err := json.Unmarshal([]byte(mustRun(t, "info", "--json")), &info); err != nil {
		t.Fatal(err)
	}
	if info.Database != profile.DBPath("main") {
		t.Errorf("database = %q, want %q", info.Database, profile.DBPath("main"))
	}
	if info.Profile != "main" || info.Contacts != 1 || info.Favorites != 1 || info.Theme != "light" || info.Ephemeral {
		t.Errorf("info = %+v", info)
	}
	var keys []string
	for _, sl := range info.Slots {
		keys = append(keys, sl.Key)
	}
	if strings.Join(keys, ",") != "contacts,theme" {
		t.Errorf("slots = %v, want contacts,theme", keys)
	}
}
