package app

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/matheus3301/rolodex/internal/config"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/matheus3301/rolodex/internal/profile"
	"go.uber.org/fx"
)

type handles struct {
	contacts *contact.Store
	prefs    *prefs.Store
}

func start(t *testing.T, p Params) (*fx.App, handles) {
	t.Helper()
	var h handles
	a := fx.New(Module(p), EventLogger, fx.Populate(&h.contacts, &h.prefs))
	if err := a.Err(); err != nil {
		t.Fatalf("fx.New() error = %v", err)
	}
	if err := a.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	return a, h
}

func stop(t *testing.T, a *fx.App) {
	t.Helper()
	if err := a.Stop(context.Background()); err != nil {
		t.Errorf("Stop() error = %v", err)
	}
}

func TestProfilePersistsAcrossRuns(t *testing.T) {
	t.Setenv(profile.HomeEnv, t.TempDir())
	p := Params{Profile: "test", Config: config.Defaults()}

	a, h := start(t, p)
	c, err := h.contacts.Create(contact.Draft{Name: "John Doe", Email: "john@x.com", Phone: "+1 234 567 8900"})
	if err != nil {
		t.Fatal(err)
	}
	if err := h.contacts.ToggleFavorite(c.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := h.prefs.Toggle(); err != nil {
		t.Fatal(err)
	}
	stop(t, a)

	a, h = start(t, p)
	defer stop(t, a)
	all := h.contacts.All()
	if len(all) != 1 || all[0].ID != c.ID || !all[0].Favorite {
		t.Errorf("reloaded contacts = %+v", all)
	}
	if h.prefs.Theme() != prefs.Light {
		t.Errorf("theme = %q, want light", h.prefs.Theme())
	}
}

func TestSecondOwnerIsRejected(t *testing.T) {
	t.Setenv(profile.HomeEnv, t.TempDir())
	p := Params{Profile: "test"}

	a, _ := start(t, p)
	defer stop(t, a)

	second := fx.New(Module(p), EventLogger, fx.Invoke(func(*contact.Store) {}))
	err := second.Err()
	if err == nil {
		t.Fatal("second fx app acquired a held profile")
	}
	if !strings.Contains(err.Error(), "profile lock held") {
		t.Errorf("error = %v, want lock contention", err)
	}
}

func TestEphemeralProfile(t *testing.T) {
	t.Setenv(profile.HomeEnv, t.TempDir())
	p := Params{Profile: "scratch", Ephemeral: true, Config: &config.Config{DefaultTheme: "light", AvatarBaseURL: "https://avatars.test/"}}

	a, h := start(t, p)
	c, err := h.contacts.Create(contact.Draft{Name: "Ada", Email: "ada@x", Phone: "1"})
	if err != nil {
		t.Fatal(err)
	}
	if c.Avatar != "https://avatars.test/?name=Ada" {
		t.Errorf("avatar = %q", c.Avatar)
	}
	if h.prefs.Theme() != prefs.Light {
		t.Errorf("theme = %q, want configured light", h.prefs.Theme())
	}
	stop(t, a)

	a, h = start(t, p)
	defer stop(t, a)
	if n := h.contacts.Len(); n != 0 {
		t.Errorf("ephemeral profile kept %d contacts", n)
	}
	if _, err := os.Stat(profile.Dir(p.Profile)); !os.IsNotExist(err) {
		t.Errorf("ephemeral profile touched %s: %v", profile.Dir(p.Profile), err)
	}
}
