package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/rivo/tview"
)

func TestPagesStack(t *testing.T) {
	p := NewPages()
	for _, name := range []string{"contacts", "details", "help"} {
		p.AddPage(name, tview.NewBox(), true, false)
	}

	var seen [][]string
	p.SetOnChange(func(stack []string) { seen = append(seen, stack) })

	p.Reset("contacts")
	p.Push("details")
	p.Push("help")
	if got := p.Current(); got != "help" {
		t.Errorf("Current() = %q, want help", got)
	}
	if got := p.Pop(); got != "help" {
		t.Errorf("Pop() = %q, want help", got)
	}
	if got := p.Current(); got != "details" {
		t.Errorf("Current() after pop = %q, want details", got)
	}
	if front, _ := p.GetFrontPage(); front != "details" {
		t.Errorf("front page = %q, want details", front)
	}

	want := [][]string{{"contacts"}, {"contacts", "details"}, {"contacts", "details", "help"}, {"contacts", "details"}}
	if diff := cmp.Diff(want, seen); diff != "" {
		t.Errorf("stack notifications (-want +got):\n%s", diff)
	}

	p.Pop()
	p.Pop()
	if got := p.Pop(); got != "" {
		t.Errorf("Pop() on empty stack = %q", got)
	}
	if p.Depth() != 0 {
		t.Errorf("Depth() = %d, want 0", p.Depth())
	}
}

func TestFlashExpires(t *testing.T) {
	f := NewFlashModel()
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	f.now = func() time.Time { return now }

	if f.Message() != nil {
		t.Fatal("new model has a message")
	}

	f.Err(errors.New("boom"))
	m := f.Message()
	if m == nil || m.Text != "boom" || m.Level != FlashErr {
		t.Fatalf("Message() = %+v", m)
	}

	now = now.Add(11 * time.Second)
	if m := f.Message(); m != nil {
		t.Errorf("Message() after expiry = %+v", m)
	}

	f.Info("saved")
	f.Clear()
	if m := f.Message(); m != nil {
		t.Errorf("Message() after Clear = %+v", m)
	}
}

func TestThemeFor(t *testing.T) {
	if got := ThemeFor(prefs.Light); *got != *LightTheme() {
		t.Error("ThemeFor(light) is not the light theme")
	}
	if got := ThemeFor(prefs.Dark); *got != *DarkTheme() {
		t.Error("ThemeFor(dark) is not the dark theme")
	}
}

func TestRestyleKeepsContent(t *testing.T) {
	theme := DarkTheme()
	pi := NewProfileInfo(theme)
	pi.Update(&ProfileData{Profile: "work", Total: 3, Favorites: 1, Field: "name", Order: "asc", Theme: "dark"})
	before := pi.GetText(true)

	*theme = *LightTheme()
	pi.Restyle()
	if got := pi.GetText(true); got != before {
		t.Errorf("text changed on restyle:\n%s\nvs\n%s", got, before)
	}
}

func TestOverlayKeepsPageBelowVisible(t *testing.T) {
	p := NewPages()
	p.AddPage("contacts", tview.NewBox(), true, false)
	p.AddPage("confirm", tview.NewModal(), false, false)

	p.Reset("contacts")
	p.Overlay("confirm")
	if !p.HasPage("contacts") || p.Current() != "confirm" {
		t.Fatalf("Current() = %q", p.Current())
	}
	if front, _ := p.GetFrontPage(); front != "confirm" {
		t.Errorf("front page = %q, want confirm", front)
	}
	p.Pop()
	if front, _ := p.GetFrontPage(); front != "contacts" {
		t.Errorf("front page after pop = %q, want contacts", front)
	}
}

func TestMenuWrapsIntoColumns(t *testing.T) {
	m := NewMenu(DarkTheme())
	var hints []MenuHint
	for _, k := range []string{"a", "b", "c", "d", "e", "f", "g"} {
		hints = append(hints, MenuHint{Key: k, Description: "Do " + k})
	}
	m.Update(hints)

	want := "<a> Do a  <g> Do g\n<b> Do b\n<c> Do c\n<d> Do d\n<e> Do e\n<f> Do f"
	if got := strings.TrimRight(m.GetText(true), "\n"); got != want {
		t.Errorf("menu text = %q, want %q", got, want)
	}
}
