// Package prefs persists user interface preferences.
package prefs

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/matheus3301/rolodex/internal/bus"
)

// ThemeKey is the slot the theme is stored under.
const ThemeKey = "theme"

// EventThemeChanged is published with a ThemeChange payload.
const EventThemeChanged = "prefs.theme_changed"

// Theme is the color scheme of the interface.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// ParseTheme accepts light or dark in any case.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case Light, Dark:
		return t, nil
	}
	return "", fmt.Errorf("unknown theme %q: want light or dark", s)
}

// Other returns the opposite theme.
func (t Theme) Other() Theme {
	if t == Light {
		return Dark
	}
	return Light
}

// ThemeChange is the payload of EventThemeChanged.
type ThemeChange struct {
	From Theme
	To   Theme
}

// Slots is the durable key-value primitive preferences are kept in.
type Slots interface {
	ReadSlot(key string) ([]byte, bool, error)
	WriteSlot(key string, value []byte) error
}

// Store holds the active theme and writes every change through to its slot.
type Store struct {
	mu    sync.RWMutex
	slots Slots
	bus   *bus.Bus
	theme Theme
}

// Open reads the stored theme. A missing or unrecognized value falls back to
// def (and to Dark if def itself is invalid).
func Open(slots Slots, b *bus.Bus, def Theme) *Store {
	def, err := ParseTheme(string(def))
	if err != nil {
		def = Dark
	}
	s := &Store{slots: slots, bus: b, theme: def}
	if data, ok, err := slots.ReadSlot(ThemeKey); err == nil && ok {
		if t, err := ParseTheme(string(data)); err == nil {
			s.theme = t
		}
	}
	return s
}

// Theme returns the active theme.
func (s *Store) Theme() Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

// Set stores t. Setting the active theme again is a no-op.
func (s *Store) Set(t Theme) error {
	t, err := ParseTheme(string(t))
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if t == s.theme {
		return nil
	}
	if err := s.slots.WriteSlot(ThemeKey, []byte(t)); err != nil {
		return fmt.Errorf("persist theme: %w", err)
	}
	from := s.theme
	s.theme = t
	if s.bus != nil {
		s.bus.Publish(bus.Event{
			Kind:      EventThemeChanged,
			Timestamp: time.Now(),
			Payload:   ThemeChange{From: from, To: t},
		})
	}
	return nil
}

// Toggle switches between light and dark and returns the new theme.
func (s *Store) Toggle() (Theme, error) {
	next := s.Theme().Other()
	if err := s.Set(next); err != nil {
		return s.Theme(), err
	}
	return next, nil
}
