package keys

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/rolodex/internal/tui/ui"
)

// Action represents a keybinding action.
type Action struct {
	Key         tcell.Key
	Rune        rune
	Label       string // key as shown in the menu, e.g. "space"
	Description string
	Handler     func()
	Visible     bool
	Toggle      bool // flips a view setting; shown in a different color
}

// Matches returns true if a key press matches this action.
func (a *Action) Matches(key tcell.Key, r rune) bool {
	if a.Key != tcell.KeyRune {
		return key == a.Key
	}
	return key == tcell.KeyRune && r == a.Rune
}

func (a *Action) hint() ui.MenuHint {
	label := a.Label
	if label == "" {
		if a.Key == tcell.KeyRune {
			label = string(a.Rune)
		} else {
			label = tcell.KeyNames[a.Key]
		}
	}
	return ui.MenuHint{Key: label, Description: a.Description, Numeric: a.Toggle}
}

// Registry holds keybindings organized by scope, in registration order.
type Registry struct {
	Global []*Action
	Views  map[string][]*Action
}

// NewRegistry creates a new keybinding registry.
func NewRegistry() *Registry {
	return &Registry{
		Views: make(map[string][]*Action),
	}
}

// AddGlobal registers a global keybinding.
func (r *Registry) AddGlobal(action *Action) {
	r.Global = append(r.Global, action)
}

// AddView registers a view-specific keybinding.
func (r *Registry) AddView(view string, action *Action) {
	r.Views[view] = append(r.Views[view], action)
}

// Hints returns the visible bindings for a view, view bindings first.
func (r *Registry) Hints(view string) []ui.MenuHint {
	var hints []ui.MenuHint
	for _, a := range r.Views[view] {
		if a.Visible {
			hints = append(hints, a.hint())
		}
	}
	for _, a := range r.Global {
		if a.Visible {
			hints = append(hints, a.hint())
		}
	}
	return hints
}

// HandleEvent dispatches a key event to matching action in the given view.
// Returns true if a handler matched.
func (r *Registry) HandleEvent(view string, ev *tcell.EventKey) bool {
	return r.Dispatch(view, ev.Key(), ev.Rune())
}

// Dispatch runs the first action bound to key in view, falling back to the
// global bindings.
func (r *Registry) Dispatch(view string, key tcell.Key, ch rune) bool {
	for _, a := range r.Views[view] {
		if a.Matches(key, ch) {
			a.Handler()
			return true
		}
	}
	for _, a := range r.Global {
		if a.Matches(key, ch) {
			a.Handler()
			return true
		}
	}
	return false
}
