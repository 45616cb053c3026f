package ui

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
	Numeric     bool // true for toggles (displayed in a different color)
}

// Component is the lifecycle interface for all TUI views.
type Component interface {
	Name() string
	Hints() []MenuHint
	// Restyle reapplies the shared theme after it changes.
	Restyle()
}
