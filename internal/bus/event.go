package bus

import (
	"strings"
	"time"
)

// Event is a change notification. Kind is dotted, namespace first:
// "contact.created", "prefs.theme_changed".
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// Namespace returns the leading segment of Kind including its dot, the same
// form Subscribe takes. Kinds without a dot are their own namespace.
func (e Event) Namespace() string {
	if i := strings.IndexByte(e.Kind, '.'); i >= 0 {
		return e.Kind[:i+1]
	}
	return e.Kind
}
