package contact

import "strings"

// DuplicateFieldError is returned by Create and Update when the draft collides
// with another live contact. Fields is never empty and keeps name, email,
// phone order.
type DuplicateFieldError struct {
	Fields []Field
}

func (e *DuplicateFieldError) Error() string {
	names := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		names[i] = string(f)
	}
	return "duplicate contact: " + strings.Join(names, ", ") + " already exist"
}

// Has reports whether f is among the colliding fields.
func (e *DuplicateFieldError) Has(f Field) bool {
	for _, cur := range e.Fields {
		if cur == f {
			return true
		}
	}
	return false
}
