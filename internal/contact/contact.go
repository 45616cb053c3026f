// Package contact holds the contact collection and the view query over it.
package contact

import "fmt"

// Contact is a single address book entry.
type Contact struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Avatar   string `json:"avatar,omitempty"`
	Favorite bool   `json:"favorite,omitempty"`
}

// Draft carries the caller-editable fields of a contact.
// Favorite is only honored by Create; Update preserves the stored value.
type Draft struct {
	Name     string
	Email    string
	Phone    string
	Favorite bool
}

// Field names a searchable, uniqueness-checked contact attribute.
type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
)

// Fields lists the fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone}

// ParseField accepts the field spellings used by the CLI and TUI.
func ParseField(s string) (Field, error) {
	switch Field(s) {
	case FieldName, FieldEmail, FieldPhone:
		return Field(s), nil
	case "":
		return FieldName, nil
	}
	return "", fmt.Errorf("unknown search field %q: want name, email or phone", s)
}

// Next returns the field after f, wrapping around.
func (f Field) Next() Field {
	for i, cur := range Fields {
		if cur == f {
			return Fields[(i+1)%len(Fields)]
		}
	}
	return FieldName
}

// value returns the raw attribute of c selected by f.
func (f Field) value(c Contact) string {
	switch f {
	case FieldEmail:
		return c.Email
	case FieldPhone:
		return c.Phone
	default:
		return c.Name
	}
}
