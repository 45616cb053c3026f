// Package form checks contact drafts the way the add and edit dialogs do.
// It is input hygiene for people typing into a form; the contact store
// itself accepts any strings.
package form

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/matheus3301/rolodex/internal/contact"
)

var (
	codeRegexp   = regexp.MustCompile(`^\+\d{1,3}$`)
	numberRegexp = regexp.MustCompile(`^\d+$`)
	splitRegexp  = regexp.MustCompile(`^(\+\d{1,3})\s*(.*)$`)

	partialCodeRegexp   = regexp.MustCompile(`^(\+\d{0,3})?$`)
	partialNumberRegexp = regexp.MustCompile(`^[\d ]*$`)
)

// Problem is a single rejected field.
type Problem struct {
	Field   contact.Field
	Message string
}

// Errors lists every problem found in a draft, in field order.
type Errors struct {
	Problems []Problem
}

func (e *Errors) Error() string {
	parts := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		parts[i] = fmt.Sprintf("%s %s", p.Field, p.Message)
	}
	return "invalid contact: " + strings.Join(parts, "; ")
}

// Validate returns *Errors when d would be rejected by the contact form.
func Validate(d contact.Draft) error {
	var errs Errors
	add := func(f contact.Field, msg string) {
		errs.Problems = append(errs.Problems, Problem{Field: f, Message: msg})
	}

	if strings.TrimSpace(d.Name) == "" {
		add(contact.FieldName, "is required")
	}

	email := strings.TrimSpace(d.Email)
	switch addr, err := mail.ParseAddress(email); {
	case email == "":
		add(contact.FieldEmail, "is required")
	case err != nil || addr.Address != email:
		add(contact.FieldEmail, "is not an email address")
	}

	code, number := SplitPhone(d.Phone, "")
	number = strings.Join(strings.Fields(number), "")
	switch {
	case strings.TrimSpace(d.Phone) == "":
		add(contact.FieldPhone, "is required")
	case !codeRegexp.MatchString(code):
		add(contact.FieldPhone, "needs a country code like +1")
	case !numberRegexp.MatchString(number):
		add(contact.FieldPhone, "must be digits after the country code")
	}

	if len(errs.Problems) > 0 {
		return &errs
	}
	return nil
}

// SplitPhone separates a stored phone into country code and number. A phone
// without a recognizable code returns defaultCode and the whole value.
func SplitPhone(phone, defaultCode string) (code, number string) {
	phone = strings.TrimSpace(phone)
	if m := splitRegexp.FindStringSubmatch(phone); m != nil {
		return m[1], m[2]
	}
	return defaultCode, phone
}

// JoinPhone combines a country code and number the way they are stored.
func JoinPhone(code, number string) string {
	return strings.TrimSpace(strings.TrimSpace(code) + " " + strings.TrimSpace(number))
}

// AcceptCode reports whether text is a country code being typed: empty, or
// a plus sign followed by up to three digits.
func AcceptCode(text string, _ rune) bool {
	return partialCodeRegexp.MatchString(text)
}

// AcceptNumber reports whether text holds only digits and spaces.
func AcceptNumber(text string, _ rune) bool {
	return partialNumberRegexp.MatchString(text)
}
