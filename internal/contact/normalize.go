package contact

import (
	"strings"
	"unicode"
)

// phonePunct is stripped from phone numbers before comparison.
const phonePunct = " -()+"

// uniqueKey is the comparison form used by the uniqueness constraints.
// Stored values are never rewritten with it.
func uniqueKey(f Field, s string) string {
	if f == FieldPhone {
		return stripPhone(s)
	}
	return strings.ToLower(strings.TrimSpace(s))
}

func stripPhone(s string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(phonePunct, r) {
			return -1
		}
		return r
	}, s)
}

// searchKey is the comparison form used by the search stage of Query.
func searchKey(f Field, s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
	if f == FieldPhone {
		s = stripPhone(s)
	}
	return s
}

// sortKey is the form names are collated in.
func sortKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
