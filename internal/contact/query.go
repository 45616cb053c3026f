package contact

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Order is the direction of the name sort.
type Order int

const (
	Ascending Order = iota
	Descending
)

func (o Order) String() string {
	if o == Descending {
		return "desc"
	}
	return "asc"
}

// ParseOrder accepts asc/desc and the A-Z / Z-A spellings.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(s) {
	case "", "asc", "az", "a-z":
		return Ascending, nil
	case "desc", "za", "z-a":
		return Descending, nil
	}
	return Ascending, fmt.Errorf("unknown sort order %q: want asc or desc", s)
}

// View is the set of display parameters a list is derived from.
type View struct {
	FavoritesOnly bool
	Field         Field
	Text          string
	Order         Order
	// Locale selects the collation; the zero tag uses the root collation.
	Locale language.Tag
}

// Query derives the display list from contacts. It never modifies its input
// and always returns a fresh slice.
func Query(contacts []Contact, v View) []Contact {
	needle := searchKey(v.Field, v.Text)

	type keyed struct {
		c   Contact
		key []byte
	}
	col := collate.New(v.Locale, collate.IgnoreCase)
	var buf collate.Buffer
	rows := make([]keyed, 0, len(contacts))
	for _, c := range contacts {
		if v.FavoritesOnly && !c.Favorite {
			continue
		}
		if needle != "" && !strings.Contains(searchKey(v.Field, v.Field.value(c)), needle) {
			continue
		}
		rows = append(rows, keyed{c: c, key: col.KeyFromString(&buf, sortKey(c.Name))})
	}

	slices.SortStableFunc(rows, func(a, b keyed) int {
		if v.Order == Descending {
			return bytes.Compare(b.key, a.key)
		}
		return bytes.Compare(a.key, b.key)
	})

	out := make([]Contact, len(rows))
	for i, r := range rows {
		out[i] = r.c
	}
	return out
}
