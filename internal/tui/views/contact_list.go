package views

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/tui/ui"
	"github.com/rivo/tview"
)

// ContactList is the main contacts table.
type ContactList struct {
	*tview.Table
	theme    *ui.Theme
	contacts []contact.Contact
	view     contact.View
	total    int
}

// NewContactList creates a new contacts table.
func NewContactList(theme *ui.Theme) *ContactList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)

	cl := &ContactList{
		Table: table,
		theme: theme,
	}
	cl.Restyle()
	return cl
}

// Name implements Component.
func (cl *ContactList) Name() string { return "Contacts" }

// Hints implements Component.
func (cl *ContactList) Hints() []ui.MenuHint { return nil }

// Restyle implements Component.
func (cl *ContactList) Restyle() {
	cl.SetBorderColor(cl.theme.BorderColor)
	cl.SetBackgroundColor(cl.theme.BgColor)
	cl.SetTitleColor(cl.theme.TitleColor)
	cl.SetSelectedStyle(tcell.StyleDefault.
		Foreground(cl.theme.TableCursorFg).
		Background(cl.theme.TableCursorBg))
	cl.render()
}

// Update shows the given contacts. total is the size of the whole
// collection, for the title counter.
func (cl *ContactList) Update(contacts []contact.Contact, view contact.View, total int) {
	selected, _ := cl.Selected()

	cl.contacts = contacts
	cl.view = view
	cl.total = total
	cl.render()

	// Keep the cursor on the same contact when it is still visible.
	for i, c := range contacts {
		if c.ID == selected.ID {
			cl.Select(i+1, 0)
			return
		}
	}
	row, _ := cl.GetSelection()
	cl.Select(min(max(row, 1), max(len(contacts), 1)), 0)
}

// Move shifts the cursor by delta rows, staying inside the list.
func (cl *ContactList) Move(delta int) {
	if len(cl.contacts) == 0 {
		return
	}
	row, _ := cl.GetSelection()
	cl.Select(min(max(row+delta, 1), len(cl.contacts)), 0)
}

func (cl *ContactList) render() {
	cl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" ★", 0},
		{" NAME", 2},
		{" EMAIL", 2},
		{" PHONE", 1},
	}
	for col, h := range headers {
		cell := tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp)
		cl.SetCell(0, col, cell)
	}

	for i, c := range cl.contacts {
		row := i + 1
		star := "  "
		if c.Favorite {
			star = " ★"
		}
		cl.SetCell(row, 0, tview.NewTableCell(star).SetTextColor(cl.theme.FavoriteColor))
		cl.SetCell(row, 1, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(c.Name))).SetExpansion(2).SetTextColor(cl.theme.FgColor))
		cl.SetCell(row, 2, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(c.Email))).SetExpansion(2).SetTextColor(cl.theme.FgColor))
		cl.SetCell(row, 3, tview.NewTableCell(" "+tview.Escape(sanitizeForTerminal(c.Phone))).SetExpansion(1).SetTextColor(cl.theme.FgColor))
	}

	cl.SetTitle(cl.title())
}

func (cl *ContactList) title() string {
	name := "Contacts"
	if cl.view.FavoritesOnly {
		name = "Favorites"
	}
	if cl.view.Text != "" {
		return fmt.Sprintf(" %s (%d/%d) %s: %s ", name, len(cl.contacts), cl.total, cl.view.Field, tview.Escape(cl.view.Text))
	}
	if len(cl.contacts) != cl.total {
		return fmt.Sprintf(" %s (%d/%d) ", name, len(cl.contacts), cl.total)
	}
	return fmt.Sprintf(" %s (%d) ", name, cl.total)
}

// Selected returns the contact under the cursor.
func (cl *ContactList) Selected() (contact.Contact, bool) {
	row, _ := cl.GetSelection()
	idx := row - 1 // account for header
	if idx < 0 || idx >= len(cl.contacts) {
		return contact.Contact{}, false
	}
	return cl.contacts[idx], true
}

// Empty reports whether no contact is shown.
func (cl *ContactList) Empty() bool {
	return len(cl.contacts) == 0
}
