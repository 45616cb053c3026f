package views

import (
	"fmt"

	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/tui/ui"
	"github.com/rivo/tview"
)

// ContactInfo displays every attribute of one contact.
type ContactInfo struct {
	*tview.TextView
	theme   *ui.Theme
	contact *contact.Contact
}

// NewContactInfo creates a new contact details view.
func NewContactInfo(theme *ui.Theme) *ContactInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)

	ci := &ContactInfo{
		TextView: tv,
		theme:    theme,
	}
	ci.Restyle()
	return ci
}

// Name implements Component.
func (ci *ContactInfo) Name() string { return "Details" }

// Hints implements Component.
func (ci *ContactInfo) Hints() []ui.MenuHint { return nil }

// Restyle implements Component.
func (ci *ContactInfo) Restyle() {
	ci.SetBorderColor(ci.theme.BorderColor)
	ci.SetBackgroundColor(ci.theme.BgColor)
	ci.SetTextColor(ci.theme.FgColor)
	ci.SetTitleColor(ci.theme.TitleColor)
	ci.render()
}

// Update shows c, or clears the view when c is nil.
func (ci *ContactInfo) Update(c *contact.Contact) {
	ci.contact = c
	ci.render()
}

// Contact returns the contact on display.
func (ci *ContactInfo) Contact() (contact.Contact, bool) {
	if ci.contact == nil {
		return contact.Contact{}, false
	}
	return *ci.contact, true
}

func (ci *ContactInfo) render() {
	ci.Clear()
	c := ci.contact
	if c == nil {
		ci.SetTitle(" Details ")
		return
	}

	fg := colorHex(ci.theme.FgColor)
	ct := colorHex(ci.theme.CounterColor)

	favorite := "no"
	if c.Favorite {
		favorite = "yes ★"
	}

	_, _ = fmt.Fprintf(ci,
		"\n [%s::b]Name:[-:-:-]     [%s]%s[-]\n"+
			" [%s::b]Email:[-:-:-]    [%s]%s[-]\n"+
			" [%s::b]Phone:[-:-:-]    [%s]%s[-]\n"+
			" [%s::b]Favorite:[-:-:-] [%s]%s[-]\n"+
			" [%s::b]Avatar:[-:-:-]   [%s]%s[-]\n"+
			" [%s::b]ID:[-:-:-]       [%s]%s[-]",
		fg, ct, esc(c.Name),
		fg, ct, esc(c.Email),
		fg, ct, esc(c.Phone),
		fg, ct, favorite,
		fg, ct, esc(c.Avatar),
		fg, ct, esc(c.ID),
	)
	ci.SetTitle(fmt.Sprintf(" %s ", esc(c.Name)))
}

func esc(s string) string {
	return tview.Escape(sanitizeForTerminal(s))
}

func colorHex(c interface{ Hex() int32 }) string {
	return fmt.Sprintf("#%06x", c.Hex())
}
