package views

import (
	"fmt"

	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/tui/ui"
	"github.com/rivo/tview"
)

// Confirm asks before a contact is deleted.
type Confirm struct {
	*tview.Modal
	theme    *ui.Theme
	target   contact.Contact
	onDelete func(c contact.Contact)
	onCancel func()
}

const deleteButton = "Delete"

// NewConfirm creates the delete confirmation dialog.
func NewConfirm(theme *ui.Theme) *Confirm {
	cd := &Confirm{
		Modal: tview.NewModal().AddButtons([]string{deleteButton, "Cancel"}),
		theme: theme,
	}
	cd.SetDoneFunc(func(_ int, label string) {
		if label == deleteButton {
			if cd.onDelete != nil {
				cd.onDelete(cd.target)
			}
			return
		}
		if cd.onCancel != nil {
			cd.onCancel()
		}
	})
	cd.Restyle()
	return cd
}

// Name implements Component.
func (cd *Confirm) Name() string { return "Delete" }

// Hints implements Component.
func (cd *Confirm) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Switch button"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Cancel"},
	}
}

// Restyle implements Component.
func (cd *Confirm) Restyle() {
	cd.SetBackgroundColor(cd.theme.BgColor)
	cd.SetTextColor(cd.theme.FgColor)
	cd.SetBorderColor(cd.theme.FlashErrColor)
	cd.SetButtonBackgroundColor(cd.theme.TableCursorBg)
	cd.SetButtonTextColor(cd.theme.TableCursorFg)
}

// Ask sets the contact the dialog is about.
func (cd *Confirm) Ask(c contact.Contact) {
	cd.target = c
	cd.SetText(fmt.Sprintf("Delete %s?\nThis cannot be undone.", sanitizeForTerminal(c.Name)))
	cd.SetFocus(1)
}

// SetOnDelete sets the callback run when deletion is confirmed.
func (cd *Confirm) SetOnDelete(fn func(c contact.Contact)) {
	cd.onDelete = fn
}

// SetOnCancel sets the callback run when the dialog is dismissed.
func (cd *Confirm) SetOnCancel(fn func()) {
	cd.onCancel = fn
}
