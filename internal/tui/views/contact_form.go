package views

import (
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/form"
	"github.com/matheus3301/rolodex/internal/tui/ui"
	"github.com/rivo/tview"
)

// ContactForm is the add/edit dialog.
type ContactForm struct {
	*tview.Form
	theme *ui.Theme

	name   *tview.InputField
	email  *tview.InputField
	code   *tview.InputField
	number *tview.InputField

	editing  string // id of the contact being edited, empty when adding
	favorite bool
	onSave   func(id string, d contact.Draft)
	onCancel func()
}

// NewContactForm creates the dialog with its fields and buttons.
func NewContactForm(theme *ui.Theme) *ContactForm {
	cf := &ContactForm{
		Form:   tview.NewForm(),
		theme:  theme,
		name:   tview.NewInputField().SetLabel("Name").SetFieldWidth(40),
		email:  tview.NewInputField().SetLabel("Email").SetFieldWidth(40),
		code:   tview.NewInputField().SetLabel("Country code").SetFieldWidth(5).SetAcceptanceFunc(form.AcceptCode),
		number: tview.NewInputField().SetLabel("Phone").SetFieldWidth(20).SetAcceptanceFunc(form.AcceptNumber),
	}

	cf.AddFormItem(cf.name).
		AddFormItem(cf.email).
		AddFormItem(cf.code).
		AddFormItem(cf.number).
		AddButton("Save", cf.save).
		AddButton("Cancel", cf.cancel)
	cf.SetCancelFunc(cf.cancel)
	cf.SetBorder(true)
	cf.Restyle()
	return cf
}

// Name implements Component.
func (cf *ContactForm) Name() string {
	if cf.editing != "" {
		return "Edit"
	}
	return "Add"
}

// Hints implements Component.
func (cf *ContactForm) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Tab", Description: "Next field"},
		{Key: "Enter", Description: "Press button"},
		{Key: "Esc", Description: "Cancel"},
	}
}

// Restyle implements Component.
func (cf *ContactForm) Restyle() {
	cf.SetBackgroundColor(cf.theme.BgColor)
	cf.SetBorderColor(cf.theme.BorderFocusColor)
	cf.SetTitleColor(cf.theme.TitleColor)
	cf.SetLabelColor(cf.theme.MenuKeyColor)
	cf.SetFieldBackgroundColor(cf.theme.TableHeaderBg)
	cf.SetFieldTextColor(cf.theme.FgColor)
	cf.SetButtonBackgroundColor(cf.theme.TableCursorBg)
	cf.SetButtonTextColor(cf.theme.TableCursorFg)
}

// SetOnSave sets the callback run with the entered draft. id is empty for a
// new contact.
func (cf *ContactForm) SetOnSave(fn func(id string, d contact.Draft)) {
	cf.onSave = fn
}

// SetOnCancel sets the callback run when the dialog is dismissed.
func (cf *ContactForm) SetOnCancel(fn func()) {
	cf.onCancel = fn
}

// Add clears the fields for a new contact.
func (cf *ContactForm) Add(defaultCode string) {
	cf.editing = ""
	cf.favorite = false
	cf.name.SetText("")
	cf.email.SetText("")
	cf.code.SetText(defaultCode)
	cf.number.SetText("")
	cf.SetTitle(" Add contact ")
	cf.SetFocus(0)
}

// Edit prefills the fields from c.
func (cf *ContactForm) Edit(c contact.Contact, defaultCode string) {
	code, number := form.SplitPhone(c.Phone, defaultCode)
	cf.editing = c.ID
	cf.favorite = c.Favorite
	cf.name.SetText(c.Name)
	cf.email.SetText(c.Email)
	cf.code.SetText(code)
	cf.number.SetText(number)
	cf.SetTitle(" Edit " + tview.Escape(c.Name) + " ")
	cf.SetFocus(0)
}

// Draft returns the values currently entered.
func (cf *ContactForm) Draft() contact.Draft {
	return contact.Draft{
		Name:     cf.name.GetText(),
		Email:    cf.email.GetText(),
		Phone:    form.JoinPhone(cf.code.GetText(), cf.number.GetText()),
		Favorite: cf.favorite,
	}
}

func (cf *ContactForm) save() {
	if cf.onSave != nil {
		cf.onSave(cf.editing, cf.Draft())
	}
}

func (cf *ContactForm) cancel() {
	if cf.onCancel != nil {
		cf.onCancel()
	}
}
