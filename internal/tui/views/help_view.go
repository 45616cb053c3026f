package views

import (
	"fmt"

	"github.com/matheus3301/rolodex/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetTitle(" Help ")

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	hv.Restyle()
	return hv
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint { return nil }

// Restyle implements Component.
func (hv *HelpView) Restyle() {
	hv.SetBorderColor(hv.theme.BorderColor)
	hv.SetBackgroundColor(hv.theme.BgColor)
	hv.SetTextColor(hv.theme.FgColor)
	hv.SetTitleColor(hv.theme.TitleColor)
	hv.render()
}

func (hv *HelpView) render() {
	hv.Clear()
	kc := colorHex(hv.theme.MenuKeyColor)

	help := fmt.Sprintf(`
  [::b]Global Keys[-:-:-]

  [%[1]s]:[-:-:-]      Command mode          [%[1]s]Esc[-:-:-]    Cancel / Go back
  [%[1]s]/[-:-:-]      Search                [%[1]s]?[-:-:-]      Help
  [%[1]s]t[-:-:-]      Toggle light/dark     [%[1]s]q[-:-:-]      Quit / Back

  [::b]Contact List[-:-:-]

  [%[1]s]Enter[-:-:-]  Show details          [%[1]s]a[-:-:-]      Add contact
  [%[1]s]e[-:-:-]      Edit contact          [%[1]s]d[-:-:-]      Delete contact
  [%[1]s]space[-:-:-]  Toggle favorite       [%[1]s]*[-:-:-]      Favorites only
  [%[1]s]f[-:-:-]      Cycle search field    [%[1]s]o[-:-:-]      Flip sort order
  [%[1]s]j/Down[-:-:-] Move down             [%[1]s]k/Up[-:-:-]   Move up

  [::b]Commands (: mode)[-:-:-]

  [%[1]s]:search <text>[-:-:-]         Search the current field
  [%[1]s]:field <name|email|phone>[-:-:-] Choose the search field
  [%[1]s]:sort <asc|desc>[-:-:-]       Sort by name
  [%[1]s]:fav[-:-:-]                   Toggle favorites only
  [%[1]s]:add[-:-:-]                   Add contact
  [%[1]s]:theme [light|dark][-:-:-]    Set or toggle the theme
  [%[1]s]:clear[-:-:-]                 Reset search, filter and sort
  [%[1]s]:help[-:-:-] / [%[1]s]:h[-:-:-]           Show this help
  [%[1]s]:quit[-:-:-] / [%[1]s]:q[-:-:-]           Quit application
`, kc)

	_, _ = fmt.Fprint(hv, help)
}
