package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// ProfileData holds what the header shows about the open profile.
type ProfileData struct {
	Profile       string
	Theme         string
	Total         int
	Favorites     int
	Field         string
	Order         string
	FavoritesOnly bool
}

// ProfileInfo displays profile metadata in the header.
type ProfileInfo struct {
	*tview.TextView
	theme *Theme
	data  *ProfileData
}

// NewProfileInfo creates a new profile info panel.
func NewProfileInfo(theme *Theme) *ProfileInfo {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorderPadding(0, 0, 1, 1)

	pi := &ProfileInfo{
		TextView: tv,
		theme:    theme,
	}
	pi.Restyle()
	return pi
}

// Restyle implements Component.
func (pi *ProfileInfo) Restyle() {
	pi.SetBackgroundColor(pi.theme.BgColor)
	pi.Update(pi.data)
}

// Update renders the profile info.
func (pi *ProfileInfo) Update(data *ProfileData) {
	pi.data = data
	pi.Clear()
	if data == nil {
		return
	}

	fgColor := colorName(pi.theme.FgColor)
	counterColor := colorName(pi.theme.CounterColor)

	shown := "all"
	if data.FavoritesOnly {
		shown = "favorites"
	}

	_, _ = fmt.Fprintf(pi,
		"[%s::b]Profile:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Contacts:[-:-:-] [%s]%d (%d ★)[-]\n"+
			"[%s::b]Showing:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Search:[-:-:-]   [%s]%s[-]\n"+
			"[%s::b]Sort:[-:-:-]     [%s]%s[-]\n"+
			"[%s::b]Theme:[-:-:-]    [%s]%s[-]",
		fgColor, counterColor, tview.Escape(data.Profile),
		fgColor, counterColor, data.Total, data.Favorites,
		fgColor, counterColor, shown,
		fgColor, counterColor, data.Field,
		fgColor, counterColor, data.Order,
		fgColor, counterColor, data.Theme,
	)
}
