package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// Menu displays keyboard shortcut hints in the header.
type Menu struct {
	*tview.TextView
	theme *Theme
	hints []MenuHint
}

// NewMenu creates a new menu hint bar.
func NewMenu(theme *Theme) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBorderPadding(0, 0, 2, 0)

	m := &Menu{
		TextView: tv,
		theme:    theme,
	}
	m.Restyle()
	return m
}

// Restyle implements Component.
func (m *Menu) Restyle() {
	m.SetBackgroundColor(m.theme.BgColor)
	m.Update(m.hints)
}

// menuRows is how many hints fit in the header before wrapping to a new column.
const menuRows = 6

// Update renders menu hints in columns of menuRows entries.
func (m *Menu) Update(hints []MenuHint) {
	m.hints = hints
	m.Clear()

	keyColor := colorName(m.theme.MenuKeyColor)
	numColor := colorName(m.theme.NumericKeyColor)

	cols := (len(hints) + menuRows - 1) / menuRows
	widths := make([]int, cols)
	for i, h := range hints {
		widths[i/menuRows] = max(widths[i/menuRows], hintWidth(h))
	}

	var b strings.Builder
	for row := 0; row < min(len(hints), menuRows); row++ {
		for col := 0; col < cols; col++ {
			i := col*menuRows + row
			if i >= len(hints) {
				break
			}
			h := hints[i]
			kc := keyColor
			if h.Numeric {
				kc = numColor
			}
			fmt.Fprintf(&b, "[%s::b]<%s>[-:-:-] %s", kc, tview.Escape(h.Key), h.Description)
			if col < cols-1 {
				b.WriteString(strings.Repeat(" ", widths[col]-hintWidth(h)+2))
			}
		}
		b.WriteString("\n")
	}
	_, _ = fmt.Fprint(m, b.String())
}

func hintWidth(h MenuHint) int {
	return len(h.Key) + len(h.Description) + 3
}
