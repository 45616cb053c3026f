package ui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/rivo/tview"
)

// Theme holds color constants for the TUI.
type Theme struct {
	BgColor           tcell.Color
	FgColor           tcell.Color
	BorderColor       tcell.Color
	BorderFocusColor  tcell.Color
	TableHeaderFg     tcell.Color
	TableHeaderBg     tcell.Color
	TableCursorFg     tcell.Color
	TableCursorBg     tcell.Color
	CrumbActiveFg     tcell.Color
	CrumbActiveBg     tcell.Color
	CrumbInactiveFg   tcell.Color
	CrumbInactiveBg   tcell.Color
	MenuKeyColor      tcell.Color
	NumericKeyColor   tcell.Color
	TitleColor        tcell.Color
	CounterColor      tcell.Color
	FavoriteColor     tcell.Color
	FlashInfoColor    tcell.Color
	FlashWarnColor    tcell.Color
	FlashErrColor     tcell.Color
	PromptBorderColor tcell.Color
}

// DarkTheme returns a k9s-inspired dark theme.
func DarkTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorBlack,
		FgColor:           tcell.ColorCadetBlue,
		BorderColor:       tcell.ColorDodgerBlue,
		BorderFocusColor:  tcell.ColorLightSkyBlue,
		TableHeaderFg:     tcell.ColorWhite,
		TableHeaderBg:     tcell.ColorBlack,
		TableCursorFg:     tcell.ColorBlack,
		TableCursorBg:     tcell.ColorAqua,
		CrumbActiveFg:     tcell.ColorBlack,
		CrumbActiveBg:     tcell.ColorOrange,
		CrumbInactiveFg:   tcell.ColorBlack,
		CrumbInactiveBg:   tcell.ColorAqua,
		MenuKeyColor:      tcell.ColorDodgerBlue,
		NumericKeyColor:   tcell.ColorFuchsia,
		TitleColor:        tcell.ColorFuchsia,
		CounterColor:      tcell.ColorPapayaWhip,
		FavoriteColor:     tcell.ColorGold,
		FlashInfoColor:    tcell.ColorNavajoWhite,
		FlashWarnColor:    tcell.ColorOrange,
		FlashErrColor:     tcell.ColorOrangeRed,
		PromptBorderColor: tcell.ColorDodgerBlue,
	}
}

// LightTheme is the dark theme's counterpart for light terminals.
func LightTheme() *Theme {
	return &Theme{
		BgColor:           tcell.ColorWhite,
		FgColor:           tcell.ColorDarkSlateGray,
		BorderColor:       tcell.ColorRoyalBlue,
		BorderFocusColor:  tcell.ColorNavy,
		TableHeaderFg:     tcell.ColorBlack,
		TableHeaderBg:     tcell.ColorWhite,
		TableCursorFg:     tcell.ColorWhite,
		TableCursorBg:     tcell.ColorRoyalBlue,
		CrumbActiveFg:     tcell.ColorWhite,
		CrumbActiveBg:     tcell.ColorDarkOrange,
		CrumbInactiveFg:   tcell.ColorWhite,
		CrumbInactiveBg:   tcell.ColorSteelBlue,
		MenuKeyColor:      tcell.ColorRoyalBlue,
		NumericKeyColor:   tcell.ColorPurple,
		TitleColor:        tcell.ColorPurple,
		CounterColor:      tcell.ColorDarkGreen,
		FavoriteColor:     tcell.ColorDarkGoldenrod,
		FlashInfoColor:    tcell.ColorNavy,
		FlashWarnColor:    tcell.ColorDarkOrange,
		FlashErrColor:     tcell.ColorRed,
		PromptBorderColor: tcell.ColorRoyalBlue,
	}
}

// ThemeFor maps a stored preference to its palette.
func ThemeFor(t prefs.Theme) *Theme {
	if t == prefs.Light {
		return LightTheme()
	}
	return DarkTheme()
}

// ApplyStyles sets tview's global styles, used by primitives that take no
// explicit colors such as modals and form buttons.
func ApplyStyles(t *Theme) {
	tview.Styles.PrimitiveBackgroundColor = t.BgColor
	tview.Styles.ContrastBackgroundColor = t.TableCursorBg
	tview.Styles.MoreContrastBackgroundColor = t.BorderColor
	tview.Styles.BorderColor = t.BorderColor
	tview.Styles.TitleColor = t.TitleColor
	tview.Styles.GraphicsColor = t.BorderColor
	tview.Styles.PrimaryTextColor = t.FgColor
	tview.Styles.SecondaryTextColor = t.MenuKeyColor
	tview.Styles.TertiaryTextColor = t.CounterColor
	tview.Styles.InverseTextColor = t.TableCursorFg
	tview.Styles.ContrastSecondaryTextColor = t.TableCursorFg
}
