package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/form"
	"github.com/matheus3301/rolodex/internal/prefs"
	"github.com/matheus3301/rolodex/internal/tui/keys"
	"github.com/matheus3301/rolodex/internal/tui/model"
	"github.com/matheus3301/rolodex/internal/tui/ui"
	"github.com/matheus3301/rolodex/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

// Page names.
const (
	pageContacts = "contacts"
	pageDetails  = "details"
	pageHelp     = "help"
	pageForm     = "form"
	pageConfirm  = "confirm"
)

// Options configures the application shell.
type Options struct {
	Profile     string
	CountryCode string
	Logger      *zap.Logger
}

// App is the main TUI application shell.
type App struct {
	app    *tview.Application
	vm     *model.ViewModel
	opts   Options
	logger *zap.Logger
	keys   *keys.Registry
	flash  *ui.FlashModel
	theme  *ui.Theme

	// Layout
	root        *tview.Flex
	pages       *ui.Pages
	profileInfo *ui.ProfileInfo
	menu        *ui.Menu
	logo        *ui.Logo
	crumbs      *ui.Crumbs
	flashBar    *ui.FlashBar
	prompt      *ui.Prompt

	// Views
	list    *views.ContactList
	details *views.ContactInfo
	help    *views.HelpView
	form    *views.ContactForm
	confirm *views.Confirm

	components   []interface{ Restyle() }
	promptActive bool
}

// NewApp creates the TUI application over vm.
func NewApp(vm *model.ViewModel, opts Options) *App {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	theme := ui.ThemeFor(vm.Theme())
	ui.ApplyStyles(theme)

	a := &App{
		app:    tview.NewApplication(),
		vm:     vm,
		opts:   opts,
		logger: opts.Logger.Named("tui"),
		keys:   keys.NewRegistry(),
		flash:  ui.NewFlashModel(),
		theme:  theme,
	}

	a.pages = ui.NewPages()
	a.profileInfo = ui.NewProfileInfo(theme)
	a.menu = ui.NewMenu(theme)
	a.logo = ui.NewLogo(theme)
	a.crumbs = ui.NewCrumbs(theme)
	a.flashBar = ui.NewFlashBar(theme)
	a.prompt = ui.NewPrompt(theme)

	a.list = views.NewContactList(theme)
	a.details = views.NewContactInfo(theme)
	a.help = views.NewHelpView(theme)
	a.form = views.NewContactForm(theme)
	a.confirm = views.NewConfirm(theme)

	a.components = []interface{ Restyle() }{
		a.profileInfo, a.menu, a.logo, a.crumbs, a.flashBar, a.prompt,
		a.list, a.details, a.help, a.form, a.confirm,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.refresh()

	return a
}

func (a *App) setupBindings() {
	a.keys.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: ':',
		Description: "Command", Visible: true,
		Handler: func() { a.showPrompt(ui.PromptCommand) },
	})
	a.keys.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '/',
		Description: "Search", Visible: true,
		Handler: func() { a.showPrompt(ui.PromptFilter) },
	})
	a.keys.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 't',
		Description: "Theme", Visible: true,
		Handler: a.toggleTheme,
	})
	a.keys.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '?',
		Description: "Help", Visible: true,
		Handler: a.showHelp,
	})
	a.keys.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'q',
		Description: "Quit", Visible: true,
		Handler: a.back,
	})

	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyEnter, Description: "Details", Visible: true,
		Handler: a.showDetails,
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'a', Description: "Add", Visible: true,
		Handler: a.showAdd,
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'e', Description: "Edit", Visible: true,
		Handler: func() { a.withSelected(a.showEdit) },
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'd', Description: "Delete", Visible: true,
		Handler: func() { a.withSelected(a.askDelete) },
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: ' ', Label: "space", Description: "Favorite", Visible: true,
		Handler: func() { a.withSelected(a.toggleFavorite) },
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: '*', Description: "Favorites only", Visible: true, Toggle: true,
		Handler: func() {
			a.vm.ToggleFavoritesOnly()
			a.refresh()
		},
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'f', Description: "Search field", Visible: true, Toggle: true,
		Handler: func() {
			f := a.vm.CycleField()
			a.flash.Info("Searching by " + string(f))
			a.refresh()
		},
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'o', Description: "Sort order", Visible: true, Toggle: true,
		Handler: func() {
			a.vm.FlipOrder()
			a.refresh()
		},
	})

	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'j', Description: "Down",
		Handler: func() { a.list.Move(1) },
	})
	a.keys.AddView(pageContacts, &keys.Action{
		Key: tcell.KeyRune, Rune: 'k', Description: "Up",
		Handler: func() { a.list.Move(-1) },
	})

	a.keys.AddView(pageDetails, &keys.Action{
		Key: tcell.KeyRune, Rune: 'e', Description: "Edit", Visible: true,
		Handler: func() { a.withShown(a.showEdit) },
	})
	a.keys.AddView(pageDetails, &keys.Action{
		Key: tcell.KeyRune, Rune: 'd', Description: "Delete", Visible: true,
		Handler: func() { a.withShown(a.askDelete) },
	})
	a.keys.AddView(pageDetails, &keys.Action{
		Key: tcell.KeyRune, Rune: ' ', Label: "space", Description: "Favorite", Visible: true,
		Handler: func() { a.withShown(a.toggleFavorite) },
	})
}

func (a *App) setupCallbacks() {
	a.form.SetOnSave(a.saveContact)
	a.form.SetOnCancel(func() { a.pop() })

	a.confirm.SetOnDelete(a.deleteContact)
	a.confirm.SetOnCancel(func() { a.pop() })

	a.prompt.SetOnChange(func(mode ui.PromptMode, text string) {
		if mode == ui.PromptFilter {
			a.vm.SetSearch(text)
			a.refresh()
		}
	})
	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		if mode == ui.PromptCommand {
			a.execute(ParseCommand(text))
		}
	})
	a.prompt.SetOnCancel(func() {
		if a.prompt.Mode() == ui.PromptFilter {
			a.vm.SetSearch("")
		}
		a.hidePrompt()
	})

	a.pages.SetOnChange(func(stack []string) {
		names := make([]string, len(stack))
		for i, name := range stack {
			names[i] = a.component(name).Name()
		}
		a.crumbs.Update(names)
		a.refresh()
	})
}

func (a *App) setupLayout() {
	a.pages.AddPage(pageContacts, a.list, true, false)
	a.pages.AddPage(pageDetails, a.details, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)
	a.pages.AddPage(pageForm, centered(a.form, 60, 13), true, false)
	a.pages.AddPage(pageConfirm, a.confirm, false, false)

	header := tview.NewFlex().
		AddItem(a.profileInfo, 0, 1, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(a.logo, 26, 0, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 7, 0, false).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false)

	a.app.SetRoot(a.root, true)
	a.pages.Reset(pageContacts)

	a.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		// The prompt handles its own Enter and Esc.
		if a.promptActive {
			return event
		}

		current := a.pages.Current()
		if event.Key() == tcell.KeyEscape {
			a.escape()
			return nil
		}

		// Dialogs own every other key.
		if current == pageForm || current == pageConfirm {
			return event
		}

		if a.keys.HandleEvent(current, event) {
			return nil
		}
		return event
	})
}

// centered wraps p in a fixed size box in the middle of the screen.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, 0, true).
		AddItem(nil, 0, 1, false)
}

func (a *App) component(page string) ui.Component {
	switch page {
	case pageDetails:
		return a.details
	case pageHelp:
		return a.help
	case pageForm:
		return a.form
	case pageConfirm:
		return a.confirm
	default:
		return a.list
	}
}

// refresh redraws everything derived from the view model.
func (a *App) refresh() {
	view := a.vm.View()
	total, favorites := a.vm.Counts()

	a.list.Update(a.vm.Visible(), view, total)

	if c, ok := a.details.Contact(); ok {
		if fresh, ok := a.vm.Get(c.ID); ok {
			a.details.Update(&fresh)
		} else {
			a.details.Update(nil)
		}
	}

	a.profileInfo.Update(&ui.ProfileData{
		Profile:       a.opts.Profile,
		Theme:         string(a.vm.Theme()),
		Total:         total,
		Favorites:     favorites,
		Field:         string(view.Field),
		Order:         orderLabel(view.Order),
		FavoritesOnly: view.FavoritesOnly,
	})

	current := a.pages.Current()
	hints := a.component(current).Hints()
	if current != pageForm && current != pageConfirm {
		hints = append(hints, a.keys.Hints(current)...)
	}
	a.menu.Update(hints)
	a.flashBar.Update(a.flash.Message())
}

func orderLabel(o contact.Order) string {
	if o == contact.Descending {
		return "Z-A"
	}
	return "A-Z"
}

func (a *App) push(page string) {
	a.pages.Push(page)
	a.app.SetFocus(a.pages)
}

func (a *App) pop() {
	a.pages.Pop()
	if a.pages.Depth() == 0 {
		a.pages.Reset(pageContacts)
	}
	a.app.SetFocus(a.pages)
}

// escape leaves the current page, or clears the search on the contact list.
func (a *App) escape() {
	if a.pages.Depth() > 1 {
		a.pop()
		return
	}
	if a.vm.View().Text != "" {
		a.vm.SetSearch("")
		a.refresh()
	}
}

// back leaves the current page. On the contact list it clears an active
// search first and quits otherwise.
func (a *App) back() {
	if a.pages.Depth() > 1 {
		a.pop()
		return
	}
	if a.vm.View().Text != "" {
		a.vm.SetSearch("")
		a.refresh()
		return
	}
	a.app.Stop()
}

func (a *App) showPrompt(mode ui.PromptMode) {
	if a.pages.Current() != pageContacts {
		a.pages.Reset(pageContacts)
	}
	text := ""
	if mode == ui.PromptFilter {
		text = a.vm.View().Text
	}
	a.prompt.Activate(mode, text)
	a.promptActive = true
	a.root.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.promptActive = false
	a.root.ResizeItem(a.prompt, 0, 0)
	a.app.SetFocus(a.pages)
	a.refresh()
}

func (a *App) showHelp() {
	if a.pages.Current() != pageHelp {
		a.push(pageHelp)
	}
}

func (a *App) showDetails() {
	a.withSelected(func(c contact.Contact) {
		a.details.Update(&c)
		a.push(pageDetails)
	})
}

func (a *App) showAdd() {
	a.form.Add(a.opts.CountryCode)
	a.pages.Push(pageForm)
	a.app.SetFocus(a.form)
}

func (a *App) showEdit(c contact.Contact) {
	a.form.Edit(c, a.opts.CountryCode)
	a.pages.Push(pageForm)
	a.app.SetFocus(a.form)
}

func (a *App) askDelete(c contact.Contact) {
	a.confirm.Ask(c)
	a.pages.Overlay(pageConfirm)
	a.app.SetFocus(a.confirm)
}

func (a *App) withSelected(fn func(contact.Contact)) {
	if c, ok := a.list.Selected(); ok {
		fn(c)
	}
}

func (a *App) withShown(fn func(contact.Contact)) {
	if c, ok := a.details.Contact(); ok {
		fn(c)
	}
}

func (a *App) saveContact(id string, d contact.Draft) {
	var (
		c   contact.Contact
		err error
	)
	if id == "" {
		c, err = a.vm.Add(d)
	} else {
		c, err = a.vm.Edit(id, d)
	}
	if err != nil {
		// The form stays open so the entry can be fixed.
		a.report(err)
		a.refresh()
		return
	}

	if id == "" {
		a.flash.Info(fmt.Sprintf("Added %s", c.Name))
	} else {
		a.flash.Info(fmt.Sprintf("Saved %s", c.Name))
	}
	if a.pages.Current() == pageForm {
		a.pop()
		return
	}
	a.refresh()
}

func (a *App) toggleFavorite(c contact.Contact) {
	if err := a.vm.ToggleFavorite(c.ID); err != nil {
		a.report(err)
	}
	a.refresh()
}

func (a *App) deleteContact(c contact.Contact) {
	if err := a.vm.Delete(c.ID); err != nil {
		a.report(err)
		a.pop()
		return
	}
	a.flash.Info(fmt.Sprintf("Deleted %s", c.Name))
	a.details.Update(nil)
	// Drop the dialog and the details page of the deleted contact.
	a.pages.Reset(pageContacts)
	a.app.SetFocus(a.pages)
}

func (a *App) toggleTheme() {
	t, err := a.vm.ToggleTheme()
	if err != nil {
		a.report(err)
	}
	a.applyTheme(t)
}

func (a *App) setTheme(t prefs.Theme) {
	if err := a.vm.SetTheme(t); err != nil {
		a.report(err)
	}
	a.applyTheme(a.vm.Theme())
}

func (a *App) applyTheme(t prefs.Theme) {
	*a.theme = *ui.ThemeFor(t)
	ui.ApplyStyles(a.theme)
	for _, c := range a.components {
		c.Restyle()
	}
	a.refresh()
}

// report shows err in the flash bar. Expected input problems are warnings;
// anything else is logged too.
func (a *App) report(err error) {
	var dup *contact.DuplicateFieldError
	var invalid *form.Errors
	if errors.As(err, &dup) || errors.As(err, &invalid) {
		a.flash.Warn(err.Error())
		return
	}
	a.logger.Error("operation failed", zap.Error(err))
	a.flash.Err(err)
}

func (a *App) execute(cmd Command) {
	switch cmd.Name {
	case "":
	case "quit":
		a.app.Stop()
	case "help":
		a.showHelp()
	case "search":
		a.vm.SetSearch(cmd.Args)
	case "field":
		f, err := contact.ParseField(cmd.Args)
		if err != nil {
			a.report(err)
			break
		}
		a.vm.SetField(f)
	case "sort":
		o, err := contact.ParseOrder(cmd.Args)
		if err != nil {
			a.report(err)
			break
		}
		a.vm.SetOrder(o)
	case "favorites":
		a.vm.ToggleFavoritesOnly()
	case "add":
		a.showAdd()
	case "theme":
		if cmd.Args == "" {
			a.toggleTheme()
			break
		}
		t, err := prefs.ParseTheme(cmd.Args)
		if err != nil {
			a.report(err)
			break
		}
		a.setTheme(t)
	case "clear":
		a.vm.ResetView()
	default:
		a.flash.Warn(fmt.Sprintf("Unknown command %q", cmd.Name))
	}
	a.refresh()
}

// Run starts the TUI and blocks until it quits or ctx is done.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		<-ctx.Done()
		a.app.Stop()
	}()
	go a.expireFlash(ctx)

	return a.app.Run()
}

// expireFlash clears flash messages once they time out.
func (a *App) expireFlash(ctx context.Context) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			a.app.QueueUpdateDraw(func() {
				a.flashBar.Update(a.flash.Message())
			})
		case <-ctx.Done():
			return
		}
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.app.Stop()
}
