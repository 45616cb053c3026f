package model

import (
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/form"
	"github.com/matheus3301/rolodex/internal/prefs"
)

// ViewModel holds the list view state and routes user actions to the stores.
// The visible list is derived from scratch on every call to Visible.
type ViewModel struct {
	contacts *contact.Store
	prefs    *prefs.Store
	view     contact.View

	// CountryCode prefills the phone code of new contacts.
	CountryCode string
}

// NewViewModel creates a view model showing every contact A-Z by name.
func NewViewModel(contacts *contact.Store, p *prefs.Store, v contact.View) *ViewModel {
	if v.Field == "" {
		v.Field = contact.FieldName
	}
	return &ViewModel{contacts: contacts, prefs: p, view: v}
}

// View returns the current display parameters.
func (vm *ViewModel) View() contact.View {
	return vm.view
}

// Visible returns the contacts to display for the current view.
func (vm *ViewModel) Visible() []contact.Contact {
	return contact.Query(vm.contacts.All(), vm.view)
}

// Counts returns the total number of contacts and how many are favorites.
func (vm *ViewModel) Counts() (total, favorites int) {
	all := vm.contacts.All()
	for _, c := range all {
		if c.Favorite {
			favorites++
		}
	}
	return len(all), favorites
}

// Get returns a contact by id.
func (vm *ViewModel) Get(id string) (contact.Contact, bool) {
	return vm.contacts.Get(id)
}

// SetSearch sets the search text.
func (vm *ViewModel) SetSearch(text string) {
	vm.view.Text = text
}

// SetField selects the attribute searched.
func (vm *ViewModel) SetField(f contact.Field) {
	vm.view.Field = f
}

// CycleField moves to the next search field and returns it.
func (vm *ViewModel) CycleField() contact.Field {
	vm.view.Field = vm.view.Field.Next()
	return vm.view.Field
}

// SetOrder sets the sort direction.
func (vm *ViewModel) SetOrder(o contact.Order) {
	vm.view.Order = o
}

// FlipOrder reverses the sort direction and returns it.
func (vm *ViewModel) FlipOrder() contact.Order {
	if vm.view.Order == contact.Ascending {
		vm.view.Order = contact.Descending
	} else {
		vm.view.Order = contact.Ascending
	}
	return vm.view.Order
}

// ResetView clears the search and filter and sorts A-Z again.
func (vm *ViewModel) ResetView() {
	vm.view = contact.View{Field: contact.FieldName, Locale: vm.view.Locale}
}

// ToggleFavoritesOnly flips the favorites filter and returns it.
func (vm *ViewModel) ToggleFavoritesOnly() bool {
	vm.view.FavoritesOnly = !vm.view.FavoritesOnly
	return vm.view.FavoritesOnly
}

// Add validates d and creates it. Form problems come back as *form.Errors,
// collisions as *contact.DuplicateFieldError.
func (vm *ViewModel) Add(d contact.Draft) (contact.Contact, error) {
	if err := form.Validate(d); err != nil {
		return contact.Contact{}, err
	}
	return vm.contacts.Create(d)
}

// Edit validates d and applies it to the contact with the given id.
func (vm *ViewModel) Edit(id string, d contact.Draft) (contact.Contact, error) {
	if err := form.Validate(d); err != nil {
		return contact.Contact{}, err
	}
	c, _, err := vm.contacts.Update(id, d)
	return c, err
}

// ToggleFavorite flips the favorite flag of a contact.
func (vm *ViewModel) ToggleFavorite(id string) error {
	return vm.contacts.ToggleFavorite(id)
}

// Delete removes a contact. Confirmation is the caller's job.
func (vm *ViewModel) Delete(id string) error {
	return vm.contacts.Delete(id)
}

// Theme returns the active theme.
func (vm *ViewModel) Theme() prefs.Theme {
	return vm.prefs.Theme()
}

// SetTheme selects a theme.
func (vm *ViewModel) SetTheme(t prefs.Theme) error {
	return vm.prefs.Set(t)
}

// ToggleTheme switches between light and dark.
func (vm *ViewModel) ToggleTheme() (prefs.Theme, error) {
	return vm.prefs.Toggle()
}
