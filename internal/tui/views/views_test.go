package views

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/matheus3301/rolodex/internal/contact"
	"github.com/matheus3301/rolodex/internal/tui/ui"
)

var sample = []contact.Contact{
	{ID: "c1", Name: "Ada Lovelace", Email: "ada@example.org", Phone: "+44 20 7946 0000", Favorite: true},
	{ID: "c2", Name: "John Doe", Email: "john@example.com", Phone: "+1 234 567 8900"},
}

func TestContactListSelection(t *testing.T) {
	cl := NewContactList(ui.DarkTheme())
	cl.Update(sample, contact.View{Field: contact.FieldName}, 2)

	if got := cl.GetRowCount(); got != 3 {
		t.Fatalf("GetRowCount() = %d, want 3", got)
	}
	if got := cl.GetCell(1, 1).Text; got != " Ada Lovelace" {
		t.Errorf("row 1 name = %q", got)
	}
	if got := cl.GetCell(1, 0).Text; got != " ★" {
		t.Errorf("favorite marker = %q", got)
	}

	cl.Select(2, 0)
	c, ok := cl.Selected()
	if !ok || c.ID != "c2" {
		t.Fatalf("Selected() = %v, %v; want c2", c.ID, ok)
	}

	// The cursor follows the contact when the list is reordered.
	cl.Update([]contact.Contact{sample[1], sample[0]}, contact.View{Order: contact.Descending}, 2)
	if c, _ := cl.Selected(); c.ID != "c2" {
		t.Errorf("Selected() after reorder = %q, want c2", c.ID)
	}

	cl.Update(nil, contact.View{Text: "zzz"}, 2)
	if _, ok := cl.Selected(); ok || !cl.Empty() {
		t.Error("empty list still has a selection")
	}
	if got, want := cl.GetTitle(), " Contacts (0/2) name: zzz "; got != want {
		t.Errorf("GetTitle() = %q, want %q", got, want)
	}
}

func TestContactFormDraft(t *testing.T) {
	cf := NewContactForm(ui.DarkTheme())

	var gotID string
	var got contact.Draft
	cf.SetOnSave(func(id string, d contact.Draft) { gotID, got = id, d })

	cf.Edit(sample[1], "+91")
	if cf.code.GetText() != "+1" || cf.number.GetText() != "234 567 8900" {
		t.Fatalf("phone prefill = %q %q", cf.code.GetText(), cf.number.GetText())
	}
	cf.name.SetText("John Q. Doe")
	cf.save()

	want := contact.Draft{Name: "John Q. Doe", Email: "john@example.com", Phone: "+1 234 567 8900"}
	if gotID != "c2" {
		t.Errorf("save id = %q, want c2", gotID)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Draft() (-want +got):\n%s", diff)
	}

	cf.Add("+91")
	if d := cf.Draft(); d.Phone != "+91" || d.Name != "" || cf.Name() != "Add" {
		t.Errorf("Add() left %+v", d)
	}
}

func TestContactInfo(t *testing.T) {
	ci := NewContactInfo(ui.LightTheme())
	ci.Update(&sample[0])
	if c, ok := ci.Contact(); !ok || c.ID != "c1" {
		t.Errorf("Contact() = %v, %v", c.ID, ok)
	}
	if ci.GetTitle() != " Ada Lovelace " {
		t.Errorf("GetTitle() = %q", ci.GetTitle())
	}
	ci.Update(nil)
	if _, ok := ci.Contact(); ok {
		t.Error("cleared view still has a contact")
	}
}

func TestConfirmCallsBack(t *testing.T) {
	cd := NewConfirm(ui.DarkTheme())
	var deleted string
	cd.SetOnDelete(func(c contact.Contact) { deleted = c.ID })
	cd.Ask(sample[0])
	cd.onDelete(cd.target)
	if deleted != "c1" {
		t.Errorf("deleted = %q, want c1", deleted)
	}
}

func TestSanitizeForTerminal(t *testing.T) {
	tests := map[string]string{
		"plain":                "plain",
		"\U0001F44D\U0001F3FB": "\U0001F44D",
		"a\u200db":             "ab",
		"\u2764\ufe0f":         "\u2764",
	}
	for in, want := range tests {
		if got := sanitizeForTerminal(in); got != want {
			t.Errorf("sanitizeForTerminal(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestContactListMoveStaysInside(t *testing.T) {
	cl := NewContactList(ui.DarkTheme())
	cl.Move(1)
	cl.Update(sample, contact.View{}, 2)

	cl.Move(-5)
	if c, _ := cl.Selected(); c.ID != "c1" {
		t.Errorf("after Move(-5) selected %q, want c1", c.ID)
	}
	cl.Move(1)
	cl.Move(1)
	if c, _ := cl.Selected(); c.ID != "c2" {
		t.Errorf("after Move(1) twice selected %q, want c2", c.ID)
	}
}
