package bus

import (
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestPublishSubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "contact.")
	defer unsub()

	b.Publish(Event{Kind: "contact.created", Timestamp: time.Now(), Payload: "test"})

	select {
	case evt := <-ch:
		if evt.Kind != "contact.created" {
			t.Errorf("got kind %q, want contact.created", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}
}

func TestNamespaceFiltering(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "prefs.")
	defer unsub()

	b.Publish(Event{Kind: "contact.deleted"})
	b.Publish(Event{Kind: "prefs.theme_changed"})

	select {
	case evt := <-ch:
		if evt.Kind != "prefs.theme_changed" {
			t.Errorf("got kind %q, want prefs.theme_changed", evt.Kind)
		}
	case <-time.After(time.Second):
		t.Fatal("timeout waiting for event")
	}

	select {
	case evt := <-ch:
		t.Errorf("unexpected event: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestMultipleNamespaces(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "contact.", "prefs.")
	defer unsub()

	b.Publish(Event{Kind: "contact.updated"})
	b.Publish(Event{Kind: "other.thing"})
	b.Publish(Event{Kind: "prefs.theme_changed"})

	var kinds []string
	for len(kinds) < 2 {
		select {
		case evt := <-ch:
			kinds = append(kinds, evt.Kind)
		case <-time.After(time.Second):
			t.Fatalf("timeout, got %v", kinds)
		}
	}
	if kinds[0] != "contact.updated" || kinds[1] != "prefs.theme_changed" {
		t.Errorf("kinds = %v", kinds)
	}
}

func TestUnsubscribe(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(10, "contact.")
	unsub()
	unsub() // second call is a no-op

	b.Publish(Event{Kind: "contact.created"})

	select {
	case evt := <-ch:
		t.Errorf("received event after unsubscribe: %v", evt)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestDropOnFullBuffer(t *testing.T) {
	b := New()
	ch, unsub := b.Subscribe(1, "test.")
	defer unsub()

	b.Publish(Event{Kind: "test.one"})
	// Buffer is full; this one is dropped without blocking.
	b.Publish(Event{Kind: "test.two"})

	evt := <-ch
	if evt.Kind != "test.one" {
		t.Errorf("got %q, want test.one", evt.Kind)
	}
	if got := b.Dropped(); got != 1 {
		t.Errorf("Dropped() = %d, want 1", got)
	}
}

func TestEventNamespace(t *testing.T) {
	tests := map[string]string{
		"contact.created":     "contact.",
		"prefs.theme_changed": "prefs.",
		"tick":                "tick",
		"":                    "",
	}
	for kind, want := range tests {
		if got := (Event{Kind: kind}).Namespace(); got != want {
			t.Errorf("Event{%q}.Namespace() = %q, want %q", kind, got, want)
		}
	}
}
