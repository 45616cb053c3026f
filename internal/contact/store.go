package contact

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/rolodex/internal/bus"
)

// Bus event kinds published after successful mutations.
const (
	EventCreated         = "contact.created"
	EventUpdated         = "contact.updated"
	EventFavoriteToggled = "contact.favorite_toggled"
	EventDeleted         = "contact.deleted"
)

// Persister is the durable backing of a Store. Save receives the whole
// collection in insertion order and replaces whatever was stored before.
type Persister interface {
	Load() ([]Contact, error)
	Save(contacts []Contact) error
}

// Publisher receives change events. *bus.Bus satisfies it.
type Publisher interface {
	Publish(evt bus.Event)
}

// Option configures a Store.
type Option func(*Store)

// WithIDs replaces the identifier generator (uuid by default).
func WithIDs(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithAvatars replaces the avatar derivation.
func WithAvatars(fn AvatarFunc) Option {
	return func(s *Store) { s.avatar = fn }
}

// WithPublisher makes the store announce mutations.
func WithPublisher(p Publisher) Option {
	return func(s *Store) { s.pub = p }
}

// Store is the single owner of the contact collection. Every successful
// mutation is written through to the Persister before it becomes visible.
type Store struct {
	mu     sync.RWMutex
	items  []Contact
	p      Persister
	pub    Publisher
	newID  func() string
	avatar AvatarFunc
}

// New creates an empty store. Call Load to rehydrate persisted contacts.
func New(p Persister, opts ...Option) *Store {
	s := &Store{
		p:      p,
		newID:  uuid.NewString,
		avatar: AvatarURL(DefaultAvatarBase),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory collection with the persisted one.
// Missing, unreadable or malformed data yields an empty collection.
func (s *Store) Load() []Contact {
	loaded, err := s.p.Load()
	if err != nil || !wellFormed(loaded) {
		loaded = nil
	}
	for i := range loaded {
		if loaded[i].Avatar == "" {
			loaded[i].Avatar = s.avatar(loaded[i].Name)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = loaded
	return clone(s.items)
}

func wellFormed(cs []Contact) bool {
	seen := make(map[string]struct{}, len(cs))
	for _, c := range cs {
		if c.ID == "" {
			return false
		}
		if _, dup := seen[c.ID]; dup {
			return false
		}
		seen[c.ID] = struct{}{}
	}
	return true
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.items)
}

// Get returns the contact with the given id.
func (s *Store) Get(id string) (Contact, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexOf(id); i >= 0 {
		return s.items[i], true
	}
	return Contact{}, false
}

// Len returns the number of live contacts.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Create validates d against every live contact and appends it.
// A collision returns *DuplicateFieldError and leaves the store untouched.
func (s *Store) Create(d Draft) (Contact, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d = trimDraft(d)
	if err := s.checkUnique(d, ""); err != nil {
		return Contact{}, err
	}

	c := Contact{
		ID:       s.newID(),
		Name:     d.Name,
		Email:    d.Email,
		Phone:    d.Phone,
		Avatar:   s.avatar(d.Name),
		Favorite: d.Favorite,
	}
	next := append(clone(s.items), c)
	if err := s.commit(next); err != nil {
		return Contact{}, err
	}
	s.publish(EventCreated, c)
	return c, nil
}

// Update replaces name, email and phone of the contact with the given id and
// rederives its avatar. The record's own current values never count as a
// collision. An unknown id is a no-op and returns ok == false.
func (s *Store) Update(id string, d Draft) (c Contact, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return Contact{}, false, nil
	}
	d = trimDraft(d)
	if err := s.checkUnique(d, id); err != nil {
		return Contact{}, true, err
	}

	next := clone(s.items)
	next[i].Name = d.Name
	next[i].Email = d.Email
	next[i].Phone = d.Phone
	next[i].Avatar = s.avatar(d.Name)
	if err := s.commit(next); err != nil {
		return Contact{}, true, err
	}
	s.publish(EventUpdated, next[i])
	return next[i], true, nil
}

// ToggleFavorite flips the favorite flag of the contact with the given id.
// An unknown id is a no-op.
func (s *Store) ToggleFavorite(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	next := clone(s.items)
	next[i].Favorite = !next[i].Favorite
	if err := s.commit(next); err != nil {
		return err
	}
	s.publish(EventFavoriteToggled, next[i])
	return nil
}

// Delete removes the contact with the given id. An unknown id is a no-op.
func (s *Store) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return nil
	}
	removed := s.items[i]
	next := make([]Contact, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	if err := s.commit(next); err != nil {
		return err
	}
	s.publish(EventDeleted, removed)
	return nil
}

// commit persists next and swaps it in. On failure the old collection stays.
func (s *Store) commit(next []Contact) error {
	if err := s.p.Save(next); err != nil {
		return fmt.Errorf("persist contacts: %w", err)
	}
	s.items = next
	return nil
}

// checkUnique reports every field of d colliding with a live contact other
// than the one identified by self.
func (s *Store) checkUnique(d Draft, self string) error {
	want := map[Field]string{
		FieldName:  uniqueKey(FieldName, d.Name),
		FieldEmail: uniqueKey(FieldEmail, d.Email),
		FieldPhone: uniqueKey(FieldPhone, d.Phone),
	}
	hit := make(map[Field]bool, len(Fields))
	for _, c := range s.items {
		if c.ID == self {
			continue
		}
		for _, f := range Fields {
			if uniqueKey(f, f.value(c)) == want[f] {
				hit[f] = true
			}
		}
	}
	if len(hit) == 0 {
		return nil
	}
	dup := &DuplicateFieldError{}
	for _, f := range Fields {
		if hit[f] {
			dup.Fields = append(dup.Fields, f)
		}
	}
	return dup
}

func (s *Store) indexOf(id string) int {
	for i, c := range s.items {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) publish(kind string, c Contact) {
	if s.pub == nil {
		return
	}
	s.pub.Publish(bus.Event{Kind: kind, Timestamp: time.Now(), Payload: c})
}

// trimDraft also replaces invalid UTF-8 so the stored value matches what the
// JSON slot encodes.
func trimDraft(d Draft) Draft {
	d.Name = cleanField(d.Name)
	d.Email = cleanField(d.Email)
	d.Phone = cleanField(d.Phone)
	return d
}

func cleanField(v string) string {
	return strings.TrimSpace(strings.ToValidUTF8(v, "\uFFFD"))
}

func clone(cs []Contact) []Contact {
	if cs == nil {
		return nil
	}
	out := make([]Contact, len(cs))
	copy(out, cs)
	return out
}
