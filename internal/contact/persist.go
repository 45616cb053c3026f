package contact

import (
	"encoding/json"
	"fmt"
)

// SlotKey is the slot the collection is stored under.
const SlotKey = "contacts"

// Slots is a durable key-value primitive. ReadSlot reports ok == false when
// the key has never been written.
type Slots interface {
	ReadSlot(key string) (value []byte, ok bool, err error)
	WriteSlot(key string, value []byte) error
}

// SlotPersister stores the collection as a JSON array in a single slot.
type SlotPersister struct {
	Slots Slots
	Key   string
}

// NewSlotPersister returns a persister writing to the default contacts slot.
func NewSlotPersister(slots Slots) *SlotPersister {
	return &SlotPersister{Slots: slots, Key: SlotKey}
}

// Load implements Persister. An absent slot is an empty collection.
func (p *SlotPersister) Load() ([]Contact, error) {
	data, ok, err := p.Slots.ReadSlot(p.Key)
	if err != nil {
		return nil, fmt.Errorf("read slot %q: %w", p.Key, err)
	}
	if !ok {
		return nil, nil
	}
	var cs []Contact
	if err := json.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("decode slot %q: %w", p.Key, err)
	}
	return cs, nil
}

// Save implements Persister.
func (p *SlotPersister) Save(cs []Contact) error {
	if cs == nil {
		cs = []Contact{}
	}
	data, err := json.Marshal(cs)
	if err != nil {
		return fmt.Errorf("encode contacts: %w", err)
	}
	if err := p.Slots.WriteSlot(p.Key, data); err != nil {
		return fmt.Errorf("write slot %q: %w", p.Key, err)
	}
	return nil
}
