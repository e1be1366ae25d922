package mapping

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/PixPMusic/gopher-flexi/internal/midi"
)

// Table is the complete slot configuration of one surface
type Table struct {
	ID    uuid.UUID
	slots [NumSlots]Slot

	learnSlot int // -1 when not learning
	lastSeen  midi.Event
	seen      bool
}

// NewTable creates a table with every slot at its default
func NewTable() *Table {
	t := &Table{ID: uuid.New(), learnSlot: -1}
	t.Reset()
	return t
}

// Reset restores every slot to DefaultSlot
func (t *Table) Reset() {
	for i := range t.slots {
		t.slots[i] = DefaultSlot()
	}
}

// Slot returns a copy of slot i
func (t *Table) Slot(i int) (Slot, error) {
	if i < 0 || i >= NumSlots {
		return Slot{}, fmt.Errorf("slot %d out of range", i)
	}
	return t.slots[i], nil
}

// SetSlot replaces slot i after validating it
func (t *Table) SetSlot(i int, s Slot) error {
	if i < 0 || i >= NumSlots {
		return fmt.Errorf("slot %d out of range", i)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("slot %d: %w", i, err)
	}
	t.slots[i] = s
	return nil
}

// Slots returns a copy of the whole table
func (t *Table) Slots() [NumSlots]Slot {
	return t.slots
}

// FindSlot resolves an inbound message to a slot index. Among bound slots
// with the same type and number, the last one on the exact channel wins,
// then the last one listening on any channel.
func (t *Table) FindSlot(typ midi.MessageType, channel, number int) (int, bool) {
	exact, wildcard := -1, -1
	for i, s := range t.slots {
		if !s.Bound() || s.Type != typ || s.Number == Unassigned || s.Number != number {
			continue
		}
		switch s.Channel {
		case channel:
			exact = i
		case midi.AnyChannel:
			wildcard = i
		}
	}
	if exact >= 0 {
		return exact, true
	}
	if wildcard >= 0 {
		return wildcard, true
	}
	return -1, false
}

// NoteMap returns the key translation table for the host's note input.
// Notes consumed by a bound NOTE slot map to -1 so they are not played.
func (t *Table) NoteMap() [128]int {
	var m [128]int
	for i := range m {
		m[i] = i
	}
	for _, s := range t.slots {
		if s.Bound() && s.Type == midi.Note && s.Number >= 0 {
			m[s.Number] = -1
		}
	}
	return m
}

// load replaces all slots at once
func (t *Table) load(id uuid.UUID, slots [NumSlots]Slot) {
	if id != uuid.Nil {
		t.ID = id
	}
	t.slots = slots
}
