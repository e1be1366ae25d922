package mapping

import (
	"fmt"

	"github.com/PixPMusic/gopher-flexi/internal/midi"
)

// StartLearn arms slot i to capture the next inbound message
func (t *Table) StartLearn(i int) error {
	if i < 0 || i >= NumSlots {
		return fmt.Errorf("slot %d out of range", i)
	}
	t.learnSlot = i
	return nil
}

// CancelLearn leaves learn mode without touching any slot
func (t *Table) CancelLearn() {
	t.learnSlot = -1
}

// Learning returns the armed slot, if any
func (t *Table) Learning() (int, bool) {
	return t.learnSlot, t.learnSlot >= 0
}

// Capture writes the message triple into the armed slot and leaves learn
// mode. Command, knob mode and send flag are kept.
func (t *Table) Capture(ev midi.Event) (int, bool) {
	i := t.learnSlot
	if i < 0 {
		return -1, false
	}
	s := t.slots[i]
	s.Type = ev.Type
	s.Channel = ev.Channel
	s.Number = ev.Number
	t.slots[i] = s
	t.learnSlot = -1
	return i, true
}

// Observe records the last inbound message for display
func (t *Table) Observe(ev midi.Event) {
	t.lastSeen = ev
	t.seen = true
}

// LastSeen returns the last observed message
func (t *Table) LastSeen() (midi.Event, bool) {
	return t.lastSeen, t.seen
}
