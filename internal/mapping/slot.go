package mapping

import (
	"fmt"

	"github.com/PixPMusic/gopher-flexi/internal/command"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
	"github.com/PixPMusic/gopher-flexi/internal/midi"
)

// NumSlots is the fixed capacity of a mapping table
const NumSlots = 200

// Unassigned marks a slot number that never matches input
const Unassigned = -1

// Slot binds one MIDI message to a command
type Slot struct {
	Type      midi.MessageType
	Channel   int // 0-15, or midi.AnyChannel
	Number    int // 0-127, or Unassigned
	Command   command.Command
	KnobMode  knob.Mode
	SendValue bool // Reflect the command's live value back to the hardware
}

// DefaultSlot returns an unbound CC slot listening on any channel
func DefaultSlot() Slot {
	return Slot{
		Type:     midi.ControlChange,
		Channel:  midi.AnyChannel,
		Number:   Unassigned,
		Command:  command.Off,
		KnobMode: knob.Absolute,
	}
}

// Bound returns true if the slot triggers a command
func (s Slot) Bound() bool {
	return s.Command != command.Off && s.Command.Valid()
}

// Validate checks every field is inside its domain
func (s Slot) Validate() error {
	if s.Type < midi.Note || s.Type > midi.ProgramChange {
		return fmt.Errorf("invalid message type %d", int(s.Type))
	}
	if s.Channel < midi.AnyChannel || s.Channel > 15 {
		return fmt.Errorf("channel %d out of range", s.Channel)
	}
	if s.Number < Unassigned || s.Number > 127 {
		return fmt.Errorf("number %d out of range", s.Number)
	}
	if !s.Command.Valid() {
		return fmt.Errorf("invalid command %d", int(s.Command))
	}
	if s.KnobMode < knob.Absolute || s.KnobMode > knob.Relative3 {
		return fmt.Errorf("invalid knob mode %d", int(s.KnobMode))
	}
	return nil
}

func (s Slot) String() string {
	ch := "*"
	if s.Channel != midi.AnyChannel {
		ch = fmt.Sprint(s.Channel + 1)
	}
	num := "-"
	if s.Number != Unassigned {
		num = fmt.Sprint(s.Number)
	}
	return fmt.Sprintf("%s ch%s #%s -> %s (%s)", s.Type, ch, num, s.Command, s.KnobMode)
}
