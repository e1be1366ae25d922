package midi

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
)

// MessageType is the kind of MIDI message a slot reacts to
type MessageType int

const (
	Note          MessageType = iota // Note on/off, value is the velocity
	ControlChange                    // CC, value is the controller value
	ProgramChange                    // Program change, carries no value
)

var messageTypeNames = [...]string{"NOTE", "CC", "PROGRAM_CHANGE"}

func (t MessageType) String() string {
	if t < Note || t > ProgramChange {
		return fmt.Sprintf("MessageType(%d)", int(t))
	}
	return messageTypeNames[t]
}

// ParseMessageType converts a persisted type name back to a MessageType
func ParseMessageType(s string) (MessageType, error) {
	for i, name := range messageTypeNames {
		if strings.EqualFold(s, name) {
			return MessageType(i), nil
		}
	}
	return Note, fmt.Errorf("unknown message type %q", s)
}

// AnyChannel matches messages on every MIDI channel
const AnyChannel = -1

// Event is a decoded inbound MIDI message
type Event struct {
	Type    MessageType
	Channel int // 0-15
	Number  int // Note, CC or program number
	Value   int // Velocity or CC value, 0 for note off and program change
}

func (e Event) String() string {
	return fmt.Sprintf("%s ch%d #%d=%d", e.Type, e.Channel+1, e.Number, e.Value)
}

// Message encodes the event back into a wire message
func (e Event) Message() midi.Message {
	ch := uint8(e.Channel & 0x0F)
	switch e.Type {
	case Note:
		if e.Value == 0 {
			return midi.NoteOff(ch, uint8(e.Number))
		}
		return midi.NoteOn(ch, uint8(e.Number), uint8(e.Value))
	case ProgramChange:
		return midi.ProgramChange(ch, uint8(e.Number))
	default:
		return midi.ControlChange(ch, uint8(e.Number), uint8(e.Value))
	}
}
