package midi

import "gitlab.com/gomidi/midi/v2"

// Decode converts a gomidi message into an Event. Messages a surface
// cannot bind (sysex, pitch bend, aftertouch, realtime) return false.
func Decode(msg midi.Message) (Event, bool) {
	var channel, number, value uint8

	switch {
	case msg.GetNoteOn(&channel, &number, &value):
		return Event{Type: Note, Channel: int(channel), Number: int(number), Value: int(value)}, true

	case msg.GetNoteOff(&channel, &number, &value):
		// Release velocity is irrelevant for a surface
		return Event{Type: Note, Channel: int(channel), Number: int(number)}, true

	case msg.GetControlChange(&channel, &number, &value):
		return Event{Type: ControlChange, Channel: int(channel), Number: int(number), Value: int(value)}, true

	case msg.GetProgramChange(&channel, &number):
		return Event{Type: ProgramChange, Channel: int(channel), Number: int(number)}, true
	}

	return Event{}, false
}

// DecodeRaw converts a raw 3 byte message. The high nibble of the status
// byte is the message type, the low nibble the channel.
func DecodeRaw(status, data1, data2 int) (Event, bool) {
	if status < 0x80 || status > 0xEF {
		return Event{}, false
	}
	if data1 < 0 || data1 > 127 || data2 < 0 || data2 > 127 {
		return Event{}, false
	}

	channel := status & 0x0F
	switch status & 0xF0 {
	case 0x80:
		return Event{Type: Note, Channel: channel, Number: data1}, true
	case 0x90:
		return Event{Type: Note, Channel: channel, Number: data1, Value: data2}, true
	case 0xB0:
		return Event{Type: ControlChange, Channel: channel, Number: data1, Value: data2}, true
	case 0xC0:
		return Event{Type: ProgramChange, Channel: channel, Number: data1}, true
	}
	return Event{}, false
}
