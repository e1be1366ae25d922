package midi

import "gitlab.com/gomidi/midi/v2"

// Output receives the messages a surface sends back to the hardware
type Output interface {
	Send(msg midi.Message) error
}

// SendFunc adapts a gomidi sender to the Output interface
type SendFunc func(msg midi.Message) error

func (f SendFunc) Send(msg midi.Message) error {
	return f(msg)
}

// Discard is an Output that drops everything, used when no out port is configured
var Discard Output = SendFunc(func(midi.Message) error { return nil })
