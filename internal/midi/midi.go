package midi

import (
	"fmt"
	"sync"

	"github.com/Southclaws/fault"
	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// Manager handles MIDI port discovery and the connection to a single surface.
// A driver must be registered by the caller (see main.go).
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// GetInPort returns an input port by name
func (m *Manager) GetInPort(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, portNotFound("input", name)
}

// GetOutPort returns an output port by name
func (m *Manager) GetOutPort(name string) (drivers.Out, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, out := range midi.GetOutPorts() {
		if out.String() == name {
			return out, nil
		}
	}
	return nil, portNotFound("output", name)
}

func portNotFound(kind, name string) error {
	return fault.New(
		fmt.Sprintf("%s port not found: %s", kind, name),
		ftag.With(ftag.NotFound),
		fmsg.WithDesc("port lookup failed", fmt.Sprintf("MIDI %s port %q is not connected", kind, name)),
	)
}

// EventCallback is called for every inbound message a surface can bind
type EventCallback func(ev Event)

// Listen starts listening on the named input port. Messages that do not
// decode to a bindable Event are dropped here.
func (m *Manager) Listen(inPortName string, callback EventCallback) (func(), error) {
	if inPortName == "" {
		return func() {}, nil
	}

	inPort, err := m.GetInPort(inPortName)
	if err != nil {
		return nil, err
	}

	stop, err := midi.ListenTo(inPort, func(msg midi.Message, timestampms int32) {
		if ev, ok := Decode(msg); ok {
			callback(ev)
		}
	})
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("failed to start listening"))
	}

	return stop, nil
}

// Sender opens the named output port. An empty name yields Discard.
func (m *Manager) Sender(outPortName string) (Output, error) {
	if outPortName == "" {
		return Discard, nil
	}

	outPort, err := m.GetOutPort(outPortName)
	if err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	send, err := midi.SendTo(outPort)
	if err != nil {
		return nil, fault.Wrap(err, fmsg.With("failed to create sender"))
	}
	return SendFunc(send), nil
}
