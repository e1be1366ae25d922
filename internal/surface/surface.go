// Package surface turns inbound MIDI into host commands through a mapping
// table and reflects live host values back to the hardware.
package surface

import (
	"log"
	"time"

	"gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/gopher-flexi/internal/command"
	"github.com/PixPMusic/gopher-flexi/internal/host"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
	"github.com/PixPMusic/gopher-flexi/internal/mapping"
	fmidi "github.com/PixPMusic/gopher-flexi/internal/midi"
	"github.com/PixPMusic/gopher-flexi/internal/scheduler"
)

const (
	// EchoWindow is how long a slot stays silent after the user moved it
	EchoWindow = 400 * time.Millisecond

	// ButtonRepeatInterval separates a bank scroll from the follow-up select
	ButtonRepeatInterval = 75 * time.Millisecond

	// ScrollRate is the number of encoder ticks per scroll step
	ScrollRate = 6
)

// Option configures an Engine
type Option func(*Engine)

// WithClock replaces time.Now, mainly for tests
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// WithKnob sets the step and sensitivity of the RELATIVE_2 and RELATIVE_3 changers
func WithKnob(step, sensitivity float64, slow bool) Option {
	return func(e *Engine) {
		r2 := knob.NewRelative2(128, step, sensitivity)
		r3 := knob.NewRelative3(128, step, sensitivity)
		if slow {
			e.relative2, e.relative3 = r2.Slow(), r3.Slow()
			return
		}
		e.relative2, e.relative3 = r2, r3
	}
}

// WithNotifier sets where user messages go. Defaults to the model when it
// implements host.Notifier, otherwise to the log.
func WithNotifier(n host.Notifier) Option {
	return func(e *Engine) { e.notifier = n }
}

// WithNoteInput sets the receiver of key translation tables
func WithNoteInput(n host.NoteInput) Option {
	return func(e *Engine) { e.notes = n }
}

// WithLearnHook is called after a learn capture changed a slot
func WithLearnHook(fn func(slot int, s mapping.Slot)) Option {
	return func(e *Engine) { e.onLearn = fn }
}

// Engine is the surface dispatcher. It is not safe for concurrent use;
// all calls must come from one goroutine.
type Engine struct {
	model    host.Model
	table    *mapping.Table
	out      fmidi.Output
	notifier host.Notifier
	notes    host.NoteInput
	onLearn  func(slot int, s mapping.Slot)
	now      func() time.Time
	tasks    *scheduler.Queue

	relative2 knob.ValueChanger
	relative3 knob.ValueChanger

	cache      [mapping.NumSlots]int
	generation int // Bumped by ResetCache
	suppressed [mapping.NumSlots]int
	movement   int
}

// New creates an engine driving model from the slots in table
func New(model host.Model, table *mapping.Table, out fmidi.Output, opts ...Option) *Engine {
	e := &Engine{
		model:     model,
		table:     table,
		out:       out,
		now:       time.Now,
		tasks:     scheduler.New(),
		relative2: knob.NewRelative2(128, 1, 0.5),
		relative3: knob.NewRelative3(128, 1, 0.5),
	}
	if n, ok := model.(host.Notifier); ok {
		e.notifier = n
	}
	if n, ok := model.(host.NoteInput); ok {
		e.notes = n
	}
	if out == nil {
		e.out = fmidi.Discard
	}
	for _, opt := range opts {
		opt(e)
	}
	e.ResetCache()
	return e
}

// Table returns the mapping table the engine reads
func (e *Engine) Table() *mapping.Table {
	return e.table
}

// ResetCache marks every output value as unknown so the next flush resends
func (e *Engine) ResetCache() {
	e.generation++
	for i := range e.cache {
		e.cache[i] = -1
	}
}

// HandleMidi decodes a raw message and dispatches it. Anything that is not
// a note, CC or program change is ignored.
func (e *Engine) HandleMidi(status, data1, data2 int) {
	if ev, ok := fmidi.DecodeRaw(status, data1, data2); ok {
		e.HandleEvent(ev)
	}
}

// HandleEvent runs one decoded message through learn capture, slot lookup
// and command execution.
func (e *Engine) HandleEvent(ev fmidi.Event) {
	e.table.Observe(ev)

	if _, learning := e.table.Learning(); learning {
		e.capture(ev)
		return
	}

	value := ev.Value
	if ev.Type == fmidi.ProgramChange {
		value = 127
		e.UpdateKeyTranslation()
	}

	i, ok := e.table.FindSlot(ev.Type, ev.Channel, ev.Number)
	if !ok {
		return
	}
	slot, err := e.table.Slot(i)
	if err != nil {
		return
	}
	e.execute(i, slot, value)
}

func (e *Engine) execute(i int, slot mapping.Slot, value int) {
	if h := handlers[slot.Command]; h.execute != nil {
		h.execute(e, slot.KnobMode, value)
	}

	// The host applies writes asynchronously. Hold the slot back until its
	// value settled, then take whatever the host reports as already sent.
	// A cache reset in between means the slot may be bound to something
	// else by now, so the refresh is dropped and the next flush sends.
	cmd := slot.Command
	gen := e.generation
	e.suppressed[i]++
	e.tasks.Schedule(e.now().Add(EchoWindow), func() {
		if gen == e.generation {
			e.cache[i] = e.Value(cmd)
		}
		e.suppressed[i]--
	})
}

func (e *Engine) capture(ev fmidi.Event) {
	i, ok := e.table.Capture(ev)
	if !ok {
		return
	}
	slot, _ := e.table.Slot(i)
	e.cache[i] = -1
	e.notify("Learned slot %d: %s", i+1, slot)
	e.UpdateKeyTranslation()
	if e.onLearn != nil {
		e.onLearn(i, slot)
	}
}

// StartLearn arms slot i to capture the next inbound message
func (e *Engine) StartLearn(i int) error {
	if err := e.table.StartLearn(i); err != nil {
		return err
	}
	e.notify("Learning slot %d, move a control", i+1)
	return nil
}

// UpdateKeyTranslation sends the current note map to the host note input
func (e *Engine) UpdateKeyTranslation() {
	if e.notes != nil {
		e.notes.SetKeyTranslationTable(e.table.NoteMap())
	}
}

// Value returns the live value of cmd on the MIDI scale, or -1 when the
// command has no value or its target does not exist.
func (e *Engine) Value(cmd command.Command) int {
	if !cmd.Valid() {
		return -1
	}
	h := handlers[cmd]
	if h.value == nil {
		return -1
	}
	return h.value(e.model)
}

// Flush runs due deferred tasks and sends one CC for every slot whose live
// value changed since the last send. It is the only place output is sent.
func (e *Engine) Flush() {
	e.tasks.RunDue(e.now())

	for i, slot := range e.table.Slots() {
		if slot.Type != fmidi.ControlChange || !slot.Bound() || !slot.SendValue {
			continue
		}
		if e.suppressed[i] > 0 {
			continue
		}
		value := e.Value(slot.Command)
		if e.cache[i] == value {
			continue
		}
		e.cache[i] = value
		if value < 0 || value > 127 || slot.Number == mapping.Unassigned {
			continue
		}

		ch := slot.Channel
		if ch == fmidi.AnyChannel {
			ch = 0
		}
		if err := e.out.Send(midi.ControlChange(uint8(ch), uint8(slot.Number), uint8(value))); err != nil {
			log.Printf("Failed to send value of slot %d: %v", i+1, err)
		}
	}
}

// Pending returns the number of deferred tasks not yet run
func (e *Engine) Pending() int {
	return e.tasks.Len()
}

func (e *Engine) after(d time.Duration, fn func()) {
	e.tasks.Schedule(e.now().Add(d), fn)
}

// increaseKnobMovement slows scrolling down to one step every ScrollRate ticks
func (e *Engine) increaseKnobMovement() bool {
	e.movement++
	if e.movement < ScrollRate {
		return false
	}
	e.movement = 0
	return true
}

func (e *Engine) changer(mode knob.Mode) knob.ValueChanger {
	switch mode {
	case knob.Relative1:
		return e.model.ValueChanger()
	case knob.Relative2:
		return e.relative2
	case knob.Relative3:
		return e.relative3
	}
	return nil
}

func (e *Engine) relativeSpeed(mode knob.Mode, value int) float64 {
	if vc := e.changer(mode); vc != nil {
		return vc.CalcKnobSpeed(value)
	}
	return 0
}

// changeParameter applies an absolute or relative move to p
func (e *Engine) changeParameter(p host.Parameter, mode knob.Mode, value int) {
	if p == nil {
		return
	}
	if mode == knob.Absolute {
		p.Set(value, 128)
		return
	}
	vc := e.changer(mode)
	if vc == nil {
		return
	}
	p.Inc(vc.CalcKnobSpeed(value), vc.UpperBound())
}
