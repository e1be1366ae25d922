package surface

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"

	"github.com/PixPMusic/gopher-flexi/internal/command"
	"github.com/PixPMusic/gopher-flexi/internal/host"
	"github.com/PixPMusic/gopher-flexi/internal/host/memory"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
	"github.com/PixPMusic/gopher-flexi/internal/mapping"
	fmidi "github.com/PixPMusic/gopher-flexi/internal/midi"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time          { return c.t }
func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

type recorder struct {
	sent []fmidi.Event
}

func (r *recorder) Send(msg midi.Message) error {
	if ev, ok := fmidi.Decode(msg); ok {
		r.sent = append(r.sent, ev)
	}
	return nil
}

func (r *recorder) take() []fmidi.Event {
	sent := r.sent
	r.sent = nil
	return sent
}

type fixture struct {
	engine *Engine
	model  *memory.Model
	table  *mapping.Table
	out    *recorder
	clock  *fakeClock
}

func newFixture(t *testing.T, tracks int, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		model: memory.NewModel(tracks),
		table: mapping.NewTable(),
		out:   &recorder{},
		clock: &fakeClock{t: time.Unix(1700000000, 0)},
	}
	opts = append([]Option{WithClock(f.clock.Now)}, opts...)
	f.engine = New(f.model, f.table, f.out, opts...)
	return f
}

func (f *fixture) bind(t *testing.T, i int, s mapping.Slot) {
	t.Helper()
	require.NoError(t, f.table.SetSlot(i, s))
}

func ccSlot(ch, num int, cmd command.Command, mode knob.Mode, send bool) mapping.Slot {
	return mapping.Slot{Type: fmidi.ControlChange, Channel: ch, Number: num, Command: cmd, KnobMode: mode, SendValue: send}
}

func noteSlot(ch, num int, cmd command.Command) mapping.Slot {
	return mapping.Slot{Type: fmidi.Note, Channel: ch, Number: num, Command: cmd}
}

func TestRelative2Scenario(t *testing.T) {
	f := newFixture(t, 0)
	f.model.Master.Vol = memory.NewParam(64)
	f.bind(t, 5, ccSlot(0, 7, command.MasterSetVolume, knob.Relative2, false))

	f.engine.HandleMidi(0xB0, 7, 2)
	assert.Equal(t, 66, f.model.Master.Vol.Value())

	f.engine.HandleMidi(0xB0, 7, 66)
	assert.Equal(t, 64, f.model.Master.Vol.Value())
}

func TestKnobModes(t *testing.T) {
	tests := []struct {
		name string
		mode knob.Mode
		raw  int
		want int
	}{
		{"absolute", knob.Absolute, 20, 20},
		{"relative 1 up", knob.Relative1, 3, 67},
		{"relative 1 down", knob.Relative1, 125, 61},
		{"relative 1 still", knob.Relative1, 64, 64},
		{"relative 2 down", knob.Relative2, 70, 58},
		{"relative 3 up", knob.Relative3, 5, 69},
		{"relative 3 down", knob.Relative3, 124, 60},
		{"clamps high", knob.Relative3, 63, 127},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, 0)
			f.model.Trans.Fader = memory.NewParam(64)
			f.bind(t, 0, ccSlot(0, 1, command.TransportSetCrossfader, tt.mode, false))

			f.engine.HandleMidi(0xB0, 1, tt.raw)
			assert.Equal(t, tt.want, f.model.Trans.Fader.Value())
		})
	}
}

func TestSlowKnob(t *testing.T) {
	f := newFixture(t, 0, WithKnob(1, 0.5, true))
	f.model.Master.Pan = memory.NewParam(64)
	f.bind(t, 0, ccSlot(fmidi.AnyChannel, 10, command.MasterSetPanorama, knob.Relative2, false))

	f.engine.HandleMidi(0xB4, 10, 4)
	assert.Equal(t, 66, f.model.Master.Pan.Value())
}

func TestProgramChangeScenario(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 12, mapping.Slot{Type: fmidi.ProgramChange, Channel: 3, Number: 10, Command: command.Scene2LaunchScene})

	f.engine.HandleMidi(0xC3, 10, 0)
	assert.Len(t, f.model.KeyTables, 1)
	assert.Equal(t, []int{1}, f.model.Scenes.Launched, "forced to press value")

	// Unbound program changes still refresh the key translation
	f.engine.HandleMidi(0xC0, 99, 0)
	assert.Len(t, f.model.KeyTables, 2)
}

func TestKeyTranslationHidesBoundNotes(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, noteSlot(fmidi.AnyChannel, 36, command.ClipPlay))
	f.engine.UpdateKeyTranslation()

	require.Len(t, f.model.KeyTables, 1)
	assert.Equal(t, -1, f.model.KeyTables[0][36])
	assert.Equal(t, 37, f.model.KeyTables[0][37])
}

func TestTriggersFireOnPressOnly(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, noteSlot(0, 60, command.TransportPlay))
	f.bind(t, 1, noteSlot(0, 61, command.TransportToggleMetronome))

	f.engine.HandleMidi(0x90, 60, 100)
	assert.True(t, f.model.Trans.IsPlaying)
	f.engine.HandleMidi(0x80, 60, 64)
	f.engine.HandleMidi(0x90, 60, 0)
	assert.True(t, f.model.Trans.IsPlaying, "release must not toggle")

	f.engine.HandleMidi(0x90, 61, 127)
	assert.True(t, f.model.Trans.Flags[host.FlagMetronome].On)
}

func TestUnmappedAndMalformedInputIgnored(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Absolute, true))

	f.engine.HandleMidi(0xB0, 8, 10)
	f.engine.HandleMidi(0xB1, 7, 10) // other channel, slot is not a wildcard
	f.engine.HandleMidi(0xE0, 7, 10)
	f.engine.HandleMidi(0xF8, 0, 0)
	f.engine.HandleMidi(0x20, 7, 10)

	assert.Equal(t, 0, f.engine.Pending())
	assert.Equal(t, 100, f.model.Master.Vol.Value())
}

func TestFlushSendsChangedValues(t *testing.T) {
	f := newFixture(t, 2)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Absolute, true))
	f.bind(t, 1, ccSlot(fmidi.AnyChannel, 8, command.MasterSetPanorama, knob.Absolute, true))
	f.bind(t, 2, ccSlot(0, 9, command.Track1SetVolume, knob.Absolute, false))
	f.bind(t, 3, mapping.Slot{Type: fmidi.Note, Channel: 0, Number: 10, Command: command.TransportPlay, SendValue: true})
	f.bind(t, 4, ccSlot(0, 11, command.TrackSelectedSetVolume, knob.Absolute, true))
	f.bind(t, 5, ccSlot(2, 12, command.TransportToggleRepeat, knob.Absolute, true))

	f.engine.Flush()
	assert.ElementsMatch(t, []fmidi.Event{
		{Type: fmidi.ControlChange, Channel: 0, Number: 7, Value: 100},
		{Type: fmidi.ControlChange, Channel: 0, Number: 8, Value: 64},
		{Type: fmidi.ControlChange, Channel: 2, Number: 12, Value: 0},
	}, f.out.take())

	// Nothing changed
	f.engine.Flush()
	assert.Empty(t, f.out.take())

	f.model.Master.Vol.Set(90, 128)
	f.model.Trans.Flags[host.FlagRepeat].On = true
	f.engine.Flush()
	assert.Equal(t, []fmidi.Event{
		{Type: fmidi.ControlChange, Channel: 0, Number: 7, Value: 90},
		{Type: fmidi.ControlChange, Channel: 2, Number: 12, Value: 127},
	}, f.out.take())

	// Selected track appears, its value is sent from then on
	f.model.TrackBank().Track(0).Select()
	f.engine.Flush()
	assert.Equal(t, []fmidi.Event{{Type: fmidi.ControlChange, Channel: 0, Number: 11, Value: 100}}, f.out.take())
}

func TestEchoSuppression(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Absolute, true))
	f.bind(t, 1, ccSlot(0, 8, command.MasterSetPanorama, knob.Absolute, true))
	f.engine.Flush()
	f.out.take()

	f.engine.HandleMidi(0xB0, 7, 30)
	assert.Equal(t, 30, f.model.Master.Vol.Value())

	// Inside the window nothing is sent for the moved slot, other slots still sync
	f.clock.Advance(10 * time.Millisecond)
	f.model.Master.Pan.Set(10, 128)
	f.engine.Flush()
	assert.Equal(t, []fmidi.Event{{Type: fmidi.ControlChange, Channel: 0, Number: 8, Value: 10}}, f.out.take())

	f.clock.Advance(380 * time.Millisecond)
	f.model.Master.Vol.Set(31, 128)
	f.engine.Flush()
	assert.Empty(t, f.out.take())

	// The window ends and the cache takes the settled value without an echo
	f.clock.Advance(20 * time.Millisecond)
	f.engine.Flush()
	assert.Empty(t, f.out.take())
	assert.Equal(t, 0, f.engine.Pending())

	// Later host changes are sent again
	f.model.Master.Vol.Set(50, 128)
	f.clock.Advance(time.Millisecond)
	f.engine.Flush()
	assert.Equal(t, []fmidi.Event{{Type: fmidi.ControlChange, Channel: 0, Number: 7, Value: 50}}, f.out.take())
}

func TestOverlappingWritesExtendSuppression(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Absolute, true))
	f.engine.Flush()
	f.out.take()

	f.engine.HandleMidi(0xB0, 7, 30)
	f.clock.Advance(300 * time.Millisecond)
	f.engine.HandleMidi(0xB0, 7, 40)

	// First window is over, the second is still running
	f.clock.Advance(150 * time.Millisecond)
	f.model.Master.Vol.Set(45, 128)
	f.engine.Flush()
	assert.Empty(t, f.out.take())
	assert.Equal(t, 1, f.engine.Pending())

	f.clock.Advance(300 * time.Millisecond)
	f.engine.Flush()
	assert.Empty(t, f.out.take(), "cache refreshed to the live value")
}

func TestImportDuringEchoWindowSendsNewBinding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pan.flexi")
	src := mapping.NewTable()
	require.NoError(t, src.SetSlot(0, ccSlot(0, 20, command.MasterSetPanorama, knob.Absolute, true)))
	require.NoError(t, src.ExportTo(path))

	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Absolute, true))
	f.engine.Flush()
	f.out.take()

	// Volume and panorama both read 64 afterwards
	f.engine.HandleMidi(0xB0, 7, 64)
	require.NoError(t, f.engine.ImportMapping(path))

	f.engine.Flush()
	assert.Empty(t, f.out.take(), "slot still held back")

	f.clock.Advance(EchoWindow)
	f.engine.Flush()
	assert.Equal(t, []fmidi.Event{{Type: fmidi.ControlChange, Channel: 0, Number: 20, Value: 64}}, f.out.take())
}

func TestLearn(t *testing.T) {
	var hooked []int
	f := newFixture(t, 0, WithLearnHook(func(slot int, s mapping.Slot) { hooked = append(hooked, slot) }))
	f.bind(t, 3, ccSlot(fmidi.AnyChannel, mapping.Unassigned, command.TransportPlay, knob.Absolute, false))

	require.NoError(t, f.engine.StartLearn(3))
	f.engine.HandleMidi(0x91, 36, 100)

	s, err := f.table.Slot(3)
	require.NoError(t, err)
	assert.Equal(t, noteSlot(1, 36, command.TransportPlay), s)
	assert.False(t, f.model.Trans.IsPlaying, "capture must not execute")
	assert.Equal(t, []int{3}, hooked)
	assert.Equal(t, -1, f.model.KeyTables[len(f.model.KeyTables)-1][36])
	assert.True(t, strings.HasPrefix(f.model.Notifications[len(f.model.Notifications)-1], "Learned slot 4"))

	// Learn mode ended, the next press runs the command
	f.engine.HandleMidi(0x91, 36, 100)
	assert.True(t, f.model.Trans.IsPlaying)

	assert.Error(t, f.engine.StartLearn(mapping.NumSlots))
}

func TestLearnProgramChangeSkipsCommand(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, mapping.Slot{Type: fmidi.ProgramChange, Channel: 0, Number: 5, Command: command.GlobalUndo})
	require.NoError(t, f.engine.StartLearn(1))

	f.engine.HandleMidi(0xC0, 5, 0)
	assert.Equal(t, 0, f.model.App.Undos)

	ev, ok := f.table.LastSeen()
	require.True(t, ok)
	assert.Equal(t, fmidi.Event{Type: fmidi.ProgramChange, Channel: 0, Number: 5}, ev)
}

func TestScrollRateLimit(t *testing.T) {
	f := newFixture(t, 4)
	f.model.TrackBank().Track(0).Select()
	f.bind(t, 0, ccSlot(0, 20, command.TrackScrollTracks, knob.Relative2, false))
	f.bind(t, 1, ccSlot(0, 21, command.TrackScrollTracks, knob.Absolute, false))

	for i := 0; i < ScrollRate-1; i++ {
		f.engine.HandleMidi(0xB0, 20, 1)
	}
	assert.Equal(t, 0, f.model.SelectedTrack().Position())
	f.engine.HandleMidi(0xB0, 20, 1)
	assert.Equal(t, 1, f.model.SelectedTrack().Position())

	for i := 0; i < ScrollRate; i++ {
		f.engine.HandleMidi(0xB0, 20, 65)
	}
	assert.Equal(t, 0, f.model.SelectedTrack().Position())

	for i := 0; i < ScrollRate*2; i++ {
		f.engine.HandleMidi(0xB0, 21, 100)
	}
	assert.Equal(t, 0, f.model.SelectedTrack().Position(), "absolute mode ignored")
}

func TestPlayCursorScrollsEveryTick(t *testing.T) {
	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 30, command.TransportMovePlayCursor, knob.Relative3, false))

	f.engine.HandleMidi(0xB0, 30, 1)
	f.engine.HandleMidi(0xB0, 30, 1)
	f.engine.HandleMidi(0xB0, 30, 127)
	assert.Equal(t, 1.0, f.model.Trans.Beat)
}

func TestTrackNavigation(t *testing.T) {
	f := newFixture(t, 10)
	f.bind(t, 0, noteSlot(0, 1, command.TrackSelectNextTrack))
	f.bind(t, 1, noteSlot(0, 2, command.TrackSelectPreviousTrack))
	f.bind(t, 2, noteSlot(0, 3, command.TrackSelectNextBankPage))

	// Nothing selected selects the first track of the page
	f.engine.HandleMidi(0x90, 1, 127)
	assert.Equal(t, 0, f.model.SelectedTrack().Position())

	f.model.TrackBank().Track(7).Select()
	f.engine.HandleMidi(0x90, 1, 127)
	assert.Equal(t, 8, f.model.TrackBank().Position(), "page scrolls first")
	assert.Equal(t, 7, f.model.SelectedTrack().Position())

	f.clock.Advance(ButtonRepeatInterval)
	f.engine.Flush()
	assert.Equal(t, 8, f.model.SelectedTrack().Position())

	f.engine.HandleMidi(0x90, 2, 127)
	assert.Equal(t, 0, f.model.TrackBank().Position())
	f.clock.Advance(ButtonRepeatInterval)
	f.engine.Flush()
	assert.Equal(t, 7, f.model.SelectedTrack().Position())
}

func TestDeferredSelectRevalidatesIndex(t *testing.T) {
	f := newFixture(t, 10)
	f.bind(t, 0, noteSlot(0, 3, command.TrackSelectNextBankPage))
	f.model.TrackBank().Track(5).Select()

	// The next page holds tracks 8 and 9 only, page index 5 is gone
	f.engine.HandleMidi(0x90, 3, 127)
	f.clock.Advance(ButtonRepeatInterval)
	f.engine.Flush()
	assert.Equal(t, 5, f.model.SelectedTrack().Position())
}

func TestAbsentTargetsAreNeutral(t *testing.T) {
	f := newFixture(t, 0)
	for _, cmd := range []command.Command{
		command.TrackSelectedSetVolume, command.TrackSelectedToggleMute, command.Track3SetSend2,
		command.DeviceSetParameter1, command.DeviceBypass, command.ClipPlay, command.Track1Select,
	} {
		assert.Equal(t, -1, f.engine.Value(cmd), cmd.String())
		f.bind(t, 0, ccSlot(0, 1, cmd, knob.Relative1, true))
		assert.NotPanics(t, func() { f.engine.HandleMidi(0xB0, 1, 5) }, cmd.String())
	}
	assert.Equal(t, -1, f.engine.Value(command.Off))
	assert.Equal(t, -1, f.engine.Value(command.Command(-4)))
}

func TestEveryCommandHasHandler(t *testing.T) {
	for _, cmd := range command.All() {
		if cmd == command.Off {
			continue
		}
		assert.NotNil(t, handlers[cmd].execute, cmd.String())
	}
}

func TestHandlerKindsMatchDescriptors(t *testing.T) {
	for _, cmd := range command.All() {
		if cmd == command.Off {
			continue
		}
		assert.Equal(t, cmd.Kind(), handlers[cmd].kind, cmd.String())
	}
}

func TestCommandValues(t *testing.T) {
	f := newFixture(t, 3)
	f.model.Devices.List = append(f.model.Devices.List, memory.NewDevice("Synth", 1))

	assert.Equal(t, 0, f.engine.Value(command.TransportPlay))
	assert.Equal(t, 127, f.engine.Value(command.TransportStop))
	assert.Equal(t, 127, f.engine.Value(command.LayoutSetArrangeLayout))
	assert.Equal(t, 0, f.engine.Value(command.LayoutSetMixLayout))
	assert.Equal(t, 127, f.engine.Value(command.TransportSetWriteModeLatch))
	assert.Equal(t, 127, f.engine.Value(command.Track1ToggleActive))
	assert.Equal(t, 0, f.engine.Value(command.DeviceBypass))
	assert.Equal(t, -1, f.engine.Value(command.GlobalUndo))

	f.bind(t, 0, noteSlot(0, 1, command.DeviceBypass))
	f.bind(t, 1, noteSlot(0, 2, command.LayoutToggleMixerMeterSection))
	f.bind(t, 2, ccSlot(0, 3, command.Track2SetSend3, knob.Absolute, false))
	f.engine.HandleMidi(0x90, 1, 1)
	f.engine.HandleMidi(0x90, 2, 1)
	f.engine.HandleMidi(0xB0, 3, 99)

	assert.Equal(t, 127, f.engine.Value(command.DeviceBypass))
	assert.Equal(t, 127, f.engine.Value(command.LayoutToggleMixerMeterSection))
	assert.Equal(t, 99, f.model.Bank.Tracks()[1].Sends[2].Value())
}

func TestClipCommands(t *testing.T) {
	f := newFixture(t, 2)
	f.bind(t, 0, noteSlot(0, 1, command.ClipNext))
	f.bind(t, 1, noteSlot(0, 2, command.ClipRecord))
	f.bind(t, 2, noteSlot(0, 3, command.ClipPlay))
	f.bind(t, 3, noteSlot(0, 4, command.ClipStop))

	// No selected track, nothing happens
	for n := 1; n <= 4; n++ {
		f.engine.HandleMidi(0x90, n, 127)
	}

	f.model.TrackBank().Track(1).Select()
	f.engine.HandleMidi(0x90, 1, 127)
	f.engine.HandleMidi(0x90, 2, 127)
	assert.Equal(t, 127, f.engine.Value(command.ClipRecord))

	f.engine.HandleMidi(0x90, 3, 127)
	assert.Equal(t, 127, f.engine.Value(command.ClipPlay))

	f.engine.HandleMidi(0x90, 4, 127)
	assert.Equal(t, 0, f.engine.Value(command.ClipPlay))
	assert.Equal(t, 1, f.model.Bank.Tracks()[1].Stopped)
}

func TestExportImportMapping(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surface.flexi")

	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Relative2, true))

	require.Error(t, f.engine.ExportMapping("   "))
	assert.Equal(t, MsgNoFilename, last(f.model.Notifications))

	require.NoError(t, f.engine.ExportMapping(path))
	assert.Equal(t, MsgExported+path, last(f.model.Notifications))

	require.Error(t, f.engine.ImportMapping(filepath.Join(dir, "nope.flexi")))
	assert.Equal(t, MsgNoSuchFile, last(f.model.Notifications))

	other := newFixture(t, 0)
	other.engine.Flush()
	require.NoError(t, other.engine.ImportMapping(path))
	assert.Equal(t, MsgImported+path, last(other.model.Notifications))
	assert.Equal(t, f.table.Slots(), other.table.Slots())

	// Imported slots are sent on the next flush
	other.engine.Flush()
	assert.Equal(t, []fmidi.Event{{Type: fmidi.ControlChange, Channel: 0, Number: 7, Value: 100}}, other.out.take())
}

func TestCorruptImportKeepsTable(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "surface.flexi")

	f := newFixture(t, 0)
	f.bind(t, 0, ccSlot(0, 7, command.MasterSetVolume, knob.Relative2, true))
	require.NoError(t, f.engine.ExportMapping(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	corrupt := strings.Replace(string(data), "MASTER_SET_VOLUME", "MASTER_SET_VOLUMEX", 1)
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0644))

	target := newFixture(t, 0)
	target.bind(t, 9, noteSlot(4, 44, command.ClipNew))
	before := target.table.Slots()

	require.Error(t, target.engine.ImportMapping(path))
	assert.Equal(t, before, target.table.Slots())
	require.Len(t, target.model.Notifications, 1)
	assert.True(t, strings.HasPrefix(target.model.Notifications[0], MsgReadFailed))
	assert.Contains(t, target.model.Notifications[0], "line ")
}

func last(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[len(s)-1]
}
