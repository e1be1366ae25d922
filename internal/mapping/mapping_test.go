package mapping

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Southclaws/fault/fmsg"
	"github.com/Southclaws/fault/ftag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-flexi/internal/command"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
	"github.com/PixPMusic/gopher-flexi/internal/midi"
)

func cc(ch, num int, cmd command.Command) Slot {
	s := DefaultSlot()
	s.Channel = ch
	s.Number = num
	s.Command = cmd
	return s
}

func TestDefaultTable(t *testing.T) {
	tbl := NewTable()
	for i, s := range tbl.Slots() {
		assert.Equal(t, DefaultSlot(), s, "slot %d", i)
	}
	_, ok := tbl.FindSlot(midi.ControlChange, 0, 0)
	assert.False(t, ok)

	_, err := tbl.Slot(NumSlots)
	assert.Error(t, err)
	assert.Error(t, tbl.SetSlot(-1, DefaultSlot()))
}

func TestFindSlot(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.SetSlot(3, cc(midi.AnyChannel, 7, command.MasterSetVolume)))
	require.NoError(t, tbl.SetSlot(4, cc(midi.AnyChannel, 7, command.TrackSelectedSetVolume)))
	require.NoError(t, tbl.SetSlot(10, cc(2, 7, command.Track1SetVolume)))
	require.NoError(t, tbl.SetSlot(11, cc(2, 7, command.Track2SetVolume)))
	require.NoError(t, tbl.SetSlot(12, cc(5, 7, command.Off)))

	tests := []struct {
		name    string
		channel int
		number  int
		want    int
		found   bool
	}{
		{"last exact channel wins", 2, 7, 11, true},
		{"last wildcard otherwise", 0, 7, 4, true},
		{"unbound slot skipped", 5, 7, 4, true},
		{"no match", 0, 8, -1, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tbl.FindSlot(midi.ControlChange, tt.channel, tt.number)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)

			// Repeated lookups agree
			again, _ := tbl.FindSlot(midi.ControlChange, tt.channel, tt.number)
			assert.Equal(t, got, again)
		})
	}

	_, ok := tbl.FindSlot(midi.Note, 2, 7)
	assert.False(t, ok, "type must match")
}

func TestSetSlotValidates(t *testing.T) {
	tbl := NewTable()
	bad := []Slot{
		cc(16, 1, command.TransportPlay),
		cc(0, 128, command.TransportPlay),
		cc(0, 1, command.Command(command.Count)),
		{Type: midi.MessageType(9), Number: 1},
		{Type: midi.ControlChange, Number: 1, KnobMode: knob.Mode(7)},
	}
	for _, s := range bad {
		assert.Error(t, tbl.SetSlot(0, s), s.String())
	}
	assert.Equal(t, DefaultSlot(), mustSlot(t, tbl, 0))
}

func TestLearn(t *testing.T) {
	tbl := NewTable()
	require.NoError(t, tbl.SetSlot(9, cc(midi.AnyChannel, Unassigned, command.TransportPlay)))

	_, ok := tbl.Capture(midi.Event{Type: midi.Note, Channel: 1, Number: 36, Value: 100})
	assert.False(t, ok, "not learning")

	require.NoError(t, tbl.StartLearn(9))
	i, learning := tbl.Learning()
	assert.True(t, learning)
	assert.Equal(t, 9, i)

	i, ok = tbl.Capture(midi.Event{Type: midi.Note, Channel: 1, Number: 36, Value: 100})
	require.True(t, ok)
	assert.Equal(t, 9, i)

	s := mustSlot(t, tbl, 9)
	assert.Equal(t, midi.Note, s.Type)
	assert.Equal(t, 1, s.Channel)
	assert.Equal(t, 36, s.Number)
	assert.Equal(t, command.TransportPlay, s.Command)

	_, learning = tbl.Learning()
	assert.False(t, learning)

	require.NoError(t, tbl.StartLearn(1))
	tbl.CancelLearn()
	_, learning = tbl.Learning()
	assert.False(t, learning)
	assert.Error(t, tbl.StartLearn(NumSlots))
}

func TestObserve(t *testing.T) {
	tbl := NewTable()
	_, ok := tbl.LastSeen()
	assert.False(t, ok)

	ev := midi.Event{Type: midi.ControlChange, Channel: 4, Number: 20, Value: 3}
	tbl.Observe(ev)
	got, ok := tbl.LastSeen()
	assert.True(t, ok)
	assert.Equal(t, ev, got)
}

func TestNoteMap(t *testing.T) {
	tbl := NewTable()
	note := DefaultSlot()
	note.Type = midi.Note
	note.Number = 36
	note.Command = command.ClipPlay
	require.NoError(t, tbl.SetSlot(0, note))

	unbound := note
	unbound.Number = 37
	unbound.Command = command.Off
	require.NoError(t, tbl.SetSlot(1, unbound))

	m := tbl.NoteMap()
	assert.Equal(t, -1, m[36])
	assert.Equal(t, 37, m[37])
	assert.Equal(t, 0, m[0])
	assert.Equal(t, 127, m[127])
}

func mixedTable(t *testing.T) *Table {
	tbl := NewTable()
	require.NoError(t, tbl.SetSlot(0, Slot{Type: midi.Note, Channel: 0, Number: 36, Command: command.TransportPlay}))
	require.NoError(t, tbl.SetSlot(5, Slot{Type: midi.ControlChange, Channel: 0, Number: 7, Command: command.MasterSetVolume, KnobMode: knob.Relative2, SendValue: true}))
	require.NoError(t, tbl.SetSlot(6, Slot{Type: midi.ControlChange, Channel: midi.AnyChannel, Number: 8, Command: command.DeviceSetParameter3, KnobMode: knob.Relative3}))
	require.NoError(t, tbl.SetSlot(100, Slot{Type: midi.ProgramChange, Channel: 3, Number: 10, Command: command.Scene1LaunchScene}))
	require.NoError(t, tbl.SetSlot(199, Slot{Type: midi.ControlChange, Channel: 15, Number: Unassigned, Command: command.TrackScrollTracks, KnobMode: knob.Relative1}))
	return tbl
}

func TestExportImportRoundTrip(t *testing.T) {
	src := mixedTable(t)

	var buf bytes.Buffer
	require.NoError(t, src.Export(&buf))

	dst := NewTable()
	require.NoError(t, dst.Import(bytes.NewReader(buf.Bytes())))
	assert.Equal(t, src.Slots(), dst.Slots())
	assert.Equal(t, src.ID, dst.ID)

	var again bytes.Buffer
	require.NoError(t, dst.Export(&again))
	assert.Equal(t, buf.String(), again.String())
}

func TestExportFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mixedTable(t).Export(&buf))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# gopher-flexi mapping\nversion 1\n"))
	assert.Contains(t, out, "\n5 CC 0 7 MASTER_SET_VOLUME RELATIVE_2 true\n")
	assert.Contains(t, out, "\n1 CC * - OFF ABSOLUTE false\n")
	assert.Contains(t, out, "\n199 CC 15 - TRACK_SCROLL_TRACKS RELATIVE_1 false\n")
}

func TestImportErrorsLeaveTableIntact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mixedTable(t).Export(&buf))
	valid := buf.String()

	tests := []struct {
		name  string
		input string
		line  string
	}{
		{"missing header", strings.Replace(valid, "version 1\n", "", 1), "expected version header"},
		{"newer version", strings.Replace(valid, "version 1", "version 2", 1), "newer"},
		{"unknown command", strings.Replace(valid, "MASTER_SET_VOLUME", "MASTER_DANCE", 1), "unknown command"},
		{"field count", strings.Replace(valid, "5 CC 0 7 MASTER_SET_VOLUME RELATIVE_2 true", "5 CC 0 7 MASTER_SET_VOLUME", 1), "expected 7 fields"},
		{"channel range", strings.Replace(valid, "5 CC 0 7", "5 CC 16 7", 1), "channel 16"},
		{"number range", strings.Replace(valid, "5 CC 0 7", "5 CC 0 300", 1), "number 300"},
		{"bad send flag", strings.Replace(valid, "RELATIVE_2 true", "RELATIVE_2 yes", 1), "send flag"},
		{"duplicate slot", strings.Replace(valid, "\n6 CC", "\n5 CC", 1), "duplicate slot 5"},
		{"missing slot", strings.Replace(valid, "\n6 CC * 8 DEVICE_SET_PARAMETER_3 RELATIVE_3 false", "", 1), "missing slot 6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dst := NewTable()
			require.NoError(t, dst.SetSlot(42, cc(1, 1, command.ClipRecord)))
			before := dst.Slots()

			err := dst.Import(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.line)
			assert.Contains(t, fmsg.GetIssue(err), "line ")
			assert.Equal(t, ftag.InvalidArgument, ftag.Get(err))
			assert.Equal(t, before, dst.Slots())
		})
	}
}

func TestImportIgnoresCommentsAndBlankLines(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, mixedTable(t).Export(&buf))

	input := "\n# edited by hand\n\n" + strings.Replace(buf.String(), "\n7 ", "\n\n   # spacer\n7 ", 1)
	dst := NewTable()
	require.NoError(t, dst.Import(strings.NewReader(input)))
	assert.Equal(t, mixedTable(t).Slots(), dst.Slots())
}

func TestExportToImportFrom(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mapping.flexi")

	src := mixedTable(t)
	require.NoError(t, src.ExportTo(path))
	require.NoError(t, src.ExportTo(path), "overwrite")

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")

	dst := NewTable()
	require.NoError(t, dst.ImportFrom(path))
	assert.Equal(t, src.Slots(), dst.Slots())

	err = dst.ImportFrom(filepath.Join(dir, "missing.flexi"))
	require.Error(t, err)
	assert.NotEmpty(t, fmsg.GetIssue(err))

	err = src.ExportTo(filepath.Join(dir, "no", "such", "dir", "m.flexi"))
	assert.Error(t, err)
}

func mustSlot(t *testing.T, tbl *Table, i int) Slot {
	t.Helper()
	s, err := tbl.Slot(i)
	require.NoError(t, err)
	return s
}

func TestImportFromReportsLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mapping.flexi")
	var buf bytes.Buffer
	require.NoError(t, mixedTable(t).Export(&buf))
	corrupt := strings.Replace(buf.String(), "MASTER_SET_VOLUME", "MASTER_DANCE", 1)
	require.NoError(t, os.WriteFile(path, []byte(corrupt), 0644))

	err := NewTable().ImportFrom(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
	assert.Regexp(t, `line \d+`, err.Error())
	assert.Regexp(t, `^line \d+: unknown command`, fmsg.GetIssue(err))
}
