package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PixPMusic/gopher-flexi/internal/host"
)

var _ host.Model = (*Model)(nil)
var _ host.Notifier = (*Model)(nil)
var _ host.NoteInput = (*Model)(nil)

func TestParam(t *testing.T) {
	p := NewParam(64)
	assert.Equal(t, 64, p.Value())

	p.Inc(2, 128)
	assert.Equal(t, 66, p.Value())
	p.Inc(-2, 128)
	assert.Equal(t, 64, p.Value())

	p.Set(500, 128)
	assert.Equal(t, 127, p.Value())
	p.Inc(-1000, 128)
	assert.Equal(t, 0, p.Value())

	// Finer resolution moves in smaller steps
	p.Set(512, 1024)
	before := p.Value()
	p.Inc(1, 1024)
	assert.InDelta(t, before, p.Value(), 1)
}

func TestTrackBank(t *testing.T) {
	m := NewModel(12)
	bank := m.TrackBank()

	assert.Nil(t, m.SelectedTrack())
	assert.False(t, bank.CanScrollBackwards())
	assert.True(t, bank.CanScrollForwards())

	bank.Track(2).Select()
	sel := m.SelectedTrack()
	require.NotNil(t, sel)
	assert.Equal(t, 2, sel.Position())

	bank.ScrollPageForwards()
	assert.Equal(t, 8, bank.Position())
	assert.NotNil(t, bank.Track(3))
	assert.Nil(t, bank.Track(4), "past the last track")
	assert.Nil(t, bank.Track(8))
	assert.False(t, bank.CanScrollForwards())

	bank.ScrollPageForwards()
	assert.Equal(t, 8, bank.Position())
	bank.ScrollPageBackwards()
	bank.ScrollPageBackwards()
	assert.Equal(t, 0, bank.Position())

	assert.Nil(t, sel.Send(sendCount))
	assert.NotNil(t, sel.Send(0))
}

func TestDeviceChain(t *testing.T) {
	m := NewModel(1)
	dev := m.CursorDevice()
	assert.False(t, dev.Exists())
	assert.Nil(t, dev.Window())
	assert.Nil(t, dev.Parameter(0))

	m.Devices.List = append(m.Devices.List, NewDevice("EQ", 2), NewDevice("Comp", 1))
	require.True(t, dev.Exists())
	assert.True(t, dev.Enabled().Get())

	dev.SelectNextParameterBank()
	assert.Equal(t, 1, m.Devices.Bank)
	dev.SelectNextParameterBank()
	assert.Equal(t, 1, m.Devices.Bank)

	dev.SelectNext()
	assert.Equal(t, 1, m.Devices.Cursor)
	assert.Equal(t, 0, m.Devices.Bank)
	dev.SelectNext()
	assert.Equal(t, 1, m.Devices.Cursor)
	assert.Nil(t, dev.Parameter(paramsInBank))
}

func TestClipLauncher(t *testing.T) {
	m := NewModel(2)
	cl := m.ClipLauncher()
	assert.Nil(t, cl.Selected())

	m.TrackBank().Track(0).Select()
	assert.Nil(t, cl.Selected())
	cl.SelectNext()
	slot := cl.Selected()
	require.NotNil(t, slot)

	slot.Launch()
	assert.False(t, slot.Playing(), "empty slot")
	slot.Create()
	slot.Launch()
	assert.True(t, slot.Playing())

	m.SelectedTrack().Stop()
	assert.False(t, slot.Playing())
}

func TestSceneBank(t *testing.T) {
	m := NewModel(0)
	s := m.SceneBank()
	s.Launch(3)
	s.ScrollPageForwards()
	s.Launch(0)
	s.Launch(8)
	assert.Equal(t, []int{3, 8}, m.Scenes.Launched)
}

func TestNotificationsAndKeyTables(t *testing.T) {
	m := NewModel(0)
	m.ShowNotification("hello")
	var table [128]int
	m.SetKeyTranslationTable(table)

	assert.Equal(t, []string{"hello"}, m.Notifications)
	assert.Len(t, m.KeyTables, 1)
}
