// Package memory is a self-contained host model. The headless runner uses
// it to mirror surface state without a DAW, and tests inspect its fields.
package memory

import (
	"log"

	"github.com/PixPMusic/gopher-flexi/internal/host"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
)

const (
	bankSize     = 8
	sendCount    = 8
	paramsInBank = 8
	sceneCount   = 64
	slotsPerTrk  = 16
)

// Model implements host.Model, host.Notifier and host.NoteInput
type Model struct {
	App      *Application
	Proj     *Project
	Trans    *Transport
	Bank     *TrackBank
	Master   *Track
	Devices  *DeviceChain
	Brow     *Browser
	Scenes   *SceneBank
	Launcher *ClipLauncher
	Changer  knob.ValueChanger
	Verbose  bool

	Notifications []string
	KeyTables     [][128]int
}

// NewModel creates a project with the given number of tracks
func NewModel(tracks int) *Model {
	m := &Model{
		App:     newApplication(),
		Trans:   newTransport(),
		Master:  newTrack(-1),
		Devices: newDeviceChain(),
		Brow:    &Browser{},
		Scenes:  &SceneBank{count: sceneCount},
		Changer: knob.NewDefault(128, 1, 0.5),
	}
	m.Bank = &TrackBank{model: m}
	m.Proj = &Project{model: m}
	m.Launcher = &ClipLauncher{model: m}
	for i := 0; i < tracks; i++ {
		m.Bank.tracks = append(m.Bank.tracks, newTrack(i))
	}
	return m
}

func (m *Model) Application() host.Application   { return m.App }
func (m *Model) Project() host.Project           { return m.Proj }
func (m *Model) Transport() host.Transport       { return m.Trans }
func (m *Model) TrackBank() host.TrackBank       { return m.Bank }
func (m *Model) MasterTrack() host.Track         { return m.Master }
func (m *Model) CursorDevice() host.Device       { return m.Devices }
func (m *Model) Browser() host.Browser           { return m.Brow }
func (m *Model) SceneBank() host.SceneBank       { return m.Scenes }
func (m *Model) ClipLauncher() host.ClipLauncher { return m.Launcher }
func (m *Model) ValueChanger() knob.ValueChanger { return m.Changer }

// SelectedTrack returns nil when nothing is selected
func (m *Model) SelectedTrack() host.Track {
	if t := m.Bank.selected(); t != nil {
		return t
	}
	return nil
}

func (m *Model) ShowNotification(msg string) {
	m.Notifications = append(m.Notifications, msg)
	if m.Verbose {
		log.Printf("Notification: %s", msg)
	}
}

func (m *Model) SetKeyTranslationTable(table [128]int) {
	m.KeyTables = append(m.KeyTables, table)
}

// Application

type Application struct {
	Undos, Redos int
	ProjectIndex int
	Engine       Flag
	Current      host.Layout
	Panels       [host.NumPanels]Flag
}

func newApplication() *Application {
	return &Application{Engine: Flag{On: true}}
}

func (a *Application) Undo()                        { a.Undos++ }
func (a *Application) Redo()                        { a.Redos++ }
func (a *Application) PreviousProject()             { a.ProjectIndex-- }
func (a *Application) NextProject()                 { a.ProjectIndex++ }
func (a *Application) AudioEngine() host.Bool       { return &a.Engine }
func (a *Application) Layout() host.Layout          { return a.Current }
func (a *Application) SetLayout(l host.Layout)      { a.Current = l }
func (a *Application) Panel(p host.Panel) host.Bool { return &a.Panels[p] }

// Project

type Project struct {
	model  *Model
	Scenes int
}

func (p *Project) AddAudioTrack()      { p.add() }
func (p *Project) AddEffectTrack()     { p.add() }
func (p *Project) AddInstrumentTrack() { p.add() }

func (p *Project) add() {
	b := p.model.Bank
	b.tracks = append(b.tracks, newTrack(len(b.tracks)))
}

func (p *Project) CreateSceneFromPlayingClips() {
	p.Scenes++
	p.model.Scenes.count++
}

// Transport

type Transport struct {
	IsPlaying bool
	Restarts  int
	Taps      int
	Beat      float64
	Flags     [host.NumTransportFlags]Flag
	Metronome *Param
	Fader     *Param
	BPM       *Param
	Mode      host.WriteMode
}

func newTransport() *Transport {
	return &Transport{
		Metronome: NewParam(100),
		Fader:     NewParam(64),
		BPM:       NewParam(64),
	}
}

func (t *Transport) Play()                               { t.IsPlaying = !t.IsPlaying }
func (t *Transport) Stop()                               { t.IsPlaying = false }
func (t *Transport) TapTempo()                           { t.Taps++ }
func (t *Transport) Playing() bool                       { return t.IsPlaying }
func (t *Transport) Flag(f host.TransportFlag) host.Bool { return &t.Flags[f] }
func (t *Transport) MetronomeVolume() host.Parameter     { return t.Metronome }
func (t *Transport) Crossfader() host.Parameter          { return t.Fader }
func (t *Transport) Tempo() host.Parameter               { return t.BPM }
func (t *Transport) WriteMode() host.WriteMode           { return t.Mode }
func (t *Transport) SetWriteMode(m host.WriteMode)       { t.Mode = m }

func (t *Transport) Restart() {
	t.IsPlaying = true
	t.Beat = 0
	t.Restarts++
}

func (t *Transport) MovePlayCursor(forward bool) {
	if forward {
		t.Beat++
		return
	}
	if t.Beat >= 1 {
		t.Beat--
	}
}
