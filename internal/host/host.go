// Package host declares the capabilities a surface drives in the DAW.
// Implementations return nil for objects that do not currently exist
// (no selected track, no clip slot); callers treat nil as absent.
package host

import "github.com/PixPMusic/gopher-flexi/internal/knob"

// Model is the root of the host object graph
type Model interface {
	Application() Application
	Project() Project
	Transport() Transport
	TrackBank() TrackBank
	MasterTrack() Track
	SelectedTrack() Track // nil when no track is selected
	CursorDevice() Device
	Browser() Browser
	SceneBank() SceneBank
	ClipLauncher() ClipLauncher

	// ValueChanger is the host's RELATIVE_1 converter
	ValueChanger() knob.ValueChanger
}

// Notifier shows a transient message to the user
type Notifier interface {
	ShowNotification(msg string)
}

// NoteInput forwards unconsumed notes to instruments
type NoteInput interface {
	// SetKeyTranslationTable maps incoming notes, -1 drops the note
	SetKeyTranslationTable(table [128]int)
}

// Bool is a settable on/off value
type Bool interface {
	Get() bool
	Set(v bool)
	Toggle()
}

// Parameter is a continuous value. Value is reported on the MIDI scale
// 0-127; writes take an explicit resolution so hosts can keep precision.
type Parameter interface {
	Value() int
	Set(value, resolution int)
	Inc(delta float64, resolution int)
}

// Layout is a top level window layout
type Layout int

const (
	LayoutArrange Layout = iota
	LayoutMix
	LayoutEdit
)

// Panel is a toggleable view element
type Panel int

const (
	PanelNoteEditor Panel = iota
	PanelAutomationEditor
	PanelDevices
	PanelMixer
	PanelFullscreen
	PanelArrangerCueMarkers
	PanelArrangerPlaybackFollow
	PanelArrangerTrackRowHeight
	PanelArrangerClipLauncher
	PanelArrangerTimeLine
	PanelArrangerIO
	PanelArrangerEffectTracks
	PanelMixerClipLauncher
	PanelMixerCrossFade
	PanelMixerDevice
	PanelMixerSends
	PanelMixerIO
	PanelMixerMeter

	NumPanels = int(iota)
)

// Application exposes global editing and view state
type Application interface {
	Undo()
	Redo()
	PreviousProject()
	NextProject()
	AudioEngine() Bool
	Layout() Layout
	SetLayout(l Layout)
	Panel(p Panel) Bool
}

// Project creates tracks and scenes
type Project interface {
	AddAudioTrack()
	AddEffectTrack()
	AddInstrumentTrack()
	CreateSceneFromPlayingClips()
}

// TransportFlag names a boolean transport setting
type TransportFlag int

const (
	FlagRepeat TransportFlag = iota
	FlagMetronome
	FlagMetronomeInPreroll
	FlagPunchIn
	FlagPunchOut
	FlagRecord
	FlagArrangerOverdub
	FlagClipOverdub
	FlagArrangerAutomationWrite
	FlagClipAutomationWrite

	NumTransportFlags = int(iota)
)

// WriteMode is the automation write mode
type WriteMode int

const (
	WriteModeLatch WriteMode = iota
	WriteModeTouch
	WriteModeWrite
)

// Transport is playback and recording control
type Transport interface {
	Play()
	Stop()
	Restart()
	TapTempo()
	Playing() bool
	Flag(f TransportFlag) Bool
	MetronomeVolume() Parameter
	Crossfader() Parameter
	Tempo() Parameter
	WriteMode() WriteMode
	SetWriteMode(m WriteMode)

	// MovePlayCursor moves by one beat, backwards when forward is false
	MovePlayCursor(forward bool)
}

// TrackBank is a scrollable page of tracks
type TrackBank interface {
	Size() int
	Track(i int) Track // nil outside the page or past the last track
	Position() int     // Index of the first track in the page
	ScrollPageBackwards()
	ScrollPageForwards()
	CanScrollBackwards() bool
	CanScrollForwards() bool
}

// Track is a mixer channel
type Track interface {
	Position() int // Index in the project
	Select()
	Selected() bool
	Active() Bool
	Mute() Bool
	Solo() Bool
	Arm() Bool
	Monitor() Bool
	AutoMonitor() Bool
	Volume() Parameter
	Panorama() Parameter
	Send(i int) Parameter // nil if the send does not exist
	Stop()
}

// Device is the device under the cursor
type Device interface {
	Exists() bool
	Window() Bool
	Enabled() Bool
	Expanded() Bool
	SelectPrevious()
	SelectNext()
	SelectPreviousParameterBank()
	SelectNextParameterBank()
	Parameter(i int) Parameter // nil if the page has no such parameter
}

// Browser is the device and preset browser
type Browser interface {
	Active() bool
	BrowsePresets()
	InsertBeforeCurrent()
	InsertAfterCurrent()
	Commit()
	Cancel()
	SelectPreviousFilter(column int)
	SelectNextFilter(column int)
	ResetFilter(column int)
	SelectPreviousResult()
	SelectNextResult()
	SelectPreviousTab()
	SelectNextTab()
}

// SceneBank is a scrollable page of scenes
type SceneBank interface {
	Size() int
	Launch(i int)
	ScrollPageBackwards()
	ScrollPageForwards()
}

// ClipLauncher navigates the clip slots of the selected track
type ClipLauncher interface {
	SelectPrevious()
	SelectNext()
	Selected() ClipSlot // nil when no slot is selected
}

// ClipSlot is one cell of the clip launcher
type ClipSlot interface {
	HasContent() bool
	Playing() bool
	Recording() bool
	Launch()
	Record()
	Create()
	Duplicate()
}
