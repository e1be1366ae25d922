package surface

import (
	"github.com/PixPMusic/gopher-flexi/internal/command"
	"github.com/PixPMusic/gopher-flexi/internal/host"
	"github.com/PixPMusic/gopher-flexi/internal/knob"
)

// handler is one row of the command table. A nil value means the command
// has nothing to report back, a nil execute means it does nothing. kind is
// how execute treats the incoming value and must match the command's
// descriptor.
type handler struct {
	kind    command.Kind
	value   func(m host.Model) int
	execute func(e *Engine, mode knob.Mode, value int)
}

var handlers [command.Count]handler

func register(c command.Command, h handler) {
	handlers[c] = h
}

// trigger fires fn on press
func trigger(fn func(m host.Model)) handler {
	return handler{
		kind: command.Trigger,
		execute: func(e *Engine, _ knob.Mode, value int) {
			if value > 0 {
				fn(e.model)
			}
		},
	}
}

// action is a trigger that needs the engine, used for navigation
func action(fn func(e *Engine)) handler {
	return handler{
		kind: command.Trigger,
		execute: func(e *Engine, _ knob.Mode, value int) {
			if value > 0 {
				fn(e)
			}
		},
	}
}

// toggle flips a boolean on press and reports it as 0 or 127
func toggle(get func(m host.Model) host.Bool) handler {
	return handler{
		kind: command.Trigger,
		value: func(m host.Model) int {
			if b := get(m); b != nil {
				return boolValue(b.Get())
			}
			return -1
		},
		execute: func(e *Engine, _ knob.Mode, value int) {
			if value <= 0 {
				return
			}
			if b := get(e.model); b != nil {
				b.Toggle()
			}
		},
	}
}

// continuous drives a parameter in any knob mode
func continuous(get func(m host.Model) host.Parameter) handler {
	return handler{
		kind: command.Continuous,
		value: func(m host.Model) int {
			if p := get(m); p != nil {
				return p.Value()
			}
			return -1
		},
		execute: func(e *Engine, mode knob.Mode, value int) {
			e.changeParameter(get(e.model), mode, value)
		},
	}
}

// scroll turns an encoder into discrete steps. Absolute mode is ignored.
// When limited, only every ScrollRate-th tick moves.
func scroll(limited bool, step func(e *Engine, forward bool)) handler {
	return handler{
		kind: command.Scroll,
		execute: func(e *Engine, mode knob.Mode, value int) {
			if mode == knob.Absolute {
				return
			}
			if limited && !e.increaseKnobMovement() {
				return
			}
			speed := e.relativeSpeed(mode, value)
			if speed == 0 {
				return
			}
			step(e, speed > 0)
		},
	}
}

// withValue attaches a value reader to a handler
func withValue(h handler, value func(m host.Model) int) handler {
	h.value = value
	return h
}

func boolValue(on bool) int {
	if on {
		return 127
	}
	return 0
}

// Track accessors. Absent tracks yield nil, which every handler treats as a no-op.

func bankTrack(i int) func(m host.Model) host.Track {
	return func(m host.Model) host.Track {
		return m.TrackBank().Track(i)
	}
}

func selectedTrack(m host.Model) host.Track { return m.SelectedTrack() }
func masterTrack(m host.Model) host.Track   { return m.MasterTrack() }

func trackBool(track func(host.Model) host.Track, field func(host.Track) host.Bool) func(host.Model) host.Bool {
	return func(m host.Model) host.Bool {
		if t := track(m); t != nil {
			return field(t)
		}
		return nil
	}
}

func trackParam(track func(host.Model) host.Track, field func(host.Track) host.Parameter) func(host.Model) host.Parameter {
	return func(m host.Model) host.Parameter {
		if t := track(m); t != nil {
			return field(t)
		}
		return nil
	}
}

func trackSend(track func(host.Model) host.Track, send int) func(host.Model) host.Parameter {
	return trackParam(track, func(t host.Track) host.Parameter { return t.Send(send) })
}

func deviceBool(field func(host.Device) host.Bool) func(host.Model) host.Bool {
	return func(m host.Model) host.Bool {
		if d := m.CursorDevice(); d != nil && d.Exists() {
			return field(d)
		}
		return nil
	}
}

// toggle families that exist for each bank track, the selected track and the master
var trackToggles = []struct {
	first    command.Command
	selected command.Command
	field    func(host.Track) host.Bool
}{
	{command.Track1ToggleActive, command.TrackSelectedToggleActive, host.Track.Active},
	{command.Track1ToggleMute, command.TrackSelectedToggleMute, host.Track.Mute},
	{command.Track1ToggleSolo, command.TrackSelectedToggleSolo, host.Track.Solo},
	{command.Track1ToggleArm, command.TrackSelectedToggleArm, host.Track.Arm},
	{command.Track1ToggleMonitor, command.TrackSelectedToggleMonitor, host.Track.Monitor},
	{command.Track1ToggleAutoMonitor, command.TrackSelectedToggleAutoMonitor, host.Track.AutoMonitor},
}

var trackParams = []struct {
	first    command.Command
	selected command.Command
	field    func(host.Track) host.Parameter
}{
	{command.Track1SetVolume, command.TrackSelectedSetVolume, host.Track.Volume},
	{command.Track1SetPanorama, command.TrackSelectedSetPanorama, host.Track.Panorama},
}

func init() {
	registerGlobal()
	registerTransport()
	registerLayout()
	registerTracks()
	registerMaster()
	registerDevice()
	registerBrowser()
	registerScenes()
	registerClips()
}

func registerGlobal() {
	register(command.GlobalUndo, trigger(func(m host.Model) { m.Application().Undo() }))
	register(command.GlobalRedo, trigger(func(m host.Model) { m.Application().Redo() }))
	register(command.GlobalPreviousProject, trigger(func(m host.Model) { m.Application().PreviousProject() }))
	register(command.GlobalNextProject, trigger(func(m host.Model) { m.Application().NextProject() }))
	register(command.GlobalToggleAudioEngine, toggle(func(m host.Model) host.Bool { return m.Application().AudioEngine() }))
}

func registerTransport() {
	register(command.TransportPlay, withValue(
		trigger(func(m host.Model) { m.Transport().Play() }),
		func(m host.Model) int { return boolValue(m.Transport().Playing()) },
	))
	register(command.TransportStop, withValue(
		trigger(func(m host.Model) { m.Transport().Stop() }),
		func(m host.Model) int { return boolValue(!m.Transport().Playing()) },
	))
	register(command.TransportRestart, trigger(func(m host.Model) { m.Transport().Restart() }))
	register(command.TransportTapTempo, trigger(func(m host.Model) { m.Transport().TapTempo() }))

	flags := map[command.Command]host.TransportFlag{
		command.TransportToggleRepeat:                  host.FlagRepeat,
		command.TransportToggleMetronome:               host.FlagMetronome,
		command.TransportToggleMetronomeInPreroll:      host.FlagMetronomeInPreroll,
		command.TransportTogglePunchIn:                 host.FlagPunchIn,
		command.TransportTogglePunchOut:                host.FlagPunchOut,
		command.TransportToggleRecord:                  host.FlagRecord,
		command.TransportToggleArrangerOverdub:         host.FlagArrangerOverdub,
		command.TransportToggleClipOverdub:             host.FlagClipOverdub,
		command.TransportToggleArrangerAutomationWrite: host.FlagArrangerAutomationWrite,
		command.TransportToggleClipAutomationWrite:     host.FlagClipAutomationWrite,
	}
	for c, f := range flags {
		register(c, toggle(func(m host.Model) host.Bool { return m.Transport().Flag(f) }))
	}

	modes := map[command.Command]host.WriteMode{
		command.TransportSetWriteModeLatch: host.WriteModeLatch,
		command.TransportSetWriteModeTouch: host.WriteModeTouch,
		command.TransportSetWriteModeWrite: host.WriteModeWrite,
	}
	for c, mode := range modes {
		register(c, withValue(
			trigger(func(m host.Model) { m.Transport().SetWriteMode(mode) }),
			func(m host.Model) int { return boolValue(m.Transport().WriteMode() == mode) },
		))
	}

	register(command.TransportSetMetronomeVolume, continuous(func(m host.Model) host.Parameter { return m.Transport().MetronomeVolume() }))
	register(command.TransportSetCrossfader, continuous(func(m host.Model) host.Parameter { return m.Transport().Crossfader() }))
	register(command.TransportSetTempo, continuous(func(m host.Model) host.Parameter { return m.Transport().Tempo() }))
	register(command.TransportMovePlayCursor, scroll(false, func(e *Engine, forward bool) {
		e.model.Transport().MovePlayCursor(forward)
	}))
}

func registerLayout() {
	layouts := map[command.Command]host.Layout{
		command.LayoutSetArrangeLayout: host.LayoutArrange,
		command.LayoutSetMixLayout:     host.LayoutMix,
		command.LayoutSetEditLayout:    host.LayoutEdit,
	}
	for c, l := range layouts {
		register(c, withValue(
			trigger(func(m host.Model) { m.Application().SetLayout(l) }),
			func(m host.Model) int { return boolValue(m.Application().Layout() == l) },
		))
	}

	// Panel toggles follow the panel order one to one
	for p := 0; p < host.NumPanels; p++ {
		panel := host.Panel(p)
		register(command.LayoutToggleNoteEditor+command.Command(p),
			toggle(func(m host.Model) host.Bool { return m.Application().Panel(panel) }))
	}
}

func registerTracks() {
	register(command.TrackAddAudioTrack, trigger(func(m host.Model) { m.Project().AddAudioTrack() }))
	register(command.TrackAddEffectTrack, trigger(func(m host.Model) { m.Project().AddEffectTrack() }))
	register(command.TrackAddInstrumentTrack, trigger(func(m host.Model) { m.Project().AddInstrumentTrack() }))

	register(command.TrackSelectPreviousBankPage, action(func(e *Engine) { e.selectPreviousTrack(true) }))
	register(command.TrackSelectNextBankPage, action(func(e *Engine) { e.selectNextTrack(true) }))
	register(command.TrackSelectPreviousTrack, action(func(e *Engine) { e.selectPreviousTrack(false) }))
	register(command.TrackSelectNextTrack, action(func(e *Engine) { e.selectNextTrack(false) }))
	register(command.TrackScrollTracks, scroll(true, func(e *Engine, forward bool) {
		if forward {
			e.selectNextTrack(false)
		} else {
			e.selectPreviousTrack(false)
		}
	}))

	for i := 0; i < 8; i++ {
		track := bankTrack(i)
		register(command.Track1Select+command.Command(i), withValue(
			trigger(func(m host.Model) {
				if t := track(m); t != nil {
					t.Select()
				}
			}),
			func(m host.Model) int {
				if t := track(m); t != nil {
					return boolValue(t.Selected())
				}
				return -1
			},
		))

		for _, fam := range trackToggles {
			register(fam.first+command.Command(i), toggle(trackBool(track, fam.field)))
		}
		for _, fam := range trackParams {
			register(fam.first+command.Command(i), continuous(trackParam(track, fam.field)))
		}
		for s := 0; s < 8; s++ {
			register(command.Track1SetSend1+command.Command(s*8+i), continuous(trackSend(track, s)))
		}
	}

	for _, fam := range trackToggles {
		register(fam.selected, toggle(trackBool(selectedTrack, fam.field)))
	}
	for _, fam := range trackParams {
		register(fam.selected, continuous(trackParam(selectedTrack, fam.field)))
	}
	for s := 0; s < 8; s++ {
		register(command.TrackSelectedSetSend1+command.Command(s), continuous(trackSend(selectedTrack, s)))
	}
}

func registerMaster() {
	register(command.MasterSetVolume, continuous(trackParam(masterTrack, host.Track.Volume)))
	register(command.MasterSetPanorama, continuous(trackParam(masterTrack, host.Track.Panorama)))
	register(command.MasterToggleMute, toggle(trackBool(masterTrack, host.Track.Mute)))
	register(command.MasterToggleSolo, toggle(trackBool(masterTrack, host.Track.Solo)))
	register(command.MasterToggleArm, toggle(trackBool(masterTrack, host.Track.Arm)))
}

func registerDevice() {
	register(command.DeviceToggleWindow, toggle(deviceBool(host.Device.Window)))
	register(command.DeviceExpand, toggle(deviceBool(host.Device.Expanded)))

	// Bypass lights up when the device is disabled
	bypass := toggle(deviceBool(host.Device.Enabled))
	bypass.value = func(m host.Model) int {
		if b := deviceBool(host.Device.Enabled)(m); b != nil {
			return boolValue(!b.Get())
		}
		return -1
	}
	register(command.DeviceBypass, bypass)

	register(command.DeviceSelectPrevious, trigger(func(m host.Model) { m.CursorDevice().SelectPrevious() }))
	register(command.DeviceSelectNext, trigger(func(m host.Model) { m.CursorDevice().SelectNext() }))
	register(command.DeviceScrollDevices, scroll(true, func(e *Engine, forward bool) {
		if forward {
			e.model.CursorDevice().SelectNext()
		} else {
			e.model.CursorDevice().SelectPrevious()
		}
	}))

	register(command.DeviceSelectPreviousParameterBank, trigger(func(m host.Model) { m.CursorDevice().SelectPreviousParameterBank() }))
	register(command.DeviceSelectNextParameterBank, trigger(func(m host.Model) { m.CursorDevice().SelectNextParameterBank() }))
	register(command.DeviceScrollParameterBanks, scroll(true, func(e *Engine, forward bool) {
		if forward {
			e.model.CursorDevice().SelectNextParameterBank()
		} else {
			e.model.CursorDevice().SelectPreviousParameterBank()
		}
	}))

	for i := 0; i < 8; i++ {
		register(command.DeviceSetParameter1+command.Command(i), continuous(func(m host.Model) host.Parameter {
			return m.CursorDevice().Parameter(i)
		}))
	}
}

func registerBrowser() {
	browsing := func(m host.Model) int { return boolValue(m.Browser().Active()) }

	register(command.BrowserBrowsePresets, withValue(trigger(func(m host.Model) { m.Browser().BrowsePresets() }), browsing))
	register(command.BrowserInsertDeviceBeforeCurrent, trigger(func(m host.Model) { m.Browser().InsertBeforeCurrent() }))
	register(command.BrowserInsertDeviceAfterCurrent, trigger(func(m host.Model) { m.Browser().InsertAfterCurrent() }))
	register(command.BrowserCommitSelection, trigger(func(m host.Model) { m.Browser().Commit() }))
	register(command.BrowserCancelSelection, trigger(func(m host.Model) { m.Browser().Cancel() }))

	for col := 0; col < 6; col++ {
		register(command.BrowserSelectPreviousFilterInColumn1+command.Command(col),
			trigger(func(m host.Model) { m.Browser().SelectPreviousFilter(col) }))
		register(command.BrowserSelectNextFilterInColumn1+command.Command(col),
			trigger(func(m host.Model) { m.Browser().SelectNextFilter(col) }))
		register(command.BrowserResetFilterColumn1+command.Command(col),
			trigger(func(m host.Model) { m.Browser().ResetFilter(col) }))
		register(command.BrowserScrollFilterInColumn1+command.Command(col), scroll(false, func(e *Engine, forward bool) {
			if forward {
				e.model.Browser().SelectNextFilter(col)
			} else {
				e.model.Browser().SelectPreviousFilter(col)
			}
		}))
	}

	register(command.BrowserSelectThePreviousPreset, trigger(func(m host.Model) { m.Browser().SelectPreviousResult() }))
	register(command.BrowserSelectTheNextPreset, trigger(func(m host.Model) { m.Browser().SelectNextResult() }))
	register(command.BrowserScrollPresets, scroll(false, func(e *Engine, forward bool) {
		if forward {
			e.model.Browser().SelectNextResult()
		} else {
			e.model.Browser().SelectPreviousResult()
		}
	}))

	register(command.BrowserSelectThePreviousTab, trigger(func(m host.Model) { m.Browser().SelectPreviousTab() }))
	register(command.BrowserSelectTheNextTab, trigger(func(m host.Model) { m.Browser().SelectNextTab() }))
	register(command.BrowserScrollTabs, scroll(true, func(e *Engine, forward bool) {
		if forward {
			e.model.Browser().SelectNextTab()
		} else {
			e.model.Browser().SelectPreviousTab()
		}
	}))
}

func registerScenes() {
	for i := 0; i < 8; i++ {
		register(command.Scene1LaunchScene+command.Command(i), trigger(func(m host.Model) { m.SceneBank().Launch(i) }))
	}
	register(command.SceneSelectPreviousBank, trigger(func(m host.Model) { m.SceneBank().ScrollPageBackwards() }))
	register(command.SceneSelectNextBank, trigger(func(m host.Model) { m.SceneBank().ScrollPageForwards() }))
	register(command.SceneCreateSceneFromPlayingClips, trigger(func(m host.Model) { m.Project().CreateSceneFromPlayingClips() }))
}

func registerClips() {
	slot := func(m host.Model) host.ClipSlot { return m.ClipLauncher().Selected() }
	onSlot := func(fn func(host.ClipSlot)) func(m host.Model) {
		return func(m host.Model) {
			if s := slot(m); s != nil {
				fn(s)
			}
		}
	}
	slotValue := func(field func(host.ClipSlot) bool) func(m host.Model) int {
		return func(m host.Model) int {
			if s := slot(m); s != nil {
				return boolValue(field(s))
			}
			return -1
		}
	}

	register(command.ClipPrevious, trigger(func(m host.Model) { m.ClipLauncher().SelectPrevious() }))
	register(command.ClipNext, trigger(func(m host.Model) { m.ClipLauncher().SelectNext() }))
	register(command.ClipScroll, scroll(true, func(e *Engine, forward bool) {
		if forward {
			e.model.ClipLauncher().SelectNext()
		} else {
			e.model.ClipLauncher().SelectPrevious()
		}
	}))

	register(command.ClipPlay, withValue(trigger(onSlot(host.ClipSlot.Launch)), slotValue(host.ClipSlot.Playing)))
	register(command.ClipRecord, withValue(trigger(onSlot(host.ClipSlot.Record)), slotValue(host.ClipSlot.Recording)))
	register(command.ClipNew, trigger(onSlot(host.ClipSlot.Create)))
	register(command.ClipDuplicate, trigger(onSlot(host.ClipSlot.Duplicate)))

	// Stop acts on the whole selected track, not on the slot
	register(command.ClipStop, trigger(func(m host.Model) {
		if t := m.SelectedTrack(); t != nil {
			t.Stop()
		}
	}))
}
