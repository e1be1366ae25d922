package command

// Command identifies one abstract surface function. The set is closed per build;
// new commands are appended so existing values keep their meaning.
type Command int

const (
	Off Command = iota
	GlobalUndo
	GlobalRedo
	GlobalPreviousProject
	GlobalNextProject
	GlobalToggleAudioEngine
	TransportPlay
	TransportStop
	TransportRestart
	TransportToggleRepeat
	TransportToggleMetronome
	TransportSetMetronomeVolume
	TransportToggleMetronomeInPreroll
	TransportTogglePunchIn
	TransportTogglePunchOut
	TransportToggleRecord
	TransportToggleArrangerOverdub
	TransportToggleClipOverdub
	TransportSetCrossfader
	TransportToggleArrangerAutomationWrite
	TransportToggleClipAutomationWrite
	TransportSetWriteModeLatch
	TransportSetWriteModeTouch
	TransportSetWriteModeWrite
	TransportSetTempo
	TransportTapTempo
	TransportMovePlayCursor
	LayoutSetArrangeLayout
	LayoutSetMixLayout
	LayoutSetEditLayout
	LayoutToggleNoteEditor
	LayoutToggleAutomationEditor
	LayoutToggleDevicesPanel
	LayoutToggleMixerPanel
	LayoutToggleFullscreen
	LayoutToggleArrangerCueMarkers
	LayoutToggleArrangerPlaybackFollow
	LayoutToggleArrangerTrackRowHeight
	LayoutToggleArrangerClipLauncherSection
	LayoutToggleArrangerTimeLine
	LayoutToggleArrangerIoSection
	LayoutToggleArrangerEffectTracks
	LayoutToggleMixerClipLauncherSection
	LayoutToggleMixerCrossFadeSection
	LayoutToggleMixerDeviceSection
	LayoutToggleMixerSendsSection
	LayoutToggleMixerIoSection
	LayoutToggleMixerMeterSection
	TrackAddAudioTrack
	TrackAddEffectTrack
	TrackAddInstrumentTrack
	TrackSelectPreviousBankPage
	TrackSelectNextBankPage
	TrackSelectPreviousTrack
	TrackSelectNextTrack
	TrackScrollTracks
	Track1Select
	Track2Select
	Track3Select
	Track4Select
	Track5Select
	Track6Select
	Track7Select
	Track8Select
	Track1ToggleActive
	Track2ToggleActive
	Track3ToggleActive
	Track4ToggleActive
	Track5ToggleActive
	Track6ToggleActive
	Track7ToggleActive
	Track8ToggleActive
	TrackSelectedToggleActive
	Track1SetVolume
	Track2SetVolume
	Track3SetVolume
	Track4SetVolume
	Track5SetVolume
	Track6SetVolume
	Track7SetVolume
	Track8SetVolume
	TrackSelectedSetVolume
	Track1SetPanorama
	Track2SetPanorama
	Track3SetPanorama
	Track4SetPanorama
	Track5SetPanorama
	Track6SetPanorama
	Track7SetPanorama
	Track8SetPanorama
	TrackSelectedSetPanorama
	Track1ToggleMute
	Track2ToggleMute
	Track3ToggleMute
	Track4ToggleMute
	Track5ToggleMute
	Track6ToggleMute
	Track7ToggleMute
	Track8ToggleMute
	TrackSelectedToggleMute
	Track1ToggleSolo
	Track2ToggleSolo
	Track3ToggleSolo
	Track4ToggleSolo
	Track5ToggleSolo
	Track6ToggleSolo
	Track7ToggleSolo
	Track8ToggleSolo
	TrackSelectedToggleSolo
	Track1ToggleArm
	Track2ToggleArm
	Track3ToggleArm
	Track4ToggleArm
	Track5ToggleArm
	Track6ToggleArm
	Track7ToggleArm
	Track8ToggleArm
	TrackSelectedToggleArm
	Track1ToggleMonitor
	Track2ToggleMonitor
	Track3ToggleMonitor
	Track4ToggleMonitor
	Track5ToggleMonitor
	Track6ToggleMonitor
	Track7ToggleMonitor
	Track8ToggleMonitor
	TrackSelectedToggleMonitor
	Track1ToggleAutoMonitor
	Track2ToggleAutoMonitor
	Track3ToggleAutoMonitor
	Track4ToggleAutoMonitor
	Track5ToggleAutoMonitor
	Track6ToggleAutoMonitor
	Track7ToggleAutoMonitor
	Track8ToggleAutoMonitor
	TrackSelectedToggleAutoMonitor
	Track1SetSend1
	Track2SetSend1
	Track3SetSend1
	Track4SetSend1
	Track5SetSend1
	Track6SetSend1
	Track7SetSend1
	Track8SetSend1
	Track1SetSend2
	Track2SetSend2
	Track3SetSend2
	Track4SetSend2
	Track5SetSend2
	Track6SetSend2
	Track7SetSend2
	Track8SetSend2
	Track1SetSend3
	Track2SetSend3
	Track3SetSend3
	Track4SetSend3
	Track5SetSend3
	Track6SetSend3
	Track7SetSend3
	Track8SetSend3
	Track1SetSend4
	Track2SetSend4
	Track3SetSend4
	Track4SetSend4
	Track5SetSend4
	Track6SetSend4
	Track7SetSend4
	Track8SetSend4
	Track1SetSend5
	Track2SetSend5
	Track3SetSend5
	Track4SetSend5
	Track5SetSend5
	Track6SetSend5
	Track7SetSend5
	Track8SetSend5
	Track1SetSend6
	Track2SetSend6
	Track3SetSend6
	Track4SetSend6
	Track5SetSend6
	Track6SetSend6
	Track7SetSend6
	Track8SetSend6
	Track1SetSend7
	Track2SetSend7
	Track3SetSend7
	Track4SetSend7
	Track5SetSend7
	Track6SetSend7
	Track7SetSend7
	Track8SetSend7
	Track1SetSend8
	Track2SetSend8
	Track3SetSend8
	Track4SetSend8
	Track5SetSend8
	Track6SetSend8
	Track7SetSend8
	Track8SetSend8
	TrackSelectedSetSend1
	TrackSelectedSetSend2
	TrackSelectedSetSend3
	TrackSelectedSetSend4
	TrackSelectedSetSend5
	TrackSelectedSetSend6
	TrackSelectedSetSend7
	TrackSelectedSetSend8
	MasterSetVolume
	MasterSetPanorama
	MasterToggleMute
	MasterToggleSolo
	MasterToggleArm
	DeviceToggleWindow
	DeviceBypass
	DeviceExpand
	DeviceSelectPrevious
	DeviceSelectNext
	DeviceScrollDevices
	DeviceSelectPreviousParameterBank
	DeviceSelectNextParameterBank
	DeviceScrollParameterBanks
	DeviceSetParameter1
	DeviceSetParameter2
	DeviceSetParameter3
	DeviceSetParameter4
	DeviceSetParameter5
	DeviceSetParameter6
	DeviceSetParameter7
	DeviceSetParameter8
	BrowserBrowsePresets
	BrowserInsertDeviceBeforeCurrent
	BrowserInsertDeviceAfterCurrent
	BrowserCommitSelection
	BrowserCancelSelection
	BrowserSelectPreviousFilterInColumn1
	BrowserSelectPreviousFilterInColumn2
	BrowserSelectPreviousFilterInColumn3
	BrowserSelectPreviousFilterInColumn4
	BrowserSelectPreviousFilterInColumn5
	BrowserSelectPreviousFilterInColumn6
	BrowserSelectNextFilterInColumn1
	BrowserSelectNextFilterInColumn2
	BrowserSelectNextFilterInColumn3
	BrowserSelectNextFilterInColumn4
	BrowserSelectNextFilterInColumn5
	BrowserSelectNextFilterInColumn6
	BrowserScrollFilterInColumn1
	BrowserScrollFilterInColumn2
	BrowserScrollFilterInColumn3
	BrowserScrollFilterInColumn4
	BrowserScrollFilterInColumn5
	BrowserScrollFilterInColumn6
	BrowserResetFilterColumn1
	BrowserResetFilterColumn2
	BrowserResetFilterColumn3
	BrowserResetFilterColumn4
	BrowserResetFilterColumn5
	BrowserResetFilterColumn6
	BrowserSelectThePreviousPreset
	BrowserSelectTheNextPreset
	BrowserScrollPresets
	BrowserSelectThePreviousTab
	BrowserSelectTheNextTab
	BrowserScrollTabs
	Scene1LaunchScene
	Scene2LaunchScene
	Scene3LaunchScene
	Scene4LaunchScene
	Scene5LaunchScene
	Scene6LaunchScene
	Scene7LaunchScene
	Scene8LaunchScene
	SceneSelectPreviousBank
	SceneSelectNextBank
	SceneCreateSceneFromPlayingClips
	ClipPrevious
	ClipNext
	ClipScroll
	ClipPlay
	ClipStop
	ClipRecord
	ClipNew
	ClipDuplicate

	// Count is the number of defined commands
	Count = int(iota)
)

var descriptors = [Count]Descriptor{
	Off: {Name: "OFF", Group: GroupGlobal, Kind: Trigger},
	GlobalUndo: {Name: "GLOBAL_UNDO", Group: GroupGlobal, Kind: Trigger},
	GlobalRedo: {Name: "GLOBAL_REDO", Group: GroupGlobal, Kind: Trigger},
	GlobalPreviousProject: {Name: "GLOBAL_PREVIOUS_PROJECT", Group: GroupGlobal, Kind: Trigger},
	GlobalNextProject: {Name: "GLOBAL_NEXT_PROJECT", Group: GroupGlobal, Kind: Trigger},
	GlobalToggleAudioEngine: {Name: "GLOBAL_TOGGLE_AUDIO_ENGINE", Group: GroupGlobal, Kind: Trigger},
	TransportPlay: {Name: "TRANSPORT_PLAY", Group: GroupTransport, Kind: Trigger},
	TransportStop: {Name: "TRANSPORT_STOP", Group: GroupTransport, Kind: Trigger},
	TransportRestart: {Name: "TRANSPORT_RESTART", Group: GroupTransport, Kind: Trigger},
	TransportToggleRepeat: {Name: "TRANSPORT_TOGGLE_REPEAT", Group: GroupTransport, Kind: Trigger},
	TransportToggleMetronome: {Name: "TRANSPORT_TOGGLE_METRONOME", Group: GroupTransport, Kind: Trigger},
	TransportSetMetronomeVolume: {Name: "TRANSPORT_SET_METRONOME_VOLUME", Group: GroupTransport, Kind: Continuous},
	TransportToggleMetronomeInPreroll: {Name: "TRANSPORT_TOGGLE_METRONOME_IN_PREROLL", Group: GroupTransport, Kind: Trigger},
	TransportTogglePunchIn: {Name: "TRANSPORT_TOGGLE_PUNCH_IN", Group: GroupTransport, Kind: Trigger},
	TransportTogglePunchOut: {Name: "TRANSPORT_TOGGLE_PUNCH_OUT", Group: GroupTransport, Kind: Trigger},
	TransportToggleRecord: {Name: "TRANSPORT_TOGGLE_RECORD", Group: GroupTransport, Kind: Trigger},
	TransportToggleArrangerOverdub: {Name: "TRANSPORT_TOGGLE_ARRANGER_OVERDUB", Group: GroupTransport, Kind: Trigger},
	TransportToggleClipOverdub: {Name: "TRANSPORT_TOGGLE_CLIP_OVERDUB", Group: GroupTransport, Kind: Trigger},
	TransportSetCrossfader: {Name: "TRANSPORT_SET_CROSSFADER", Group: GroupTransport, Kind: Continuous},
	TransportToggleArrangerAutomationWrite: {Name: "TRANSPORT_TOGGLE_ARRANGER_AUTOMATION_WRITE", Group: GroupTransport, Kind: Trigger},
	TransportToggleClipAutomationWrite: {Name: "TRANSPORT_TOGGLE_CLIP_AUTOMATION_WRITE", Group: GroupTransport, Kind: Trigger},
	TransportSetWriteModeLatch: {Name: "TRANSPORT_SET_WRITE_MODE_LATCH", Group: GroupTransport, Kind: Trigger},
	TransportSetWriteModeTouch: {Name: "TRANSPORT_SET_WRITE_MODE_TOUCH", Group: GroupTransport, Kind: Trigger},
	TransportSetWriteModeWrite: {Name: "TRANSPORT_SET_WRITE_MODE_WRITE", Group: GroupTransport, Kind: Trigger},
	TransportSetTempo: {Name: "TRANSPORT_SET_TEMPO", Group: GroupTransport, Kind: Continuous},
	TransportTapTempo: {Name: "TRANSPORT_TAP_TEMPO", Group: GroupTransport, Kind: Trigger},
	TransportMovePlayCursor: {Name: "TRANSPORT_MOVE_PLAY_CURSOR", Group: GroupTransport, Kind: Scroll},
	LayoutSetArrangeLayout: {Name: "LAYOUT_SET_ARRANGE_LAYOUT", Group: GroupLayout, Kind: Trigger},
	LayoutSetMixLayout: {Name: "LAYOUT_SET_MIX_LAYOUT", Group: GroupLayout, Kind: Trigger},
	LayoutSetEditLayout: {Name: "LAYOUT_SET_EDIT_LAYOUT", Group: GroupLayout, Kind: Trigger},
	LayoutToggleNoteEditor: {Name: "LAYOUT_TOGGLE_NOTE_EDITOR", Group: GroupLayout, Kind: Trigger},
	LayoutToggleAutomationEditor: {Name: "LAYOUT_TOGGLE_AUTOMATION_EDITOR", Group: GroupLayout, Kind: Trigger},
	LayoutToggleDevicesPanel: {Name: "LAYOUT_TOGGLE_DEVICES_PANEL", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerPanel: {Name: "LAYOUT_TOGGLE_MIXER_PANEL", Group: GroupLayout, Kind: Trigger},
	LayoutToggleFullscreen: {Name: "LAYOUT_TOGGLE_FULLSCREEN", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerCueMarkers: {Name: "LAYOUT_TOGGLE_ARRANGER_CUE_MARKERS", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerPlaybackFollow: {Name: "LAYOUT_TOGGLE_ARRANGER_PLAYBACK_FOLLOW", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerTrackRowHeight: {Name: "LAYOUT_TOGGLE_ARRANGER_TRACK_ROW_HEIGHT", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerClipLauncherSection: {Name: "LAYOUT_TOGGLE_ARRANGER_CLIP_LAUNCHER_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerTimeLine: {Name: "LAYOUT_TOGGLE_ARRANGER_TIME_LINE", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerIoSection: {Name: "LAYOUT_TOGGLE_ARRANGER_IO_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleArrangerEffectTracks: {Name: "LAYOUT_TOGGLE_ARRANGER_EFFECT_TRACKS", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerClipLauncherSection: {Name: "LAYOUT_TOGGLE_MIXER_CLIP_LAUNCHER_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerCrossFadeSection: {Name: "LAYOUT_TOGGLE_MIXER_CROSS_FADE_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerDeviceSection: {Name: "LAYOUT_TOGGLE_MIXER_DEVICE_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerSendsSection: {Name: "LAYOUT_TOGGLE_MIXER_SENDS_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerIoSection: {Name: "LAYOUT_TOGGLE_MIXER_IO_SECTION", Group: GroupLayout, Kind: Trigger},
	LayoutToggleMixerMeterSection: {Name: "LAYOUT_TOGGLE_MIXER_METER_SECTION", Group: GroupLayout, Kind: Trigger},
	TrackAddAudioTrack: {Name: "TRACK_ADD_AUDIO_TRACK", Group: GroupTrack, Kind: Trigger},
	TrackAddEffectTrack: {Name: "TRACK_ADD_EFFECT_TRACK", Group: GroupTrack, Kind: Trigger},
	TrackAddInstrumentTrack: {Name: "TRACK_ADD_INSTRUMENT_TRACK", Group: GroupTrack, Kind: Trigger},
	TrackSelectPreviousBankPage: {Name: "TRACK_SELECT_PREVIOUS_BANK_PAGE", Group: GroupTrack, Kind: Trigger},
	TrackSelectNextBankPage: {Name: "TRACK_SELECT_NEXT_BANK_PAGE", Group: GroupTrack, Kind: Trigger},
	TrackSelectPreviousTrack: {Name: "TRACK_SELECT_PREVIOUS_TRACK", Group: GroupTrack, Kind: Trigger},
	TrackSelectNextTrack: {Name: "TRACK_SELECT_NEXT_TRACK", Group: GroupTrack, Kind: Trigger},
	TrackScrollTracks: {Name: "TRACK_SCROLL_TRACKS", Group: GroupTrack, Kind: Scroll},
	Track1Select: {Name: "TRACK_1_SELECT", Group: GroupTrack, Kind: Trigger},
	Track2Select: {Name: "TRACK_2_SELECT", Group: GroupTrack, Kind: Trigger},
	Track3Select: {Name: "TRACK_3_SELECT", Group: GroupTrack, Kind: Trigger},
	Track4Select: {Name: "TRACK_4_SELECT", Group: GroupTrack, Kind: Trigger},
	Track5Select: {Name: "TRACK_5_SELECT", Group: GroupTrack, Kind: Trigger},
	Track6Select: {Name: "TRACK_6_SELECT", Group: GroupTrack, Kind: Trigger},
	Track7Select: {Name: "TRACK_7_SELECT", Group: GroupTrack, Kind: Trigger},
	Track8Select: {Name: "TRACK_8_SELECT", Group: GroupTrack, Kind: Trigger},
	Track1ToggleActive: {Name: "TRACK_1_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track2ToggleActive: {Name: "TRACK_2_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track3ToggleActive: {Name: "TRACK_3_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track4ToggleActive: {Name: "TRACK_4_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track5ToggleActive: {Name: "TRACK_5_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track6ToggleActive: {Name: "TRACK_6_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track7ToggleActive: {Name: "TRACK_7_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track8ToggleActive: {Name: "TRACK_8_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	TrackSelectedToggleActive: {Name: "TRACK_SELECTED_TOGGLE_ACTIVE", Group: GroupTrack, Kind: Trigger},
	Track1SetVolume: {Name: "TRACK_1_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track2SetVolume: {Name: "TRACK_2_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track3SetVolume: {Name: "TRACK_3_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track4SetVolume: {Name: "TRACK_4_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track5SetVolume: {Name: "TRACK_5_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track6SetVolume: {Name: "TRACK_6_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track7SetVolume: {Name: "TRACK_7_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track8SetVolume: {Name: "TRACK_8_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetVolume: {Name: "TRACK_SELECTED_SET_VOLUME", Group: GroupTrack, Kind: Continuous},
	Track1SetPanorama: {Name: "TRACK_1_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track2SetPanorama: {Name: "TRACK_2_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track3SetPanorama: {Name: "TRACK_3_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track4SetPanorama: {Name: "TRACK_4_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track5SetPanorama: {Name: "TRACK_5_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track6SetPanorama: {Name: "TRACK_6_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track7SetPanorama: {Name: "TRACK_7_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track8SetPanorama: {Name: "TRACK_8_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetPanorama: {Name: "TRACK_SELECTED_SET_PANORAMA", Group: GroupTrack, Kind: Continuous},
	Track1ToggleMute: {Name: "TRACK_1_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track2ToggleMute: {Name: "TRACK_2_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track3ToggleMute: {Name: "TRACK_3_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track4ToggleMute: {Name: "TRACK_4_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track5ToggleMute: {Name: "TRACK_5_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track6ToggleMute: {Name: "TRACK_6_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track7ToggleMute: {Name: "TRACK_7_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track8ToggleMute: {Name: "TRACK_8_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	TrackSelectedToggleMute: {Name: "TRACK_SELECTED_TOGGLE_MUTE", Group: GroupTrack, Kind: Trigger},
	Track1ToggleSolo: {Name: "TRACK_1_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track2ToggleSolo: {Name: "TRACK_2_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track3ToggleSolo: {Name: "TRACK_3_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track4ToggleSolo: {Name: "TRACK_4_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track5ToggleSolo: {Name: "TRACK_5_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track6ToggleSolo: {Name: "TRACK_6_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track7ToggleSolo: {Name: "TRACK_7_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track8ToggleSolo: {Name: "TRACK_8_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	TrackSelectedToggleSolo: {Name: "TRACK_SELECTED_TOGGLE_SOLO", Group: GroupTrack, Kind: Trigger},
	Track1ToggleArm: {Name: "TRACK_1_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track2ToggleArm: {Name: "TRACK_2_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track3ToggleArm: {Name: "TRACK_3_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track4ToggleArm: {Name: "TRACK_4_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track5ToggleArm: {Name: "TRACK_5_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track6ToggleArm: {Name: "TRACK_6_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track7ToggleArm: {Name: "TRACK_7_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track8ToggleArm: {Name: "TRACK_8_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	TrackSelectedToggleArm: {Name: "TRACK_SELECTED_TOGGLE_ARM", Group: GroupTrack, Kind: Trigger},
	Track1ToggleMonitor: {Name: "TRACK_1_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track2ToggleMonitor: {Name: "TRACK_2_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track3ToggleMonitor: {Name: "TRACK_3_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track4ToggleMonitor: {Name: "TRACK_4_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track5ToggleMonitor: {Name: "TRACK_5_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track6ToggleMonitor: {Name: "TRACK_6_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track7ToggleMonitor: {Name: "TRACK_7_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track8ToggleMonitor: {Name: "TRACK_8_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	TrackSelectedToggleMonitor: {Name: "TRACK_SELECTED_TOGGLE_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track1ToggleAutoMonitor: {Name: "TRACK_1_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track2ToggleAutoMonitor: {Name: "TRACK_2_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track3ToggleAutoMonitor: {Name: "TRACK_3_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track4ToggleAutoMonitor: {Name: "TRACK_4_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track5ToggleAutoMonitor: {Name: "TRACK_5_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track6ToggleAutoMonitor: {Name: "TRACK_6_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track7ToggleAutoMonitor: {Name: "TRACK_7_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track8ToggleAutoMonitor: {Name: "TRACK_8_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	TrackSelectedToggleAutoMonitor: {Name: "TRACK_SELECTED_TOGGLE_AUTO_MONITOR", Group: GroupTrack, Kind: Trigger},
	Track1SetSend1: {Name: "TRACK_1_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track2SetSend1: {Name: "TRACK_2_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track3SetSend1: {Name: "TRACK_3_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track4SetSend1: {Name: "TRACK_4_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track5SetSend1: {Name: "TRACK_5_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track6SetSend1: {Name: "TRACK_6_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track7SetSend1: {Name: "TRACK_7_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track8SetSend1: {Name: "TRACK_8_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	Track1SetSend2: {Name: "TRACK_1_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track2SetSend2: {Name: "TRACK_2_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track3SetSend2: {Name: "TRACK_3_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track4SetSend2: {Name: "TRACK_4_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track5SetSend2: {Name: "TRACK_5_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track6SetSend2: {Name: "TRACK_6_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track7SetSend2: {Name: "TRACK_7_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track8SetSend2: {Name: "TRACK_8_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	Track1SetSend3: {Name: "TRACK_1_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track2SetSend3: {Name: "TRACK_2_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track3SetSend3: {Name: "TRACK_3_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track4SetSend3: {Name: "TRACK_4_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track5SetSend3: {Name: "TRACK_5_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track6SetSend3: {Name: "TRACK_6_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track7SetSend3: {Name: "TRACK_7_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track8SetSend3: {Name: "TRACK_8_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	Track1SetSend4: {Name: "TRACK_1_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track2SetSend4: {Name: "TRACK_2_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track3SetSend4: {Name: "TRACK_3_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track4SetSend4: {Name: "TRACK_4_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track5SetSend4: {Name: "TRACK_5_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track6SetSend4: {Name: "TRACK_6_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track7SetSend4: {Name: "TRACK_7_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track8SetSend4: {Name: "TRACK_8_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	Track1SetSend5: {Name: "TRACK_1_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track2SetSend5: {Name: "TRACK_2_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track3SetSend5: {Name: "TRACK_3_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track4SetSend5: {Name: "TRACK_4_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track5SetSend5: {Name: "TRACK_5_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track6SetSend5: {Name: "TRACK_6_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track7SetSend5: {Name: "TRACK_7_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track8SetSend5: {Name: "TRACK_8_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	Track1SetSend6: {Name: "TRACK_1_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track2SetSend6: {Name: "TRACK_2_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track3SetSend6: {Name: "TRACK_3_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track4SetSend6: {Name: "TRACK_4_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track5SetSend6: {Name: "TRACK_5_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track6SetSend6: {Name: "TRACK_6_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track7SetSend6: {Name: "TRACK_7_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track8SetSend6: {Name: "TRACK_8_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	Track1SetSend7: {Name: "TRACK_1_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track2SetSend7: {Name: "TRACK_2_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track3SetSend7: {Name: "TRACK_3_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track4SetSend7: {Name: "TRACK_4_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track5SetSend7: {Name: "TRACK_5_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track6SetSend7: {Name: "TRACK_6_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track7SetSend7: {Name: "TRACK_7_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track8SetSend7: {Name: "TRACK_8_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	Track1SetSend8: {Name: "TRACK_1_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track2SetSend8: {Name: "TRACK_2_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track3SetSend8: {Name: "TRACK_3_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track4SetSend8: {Name: "TRACK_4_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track5SetSend8: {Name: "TRACK_5_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track6SetSend8: {Name: "TRACK_6_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track7SetSend8: {Name: "TRACK_7_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	Track8SetSend8: {Name: "TRACK_8_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend1: {Name: "TRACK_SELECTED_SET_SEND_1", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend2: {Name: "TRACK_SELECTED_SET_SEND_2", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend3: {Name: "TRACK_SELECTED_SET_SEND_3", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend4: {Name: "TRACK_SELECTED_SET_SEND_4", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend5: {Name: "TRACK_SELECTED_SET_SEND_5", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend6: {Name: "TRACK_SELECTED_SET_SEND_6", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend7: {Name: "TRACK_SELECTED_SET_SEND_7", Group: GroupTrack, Kind: Continuous},
	TrackSelectedSetSend8: {Name: "TRACK_SELECTED_SET_SEND_8", Group: GroupTrack, Kind: Continuous},
	MasterSetVolume: {Name: "MASTER_SET_VOLUME", Group: GroupMaster, Kind: Continuous},
	MasterSetPanorama: {Name: "MASTER_SET_PANORAMA", Group: GroupMaster, Kind: Continuous},
	MasterToggleMute: {Name: "MASTER_TOGGLE_MUTE", Group: GroupMaster, Kind: Trigger},
	MasterToggleSolo: {Name: "MASTER_TOGGLE_SOLO", Group: GroupMaster, Kind: Trigger},
	MasterToggleArm: {Name: "MASTER_TOGGLE_ARM", Group: GroupMaster, Kind: Trigger},
	DeviceToggleWindow: {Name: "DEVICE_TOGGLE_WINDOW", Group: GroupDevice, Kind: Trigger},
	DeviceBypass: {Name: "DEVICE_BYPASS", Group: GroupDevice, Kind: Trigger},
	DeviceExpand: {Name: "DEVICE_EXPAND", Group: GroupDevice, Kind: Trigger},
	DeviceSelectPrevious: {Name: "DEVICE_SELECT_PREVIOUS", Group: GroupDevice, Kind: Trigger},
	DeviceSelectNext: {Name: "DEVICE_SELECT_NEXT", Group: GroupDevice, Kind: Trigger},
	DeviceScrollDevices: {Name: "DEVICE_SCROLL_DEVICES", Group: GroupDevice, Kind: Scroll},
	DeviceSelectPreviousParameterBank: {Name: "DEVICE_SELECT_PREVIOUS_PARAMETER_BANK", Group: GroupDevice, Kind: Trigger},
	DeviceSelectNextParameterBank: {Name: "DEVICE_SELECT_NEXT_PARAMETER_BANK", Group: GroupDevice, Kind: Trigger},
	DeviceScrollParameterBanks: {Name: "DEVICE_SCROLL_PARAMETER_BANKS", Group: GroupDevice, Kind: Scroll},
	DeviceSetParameter1: {Name: "DEVICE_SET_PARAMETER_1", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter2: {Name: "DEVICE_SET_PARAMETER_2", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter3: {Name: "DEVICE_SET_PARAMETER_3", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter4: {Name: "DEVICE_SET_PARAMETER_4", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter5: {Name: "DEVICE_SET_PARAMETER_5", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter6: {Name: "DEVICE_SET_PARAMETER_6", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter7: {Name: "DEVICE_SET_PARAMETER_7", Group: GroupDevice, Kind: Continuous},
	DeviceSetParameter8: {Name: "DEVICE_SET_PARAMETER_8", Group: GroupDevice, Kind: Continuous},
	BrowserBrowsePresets: {Name: "BROWSER_BROWSE_PRESETS", Group: GroupBrowser, Kind: Trigger},
	BrowserInsertDeviceBeforeCurrent: {Name: "BROWSER_INSERT_DEVICE_BEFORE_CURRENT", Group: GroupBrowser, Kind: Trigger},
	BrowserInsertDeviceAfterCurrent: {Name: "BROWSER_INSERT_DEVICE_AFTER_CURRENT", Group: GroupBrowser, Kind: Trigger},
	BrowserCommitSelection: {Name: "BROWSER_COMMIT_SELECTION", Group: GroupBrowser, Kind: Trigger},
	BrowserCancelSelection: {Name: "BROWSER_CANCEL_SELECTION", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectPreviousFilterInColumn1: {Name: "BROWSER_SELECT_PREVIOUS_FILTER_IN_COLUMN_1", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectPreviousFilterInColumn2: {Name: "BROWSER_SELECT_PREVIOUS_FILTER_IN_COLUMN_2", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectPreviousFilterInColumn3: {Name: "BROWSER_SELECT_PREVIOUS_FILTER_IN_COLUMN_3", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectPreviousFilterInColumn4: {Name: "BROWSER_SELECT_PREVIOUS_FILTER_IN_COLUMN_4", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectPreviousFilterInColumn5: {Name: "BROWSER_SELECT_PREVIOUS_FILTER_IN_COLUMN_5", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectPreviousFilterInColumn6: {Name: "BROWSER_SELECT_PREVIOUS_FILTER_IN_COLUMN_6", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectNextFilterInColumn1: {Name: "BROWSER_SELECT_NEXT_FILTER_IN_COLUMN_1", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectNextFilterInColumn2: {Name: "BROWSER_SELECT_NEXT_FILTER_IN_COLUMN_2", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectNextFilterInColumn3: {Name: "BROWSER_SELECT_NEXT_FILTER_IN_COLUMN_3", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectNextFilterInColumn4: {Name: "BROWSER_SELECT_NEXT_FILTER_IN_COLUMN_4", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectNextFilterInColumn5: {Name: "BROWSER_SELECT_NEXT_FILTER_IN_COLUMN_5", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectNextFilterInColumn6: {Name: "BROWSER_SELECT_NEXT_FILTER_IN_COLUMN_6", Group: GroupBrowser, Kind: Trigger},
	BrowserScrollFilterInColumn1: {Name: "BROWSER_SCROLL_FILTER_IN_COLUMN_1", Group: GroupBrowser, Kind: Scroll},
	BrowserScrollFilterInColumn2: {Name: "BROWSER_SCROLL_FILTER_IN_COLUMN_2", Group: GroupBrowser, Kind: Scroll},
	BrowserScrollFilterInColumn3: {Name: "BROWSER_SCROLL_FILTER_IN_COLUMN_3", Group: GroupBrowser, Kind: Scroll},
	BrowserScrollFilterInColumn4: {Name: "BROWSER_SCROLL_FILTER_IN_COLUMN_4", Group: GroupBrowser, Kind: Scroll},
	BrowserScrollFilterInColumn5: {Name: "BROWSER_SCROLL_FILTER_IN_COLUMN_5", Group: GroupBrowser, Kind: Scroll},
	BrowserScrollFilterInColumn6: {Name: "BROWSER_SCROLL_FILTER_IN_COLUMN_6", Group: GroupBrowser, Kind: Scroll},
	BrowserResetFilterColumn1: {Name: "BROWSER_RESET_FILTER_COLUMN_1", Group: GroupBrowser, Kind: Trigger},
	BrowserResetFilterColumn2: {Name: "BROWSER_RESET_FILTER_COLUMN_2", Group: GroupBrowser, Kind: Trigger},
	BrowserResetFilterColumn3: {Name: "BROWSER_RESET_FILTER_COLUMN_3", Group: GroupBrowser, Kind: Trigger},
	BrowserResetFilterColumn4: {Name: "BROWSER_RESET_FILTER_COLUMN_4", Group: GroupBrowser, Kind: Trigger},
	BrowserResetFilterColumn5: {Name: "BROWSER_RESET_FILTER_COLUMN_5", Group: GroupBrowser, Kind: Trigger},
	BrowserResetFilterColumn6: {Name: "BROWSER_RESET_FILTER_COLUMN_6", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectThePreviousPreset: {Name: "BROWSER_SELECT_THE_PREVIOUS_PRESET", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectTheNextPreset: {Name: "BROWSER_SELECT_THE_NEXT_PRESET", Group: GroupBrowser, Kind: Trigger},
	BrowserScrollPresets: {Name: "BROWSER_SCROLL_PRESETS", Group: GroupBrowser, Kind: Scroll},
	BrowserSelectThePreviousTab: {Name: "BROWSER_SELECT_THE_PREVIOUS_TAB", Group: GroupBrowser, Kind: Trigger},
	BrowserSelectTheNextTab: {Name: "BROWSER_SELECT_THE_NEXT_TAB", Group: GroupBrowser, Kind: Trigger},
	BrowserScrollTabs: {Name: "BROWSER_SCROLL_TABS", Group: GroupBrowser, Kind: Scroll},
	Scene1LaunchScene: {Name: "SCENE_1_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene2LaunchScene: {Name: "SCENE_2_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene3LaunchScene: {Name: "SCENE_3_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene4LaunchScene: {Name: "SCENE_4_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene5LaunchScene: {Name: "SCENE_5_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene6LaunchScene: {Name: "SCENE_6_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene7LaunchScene: {Name: "SCENE_7_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	Scene8LaunchScene: {Name: "SCENE_8_LAUNCH_SCENE", Group: GroupScene, Kind: Trigger},
	SceneSelectPreviousBank: {Name: "SCENE_SELECT_PREVIOUS_BANK", Group: GroupScene, Kind: Trigger},
	SceneSelectNextBank: {Name: "SCENE_SELECT_NEXT_BANK", Group: GroupScene, Kind: Trigger},
	SceneCreateSceneFromPlayingClips: {Name: "SCENE_CREATE_SCENE_FROM_PLAYING_CLIPS", Group: GroupScene, Kind: Trigger},
	ClipPrevious: {Name: "CLIP_PREVIOUS", Group: GroupClip, Kind: Trigger},
	ClipNext: {Name: "CLIP_NEXT", Group: GroupClip, Kind: Trigger},
	ClipScroll: {Name: "CLIP_SCROLL", Group: GroupClip, Kind: Scroll},
	ClipPlay: {Name: "CLIP_PLAY", Group: GroupClip, Kind: Trigger},
	ClipStop: {Name: "CLIP_STOP", Group: GroupClip, Kind: Trigger},
	ClipRecord: {Name: "CLIP_RECORD", Group: GroupClip, Kind: Trigger},
	ClipNew: {Name: "CLIP_NEW", Group: GroupClip, Kind: Trigger},
	ClipDuplicate: {Name: "CLIP_DUPLICATE", Group: GroupClip, Kind: Trigger},
}
