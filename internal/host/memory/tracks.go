package memory

import "github.com/PixPMusic/gopher-flexi/internal/host"

// Track implements host.Track
type Track struct {
	Index              int
	IsSelected         bool
	Stopped            int
	Act, Mut, Sol, Rec Flag
	Mon, AutoMon       Flag
	Vol, Pan           *Param
	Sends              [sendCount]*Param
	Slots              [slotsPerTrk]*ClipSlot
	SelectedSlot       int
}

func newTrack(index int) *Track {
	t := &Track{
		Index:        index,
		Act:          Flag{On: true},
		Vol:          NewParam(100),
		Pan:          NewParam(64),
		SelectedSlot: -1,
	}
	for i := range t.Sends {
		t.Sends[i] = NewParam(0)
	}
	for i := range t.Slots {
		t.Slots[i] = &ClipSlot{}
	}
	return t
}

func (t *Track) Position() int            { return t.Index }
func (t *Track) Selected() bool           { return t.IsSelected }
func (t *Track) Active() host.Bool        { return &t.Act }
func (t *Track) Mute() host.Bool          { return &t.Mut }
func (t *Track) Solo() host.Bool          { return &t.Sol }
func (t *Track) Arm() host.Bool           { return &t.Rec }
func (t *Track) Monitor() host.Bool       { return &t.Mon }
func (t *Track) AutoMonitor() host.Bool   { return &t.AutoMon }
func (t *Track) Volume() host.Parameter   { return t.Vol }
func (t *Track) Panorama() host.Parameter { return t.Pan }

func (t *Track) Stop() {
	t.Stopped++
	for _, s := range t.Slots {
		s.IsPlaying = false
		s.IsRecording = false
	}
}

func (t *Track) Send(i int) host.Parameter {
	if i < 0 || i >= len(t.Sends) {
		return nil
	}
	return t.Sends[i]
}

// Select is a no-op on the master track, which is not part of a bank
func (t *Track) Select() {}

// TrackBank implements host.TrackBank over every track in the project
type TrackBank struct {
	model    *Model
	tracks   []*Track
	position int
}

// Tracks returns all project tracks
func (b *TrackBank) Tracks() []*Track {
	return b.tracks
}

func (b *TrackBank) Size() int     { return bankSize }
func (b *TrackBank) Position() int { return b.position }

func (b *TrackBank) Track(i int) host.Track {
	if i < 0 || i >= bankSize {
		return nil
	}
	idx := b.position + i
	if idx >= len(b.tracks) {
		return nil
	}
	return &bankTrack{Track: b.tracks[idx], bank: b}
}

func (b *TrackBank) CanScrollBackwards() bool { return b.position > 0 }
func (b *TrackBank) CanScrollForwards() bool  { return b.position+bankSize < len(b.tracks) }

func (b *TrackBank) ScrollPageBackwards() {
	b.position -= bankSize
	if b.position < 0 {
		b.position = 0
	}
}

func (b *TrackBank) ScrollPageForwards() {
	if b.CanScrollForwards() {
		b.position += bankSize
	}
}

func (b *TrackBank) selected() *Track {
	for _, t := range b.tracks {
		if t.IsSelected {
			return t
		}
	}
	return nil
}

func (b *TrackBank) selectIndex(idx int) {
	for i, t := range b.tracks {
		t.IsSelected = i == idx
	}
}

// bankTrack adds selection to a track, which only makes sense inside a bank
type bankTrack struct {
	*Track
	bank *TrackBank
}

func (t *bankTrack) Select() {
	t.bank.selectIndex(t.Index)
}
