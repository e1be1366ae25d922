package memory

import "github.com/PixPMusic/gopher-flexi/internal/host"

// SceneBank implements host.SceneBank
type SceneBank struct {
	count    int
	Position int
	Launched []int // Absolute scene indices in launch order
}

func (s *SceneBank) Size() int { return bankSize }

func (s *SceneBank) Launch(i int) {
	if i < 0 || i >= bankSize || s.Position+i >= s.count {
		return
	}
	s.Launched = append(s.Launched, s.Position+i)
}

func (s *SceneBank) ScrollPageBackwards() {
	s.Position -= bankSize
	if s.Position < 0 {
		s.Position = 0
	}
}

func (s *SceneBank) ScrollPageForwards() {
	if s.Position+bankSize < s.count {
		s.Position += bankSize
	}
}

// ClipSlot implements host.ClipSlot
type ClipSlot struct {
	Content     bool
	IsPlaying   bool
	IsRecording bool
	Duplicates  int
}

func (c *ClipSlot) HasContent() bool { return c.Content }
func (c *ClipSlot) Playing() bool    { return c.IsPlaying }
func (c *ClipSlot) Recording() bool  { return c.IsRecording }

func (c *ClipSlot) Launch() {
	if c.Content {
		c.IsPlaying = true
		c.IsRecording = false
	}
}

func (c *ClipSlot) Record() {
	c.Content = true
	c.IsRecording = true
}

func (c *ClipSlot) Create() {
	c.Content = true
}

func (c *ClipSlot) Duplicate() {
	if c.Content {
		c.Duplicates++
	}
}

// ClipLauncher implements host.ClipLauncher on the selected track
type ClipLauncher struct {
	model *Model
}

func (l *ClipLauncher) SelectPrevious() {
	if t := l.model.Bank.selected(); t != nil && t.SelectedSlot > 0 {
		t.SelectedSlot--
	}
}

func (l *ClipLauncher) SelectNext() {
	if t := l.model.Bank.selected(); t != nil && t.SelectedSlot < slotsPerTrk-1 {
		t.SelectedSlot++
	}
}

func (l *ClipLauncher) Selected() host.ClipSlot {
	t := l.model.Bank.selected()
	if t == nil || t.SelectedSlot < 0 {
		return nil
	}
	return t.Slots[t.SelectedSlot]
}
