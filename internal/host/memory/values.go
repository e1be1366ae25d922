package memory

import "math"

// Flag is an in-memory host.Bool
type Flag struct {
	On bool
}

func (f *Flag) Get() bool  { return f.On }
func (f *Flag) Set(v bool) { f.On = v }
func (f *Flag) Toggle()    { f.On = !f.On }

// Param is an in-memory host.Parameter holding a normalized 0..1 value
type Param struct {
	Norm float64
}

// NewParam creates a parameter at the given MIDI value
func NewParam(midiValue int) *Param {
	p := &Param{}
	p.Set(midiValue, 128)
	return p
}

func (p *Param) Value() int {
	return int(math.Round(p.Norm * 127))
}

func (p *Param) Set(value, resolution int) {
	if resolution < 2 {
		return
	}
	p.Norm = clampUnit(float64(value) / float64(resolution-1))
}

func (p *Param) Inc(delta float64, resolution int) {
	if resolution < 2 {
		return
	}
	p.Norm = clampUnit(p.Norm + delta/float64(resolution-1))
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
