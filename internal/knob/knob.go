package knob

import (
	"fmt"
	"strings"
)

// Mode is the wire convention used to interpret an incoming controller value
type Mode int

const (
	Absolute  Mode = iota // Raw value is the new target value
	Relative1             // Two's complement, 64 is no movement (host value changer)
	Relative2             // Signed bit: 0-63 up, 64-127 down
	Relative3             // Two's complement: 64-127 wrap to negative
)

var modeNames = [...]string{"ABSOLUTE", "RELATIVE_1", "RELATIVE_2", "RELATIVE_3"}

func (m Mode) String() string {
	if m < Absolute || m > Relative3 {
		return fmt.Sprintf("Mode(%d)", int(m))
	}
	return modeNames[m]
}

// IsRelative returns true for all encoder conventions
func (m Mode) IsRelative() bool {
	return m >= Relative1 && m <= Relative3
}

// ParseMode converts a persisted mode name back to a Mode
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}
	return Absolute, fmt.Errorf("unknown knob mode %q", s)
}

// ValueChanger turns a raw encoder byte into a signed step count
type ValueChanger interface {
	// CalcKnobSpeed returns how far and in which direction the encoder turned
	CalcKnobSpeed(raw int) float64

	// ChangeValue applies the encoder movement to current and clamps the result
	ChangeValue(raw, current int) int

	// UpperBound is the exclusive maximum of the value range
	UpperBound() int

	// ToMIDI scales a value from the changer's range to 0-127
	ToMIDI(value int) int

	// FromMIDI scales a 0-127 value to the changer's range
	FromMIDI(value int) int
}

// scale holds the configuration triple shared by all changers
type scale struct {
	upperBound  int
	step        float64
	sensitivity float64
	slow        bool
}

func (s scale) factor() float64 {
	if s.slow {
		return s.sensitivity
	}
	return s.step
}

func (s scale) change(speed float64, current int) int {
	v := int(float64(current) + speed)
	if v < 0 {
		return 0
	}
	if v > s.upperBound-1 {
		return s.upperBound - 1
	}
	return v
}

func (s scale) UpperBound() int {
	return s.upperBound
}

func (s scale) ToMIDI(value int) int {
	if s.upperBound == 128 {
		return clamp(value, 0, 127)
	}
	return clamp(value*127/(s.upperBound-1), 0, 127)
}

func (s scale) FromMIDI(value int) int {
	if s.upperBound == 128 {
		return clamp(value, 0, 127)
	}
	return clamp(value, 0, 127) * (s.upperBound - 1) / 127
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
