package knob

// Default implements the RELATIVE_1 convention. Hosts hand one of these out
// with their own range and step size.
//
//	1..63   -> +value
//	65..127 -> -(128 - value)
//	0, 64   -> 0
type Default struct{ scale }

// NewDefault creates a RELATIVE_1 changer
func NewDefault(upperBound int, step, sensitivity float64) Default {
	return Default{scale{upperBound: upperBound, step: step, sensitivity: sensitivity}}
}

// Slow returns a copy that scales movement by the sensitivity instead of the step
func (d Default) Slow() Default {
	d.slow = true
	return d
}

func (d Default) CalcKnobSpeed(raw int) float64 {
	raw &= 0x7F
	switch {
	case raw == 0 || raw == 64:
		return 0
	case raw < 64:
		return float64(raw) * d.factor()
	default:
		return -float64(128-raw) * d.factor()
	}
}

func (d Default) ChangeValue(raw, current int) int {
	return d.change(d.CalcKnobSpeed(raw), current)
}

// Relative2Changer implements the signed bit convention.
//
//	0..63   -> +value
//	64..127 -> -(value - 64)
type Relative2Changer struct{ scale }

// NewRelative2 creates a RELATIVE_2 changer
func NewRelative2(upperBound int, step, sensitivity float64) Relative2Changer {
	return Relative2Changer{scale{upperBound: upperBound, step: step, sensitivity: sensitivity}}
}

// Slow returns a copy that scales movement by the sensitivity instead of the step
func (r Relative2Changer) Slow() Relative2Changer {
	r.slow = true
	return r
}

func (r Relative2Changer) CalcKnobSpeed(raw int) float64 {
	raw &= 0x7F
	if raw < 64 {
		return float64(raw) * r.factor()
	}
	return -float64(raw-64) * r.factor()
}

func (r Relative2Changer) ChangeValue(raw, current int) int {
	return r.change(r.CalcKnobSpeed(raw), current)
}

// Relative3Changer implements the two's complement convention.
//
//	0..63   -> +value
//	64..127 -> value - 128
type Relative3Changer struct{ scale }

// NewRelative3 creates a RELATIVE_3 changer
func NewRelative3(upperBound int, step, sensitivity float64) Relative3Changer {
	return Relative3Changer{scale{upperBound: upperBound, step: step, sensitivity: sensitivity}}
}

// Slow returns a copy that scales movement by the sensitivity instead of the step
func (r Relative3Changer) Slow() Relative3Changer {
	r.slow = true
	return r
}

func (r Relative3Changer) CalcKnobSpeed(raw int) float64 {
	raw &= 0x7F
	if raw < 64 {
		return float64(raw) * r.factor()
	}
	return float64(raw-128) * r.factor()
}

func (r Relative3Changer) ChangeValue(raw, current int) int {
	return r.change(r.CalcKnobSpeed(raw), current)
}
