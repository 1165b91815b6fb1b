package gamepad

import "math"

const axisCenter = 128

// Directions is a set of the four cardinal directions.
type Directions struct {
	Up    bool `json:"up"`
	Down  bool `json:"down"`
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

var dpadDirections = [...]Directions{
	DPadUp:        {Up: true},
	DPadUpRight:   {Up: true, Right: true},
	DPadRight:     {Right: true},
	DPadDownRight: {Down: true, Right: true},
	DPadDown:      {Down: true},
	DPadDownLeft:  {Down: true, Left: true},
	DPadLeft:      {Left: true},
	DPadUpLeft:    {Up: true, Left: true},
}

// Directions returns the cardinal directions asserted by the hat. Diagonals
// assert both adjacent directions; neutral asserts none.
func (d DPad) Directions() Directions {
	if int(d) < len(dpadDirections) {
		return dpadDirections[d]
	}
	return Directions{}
}

// NormalizeAxis converts a raw axis value (0..255, centre 128) to -1.0..1.0.
func NormalizeAxis(raw uint8) float64 {
	v := float64(int(raw)-axisCenter) / 127
	if v < -1.0 {
		v = -1.0
	}
	return v
}

// Vector returns the normalized stick position with Y inverted so that
// pushing the stick up yields a positive value.
func (s Stick) Vector() (x, y float64) {
	return NormalizeAxis(s.X), -NormalizeAxis(s.Y)
}

// ApplyDeadzone returns 0 if the value does not exceed the deadzone
// threshold.
func ApplyDeadzone(v float64, threshold float64) float64 {
	if math.Abs(v) <= threshold {
		return 0
	}
	return v
}

// NormalizeTrigger converts a raw trigger value to 0.0..1.0.
func NormalizeTrigger(raw uint8) float64 {
	return float64(raw) / math.MaxUint8
}
