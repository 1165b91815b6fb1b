package engine

import (
	"math"

	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
)

// mapPointer moves the pointer from the right stick. The cubic curve keeps
// small deflections precise; any axis past the deadzone moves at least one
// pixel.
func (e *Engine) mapPointer(b *input.Batch, r gamepad.Report) {
	dx, dy := pointerDelta(r.Right, e.settings.PointerDeadzone, e.settings.PointerSensitivity)
	if dx != 0 || dy != 0 {
		b.Move(dx, dy)
	}
	e.motion = [2]int{dx, dy}
}

// pointerDelta uses report orientation, so pushing the stick down moves the
// pointer down.
func pointerDelta(s gamepad.Stick, deadzone, sensitivity float64) (dx, dy int) {
	x := gamepad.ApplyDeadzone(gamepad.NormalizeAxis(s.X), deadzone)
	y := gamepad.ApplyDeadzone(gamepad.NormalizeAxis(s.Y), deadzone)
	return axisDelta(x, sensitivity), axisDelta(y, sensitivity)
}

// axisDelta expects v with the deadzone already removed.
func axisDelta(v, sensitivity float64) int {
	d := int(math.Round(v * v * v * sensitivity))
	if d == 0 && v != 0 {
		if v > 0 {
			return 1
		}
		return -1
	}
	return d
}
