package engine

import (
	"math"

	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
	"github.com/soar/padmapper/internal/keyboard"
)

// mapKeyboard handles keyboard mode and reports whether the selection moved.
func (e *Engine) mapKeyboard(b *input.Batch, r gamepad.Report, cur edges) bool {
	moved := false
	if b.At.Sub(e.lastMove) >= e.settings.KeyboardMoveDelay {
		dx, dy := selectionStep(r.Left, e.settings.KeyboardDeadzone)
		if dx != 0 || dy != 0 {
			moved = e.kbd.Move(dx, dy)
			e.lastMove = b.At
		}
	}

	if cur.Cross && !e.prev.Cross {
		e.typeLabel(b, e.kbd.Selected())
	}
	if cur.Square && !e.prev.Square {
		e.tracker.SetKey(b, input.KeyLeftShift, e.kbd.ToggleShift())
	}
	if cur.Circle && !e.prev.Circle {
		e.typeLabel(b, "BACKSPACE")
	}
	if cur.Triangle && !e.prev.Triangle {
		e.typeLabel(b, "SPACE")
	}
	return moved
}

// selectionStep picks one grid step from the stick. The axis with the larger
// deflection wins and the vertical axis wins ties. Up moves to a lower row.
func selectionStep(s gamepad.Stick, deadzone float64) (dx, dy int) {
	x, y := s.Vector()
	if math.Abs(y) >= math.Abs(x) {
		switch {
		case y > deadzone:
			return 0, -1
		case y < -deadzone:
			return 0, 1
		}
		return 0, 0
	}
	switch {
	case x > deadzone:
		return 1, 0
	case x < -deadzone:
		return -1, 0
	}
	return 0, 0
}

// typeLabel taps the key behind label. Sticky shift is asserted first and
// left held.
func (e *Engine) typeLabel(b *input.Batch, label string) {
	k, ok := keyboard.Resolve(label)
	if !ok {
		e.log.Debug().Str("label", label).Msg("no key for label")
		return
	}
	if e.kbd.Shift() {
		e.tracker.SetKey(b, input.KeyLeftShift, true)
	}
	e.tracker.Tap(b, k)
}
