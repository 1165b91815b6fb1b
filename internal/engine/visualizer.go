package engine

import (
	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
)

// Face button key bindings in visualizer mode.
const (
	squareKey   = input.KeyE
	crossKey    = input.KeySpace
	circleKey   = input.KeyLeftCtrl
	triangleKey = input.KeyLeftShift
)

func (e *Engine) mapVisualizer(b *input.Batch, r gamepad.Report) {
	t := e.tracker
	dz := e.settings.StickDeadzone

	x, y := r.Left.Vector()
	t.SetKey(b, input.KeyW, y > dz)
	t.SetKey(b, input.KeyS, y < -dz)
	t.SetKey(b, input.KeyA, x < -dz)
	t.SetKey(b, input.KeyD, x > dz)

	dirs := r.DPad.Directions()
	t.SetKey(b, input.KeyUp, dirs.Up)
	t.SetKey(b, input.KeyDown, dirs.Down)
	t.SetKey(b, input.KeyLeft, dirs.Left)
	t.SetKey(b, input.KeyRight, dirs.Right)

	// level triggered with no hysteresis
	t.SetButton(b, input.ButtonLeft, r.RightTrigger > e.settings.TriggerThreshold)
	t.SetButton(b, input.ButtonRight, r.LeftTrigger > e.settings.TriggerThreshold)

	t.SetKey(b, squareKey, r.Buttons.Square)
	t.SetKey(b, crossKey, r.Buttons.Cross)
	t.SetKey(b, circleKey, r.Buttons.Circle)
	t.SetKey(b, triangleKey, r.Buttons.Triangle)
}
