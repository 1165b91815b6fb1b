package engine

import (
	"fmt"
	"strings"

	"github.com/soar/padmapper/internal/display"
	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
)

// Snapshot copies the current state for display sinks. The result shares no
// memory with the engine.
func (e *Engine) Snapshot() display.RenderState {
	r := e.report
	row, col := e.kbd.Selection()

	held := e.tracker.HeldKeys()
	names := make([]string, len(held))
	for i, k := range held {
		names[i] = k.String()
	}

	layout := make([][]string, len(e.kbd.Layout()))
	for i, keys := range e.kbd.Layout() {
		layout[i] = append([]string(nil), keys...)
	}

	return display.RenderState{
		Connected: e.hasReport,
		Mode:      e.mode.String(),
		Visible:   e.visible,
		Buttons:   r.Buttons,
		Dpad: display.DpadState{
			Directions: r.DPad.Directions(),
			Label:      r.DPad.String(),
		},
		Sticks: display.SticksState{
			Left:  stickState(r.Left, r.Buttons.L3),
			Right: stickState(r.Right, r.Buttons.R3),
		},
		Triggers: display.TriggersState{
			L2: display.TriggerState{Value: gamepad.NormalizeTrigger(r.LeftTrigger), Raw: r.LeftTrigger},
			R2: display.TriggerState{Value: gamepad.NormalizeTrigger(r.RightTrigger), Raw: r.RightTrigger},
		},
		Battery: r.Battery,
		Motion:  display.Motion{DX: e.motion[0], DY: e.motion[1]},
		Pointer: display.PointerState{
			Left:  e.tracker.ButtonHeld(input.ButtonLeft),
			Right: e.tracker.ButtonHeld(input.ButtonRight),
		},
		Keyboard: display.KeyboardState{
			Layout: layout,
			Row:    row,
			Col:    col,
			Shift:  e.kbd.Shift(),
		},
		HeldKeys: names,
		Raw:      hexDump(r.Raw[:], e.hasReport),
	}
}

func stickState(s gamepad.Stick, pressed bool) display.StickState {
	x, y := s.Vector()
	return display.StickState{
		Position: display.Vector{X: x, Y: y},
		RawX:     s.X,
		RawY:     s.Y,
		Pressed:  pressed,
	}
}

func hexDump(raw []byte, ok bool) string {
	if !ok {
		return ""
	}
	var b strings.Builder
	for _, c := range raw {
		fmt.Fprintf(&b, "%02x ", c)
	}
	return strings.TrimRight(b.String(), " ")
}
