package display

import (
	"math"
	"slices"

	"github.com/soar/padmapper/internal/gamepad"
)

type Vector struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type StickState struct {
	Position Vector `json:"position"`
	RawX     uint8  `json:"rawX"`
	RawY     uint8  `json:"rawY"`
	Pressed  bool   `json:"pressed"`
}

type TriggerState struct {
	Value float64 `json:"value"`
	Raw   uint8   `json:"raw"`
}

type DpadState struct {
	gamepad.Directions
	Label string `json:"label"`
}

type SticksState struct {
	Left  StickState `json:"left"`
	Right StickState `json:"right"`
}

type TriggersState struct {
	L2 TriggerState `json:"l2"`
	R2 TriggerState `json:"r2"`
}

type Motion struct {
	DX int `json:"dx"`
	DY int `json:"dy"`
}

type PointerState struct {
	Left  bool `json:"left"`
	Right bool `json:"right"`
}

type KeyboardState struct {
	Layout [][]string `json:"layout"`
	Row    int        `json:"row"`
	Col    int        `json:"col"`
	Shift  bool       `json:"shift"`
}

// RenderState is everything a display needs to draw one frame.
type RenderState struct {
	Connected bool            `json:"connected"`
	Mode      string          `json:"mode"`
	Visible   bool            `json:"visible"`
	Buttons   gamepad.Buttons `json:"buttons"`
	Dpad      DpadState       `json:"dpad"`
	Sticks    SticksState     `json:"sticks"`
	Triggers  TriggersState   `json:"triggers"`
	Battery   uint8           `json:"battery"`
	Motion    Motion          `json:"motion"`
	Pointer   PointerState    `json:"pointer"`
	Keyboard  KeyboardState   `json:"keyboard"`
	HeldKeys  []string        `json:"heldKeys"`
	Raw       string          `json:"raw"`
}

type DeltaChanges struct {
	Connected *bool            `json:"connected,omitempty"`
	Mode      *string          `json:"mode,omitempty"`
	Visible   *bool            `json:"visible,omitempty"`
	Buttons   *gamepad.Buttons `json:"buttons,omitempty"`
	Dpad      *DpadState       `json:"dpad,omitempty"`
	Sticks    *SticksState     `json:"sticks,omitempty"`
	Triggers  *TriggersState   `json:"triggers,omitempty"`
	Battery   *uint8           `json:"battery,omitempty"`
	Motion    *Motion          `json:"motion,omitempty"`
	Pointer   *PointerState    `json:"pointer,omitempty"`
	Keyboard  *KeyboardState   `json:"keyboard,omitempty"`
	HeldKeys  *[]string        `json:"heldKeys,omitempty"`
}

func (d *DeltaChanges) IsEmpty() bool {
	return d.Connected == nil &&
		d.Mode == nil &&
		d.Visible == nil &&
		d.Buttons == nil &&
		d.Dpad == nil &&
		d.Sticks == nil &&
		d.Triggers == nil &&
		d.Battery == nil &&
		d.Motion == nil &&
		d.Pointer == nil &&
		d.Keyboard == nil &&
		d.HeldKeys == nil
}

const analogThreshold = 0.01

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < analogThreshold
}

func sticksEqual(a, b SticksState) bool {
	return floatEqual(a.Left.Position.X, b.Left.Position.X) &&
		floatEqual(a.Left.Position.Y, b.Left.Position.Y) &&
		a.Left.Pressed == b.Left.Pressed &&
		floatEqual(a.Right.Position.X, b.Right.Position.X) &&
		floatEqual(a.Right.Position.Y, b.Right.Position.Y) &&
		a.Right.Pressed == b.Right.Pressed
}

func keyboardEqual(a, b KeyboardState) bool {
	return a.Row == b.Row && a.Col == b.Col && a.Shift == b.Shift &&
		slices.EqualFunc(a.Layout, b.Layout, slices.Equal[[]string])
}

// ComputeDelta returns the fields of new_ that differ from old. Analog values
// within analogThreshold count as unchanged. Raw bytes are never diffed.
func ComputeDelta(old, new_ RenderState) *DeltaChanges {
	d := &DeltaChanges{}

	if old.Connected != new_.Connected {
		d.Connected = &new_.Connected
	}
	if old.Mode != new_.Mode {
		d.Mode = &new_.Mode
	}
	if old.Visible != new_.Visible {
		d.Visible = &new_.Visible
	}
	if old.Buttons != new_.Buttons {
		d.Buttons = &new_.Buttons
	}
	if old.Dpad != new_.Dpad {
		d.Dpad = &new_.Dpad
	}
	if !sticksEqual(old.Sticks, new_.Sticks) {
		d.Sticks = &new_.Sticks
	}
	if !floatEqual(old.Triggers.L2.Value, new_.Triggers.L2.Value) ||
		!floatEqual(old.Triggers.R2.Value, new_.Triggers.R2.Value) {
		d.Triggers = &new_.Triggers
	}
	if old.Battery != new_.Battery {
		d.Battery = &new_.Battery
	}
	if old.Motion != new_.Motion {
		d.Motion = &new_.Motion
	}
	if old.Pointer != new_.Pointer {
		d.Pointer = &new_.Pointer
	}
	if !keyboardEqual(old.Keyboard, new_.Keyboard) {
		d.Keyboard = &new_.Keyboard
	}
	if !slices.Equal(old.HeldKeys, new_.HeldKeys) {
		held := new_.HeldKeys
		if held == nil {
			held = []string{}
		}
		d.HeldKeys = &held
	}

	return d
}
