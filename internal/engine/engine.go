// Package engine turns decoded controller reports into synthetic keyboard and
// mouse actions.
//
// The engine has two modes. In visualizer mode the left stick drives WASD,
// the D-pad drives the arrow keys, the triggers hold the pointer buttons and
// the face buttons hold fixed keys. In keyboard mode the left stick walks an
// on-screen keyboard and the face buttons type. The right stick moves the
// pointer in both modes.
//
// An Engine is not safe for concurrent use; the Runner owns it.
package engine

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
	"github.com/soar/padmapper/internal/keyboard"
)

// Mode is the active mapping mode.
type Mode uint8

const (
	ModeVisualizer Mode = iota
	ModeKeyboard
)

func (m Mode) String() string {
	if m == ModeKeyboard {
		return "keyboard"
	}
	return "visualizer"
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, bool) {
	switch s {
	case "visualizer":
		return ModeVisualizer, true
	case "keyboard":
		return ModeKeyboard, true
	}
	return ModeVisualizer, false
}

// Change records what a processing step changed besides the emitted actions.
type Change struct {
	ModeChanged       bool
	SelectionMoved    bool
	VisibilityChanged bool
	Mode              Mode
	Visible           bool
}

// edges are the previous levels of buttons acting on a rising edge.
type edges struct {
	Square, Cross, Circle, Triangle bool
	Options, PS                     bool
}

func edgesOf(b gamepad.Buttons) edges {
	return edges{
		Square:   b.Square,
		Cross:    b.Cross,
		Circle:   b.Circle,
		Triangle: b.Triangle,
		Options:  b.Options,
		PS:       b.PS,
	}
}

type Engine struct {
	settings Settings
	log      zerolog.Logger

	tracker  *input.Tracker
	repeater *input.Repeater
	kbd      *keyboard.Keyboard

	mode    Mode
	visible bool
	prev    edges

	lastMove  time.Time
	motion    [2]int
	report    gamepad.Report
	hasReport bool
}

func New(s Settings, log zerolog.Logger) *Engine {
	e := &Engine{
		settings: s,
		log:      log,
		tracker:  input.NewTracker(),
		repeater: input.NewRepeater(input.RepeatableKeys, s.RepeatDelay, s.RepeatInterval),
		kbd:      keyboard.New(s.Layout),
		visible:  true,
		report: gamepad.Report{
			Left:  gamepad.Stick{X: 128, Y: 128},
			Right: gamepad.Stick{X: 128, Y: 128},
			DPad:  gamepad.DPadNeutral,
		},
	}
	e.tracker.Subscribe(e.repeater)
	return e
}

func (e *Engine) Mode() Mode                   { return e.mode }
func (e *Engine) Visible() bool                { return e.visible }
func (e *Engine) Tracker() *input.Tracker      { return e.tracker }
func (e *Engine) Keyboard() *keyboard.Keyboard { return e.kbd }

// Releases counts how often every input was released.
func (e *Engine) Releases() int { return e.tracker.Releases() }

// Process maps one decoded report. Edge-tracked buttons are compared with the
// previous report first and recorded afterwards, whatever the mode.
func (e *Engine) Process(b *input.Batch, r gamepad.Report) Change {
	cur := edgesOf(r.Buttons)
	var ch Change

	if cur.Options && !e.prev.Options {
		e.ToggleMode(b)
		ch.ModeChanged = true
	}
	if cur.PS && !e.prev.PS {
		e.ToggleVisibility()
		ch.VisibilityChanged = true
	}

	switch e.mode {
	case ModeKeyboard:
		ch.SelectionMoved = e.mapKeyboard(b, r, cur)
	default:
		e.mapVisualizer(b, r)
	}
	e.mapPointer(b, r)

	e.prev = cur
	e.report = r
	e.hasReport = true

	ch.Mode = e.mode
	ch.Visible = e.visible
	return ch
}

// Tick runs the repeat scheduler.
func (e *Engine) Tick(b *input.Batch) {
	e.repeater.Tick(b, e.tracker)
}

// ReleaseAll lifts every key and button the engine holds and drops sticky
// shift along with the shift key.
func (e *Engine) ReleaseAll(b *input.Batch) {
	e.tracker.ReleaseAll(b)
	e.kbd.ResetShift()
}

// SetMode switches to m. Inputs are released before the switch; entering
// keyboard mode clamps the selection into the grid. Selecting the active
// mode does nothing.
func (e *Engine) SetMode(b *input.Batch, m Mode) bool {
	if e.mode == m {
		return false
	}
	e.ReleaseAll(b)
	e.mode = m
	if m == ModeKeyboard {
		e.kbd.Clamp()
	}
	e.log.Info().Stringer("mode", m).Msg("mode changed")
	return true
}

// ToggleMode flips between the two modes.
func (e *Engine) ToggleMode(b *input.Batch) {
	if e.mode == ModeVisualizer {
		e.SetMode(b, ModeKeyboard)
	} else {
		e.SetMode(b, ModeVisualizer)
	}
}

// ToggleVisibility flips the display visibility flag. It never touches input.
func (e *Engine) ToggleVisibility() bool {
	e.visible = !e.visible
	return e.visible
}
