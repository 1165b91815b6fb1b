package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
)

func keyboardEngine(t *testing.T) *Engine {
	t.Helper()
	e := newEngine()
	require.True(t, e.SetMode(input.NewBatch(t0), ModeKeyboard))
	return e
}

func TestConfirmTypesOncePerPress(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.Buttons.Cross = true

	var all []input.Action
	for i := 0; i < 3; i++ {
		actions, _ := step(e, i*16, r)
		all = append(all, actions...)
	}
	assert.Equal(t, []input.Action{down(input.KeyQ), up(input.KeyQ)}, all)

	step(e, 48, idle())
	actions, _ := step(e, 64, r)
	assert.Equal(t, []input.Action{down(input.KeyQ), up(input.KeyQ)}, actions)
}

func TestKeyboardModeIgnoresVisualizerMappings(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.DPad = gamepad.DPadUp
	r.RightTrigger = 255
	r.Buttons.Circle = true

	actions, _ := step(e, 0, r)
	assert.Equal(t, []input.Action{down(input.KeyBackspace), up(input.KeyBackspace)}, actions)
	assert.False(t, e.Tracker().ButtonHeld(input.ButtonLeft))
}

func TestTriangleTypesSpace(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.Buttons.Triangle = true
	actions, _ := step(e, 0, r)
	assert.Equal(t, []input.Action{down(input.KeySpace), up(input.KeySpace)}, actions)
}

func TestSelectionMoveRateLimited(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.Left.X = 255

	_, ch := step(e, 0, r)
	assert.True(t, ch.SelectionMoved)
	assert.Equal(t, "W", e.Keyboard().Selected())

	_, ch = step(e, 100, r)
	assert.False(t, ch.SelectionMoved)
	assert.Equal(t, "W", e.Keyboard().Selected())

	_, ch = step(e, 150, r)
	assert.True(t, ch.SelectionMoved)
	assert.Equal(t, "E", e.Keyboard().Selected())
}

func TestSelectionClampedAtEdge(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.Left.X = 0

	actions, ch := step(e, 0, r)
	assert.False(t, ch.SelectionMoved)
	assert.Empty(t, actions)
	row, col := e.Keyboard().Selection()
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})
}

func TestSelectionVerticalWinsTies(t *testing.T) {
	e := keyboardEngine(t)
	e.Keyboard().Select(1, 0)
	r := idle()
	r.Left = gamepad.Stick{X: 255, Y: 0}

	_, ch := step(e, 0, r)
	assert.True(t, ch.SelectionMoved)
	row, col := e.Keyboard().Selection()
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})
}

func TestSelectionStickInsideDeadzone(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.Left.X = 128 + 40

	_, ch := step(e, 0, r)
	assert.False(t, ch.SelectionMoved)
	assert.Equal(t, "Q", e.Keyboard().Selected())
}

func TestStickyShift(t *testing.T) {
	e := keyboardEngine(t)
	shift := idle()
	shift.Buttons.Square = true
	cross := idle()
	cross.Buttons.Cross = true

	actions, _ := step(e, 0, shift)
	assert.Equal(t, []input.Action{down(input.KeyLeftShift)}, actions)
	assert.True(t, e.Keyboard().Shift())
	step(e, 16, idle())

	actions, _ = step(e, 32, cross)
	assert.Equal(t, []input.Action{down(input.KeyQ), up(input.KeyQ)}, actions)
	assert.True(t, e.Tracker().Held(input.KeyLeftShift), "shift stays held after typing")
	step(e, 48, idle())

	actions, _ = step(e, 64, shift)
	assert.Equal(t, []input.Action{up(input.KeyLeftShift)}, actions)
	assert.False(t, e.Keyboard().Shift())
}

func TestReleaseAllDropsStickyShift(t *testing.T) {
	e := keyboardEngine(t)
	r := idle()
	r.Buttons.Square = true
	step(e, 0, r)
	require.True(t, e.Keyboard().Shift())

	b := input.NewBatch(t0)
	e.ReleaseAll(b)
	assert.Equal(t, []input.Action{up(input.KeyLeftShift)}, b.Actions)
	assert.False(t, e.Keyboard().Shift())
}

func TestEnteringKeyboardModeClampsSelection(t *testing.T) {
	e := newEngine()
	e.Keyboard().Select(3, 1)
	require.True(t, e.SetMode(input.NewBatch(t0), ModeKeyboard))
	assert.Equal(t, "BACKSPACE", e.Keyboard().Selected())
}
