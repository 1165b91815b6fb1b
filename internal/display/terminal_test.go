package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/soar/padmapper/internal/gamepad"
)

func connectedState() RenderState {
	return RenderState{
		Connected: true,
		Mode:      "visualizer",
		Visible:   true,
		Buttons:   gamepad.Buttons{Cross: true, Options: true},
		Dpad:      DpadState{Directions: gamepad.Directions{Up: true, Right: true}, Label: "Up-Right"},
		Sticks: SticksState{
			Left:  StickState{Position: Vector{X: 1, Y: 1}, RawX: 255, RawY: 0},
			Right: StickState{RawX: 128, RawY: 128},
		},
		Triggers: TriggersState{R2: TriggerState{Value: 1, Raw: 255}},
		Battery:  9,
		Motion:   Motion{DX: 3, DY: -1},
		Pointer:  PointerState{Left: true},
		HeldKeys: []string{"W", "D"},
		Raw:      strings.TrimSpace(strings.Repeat("ab ", 58)),
	}
}

func TestFrameWaiting(t *testing.T) {
	f := Frame(RenderState{Mode: "visualizer"}, 0)
	assert.Contains(t, f, "Mode: Visualizer")
	assert.Contains(t, f, "Waiting for controller data...")
	assert.NotContains(t, f, "Raw Data")
}

func TestFrameVisualizer(t *testing.T) {
	f := Frame(connectedState(), 0)

	assert.Contains(t, f, "Controller -> Mouse/Keyboard Mapper")
	assert.Contains(t, f, "Mode: Visualizer")
	assert.Contains(t, f, "D-Pad: Up-Right")
	assert.Contains(t, f, "[CRO]")
	assert.Contains(t, f, "[OPTIONS]")
	assert.Contains(t, f, "R2: [##########] 255")
	assert.Contains(t, f, "L2: [..........]   0")
	assert.Contains(t, f, "Mouse L down: YES  Mouse R down: NO")
	assert.Contains(t, f, "Last mouse move: X=3 Y=-1")
	assert.Contains(t, f, "Held: W D")
	assert.Contains(t, f, "Battery:   9")
	assert.Contains(t, f, "Raw Data: "+strings.Repeat("ab ", 24)+"\n")
	assert.Contains(t, f, "X: 255 Y:   0")
}

func TestFrameStickMarker(t *testing.T) {
	lines := stickLines("Left", StickState{Position: Vector{X: 1, Y: 1}})
	assert.Equal(t, "Left Stick:", lines[0])
	assert.Equal(t, "..........@", lines[1])
	assert.Equal(t, ".....+.....", lines[3])

	lines = stickLines("Right", StickState{})
	assert.Equal(t, ".....@.....", lines[3])
}

func TestFrameKeyboard(t *testing.T) {
	s := connectedState()
	s.Mode = "keyboard"
	s.Keyboard = KeyboardState{
		Layout: [][]string{{"Q", "W"}, {"SPACE"}},
		Row:    0,
		Col:    1,
		Shift:  true,
	}
	f := Frame(s, 0)

	assert.Contains(t, f, "Mode: Virtual Keyboard")
	assert.Contains(t, f, "[W]")
	assert.Contains(t, f, " Q ")
	assert.Contains(t, f, "Shift (Square): ON")
	assert.NotContains(t, f, "Mouse L down")
}

func TestFrameCropsToWidth(t *testing.T) {
	for _, line := range strings.Split(Frame(connectedState(), 20), "\n") {
		assert.LessOrEqual(t, len(line), 20)
	}
}

func TestTerminalDrawsOnlyChanges(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, -1)

	term.Render(connectedState())
	first := buf.Len()
	assert.Positive(t, first)
	assert.True(t, strings.HasPrefix(buf.String(), clearScreen))
	assert.NotContains(t, strings.ReplaceAll(buf.String(), "\r\n", ""), "\n")

	term.Render(connectedState())
	assert.Equal(t, first, buf.Len())
}

func TestTerminalHidden(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf, -1)

	term.SetVisible(false)
	assert.Contains(t, buf.String(), "Display hidden")
	n := buf.Len()

	term.Render(connectedState())
	assert.Equal(t, n, buf.Len(), "hidden terminal does not draw")

	term.SetVisible(true)
	term.Render(connectedState())
	assert.Contains(t, buf.String()[n:], "Mode: Visualizer")
}
