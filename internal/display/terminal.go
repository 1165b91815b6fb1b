package display

import (
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"golang.org/x/term"
)

const (
	clearScreen = "\033[H\033[2J"
	hexDumpLen  = 24
	keyWidth    = 7
)

const header = `=== Controller -> Mouse/Keyboard Mapper ===
Mappings (Visualizer mode):
  Left stick -> WASD | D-Pad -> Arrow keys | Right stick -> Mouse
  R2 -> Left mouse button, L2 -> Right mouse button
Controls:
  ESC exit | TAB toggle mode | v/k force mode | OPTIONS toggles | PS hides display
  Keyboard mode: left stick moves, Cross press, Square shift, Circle backspace, Triangle space
`

// Terminal redraws the whole frame on an ANSI terminal whenever it changes.
type Terminal struct {
	mu      sync.Mutex
	w       io.Writer
	fd      int
	visible bool
	last    string
}

// NewTerminal draws to w. fd is used to query the terminal width; pass -1
// when w is not a terminal.
func NewTerminal(w io.Writer, fd int) *Terminal {
	return &Terminal{w: w, fd: fd, visible: true}
}

func (t *Terminal) Render(s RenderState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.visible {
		return
	}
	t.draw(Frame(s, t.width()))
}

func (t *Terminal) SetVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.visible == visible {
		return
	}
	t.visible = visible
	if !visible {
		t.draw("Display hidden. Press PS to show it again.\n")
	}
}

func (t *Terminal) draw(frame string) {
	if frame == t.last {
		return
	}
	t.last = frame
	// stdin may be in raw mode, which disables the CR on output
	fmt.Fprint(t.w, clearScreen+strings.ReplaceAll(frame, "\n", "\r\n"))
}

func (t *Terminal) width() int {
	if t.fd < 0 {
		return 0
	}
	w, _, err := term.GetSize(t.fd)
	if err != nil {
		return 0
	}
	return w
}

// Frame formats s as text. Lines are cut to width when width > 0.
func Frame(s RenderState, width int) string {
	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n")
	if s.Mode == "keyboard" {
		b.WriteString("Mode: Virtual Keyboard\n\n")
	} else {
		b.WriteString("Mode: Visualizer\n\n")
	}

	if !s.Connected {
		b.WriteString("Waiting for controller data...\n")
		return crop(b.String(), width)
	}

	if s.Mode == "keyboard" {
		writeKeyboard(&b, s.Keyboard)
		shift := "OFF"
		if s.Keyboard.Shift {
			shift = "ON"
		}
		fmt.Fprintf(&b, "\nShift (Square): %s\n", shift)
	} else {
		left := stickLines("Left", s.Sticks.Left)
		right := stickLines("Right", s.Sticks.Right)
		for i := range left {
			fmt.Fprintf(&b, "%-20s%s\n", left[i], right[i])
		}
		b.WriteString("\n")
		b.WriteString(triggerLine("L2", s.Triggers.L2.Raw) + "\n")
		b.WriteString(triggerLine("R2", s.Triggers.R2.Raw) + "\n")
		fmt.Fprintf(&b, "Battery: %3d\n\n", s.Battery)
		writeButtons(&b, s)
		fmt.Fprintf(&b, "Mouse L down: %s  Mouse R down: %s\n", yesNo(s.Pointer.Left), yesNo(s.Pointer.Right))
	}
	fmt.Fprintf(&b, "Last mouse move: X=%d Y=%d\n", s.Motion.DX, s.Motion.DY)
	if len(s.HeldKeys) > 0 {
		fmt.Fprintf(&b, "Held: %s\n", strings.Join(s.HeldKeys, " "))
	}
	raw := s.Raw
	if len(raw) > hexDumpLen*3 {
		raw = raw[:hexDumpLen*3]
	}
	fmt.Fprintf(&b, "Raw Data: %s\n", raw)
	return crop(b.String(), width)
}

func stickLines(name string, st StickState) []string {
	const halfW, halfH = 5, 2
	lines := []string{name + " Stick:"}
	// rows grow downward while Position.Y is positive for up
	posX := int(math.Round(st.Position.X * halfW))
	posY := int(math.Round(-st.Position.Y * halfH))
	for row := -halfH; row <= halfH; row++ {
		var line strings.Builder
		for col := -halfW; col <= halfW; col++ {
			switch {
			case col == posX && row == posY:
				line.WriteByte('@')
			case col == 0 && row == 0:
				line.WriteByte('+')
			default:
				line.WriteByte('.')
			}
		}
		lines = append(lines, line.String())
	}
	return append(lines, fmt.Sprintf("X: %3d Y: %3d", st.RawX, st.RawY))
}

func triggerLine(name string, v uint8) string {
	bars := int(v) * 10 / 255
	return fmt.Sprintf("%s: [%s%s] %3d", name, strings.Repeat("#", bars), strings.Repeat(".", 10-bars), v)
}

func mark(on bool, label string) string {
	if on {
		return "[" + label + "] "
	}
	return " " + label + "  "
}

func writeButtons(b *strings.Builder, s RenderState) {
	bt := s.Buttons
	b.WriteString("Buttons: " + mark(bt.Square, "SQR") + mark(bt.Cross, "CRO") + mark(bt.Circle, "CIR") + mark(bt.Triangle, "TRI") + "\n")
	b.WriteString("D-Pad: " + s.Dpad.Label + "\n")
	b.WriteString(mark(bt.L1, "L1") + mark(bt.R1, "R1") + mark(bt.L3, "L3") + mark(bt.R3, "R3") + " | " +
		mark(bt.PS, "PS") + mark(bt.Touchpad, "PAD") + mark(bt.Share, "SHARE") + mark(bt.Options, "OPTIONS") + "\n")
}

func writeKeyboard(b *strings.Builder, k KeyboardState) {
	for r, row := range k.Layout {
		for c, label := range row {
			cell := " " + label + " "
			if r == k.Row && c == k.Col {
				cell = "[" + label + "]"
			}
			fmt.Fprintf(b, "%-*s ", keyWidth, cell)
		}
		b.WriteString("\n")
	}
}

func yesNo(v bool) string {
	if v {
		return "YES"
	}
	return "NO"
}

func crop(frame string, width int) string {
	if width <= 0 {
		return frame
	}
	lines := strings.Split(frame, "\n")
	for i, l := range lines {
		if len(l) > width {
			lines[i] = l[:width]
		}
	}
	return strings.Join(lines, "\n")
}
