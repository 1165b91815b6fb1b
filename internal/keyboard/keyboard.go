// Package keyboard models the on-screen virtual keyboard: a grid of labels
// with rows of unequal length, a selection cursor and a sticky shift flag.
package keyboard

// DefaultLayout is a compact QWERTY layout.
var DefaultLayout = [][]string{
	{"Q", "W", "E", "R", "T", "Y", "U", "I", "O", "P"},
	{"A", "S", "D", "F", "G", "H", "J", "K", "L", "ENTER"},
	{"Z", "X", "C", "V", "B", "N", "M", ",", ".", "/"},
	{"SPACE", "BACKSPACE"},
}

// Keyboard is the virtual keyboard state. The zero value is not usable; use New.
type Keyboard struct {
	layout [][]string
	row    int
	col    int
	shift  bool
}

// New returns a keyboard over layout with the selection at the top-left key.
// Empty rows are dropped.
func New(layout [][]string) *Keyboard {
	rows := make([][]string, 0, len(layout))
	for _, r := range layout {
		if len(r) > 0 {
			rows = append(rows, append([]string(nil), r...))
		}
	}
	if len(rows) == 0 {
		rows = append(rows, []string{"SPACE"})
	}
	return &Keyboard{layout: rows}
}

// Layout returns the key grid. Callers must not modify it.
func (k *Keyboard) Layout() [][]string { return k.layout }

// Rows returns the number of rows.
func (k *Keyboard) Rows() int { return len(k.layout) }

// Selection returns the selected row and column.
func (k *Keyboard) Selection() (row, col int) { return k.row, k.col }

// Selected returns the label under the cursor.
func (k *Keyboard) Selected() string { return k.layout[k.row][k.col] }

// Shift reports whether sticky shift is on.
func (k *Keyboard) Shift() bool { return k.shift }

// ToggleShift flips sticky shift and returns the new value.
func (k *Keyboard) ToggleShift() bool {
	k.shift = !k.shift
	return k.shift
}

// ResetShift turns sticky shift off.
func (k *Keyboard) ResetShift() { k.shift = false }

// Move shifts the selection by dx columns and dy rows, clamping to the grid.
// Changing rows can clamp the column since rows differ in length. It reports
// whether the selection changed.
func (k *Keyboard) Move(dx, dy int) bool {
	row := clamp(k.row+dy, 0, len(k.layout)-1)
	col := clamp(k.col+dx, 0, len(k.layout[row])-1)
	moved := row != k.row || col != k.col
	k.row, k.col = row, col
	return moved
}

// Select places the cursor at row/col, clamped to the grid.
func (k *Keyboard) Select(row, col int) {
	k.row = clamp(row, 0, len(k.layout)-1)
	k.col = clamp(col, 0, len(k.layout[k.row])-1)
}

// Clamp forces the current selection back into the grid.
func (k *Keyboard) Clamp() {
	k.Select(k.row, k.col)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
