package keyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStartsTopLeft(t *testing.T) {
	k := New(DefaultLayout)
	row, col := k.Selection()
	assert.Equal(t, 0, row)
	assert.Equal(t, 0, col)
	assert.Equal(t, "Q", k.Selected())
	assert.Equal(t, 4, k.Rows())
}

func TestNewDropsEmptyRows(t *testing.T) {
	k := New([][]string{{}, {"A"}, nil, {"B", "C"}})
	assert.Equal(t, [][]string{{"A"}, {"B", "C"}}, k.Layout())

	k = New(nil)
	assert.Equal(t, "SPACE", k.Selected())
}

func TestNewCopiesLayout(t *testing.T) {
	layout := [][]string{{"A", "B"}}
	k := New(layout)
	layout[0][0] = "Z"
	assert.Equal(t, "A", k.Selected())
}

func TestMoveClampsAtEdges(t *testing.T) {
	k := New(DefaultLayout)
	assert.False(t, k.Move(-1, 0))
	assert.False(t, k.Move(0, -1))
	assert.Equal(t, "Q", k.Selected())

	assert.True(t, k.Move(1, 0))
	assert.Equal(t, "W", k.Selected())
}

func TestMoveIntoShorterRowClampsColumn(t *testing.T) {
	k := New(DefaultLayout)
	k.Select(2, 8)
	assert.Equal(t, ".", k.Selected())

	assert.True(t, k.Move(0, 1))
	row, col := k.Selection()
	assert.Equal(t, 3, row)
	assert.Equal(t, 1, col)
	assert.Equal(t, "BACKSPACE", k.Selected())

	assert.False(t, k.Move(0, 1))
	assert.True(t, k.Move(0, -1))
	assert.Equal(t, "X", k.Selected())
}

func TestSelectClamps(t *testing.T) {
	k := New(DefaultLayout)
	k.Select(99, 99)
	assert.Equal(t, "BACKSPACE", k.Selected())
	k.Select(-3, -3)
	assert.Equal(t, "Q", k.Selected())
}

func TestShift(t *testing.T) {
	k := New(DefaultLayout)
	assert.False(t, k.Shift())
	assert.True(t, k.ToggleShift())
	assert.True(t, k.Shift())
	k.ResetShift()
	assert.False(t, k.Shift())
}
