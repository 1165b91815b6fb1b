package gamepad

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// neutralReport returns a centred report with no button held.
func neutralReport() []byte {
	buf := make([]byte, ReportSize)
	buf[offReportID] = 0x01
	buf[offLeftX], buf[offLeftY] = 128, 128
	buf[offRightX], buf[offRightY] = 128, 128
	buf[offButtons1] = byte(DPadNeutral)
	return buf
}

func TestDecode(t *testing.T) {
	buf := neutralReport()
	buf[offLeftX] = 255
	buf[offLeftY] = 0
	buf[offRightX] = 10
	buf[offRightY] = 200
	buf[offButtons1] = 0x20 | 0x80 | byte(DPadRight)
	buf[offButtons2] = 0x01 | 0x20 | 0x80
	buf[offButtons3] = 0x01 | 0x02
	buf[offLeftTrigger] = 12
	buf[offRightTrigger] = 240
	buf[offBattery] = 0x0b

	r, ok := Decode(buf)
	require.True(t, ok)

	assert.Equal(t, uint8(0x01), r.ID)
	assert.Equal(t, Stick{X: 255, Y: 0}, r.Left)
	assert.Equal(t, Stick{X: 10, Y: 200}, r.Right)
	assert.Equal(t, DPadRight, r.DPad)
	assert.Equal(t, Buttons{
		Cross:    true,
		Triangle: true,
		L1:       true,
		Options:  true,
		R3:       true,
		PS:       true,
		Touchpad: true,
	}, r.Buttons)
	assert.Equal(t, uint8(12), r.LeftTrigger)
	assert.Equal(t, uint8(240), r.RightTrigger)
	assert.Equal(t, uint8(0x0b), r.Battery)
	assert.Equal(t, buf, r.Raw[:])
}

func TestDecodeShortBuffer(t *testing.T) {
	_, ok := Decode(make([]byte, ReportSize-1))
	assert.False(t, ok)

	_, ok = Decode(nil)
	assert.False(t, ok)
}

func TestDecodeIgnoresTrailingBytes(t *testing.T) {
	buf := append(neutralReport(), make([]byte, 6)...)
	r, ok := Decode(buf)
	require.True(t, ok)
	assert.Equal(t, DPadNeutral, r.DPad)
}

func TestDecodeDPadOutOfRange(t *testing.T) {
	for _, v := range []byte{8, 9, 15} {
		buf := neutralReport()
		buf[offButtons1] = v
		r, ok := Decode(buf)
		require.True(t, ok)
		assert.Equal(t, DPadNeutral, r.DPad, "value %d", v)
		assert.Equal(t, Directions{}, r.DPad.Directions())
	}
}

func TestDPadDirections(t *testing.T) {
	tests := []struct {
		dpad  DPad
		want  Directions
		label string
	}{
		{DPadUp, Directions{Up: true}, "Up"},
		{DPadUpRight, Directions{Up: true, Right: true}, "Up-Right"},
		{DPadRight, Directions{Right: true}, "Right"},
		{DPadDownRight, Directions{Right: true, Down: true}, "Down-Right"},
		{DPadDown, Directions{Down: true}, "Down"},
		{DPadDownLeft, Directions{Down: true, Left: true}, "Down-Left"},
		{DPadLeft, Directions{Left: true}, "Left"},
		{DPadUpLeft, Directions{Up: true, Left: true}, "Up-Left"},
		{DPadNeutral, Directions{}, "Neutral"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.dpad.Directions(), tt.label)
		assert.Equal(t, tt.label, tt.dpad.String())
	}
}
