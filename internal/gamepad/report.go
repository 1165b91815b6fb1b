package gamepad

// ReportSize is the length of a full controller input report.
const ReportSize = 58

// Byte offsets inside a report.
const (
	offReportID     = 0
	offLeftX        = 1
	offLeftY        = 2
	offRightX       = 3
	offRightY       = 4
	offButtons1     = 5
	offButtons2     = 6
	offButtons3     = 7
	offLeftTrigger  = 8
	offRightTrigger = 9
	offBattery      = 29
)

// buttons1
const (
	maskDpad     uint8 = 0x0F
	maskSquare   uint8 = 0x10
	maskCross    uint8 = 0x20
	maskCircle   uint8 = 0x40
	maskTriangle uint8 = 0x80
)

// buttons2
const (
	maskL1      uint8 = 0x01
	maskR1      uint8 = 0x02
	maskShare   uint8 = 0x10
	maskOptions uint8 = 0x20
	maskL3      uint8 = 0x40
	maskR3      uint8 = 0x80
)

// buttons3
const (
	maskPS       uint8 = 0x01
	maskTouchpad uint8 = 0x02
)

// DPad is the hat direction, 0 = up stepping clockwise by 45 degrees.
// Values above 7 mean neutral.
type DPad uint8

const (
	DPadUp DPad = iota
	DPadUpRight
	DPadRight
	DPadDownRight
	DPadDown
	DPadDownLeft
	DPadLeft
	DPadUpLeft
	DPadNeutral DPad = 8
)

var dpadLabels = [...]string{"Up", "Up-Right", "Right", "Down-Right", "Down", "Down-Left", "Left", "Up-Left"}

func (d DPad) String() string {
	if int(d) < len(dpadLabels) {
		return dpadLabels[d]
	}
	return "Neutral"
}

// Buttons holds one flag per physical button.
type Buttons struct {
	Square   bool `json:"square"`
	Cross    bool `json:"cross"`
	Circle   bool `json:"circle"`
	Triangle bool `json:"triangle"`
	L1       bool `json:"l1"`
	R1       bool `json:"r1"`
	L3       bool `json:"l3"`
	R3       bool `json:"r3"`
	Share    bool `json:"share"`
	Options  bool `json:"options"`
	PS       bool `json:"ps"`
	Touchpad bool `json:"touchpad"`
}

// Stick is a raw two-axis stick position.
type Stick struct {
	X uint8
	Y uint8
}

// Report is a decoded controller input report.
type Report struct {
	ID           uint8
	Left         Stick
	Right        Stick
	LeftTrigger  uint8
	RightTrigger uint8
	DPad         DPad
	Buttons      Buttons
	Battery      uint8
	// Raw keeps every byte, including the ones never interpreted.
	Raw [ReportSize]byte
}

// Decode extracts a Report from buf. It returns false when buf is shorter
// than ReportSize; extra trailing bytes are ignored.
func Decode(buf []byte) (Report, bool) {
	var r Report
	if len(buf) < ReportSize {
		return r, false
	}
	copy(r.Raw[:], buf[:ReportSize])

	r.ID = buf[offReportID]
	r.Left = Stick{X: buf[offLeftX], Y: buf[offLeftY]}
	r.Right = Stick{X: buf[offRightX], Y: buf[offRightY]}
	r.LeftTrigger = buf[offLeftTrigger]
	r.RightTrigger = buf[offRightTrigger]
	r.Battery = buf[offBattery]

	b1, b2, b3 := buf[offButtons1], buf[offButtons2], buf[offButtons3]
	r.DPad = DPad(b1 & maskDpad)
	if r.DPad > DPadUpLeft {
		r.DPad = DPadNeutral
	}
	r.Buttons = Buttons{
		Square:   b1&maskSquare != 0,
		Cross:    b1&maskCross != 0,
		Circle:   b1&maskCircle != 0,
		Triangle: b1&maskTriangle != 0,
		L1:       b2&maskL1 != 0,
		R1:       b2&maskR1 != 0,
		Share:    b2&maskShare != 0,
		Options:  b2&maskOptions != 0,
		L3:       b2&maskL3 != 0,
		R3:       b2&maskR3 != 0,
		PS:       b3&maskPS != 0,
		Touchpad: b3&maskTouchpad != 0,
	}
	return r, true
}
