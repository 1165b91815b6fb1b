package input

import "fmt"

// Key identifies a synthetic keyboard key. Values are Linux input event
// codes so the uinput sink can pass them through unchanged.
type Key uint16

const (
	KeyEsc        Key = 1
	Key1          Key = 2
	Key2          Key = 3
	Key3          Key = 4
	Key4          Key = 5
	Key5          Key = 6
	Key6          Key = 7
	Key7          Key = 8
	Key8          Key = 9
	Key9          Key = 10
	Key0          Key = 11
	KeyMinus      Key = 12
	KeyEqual      Key = 13
	KeyBackspace  Key = 14
	KeyTab        Key = 15
	KeyQ          Key = 16
	KeyW          Key = 17
	KeyE          Key = 18
	KeyR          Key = 19
	KeyT          Key = 20
	KeyY          Key = 21
	KeyU          Key = 22
	KeyI          Key = 23
	KeyO          Key = 24
	KeyP          Key = 25
	KeyLeftBrace  Key = 26
	KeyRightBrace Key = 27
	KeyEnter      Key = 28
	KeyLeftCtrl   Key = 29
	KeyA          Key = 30
	KeyS          Key = 31
	KeyD          Key = 32
	KeyF          Key = 33
	KeyG          Key = 34
	KeyH          Key = 35
	KeyJ          Key = 36
	KeyK          Key = 37
	KeyL          Key = 38
	KeySemicolon  Key = 39
	KeyApostrophe Key = 40
	KeyGrave      Key = 41
	KeyLeftShift  Key = 42
	KeyBackslash  Key = 43
	KeyZ          Key = 44
	KeyX          Key = 45
	KeyC          Key = 46
	KeyV          Key = 47
	KeyB          Key = 48
	KeyN          Key = 49
	KeyM          Key = 50
	KeyComma      Key = 51
	KeyDot        Key = 52
	KeySlash      Key = 53
	KeyRightShift Key = 54
	KeyLeftAlt    Key = 56
	KeySpace      Key = 57
	KeyCapsLock   Key = 58
	KeyRightCtrl  Key = 97
	KeyRightAlt   Key = 100
	KeyUp         Key = 103
	KeyLeft       Key = 105
	KeyRight      Key = 106
	KeyDown       Key = 108
)

var keyNames = map[Key]string{
	KeyEsc: "ESC", KeyMinus: "-", KeyEqual: "=", KeyBackspace: "BACKSPACE",
	KeyTab: "TAB", KeyLeftBrace: "[", KeyRightBrace: "]", KeyEnter: "ENTER",
	KeyLeftCtrl: "LCTRL", KeySemicolon: ";", KeyApostrophe: "'", KeyGrave: "`",
	KeyLeftShift: "LSHIFT", KeyBackslash: "\\", KeyComma: ",", KeyDot: ".",
	KeySlash: "/", KeyRightShift: "RSHIFT", KeyLeftAlt: "LALT", KeySpace: "SPACE",
	KeyCapsLock: "CAPS", KeyRightCtrl: "RCTRL", KeyRightAlt: "RALT",
	KeyUp: "UP", KeyLeft: "LEFT", KeyRight: "RIGHT", KeyDown: "DOWN",
}

var letterKeys = [26]Key{
	KeyA, KeyB, KeyC, KeyD, KeyE, KeyF, KeyG, KeyH, KeyI, KeyJ, KeyK, KeyL, KeyM,
	KeyN, KeyO, KeyP, KeyQ, KeyR, KeyS, KeyT, KeyU, KeyV, KeyW, KeyX, KeyY, KeyZ,
}

var digitKeys = [10]Key{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9}

func init() {
	for i, k := range letterKeys {
		keyNames[k] = string(rune('A' + i))
	}
	for i, k := range digitKeys {
		keyNames[k] = string(rune('0' + i))
	}
}

// LetterKey returns the key for an ASCII letter of either case.
func LetterKey(c byte) (Key, bool) {
	switch {
	case c >= 'a' && c <= 'z':
		return letterKeys[c-'a'], true
	case c >= 'A' && c <= 'Z':
		return letterKeys[c-'A'], true
	}
	return 0, false
}

// DigitKey returns the key for an ASCII digit.
func DigitKey(c byte) (Key, bool) {
	if c >= '0' && c <= '9' {
		return digitKeys[c-'0'], true
	}
	return 0, false
}

func (k Key) String() string {
	if n, ok := keyNames[k]; ok {
		return n
	}
	return fmt.Sprintf("KEY(%d)", uint16(k))
}

// Button is a pointer button.
type Button uint8

const (
	ButtonLeft Button = iota
	ButtonRight
)

func (b Button) String() string {
	if b == ButtonLeft {
		return "left"
	}
	return "right"
}
