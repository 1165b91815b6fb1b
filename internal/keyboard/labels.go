package keyboard

import "github.com/soar/padmapper/internal/input"

var namedKeys = map[string]input.Key{
	"SPACE":     input.KeySpace,
	"ENTER":     input.KeyEnter,
	"BACKSPACE": input.KeyBackspace,
	"TAB":       input.KeyTab,
	"CAPS":      input.KeyCapsLock,
	"LSHIFT":    input.KeyLeftShift,
	"RSHIFT":    input.KeyLeftShift,
	"LCTRL":     input.KeyLeftCtrl,
	"RCTRL":     input.KeyLeftCtrl,
	"LALT":      input.KeyLeftAlt,
	"RALT":      input.KeyLeftAlt,
	",":         input.KeyComma,
	".":         input.KeyDot,
	"/":         input.KeySlash,
	";":         input.KeySemicolon,
	"'":         input.KeyApostrophe,
	"[":         input.KeyLeftBrace,
	"]":         input.KeyRightBrace,
	"\\":        input.KeyBackslash,
	"-":         input.KeyMinus,
	"=":         input.KeyEqual,
}

// Resolve maps a key label to the key it types. Single letters match either
// case. Unknown labels return false.
func Resolve(label string) (input.Key, bool) {
	if len(label) == 1 {
		if k, ok := input.LetterKey(label[0]); ok {
			return k, true
		}
		if k, ok := input.DigitKey(label[0]); ok {
			return k, true
		}
	}
	k, ok := namedKeys[label]
	return k, ok
}
