//go:build linux

package input

import (
	"errors"
	"fmt"

	"github.com/bendahl/uinput"
)

const uinputPath = "/dev/uinput"

// UInputSink injects events through virtual devices created on /dev/uinput.
type UInputSink struct {
	kbd   uinput.Keyboard
	mouse uinput.Mouse
}

// NewSink creates a virtual keyboard and a virtual mouse named after name.
func NewSink(name string) (Sink, error) {
	kbd, err := uinput.CreateKeyboard(uinputPath, []byte(name+" keyboard"))
	if err != nil {
		return nil, fmt.Errorf("create virtual keyboard on %s (is the uinput module loaded and writable?): %w", uinputPath, err)
	}
	mouse, err := uinput.CreateMouse(uinputPath, []byte(name+" mouse"))
	if err != nil {
		_ = kbd.Close()
		return nil, fmt.Errorf("create virtual mouse on %s: %w", uinputPath, err)
	}
	return &UInputSink{kbd: kbd, mouse: mouse}, nil
}

func (s *UInputSink) KeyDown(k Key) error { return s.kbd.KeyDown(int(k)) }
func (s *UInputSink) KeyUp(k Key) error   { return s.kbd.KeyUp(int(k)) }

func (s *UInputSink) PointerButton(btn Button, down bool) error {
	switch {
	case btn == ButtonLeft && down:
		return s.mouse.LeftPress()
	case btn == ButtonLeft:
		return s.mouse.LeftRelease()
	case down:
		return s.mouse.RightPress()
	default:
		return s.mouse.RightRelease()
	}
}

func (s *UInputSink) MoveRelative(dx, dy int) error {
	var errs []error
	switch {
	case dx > 0:
		errs = append(errs, s.mouse.MoveRight(int32(dx)))
	case dx < 0:
		errs = append(errs, s.mouse.MoveLeft(int32(-dx)))
	}
	switch {
	case dy > 0:
		errs = append(errs, s.mouse.MoveDown(int32(dy)))
	case dy < 0:
		errs = append(errs, s.mouse.MoveUp(int32(-dy)))
	}
	return errors.Join(errs...)
}

func (s *UInputSink) Close() error {
	return errors.Join(s.kbd.Close(), s.mouse.Close())
}
