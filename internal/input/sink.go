package input

import "github.com/rs/zerolog"

// Sink performs synthetic input. Calls are fire-and-forget; an error only
// gets logged.
type Sink interface {
	KeyDown(k Key) error
	KeyUp(k Key) error
	PointerButton(btn Button, down bool) error
	MoveRelative(dx, dy int) error
	Close() error
}

// Dispatch sends every action in order. A failing action is logged and the
// rest are still attempted.
func Dispatch(s Sink, actions []Action, log zerolog.Logger) {
	for _, a := range actions {
		var err error
		switch a.Kind {
		case ActionKeyDown:
			err = s.KeyDown(a.Key)
		case ActionKeyUp:
			err = s.KeyUp(a.Key)
		case ActionButtonDown:
			err = s.PointerButton(a.Button, true)
		case ActionButtonUp:
			err = s.PointerButton(a.Button, false)
		case ActionMove:
			err = s.MoveRelative(a.DX, a.DY)
		}
		if err != nil {
			log.Warn().Err(err).Stringer("action", a).Msg("sink rejected action")
		}
	}
}
