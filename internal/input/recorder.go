package input

import (
	"sync"

	"github.com/rs/zerolog"
)

// Recorder is a Sink that keeps every action instead of injecting it. It
// backs the dry-run mode and the tests.
type Recorder struct {
	mu      sync.Mutex
	actions []Action
	log     *zerolog.Logger
	closed  bool
}

// NewRecorder returns a Recorder. When log is non-nil every action is also
// logged at debug level.
func NewRecorder(log *zerolog.Logger) *Recorder {
	return &Recorder{log: log}
}

func (r *Recorder) add(a Action) error {
	r.mu.Lock()
	r.actions = append(r.actions, a)
	r.mu.Unlock()
	if r.log != nil {
		r.log.Debug().Stringer("action", a).Msg("synthetic input")
	}
	return nil
}

func (r *Recorder) KeyDown(k Key) error { return r.add(Action{Kind: ActionKeyDown, Key: k}) }
func (r *Recorder) KeyUp(k Key) error   { return r.add(Action{Kind: ActionKeyUp, Key: k}) }

func (r *Recorder) PointerButton(btn Button, down bool) error {
	if down {
		return r.add(Action{Kind: ActionButtonDown, Button: btn})
	}
	return r.add(Action{Kind: ActionButtonUp, Button: btn})
}

func (r *Recorder) MoveRelative(dx, dy int) error {
	return r.add(Action{Kind: ActionMove, DX: dx, DY: dy})
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
	return nil
}

// Actions returns a copy of everything recorded so far.
func (r *Recorder) Actions() []Action {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Action(nil), r.actions...)
}

// Count returns how many recorded actions match kind and key.
func (r *Recorder) Count(kind ActionKind, k Key) int {
	n := 0
	for _, a := range r.Actions() {
		if a.Kind == kind && a.Key == k {
			n++
		}
	}
	return n
}

// Closed reports whether Close was called.
func (r *Recorder) Closed() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closed
}
