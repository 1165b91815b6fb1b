package input

import (
	"fmt"
	"time"
)

// ActionKind is the primitive a sink has to perform.
type ActionKind uint8

const (
	ActionKeyDown ActionKind = iota
	ActionKeyUp
	ActionButtonDown
	ActionButtonUp
	ActionMove
)

// Action is one synthetic input command.
type Action struct {
	Kind   ActionKind
	Key    Key
	Button Button
	DX, DY int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionKeyDown:
		return "down " + a.Key.String()
	case ActionKeyUp:
		return "up " + a.Key.String()
	case ActionButtonDown:
		return "press " + a.Button.String()
	case ActionButtonUp:
		return "release " + a.Button.String()
	case ActionMove:
		return fmt.Sprintf("move %d,%d", a.DX, a.DY)
	}
	return "unknown"
}

// Batch collects the actions produced during one processing cycle. At is the
// cycle timestamp, used by anything that schedules against time.
type Batch struct {
	At      time.Time
	Actions []Action
}

func NewBatch(at time.Time) *Batch {
	return &Batch{At: at}
}

func (b *Batch) keyDown(k Key) {
	b.Actions = append(b.Actions, Action{Kind: ActionKeyDown, Key: k})
}

func (b *Batch) keyUp(k Key) {
	b.Actions = append(b.Actions, Action{Kind: ActionKeyUp, Key: k})
}

func (b *Batch) button(btn Button, down bool) {
	kind := ActionButtonUp
	if down {
		kind = ActionButtonDown
	}
	b.Actions = append(b.Actions, Action{Kind: kind, Button: btn})
}

// Move appends a relative pointer motion.
func (b *Batch) Move(dx, dy int) {
	b.Actions = append(b.Actions, Action{Kind: ActionMove, DX: dx, DY: dy})
}

// Reset empties the batch and stamps it with a new time.
func (b *Batch) Reset(at time.Time) {
	b.At = at
	b.Actions = b.Actions[:0]
}
