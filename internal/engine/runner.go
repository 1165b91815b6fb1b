package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/soar/padmapper/internal/display"
	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/input"
)

// Command is a request from a control surface.
type Command uint8

const (
	CommandExit Command = iota + 1
	CommandToggleMode
	CommandSetVisualizer
	CommandSetKeyboard
	CommandToggleVisibility
)

func (c Command) String() string {
	switch c {
	case CommandExit:
		return "exit"
	case CommandToggleMode:
		return "toggle_mode"
	case CommandSetVisualizer:
		return "set_visualizer"
	case CommandSetKeyboard:
		return "set_keyboard"
	case CommandToggleVisibility:
		return "toggle_visibility"
	}
	return "unknown"
}

// DefaultInterval is the processing cadence, roughly one frame at 60 Hz.
const DefaultInterval = 16 * time.Millisecond

// Runner drives the engine at a fixed cadence. It is the only goroutine that
// touches the engine once Run has started.
type Runner struct {
	Engine   *Engine
	Mailbox  *gamepad.Mailbox
	Sink     input.Sink
	Display  display.Sink
	Commands <-chan Command
	Interval time.Duration
	Log      zerolog.Logger

	// Now defaults to time.Now.
	Now func() time.Time

	buf   []byte
	batch *input.Batch
}

// Run processes until ctx is done or CommandExit arrives. On return every
// held input has been released through the sink.
func (r *Runner) Run(ctx context.Context) error {
	r.init()
	defer r.shutdown()

	r.publish()

	ticker := time.NewTicker(r.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-r.Commands:
			if !r.handle(cmd) {
				return nil
			}
		case <-ticker.C:
			r.Step()
		}
	}
}

func (r *Runner) init() {
	if r.batch != nil {
		return
	}
	if r.Interval <= 0 {
		r.Interval = DefaultInterval
	}
	if r.Now == nil {
		r.Now = time.Now
	}
	r.batch = input.NewBatch(r.Now())
	r.buf = make([]byte, 0, gamepad.ReportSize)
}

// Step runs one processing cycle.
func (r *Runner) Step() {
	r.init()
	r.batch.Reset(r.Now())
	render := false

	var ok bool
	r.buf, ok = r.Mailbox.Take(r.buf)
	if ok {
		report, valid := gamepad.Decode(r.buf)
		if valid {
			ch := r.Engine.Process(r.batch, report)
			if ch.VisibilityChanged && r.Display != nil {
				r.Display.SetVisible(ch.Visible)
			}
			render = true
		} else {
			r.Log.Debug().Int("size", len(r.buf)).Msg("dropping short report")
		}
	}

	r.Engine.Tick(r.batch)
	r.flush()
	if render {
		r.publish()
	}
}

// handle applies cmd and reports whether the loop should keep going.
func (r *Runner) handle(cmd Command) bool {
	r.Log.Debug().Stringer("command", cmd).Msg("command received")
	r.batch.Reset(r.Now())

	switch cmd {
	case CommandExit:
		return false
	case CommandToggleMode:
		r.Engine.ToggleMode(r.batch)
	case CommandSetVisualizer:
		r.Engine.SetMode(r.batch, ModeVisualizer)
	case CommandSetKeyboard:
		r.Engine.SetMode(r.batch, ModeKeyboard)
	case CommandToggleVisibility:
		visible := r.Engine.ToggleVisibility()
		if r.Display != nil {
			r.Display.SetVisible(visible)
		}
	default:
		r.Log.Warn().Uint8("command", uint8(cmd)).Msg("unknown command")
		return true
	}

	r.flush()
	r.publish()
	return true
}

func (r *Runner) flush() {
	if len(r.batch.Actions) > 0 {
		input.Dispatch(r.Sink, r.batch.Actions, r.Log)
	}
}

func (r *Runner) publish() {
	if r.Display != nil {
		r.Display.Render(r.Engine.Snapshot())
	}
}

func (r *Runner) shutdown() {
	r.batch.Reset(r.Now())
	r.Engine.ReleaseAll(r.batch)
	r.flush()
	r.Log.Info().Int("released", len(r.batch.Actions)).Msg("inputs released")
}
