// Package console handles the controlling terminal: launch detection, console
// control events and raw-mode key commands.
package console

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/rs/zerolog"
	"golang.org/x/term"

	"github.com/soar/padmapper/internal/engine"
)

const (
	keyCtrlC = 0x03
	keyTab   = 0x09
	keyEsc   = 0x1b
)

// Keys turns terminal key presses into engine commands.
type Keys struct {
	in       *os.File
	fd       int
	state    *term.State
	commands chan<- engine.Command
	log      zerolog.Logger
}

// OpenKeys puts in into raw mode. Call Restore to leave it.
func OpenKeys(in *os.File, commands chan<- engine.Command, log zerolog.Logger) (*Keys, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.New("stdin is not a terminal")
	}
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return &Keys{in: in, fd: fd, state: state, commands: commands, log: log}, nil
}

// Restore returns the terminal to the mode it had before OpenKeys.
func (k *Keys) Restore() {
	if k.state == nil {
		return
	}
	if err := term.Restore(k.fd, k.state); err != nil {
		k.log.Warn().Err(err).Msg("restore terminal")
	}
	k.state = nil
}

// Run reads keys until ctx is done or the input ends. The read itself cannot
// be interrupted, so a pending read outlives Run.
func (k *Keys) Run(ctx context.Context) {
	chunks := make(chan []byte)
	go func() {
		defer close(chunks)
		buf := make([]byte, 64)
		for {
			n, err := k.in.Read(buf)
			if n > 0 {
				select {
				case chunks <- append([]byte(nil), buf[:n]...):
				case <-ctx.Done():
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					k.log.Debug().Err(err).Msg("terminal read")
				}
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case chunk, ok := <-chunks:
			if !ok {
				return
			}
			for _, cmd := range Parse(chunk) {
				select {
				case k.commands <- cmd:
				case <-ctx.Done():
					return
				}
			}
		}
	}
}

// Parse maps one read from a raw terminal to commands. A lone ESC exits;
// ESC followed by '[' or 'O' starts an escape sequence, such as an arrow
// key, which is skipped.
func Parse(p []byte) []engine.Command {
	var cmds []engine.Command
	for i := 0; i < len(p); i++ {
		switch c := p[i]; c {
		case keyEsc:
			if i+1 < len(p) && (p[i+1] == '[' || p[i+1] == 'O') {
				i = skipSequence(p, i+2)
				continue
			}
			cmds = append(cmds, engine.CommandExit)
		case keyCtrlC:
			cmds = append(cmds, engine.CommandExit)
		case keyTab:
			cmds = append(cmds, engine.CommandToggleMode)
		case 'v', 'V':
			cmds = append(cmds, engine.CommandSetVisualizer)
		case 'k', 'K':
			cmds = append(cmds, engine.CommandSetKeyboard)
		}
	}
	return cmds
}

// skipSequence returns the index of the final byte of the sequence whose
// parameters start at i.
func skipSequence(p []byte, i int) int {
	for ; i < len(p); i++ {
		if p[i] >= 0x40 && p[i] <= 0x7e {
			return i
		}
	}
	return len(p) - 1
}
