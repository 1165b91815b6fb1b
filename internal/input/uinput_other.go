//go:build !linux

package input

import (
	"errors"
	"runtime"
)

// NewSink is only implemented on Linux; elsewhere run with the dry-run sink.
func NewSink(name string) (Sink, error) {
	return nil, errors.New("synthetic input is not supported on " + runtime.GOOS + "; use --dry-run")
}
