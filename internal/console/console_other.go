//go:build !windows

package console

// IsRunningFromConsole is always true outside Windows.
func IsRunningFromConsole() bool {
	return true
}

// SetupConsoleHandler does nothing outside Windows; os/signal covers Ctrl+C.
func SetupConsoleHandler(shutdown chan struct{}) {}
