//go:build windows

package console

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unsafe"

	"golang.org/x/sys/windows"
)

var (
	kernel32                  = windows.NewLazySystemDLL("kernel32.dll")
	procGetConsoleWindow      = kernel32.NewProc("GetConsoleWindow")
	procFreeConsole           = kernel32.NewProc("FreeConsole")
	procSetConsoleCtrlHandler = kernel32.NewProc("SetConsoleCtrlHandler")
)

const (
	ctrlCEvent     = 0
	ctrlBreakEvent = 1
	ctrlCloseEvent = 2
)

// IsRunningFromConsole reports whether a terminal launched the process. A
// double click from Explorer gets its console released and returns false.
func IsRunningFromConsole() bool {
	hwnd, _, _ := procGetConsoleWindow.Call()
	if !strings.EqualFold(parentProcessName(), "explorer.exe") {
		return hwnd != 0
	}
	if hwnd != 0 {
		_, _, _ = procFreeConsole.Call()
	}
	return false
}

func parentProcessName() string {
	snapshot, err := windows.CreateToolhelp32Snapshot(windows.TH32CS_SNAPPROCESS, 0)
	if err != nil {
		return ""
	}
	defer windows.CloseHandle(snapshot)

	var pe windows.ProcessEntry32
	pe.Size = uint32(unsafe.Sizeof(pe))
	pid := uint32(os.Getpid())

	var parent uint32
	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if pe.ProcessID == pid {
			parent = pe.ParentProcessID
			break
		}
	}
	if parent == 0 {
		return ""
	}

	for err = windows.Process32First(snapshot, &pe); err == nil; err = windows.Process32Next(snapshot, &pe) {
		if pe.ProcessID == parent {
			return filepath.Base(windows.UTF16ToString(pe.ExeFile[:]))
		}
	}
	return ""
}

var (
	handlerOnce sync.Once
	handlerFn   uintptr
	shutdownMu  sync.Mutex
	shutdownCh  chan struct{}
	closed      bool
)

// SetupConsoleHandler closes shutdown on Ctrl+C, Ctrl+Break or when the
// console window is closed.
func SetupConsoleHandler(shutdown chan struct{}) {
	shutdownMu.Lock()
	shutdownCh = shutdown
	closed = false
	shutdownMu.Unlock()

	handlerOnce.Do(func() {
		handlerFn = windows.NewCallback(func(ctrlType uint32) uintptr {
			switch ctrlType {
			case ctrlCEvent, ctrlBreakEvent, ctrlCloseEvent:
				shutdownMu.Lock()
				if !closed && shutdownCh != nil {
					close(shutdownCh)
					closed = true
				}
				shutdownMu.Unlock()
				return 1
			}
			return 0
		})
	})

	_, _, _ = procSetConsoleCtrlHandler.Call(handlerFn, 1)
}
