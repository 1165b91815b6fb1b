// Package tray shows a system tray menu that controls the mapper.
package tray

import (
	"os/exec"
	"runtime"
	"sync"
	"sync/atomic"

	"fyne.io/systray"
	"github.com/rs/zerolog"

	"github.com/soar/padmapper/internal/display"
	"github.com/soar/padmapper/internal/engine"
)

var _ display.Sink = (*Tray)(nil)

// Tray owns the tray menu. It is a display.Sink so the check marks follow
// the engine state.
type Tray struct {
	commands chan<- engine.Command
	url      string
	log      zerolog.Logger

	once         sync.Once
	shuttingDown atomic.Bool

	mu             sync.Mutex
	ready          bool
	mode           string
	visible        bool
	menuVisualizer *systray.MenuItem
	menuKeyboard   *systray.MenuItem
	menuToggle     *systray.MenuItem
	menuVisible    *systray.MenuItem
	menuOpen       *systray.MenuItem
	menuExit       *systray.MenuItem
}

// New creates a tray that sends menu actions to commands. url is the status
// page, empty when it is disabled.
func New(commands chan<- engine.Command, url string, log zerolog.Logger) *Tray {
	return &Tray{
		commands: commands,
		url:      url,
		log:      log,
		mode:     engine.ModeVisualizer.String(),
		visible:  true,
	}
}

// Run shows the tray and blocks until Quit.
func (t *Tray) Run() {
	systray.Run(t.onReady, t.onExit)
}

// Quit removes the tray icon. It is safe to call more than once.
func (t *Tray) Quit() {
	if t.shuttingDown.CompareAndSwap(false, true) {
		systray.Quit()
	}
}

func (t *Tray) onReady() {
	systray.SetIcon(Icon())
	systray.SetTitle("padmapper")
	systray.SetTooltip("padmapper - controller to keyboard and mouse")

	t.mu.Lock()
	t.menuVisualizer = systray.AddMenuItemCheckbox("Visualizer", "Map the controller to WASD and the mouse", t.mode == engine.ModeVisualizer.String())
	t.menuKeyboard = systray.AddMenuItemCheckbox("Virtual Keyboard", "Type with the on-screen keyboard", t.mode == engine.ModeKeyboard.String())
	t.menuToggle = systray.AddMenuItem("Toggle Mode", "Switch between the two modes")
	systray.AddSeparator()
	t.menuVisible = systray.AddMenuItemCheckbox("Show display", "Draw the terminal display", t.visible)
	if t.url != "" {
		t.menuOpen = systray.AddMenuItem("Open Status Page", t.url)
	}
	systray.AddSeparator()
	t.menuExit = systray.AddMenuItem("Exit", "Release all inputs and quit")
	t.ready = true
	t.mu.Unlock()

	go t.handleMenuClicks()
	t.log.Info().Msg("system tray initialized")
}

func (t *Tray) handleMenuClicks() {
	var openCh <-chan struct{}
	if t.menuOpen != nil {
		openCh = t.menuOpen.ClickedCh
	}
	for {
		select {
		case <-t.menuVisualizer.ClickedCh:
			t.send(engine.CommandSetVisualizer)
		case <-t.menuKeyboard.ClickedCh:
			t.send(engine.CommandSetKeyboard)
		case <-t.menuToggle.ClickedCh:
			t.send(engine.CommandToggleMode)
		case <-t.menuVisible.ClickedCh:
			t.send(engine.CommandToggleVisibility)
		case <-openCh:
			t.openBrowser()
		case <-t.menuExit.ClickedCh:
			t.once.Do(func() { t.send(engine.CommandExit) })
			t.Quit()
			return
		}
	}
}

func (t *Tray) send(cmd engine.Command) {
	if t.shuttingDown.Load() {
		return
	}
	select {
	case t.commands <- cmd:
	default:
		t.log.Warn().Stringer("command", cmd).Msg("command queue full")
	}
}

// Render moves the mode check mark when the mode changed.
func (t *Tray) Render(s display.RenderState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s.Mode == t.mode {
		return
	}
	t.mode = s.Mode
	if t.ready {
		setChecked(t.menuVisualizer, s.Mode == engine.ModeVisualizer.String())
		setChecked(t.menuKeyboard, s.Mode == engine.ModeKeyboard.String())
	}
}

func (t *Tray) SetVisible(visible bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.visible = visible
	if t.ready {
		setChecked(t.menuVisible, visible)
	}
}

func setChecked(item *systray.MenuItem, on bool) {
	if on {
		item.Check()
	} else {
		item.Uncheck()
	}
}

func (t *Tray) onExit() {
	t.shuttingDown.Store(true)
	t.log.Info().Msg("system tray exiting")
}

func (t *Tray) openBrowser() {
	if t.shuttingDown.Load() || t.url == "" {
		return
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", t.url)
	case "darwin":
		cmd = exec.Command("open", t.url)
	default:
		cmd = exec.Command("xdg-open", t.url)
	}
	if err := cmd.Start(); err != nil {
		t.log.Warn().Err(err).Msg("failed to open browser")
	}
}
