package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/soar/padmapper/internal/config"
	"github.com/soar/padmapper/internal/console"
	"github.com/soar/padmapper/internal/display"
	"github.com/soar/padmapper/internal/engine"
	"github.com/soar/padmapper/internal/gamepad"
	"github.com/soar/padmapper/internal/hub"
	"github.com/soar/padmapper/internal/input"
	"github.com/soar/padmapper/internal/keyboard"
	"github.com/soar/padmapper/internal/logging"
	"github.com/soar/padmapper/internal/server"
	"github.com/soar/padmapper/internal/tray"
)

// os.Interrupt covers Ctrl+C everywhere; SIGTERM is ignored on Windows.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if errors.Is(err, config.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	logCloser, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logCloser.Close()
	log := logging.For("main")
	if cfg.ConfigFile != "" {
		log.Info().Str("file", cfg.ConfigFile).Msg("config loaded")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	fromConsole := console.IsRunningFromConsole()
	showTerminal := cfg.Display.Terminal && fromConsole
	showTray := cfg.Tray.Enabled || !fromConsole

	var sink input.Sink
	if cfg.Sink.DryRun {
		sinkLog := logging.For("sink")
		sink = input.NewRecorder(&sinkLog)
		log.Warn().Msg("dry run: synthetic input is logged, not injected")
	} else {
		sink, err = input.NewSink("padmapper")
		if err != nil {
			log.Fatal().Err(err).Msg("failed to create input devices")
		}
	}

	dev, err := gamepad.Open(cfg.Device.VendorID, cfg.Device.ProductID, logging.For("hid"))
	if err != nil {
		_ = sink.Close()
		log.Fatal().Err(err).Msg("failed to open controller")
	}
	mailbox := gamepad.NewMailbox()
	reader := gamepad.NewReader(dev, mailbox, logging.For("hid"))

	commands := make(chan engine.Command, 16)
	var sinks display.Multi
	errCh := make(chan error, 2)

	var srv *server.Server
	url := ""
	if cfg.HTTP.Addr != "" {
		h := hub.NewHub(commands, logging.For("hub"))
		srv, err = server.New(h, getFrontendFS(), cfg.HTTP.Addr, logging.For("http"))
		if err == nil {
			err = srv.Start(errCh)
		}
		if err != nil {
			_ = reader.Close()
			_ = sink.Close()
			log.Fatal().Err(err).Msg("failed to start status page")
		}
		go h.Run(ctx)
		sinks = append(sinks, h)
		url = "http://" + cfg.HTTP.Addr
	}

	var t *tray.Tray
	if showTray {
		t = tray.New(commands, url, logging.For("tray"))
		sinks = append(sinks, t)
		go t.Run()
	}

	var keys *console.Keys
	if showTerminal {
		keys, err = console.OpenKeys(os.Stdin, commands, logging.For("console"))
		if err != nil {
			log.Warn().Err(err).Msg("terminal keys disabled")
			keys = nil
		} else {
			go keys.Run(ctx)
		}
		sinks = append(sinks, display.NewTerminal(os.Stdout, int(os.Stdout.Fd())))
	}

	settings := engine.Settings{
		StickDeadzone:      cfg.Mapping.StickDeadzone,
		TriggerThreshold:   cfg.Mapping.TriggerThreshold,
		PointerDeadzone:    cfg.Mapping.PointerDeadzone,
		PointerSensitivity: cfg.Mapping.PointerSensitivity,
		KeyboardDeadzone:   cfg.Keyboard.Deadzone,
		KeyboardMoveDelay:  cfg.Keyboard.MoveDelay,
		RepeatDelay:        cfg.Repeat.InitialDelay,
		RepeatInterval:     cfg.Repeat.Interval,
		Layout:             keyboard.DefaultLayout,
	}
	runner := &engine.Runner{
		Engine:   engine.New(settings, logging.For("engine")),
		Mailbox:  mailbox,
		Sink:     sink,
		Display:  sinks,
		Commands: commands,
		Interval: cfg.Loop.Interval,
		Log:      logging.For("runner"),
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)
	consoleShutdown := make(chan struct{})
	console.SetupConsoleHandler(consoleShutdown)

	runnerDone := make(chan struct{})
	go func() {
		defer close(runnerDone)
		_ = runner.Run(ctx)
	}()

	readerDone := make(chan struct{})
	go func() {
		defer close(readerDone)
		if err := reader.Run(ctx); err != nil {
			errCh <- err
		}
	}()

	log.Info().Msg("padmapper started")

	select {
	case <-sigCh:
		log.Info().Msg("shutting down")
	case <-consoleShutdown:
		log.Info().Msg("console closed")
	case <-runnerDone:
		log.Info().Msg("exit requested")
	case err := <-errCh:
		log.Error().Err(err).Msg("stopping after error")
	}
	cancel()

	<-runnerDone
	<-readerDone
	if keys != nil {
		keys.Restore()
	}
	if err := reader.Close(); err != nil {
		log.Warn().Err(err).Msg("close controller")
	}
	if err := sink.Close(); err != nil {
		log.Warn().Err(err).Msg("close input devices")
	}

	if srv != nil {
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer shutdownCancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("HTTP server shutdown")
		}
	}
	if t != nil {
		t.Quit()
	}
	log.Info().Msg("padmapper stopped")
}
