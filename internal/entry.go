// Package internal provides the main application initialization and runtime logic.
package internal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/starford/ansuz/internal/store"
	"github.com/starford/ansuz/internal/term"
	"github.com/starford/ansuz/internal/ui"
)

// Run starts the application with the given options and blocks until the
// session ends. The terminal is restored on every exit path: normal quit,
// repository failure, panic (deferred teardown), and interrupt signal.
func Run(ctx context.Context, opts ...Option) error {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}
	if app.config == nil {
		return fmt.Errorf("config is required")
	}
	cfg := app.config

	dataPath := cfg.Data.Path
	if app.dataPath != "" {
		dataPath = app.dataPath
	}

	logger, closeLog, err := newLogger(cfg.App)
	if err != nil {
		return err
	}
	defer closeLog()
	// Only a real sink becomes the process default; installing the discard
	// logger would swallow the fatal-error report in main.
	if cfg.App.LogFile != "" {
		slog.SetDefault(logger)
	}

	logger.Info("Configuration loaded",
		slog.String("data_path", dataPath),
		slog.String("log_level", cfg.App.LogLevel.String()),
		slog.Duration("poll_interval", cfg.UI.PollInterval.Std()))

	st, err := store.Open(dataPath)
	if err != nil {
		return fmt.Errorf("init store: %w", err)
	}
	defer st.Close()

	screen := term.NewScreen()
	if err := screen.EnterSession(); err != nil {
		return fmt.Errorf("enter terminal session: %w", err)
	}
	defer screen.ExitSession()

	decoder := term.NewDecoder(os.Stdin, cfg.UI.EscapeTimeout.Std(), cfg.UI.SequenceTimeout.Std())
	tui := ui.New(st, screen, decoder, logger, ui.Config{
		PollInterval: cfg.UI.PollInterval.Std(),
		Icons:        cfg.UI.Icons,
	})

	// SIGINT/SIGTERM end the session cleanly (exit status 0) after the
	// deferred teardown above restores the terminal.
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, _ := errgroup.WithContext(runCtx)
	g.Go(func() error {
		defer cancel()
		return tui.Run(runCtx)
	})
	g.Go(func() error {
		// Wake the loop out of its key wait when the context ends.
		<-runCtx.Done()
		tui.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	logger.Info("Session ended")
	return nil
}

// newLogger builds the session logger. Stdout belongs to the renderer while
// the session is active, so logs go to the configured file, or nowhere.
func newLogger(cfg ApplicationConfig) (*slog.Logger, func(), error) {
	var out io.Writer = io.Discard
	closeLog := func() {}
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		out = f
		closeLog = func() { _ = f.Close() }
	}
	logger := slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))
	return logger, closeLog, nil
}
