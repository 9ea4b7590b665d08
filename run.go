package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/olivierh59500/gravity-sandbox/internal/app"
	"github.com/olivierh59500/gravity-sandbox/internal/config"
	"github.com/olivierh59500/gravity-sandbox/internal/logging"
	"github.com/olivierh59500/gravity-sandbox/internal/terminal"
	"github.com/olivierh59500/gravity-sandbox/internal/window"
)

type runOptions struct {
	configFile string
}

func run(cmd *cobra.Command, opts *runOptions) (err error) {
	v := config.New(opts.configFile)
	if err := app.BindFlags(cmd.Flags(), v); err != nil {
		return err
	}
	cfg, err := config.Read(v)
	if err != nil {
		return err
	}

	terminalMode := false
	switch cfg.Window.Backend {
	case config.BackendWindow:
	case config.BackendTerminal:
		terminalMode = true
	default:
		return errors.Errorf("unknown backend %q", cfg.Window.Backend)
	}

	logOpts := logging.Options{Level: cfg.Log.Level, Console: !terminalMode}
	if terminalMode {
		// the screen owns the terminal
		logOpts.File = cfg.Log.File
	}
	log, closeLog, err := logging.New(logOpts)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "failed to close log file")
		}
	}()

	if file := v.ConfigFileUsed(); file != "" {
		log.Info().Str("file", file).Msg("configuration loaded")
	}

	session, err := app.NewSession(cfg, log)
	if err != nil {
		return err
	}
	settings := config.Watch(v, log)

	if terminalMode {
		screen, err := tcell.NewScreen()
		if err != nil {
			return errors.Wrap(err, "failed to open terminal")
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return terminal.Run(ctx, screen, session, settings, log)
	}

	game := window.NewGame(session, cfg.Window.Width, cfg.Window.Height, settings, log)
	return window.Run(game, cfg.Window.Title)
}
