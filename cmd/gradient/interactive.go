package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
	"github.com/alexisbeaulieu97/gradient/internal/config"
	"github.com/alexisbeaulieu97/gradient/internal/logger"
	"github.com/alexisbeaulieu97/gradient/internal/tui"
)

func runInteractive(ctx context.Context, flags *rootFlags, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	// The UI owns the terminal, so logs are discarded unless a file is set.
	log, closeLog, err := newLogger(flags, cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	if profile := lipgloss.ColorProfile(); profile != termenv.TrueColor {
		log.WithFields(map[string]any{"profile": profile.Name()}).
			Warn("terminal lacks true colour support; preview colours are approximated")
	}

	sink, err := clipboard.New(clipboard.Backend(cfg.Clipboard.Backend), os.Stderr)
	if err != nil {
		return err
	}

	m := tui.NewModel(tui.Options{
		Settings:         cfg.InitialSettings(newGenerator()),
		Generator:        newGenerator(),
		Clipboard:        sink,
		FeedbackDuration: cfg.Feedback.Duration,
		FeedbackPolicy:   cfg.FeedbackPolicy(),
		Logger:           log,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))

	if flags.watch {
		watcher, err := config.NewWatcher(flags.configPath, config.DefaultWatchDebounce,
			func(next *config.Config) { p.Send(reloadMsg(next, log)) },
			func(err error) { log.Error(err, "configuration reload failed") },
		)
		if err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		if err := watcher.Start(); err != nil {
			return fmt.Errorf("watch config: %w", err)
		}
		defer watcher.Stop()
	}

	log.WithFields(map[string]any{
		"angle":   cfg.Gradient.Angle,
		"backend": cfg.Clipboard.Backend,
		"watch":   flags.watch,
	}).Info("launching gradient generator")

	if _, err := p.Run(); err != nil {
		log.Error(err, "gradient generator failed")
		return fmt.Errorf("failed to run gradient generator: %w", err)
	}

	log.Info("gradient generator closed")
	return nil
}

// reloadMsg turns a reloaded configuration into the message the UI applies.
// An unusable clipboard backend keeps the current sink.
func reloadMsg(cfg *config.Config, log *logger.Logger) tui.ConfigReloadedMsg {
	msg := tui.ConfigReloadedMsg{
		FeedbackDuration: cfg.Feedback.Duration,
		FeedbackPolicy:   cfg.FeedbackPolicy(),
	}

	sink, err := clipboard.New(clipboard.Backend(cfg.Clipboard.Backend), os.Stderr)
	if err != nil {
		log.Error(err, "ignoring reloaded clipboard backend")
		return msg
	}
	msg.Clipboard = sink
	return msg
}
