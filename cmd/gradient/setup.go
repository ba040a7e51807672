package main

import (
	"fmt"
	"io"
	"os"

	"github.com/alexisbeaulieu97/gradient/internal/config"
	"github.com/alexisbeaulieu97/gradient/internal/logger"
)

// loadConfig reads path, or returns the defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newLogger builds the process logger. Logs go to the configured file, or to
// fallback when none is set. The returned close func is never nil.
func newLogger(flags *rootFlags, cfg *config.Config, fallback io.Writer) (*logger.Logger, func() error, error) {
	level := cfg.Log.Level
	if flags.verbose {
		level = "debug"
	}

	path := cfg.Log.File
	if flags.logFile != "" {
		path = flags.logFile
	}

	writer := fallback
	closeFn := func() error { return nil }
	if path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, closeFn, fmt.Errorf("open log file: %w", err)
		}
		writer = file
		closeFn = file.Close
	}

	log, err := logger.New(logger.Options{Level: level, Format: logger.Format(cfg.Log.Format), Writer: writer})
	if err != nil {
		_ = closeFn()
		return nil, func() error { return nil }, err
	}
	return log, closeFn, nil
}
