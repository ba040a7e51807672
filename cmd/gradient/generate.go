package main

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/gradient/internal/clipboard"
	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
	"github.com/alexisbeaulieu97/gradient/internal/logger"
)

const copyTimeout = 2 * time.Second

type generateOptions struct {
	angle     int
	colourOne string
	colourTwo string
	cssOnly   bool
	copy      bool
}

var (
	newClipboardSink = clipboard.New
	hostOS           = runtime.GOOS
)

func newGenerateCmd(root *rootFlags) *cobra.Command {
	opts := generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a gradient declaration without starting the UI",
		Long: `Print a CSS background declaration for a two-colour linear gradient.
Colours that are not given on the command line or in the configuration file are
picked at random.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.angle, "angle", "a", gradient.DefaultAngle, "Gradient angle in degrees (0-360)")
	cmd.Flags().StringVar(&opts.colourOne, "colour-one", "", "First colour as #RRGGBB")
	cmd.Flags().StringVar(&opts.colourTwo, "colour-two", "", "Second colour as #RRGGBB")
	cmd.Flags().BoolVar(&opts.cssOnly, "css-only", false, "Print only the linear-gradient() value")
	cmd.Flags().BoolVar(&opts.copy, "copy", false, "Also copy the declaration to the clipboard")

	return cmd
}

func runGenerate(cmd *cobra.Command, root *rootFlags, opts generateOptions) error {
	cfg, err := loadConfig(root.configPath)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(root, cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck

	settings := cfg.InitialSettings(newGenerator())

	if cmd.Flags().Changed("angle") {
		if err := gradient.ValidateAngle(opts.angle); err != nil {
			return err
		}
		settings = settings.WithAngle(opts.angle)
	}

	for i, value := range []string{opts.colourOne, opts.colourTwo} {
		if value == "" {
			continue
		}
		slot := gradient.Slot(i)
		colour, err := gradient.ParseColour(value)
		if err != nil {
			return fmt.Errorf("%s: %w", slot, err)
		}
		settings = settings.WithColour(slot, colour)
	}

	declaration := settings.StyleDeclaration()
	output := declaration
	if opts.cssOnly {
		output = settings.Descriptor()
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), output); err != nil {
		return err
	}

	if opts.copy {
		copyDeclaration(cmd.Context(), cfg.Clipboard.Backend, cmd.ErrOrStderr(), declaration, log)
	}
	return nil
}

// copyDeclaration writes text to the configured clipboard. Failures are
// logged and never fail the command.
func copyDeclaration(ctx context.Context, backend string, out io.Writer, text string, log *logger.Logger) {
	if ctx == nil {
		ctx = context.Background()
	}

	selected := oneShotBackend(clipboard.Backend(backend), hostOS)
	if selected != clipboard.Backend(backend) {
		log.WithFields(map[string]any{"configured": backend, "using": string(selected)}).
			Debug("native clipboard would be lost on exit; using clipboard program")
	}

	sink, err := newClipboardSink(selected, out)
	if err != nil {
		log.WithFields(map[string]any{"backend": backend, "error": err.Error()}).Warn("clipboard unavailable")
		return
	}

	ctx, cancel := context.WithTimeout(ctx, copyTimeout)
	defer cancel()

	if err := sink.Write(ctx, text); err != nil {
		log.WithFields(map[string]any{"backend": backend, "error": err.Error()}).Warn("clipboard write failed")
		return
	}
	log.Debug("declaration copied to clipboard")
}

// oneShotBackend picks the backend for a process that exits right after
// copying. On X11 platforms the native clipboard is served by the owning
// process, so a short-lived command hands the text to a clipboard program
// instead.
func oneShotBackend(backend clipboard.Backend, goos string) clipboard.Backend {
	if backend != clipboard.BackendSystem {
		return backend
	}
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd", "dragonfly":
		return clipboard.BackendCommand
	default:
		return backend
	}
}
