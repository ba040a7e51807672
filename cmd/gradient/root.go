package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/gradient/internal/domain/gradient"
)

type rootFlags struct {
	configPath string
	logFile    string
	verbose    bool
	watch      bool
}

var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }

	newGenerator = func() gradient.ColourGenerator { return gradient.NewGenerator(nil) }

	interactiveRunner = runInteractive
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gradient",
		Short:         "Build two-colour CSS linear gradients and copy them to the clipboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.watch && flags.configPath == "" {
				return fmt.Errorf("--watch requires --config")
			}

			cfg, err := loadConfig(flags.configPath)
			if err != nil {
				return err
			}

			// Piped output gets a declaration instead of a UI.
			if !isTerminal() {
				settings := cfg.InitialSettings(newGenerator())
				_, err := fmt.Fprintln(cmd.OutOrStdout(), settings.StyleDeclaration())
				return err
			}

			return interactiveRunner(cmd.Context(), flags, cfg)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().BoolVarP(&flags.watch, "watch", "w", false, "Reload the configuration file when it changes")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
