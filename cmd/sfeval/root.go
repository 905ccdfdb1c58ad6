package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

const (
	formatText = "text"
	formatJSON = "json"
)

// app holds the flags shared by every subcommand.
type app struct {
	format  string
	verbose bool
	log     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{log: slog.New(slog.DiscardHandler)}
	root := &cobra.Command{
		Use:           "sfeval",
		Short:         "Evaluate gamma, error-function and Lambert W special functions",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if a.format != formatText && a.format != formatJSON {
				return fmt.Errorf("unknown --format %q (want %s or %s)", a.format, formatText, formatJSON)
			}
			if a.verbose {
				a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
			}
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.format, "format", formatText, "output format: text or json")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log diagnostics to stderr")

	root.AddCommand(
		newEvalCmd(a),
		newGridCmd(a),
		newListCmd(a),
		newCPUCmd(a),
	)
	return root
}
