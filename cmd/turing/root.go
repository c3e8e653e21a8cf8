// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/ezrec/turing/display"
	"github.com/ezrec/turing/logging"
	"github.com/ezrec/turing/program"
)

func newRootCmd() (root *cobra.Command) {
	root = &cobra.Command{
		Use:           "turing",
		Short:         "Run single-tape Turing machines",
		Long:          `Runs built-in or file defined Turing machines, printing each step of the computation.`,
		SilenceUsage: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	root.PersistentFlags().String("log-file", "", "Also write JSON logs to this file")
	root.PersistentFlags().Bool("no-color", false, "Disable colored output")

	root.AddCommand(
		newListCmd(),
		newShowCmd(),
		newRunCmd(),
		newCheckCmd(),
		newVersionCmd(),
	)

	return
}

// newLogger creates the logger selected by the persistent flags. The
// returned closer releases the log file, if any.
func newLogger(cmd *cobra.Command) (log *slog.Logger, closer func() error, err error) {
	levelName, _ := cmd.Flags().GetString("log-level")
	logFile, _ := cmd.Flags().GetString("log-file")

	closer = func() error { return nil }

	opts := logging.Options{
		Stderr: cmd.ErrOrStderr(),
	}

	opts.Level, err = logging.ParseLevel(levelName)
	if err != nil {
		return
	}

	if len(logFile) != 0 {
		var ouf *os.File
		ouf, err = os.Create(logFile)
		if err != nil {
			return
		}
		opts.File = ouf
		closer = ouf.Close
	}

	log = logging.New(opts)
	return
}

// newPrinter creates a console printer on w for prog.
func newPrinter(cmd *cobra.Command, w io.Writer, prog *program.Program) *display.Printer {
	var opts []termenv.OutputOption
	if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}

	return display.NewPrinter(w, prog, opts...)
}
