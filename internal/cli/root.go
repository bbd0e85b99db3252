package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ib-77/periodgate/pkg/gate"
	"github.com/ib-77/periodgate/pkg/rop/core"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var debug bool

	// One gate per process: every command writes its output through it.
	out := gate.New(gate.WithName("stdout"))

	cmd := &cobra.Command{
		Use:          "periodsort",
		Short:        "Sort and translate newspaper issue periods",
		SilenceUsage: true,
		PersistentPreRun: func(c *cobra.Command, _ []string) {
			logger := newLogger(c.ErrOrStderr(), debug)
			c.SetContext(core.WithLogger(c.Context(), logger))
		},
	}

	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging on stderr")
	cmd.AddCommand(sortCmd(out), translateCmd(out))
	return cmd
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	addSource := false
	if debug {
		level = slog.LevelDebug
		addSource = true
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	}))
}
