package main

import (
	"fmt"
	"io"
	"os"

	"github.com/sghaida/shapes/internal/demo"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns an exit code.
// It exists separately from main to allow unit testing without os.Exit.
func run(args []string, stdout, stderr io.Writer) int {
	if args == nil {
		// cobra falls back to os.Args when args is nil.
		args = []string{}
	}

	cmd := newRootCmd(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}

// newLogger returns a logger with zap's production encoding and level,
// writing to w instead of the config's output paths.
func newLogger(w io.Writer) *zap.Logger {
	cfg := zap.NewProductionConfig()
	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg.EncoderConfig), zapcore.AddSync(w), cfg.Level)
	return zap.New(core).Named("shapes")
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var logger *zap.Logger

	cmd := &cobra.Command{
		Use:   "shapes",
		Short: "Print the shapes demonstration trace",
		Long: `shapes prints one line per example: circle construction and growth,
the circle builder, static and dynamic dispatch over the Shape
capability, and a named catalog of heterogeneous shapes.

The trace goes to stdout; diagnostics go to stderr as JSON.`,
		// Arguments and unknown flags are ignored; the trace always prints.
		Args:               cobra.ArbitraryArgs,
		FParseErrWhitelist: cobra.FParseErrWhitelist{UnknownFlags: true},
		SilenceErrors:      true,
		SilenceUsage:       true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger = newLogger(stderr)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := demo.New(stdout, logger).Run(); err != nil {
				return fmt.Errorf("writing trace: %w", err)
			}
			return nil
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd
}
