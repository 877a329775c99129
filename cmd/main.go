package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type app struct {
	logger      *zap.Logger
	buildLogger func(level string) (*zap.Logger, error)

	// Global flags
	verbose  bool
	logLevel string
}

func newApp() *app {
	return &app{
		logger:      zap.NewNop(),
		buildLogger: newLogger,
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(lvl)
	return config.Build()
}

func (a *app) level() string {
	if a.verbose {
		return "debug"
	}
	return a.logLevel
}

func (a *app) rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "chibisearch",
		Short: "Binary search over sorted integer sequences",
		Long: `chibisearch runs binary searches over sorted integer sequences.

Every operation checks that the sequence is sorted in non-decreasing order
before searching and fails when it is not.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := a.buildLogger(a.level())
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(a.demoCmd(), a.searchCmd(), a.runCmd())
	return root
}

func main() {
	if err := newApp().rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
