package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/aretw0/provload"
	"github.com/aretw0/provload/pkg/logging"
)

var (
	verbose    bool
	configPath string
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "provload",
	Short: "Load and verify replication provider libraries",
	Long: `provload opens a provider library, checks it against the interface
version and the required operations, and reports what it found.
The spec "none" selects the built-in dummy provider.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}

		opts := &slog.HandlerOptions{
			Level: level,
		}
		logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), opts))
		slog.SetDefault(logger)
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode is the errno behind err, so scripts see the same status a
// C-style loader would return. Errors without one exit with 1.
func exitCode(err error) int {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return int(errno)
	}
	return 1
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML loader configuration")
}

// loadConfig returns the configuration named by --config, or an empty one.
func loadConfig() (provload.Config, error) {
	if configPath == "" {
		return provload.Config{}, nil
	}
	cfg, err := provload.LoadConfig(configPath)
	if err != nil {
		return provload.Config{}, fmt.Errorf("config %s: %w", configPath, err)
	}
	return cfg, nil
}

// newLoader builds a loader that logs through slog.Default().
func newLoader(cfg provload.Config) *provload.Loader {
	return provload.New(cfg.Options(logging.FromSlog(slog.Default()))...)
}
