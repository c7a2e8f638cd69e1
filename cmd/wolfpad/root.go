package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/wolfpad/wolfpad/internal/config"
	"github.com/wolfpad/wolfpad/internal/logging"
	"github.com/wolfpad/wolfpad/internal/presentation/tui"
)

var rootCmd = &cobra.Command{
	Use:   "wolfpad",
	Short: "WolfPad AI gateway",
	Long: `WolfPad keeps the completion service credential on the server and exposes
the productivity app's AI actions through a single endpoint.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, tui.ErrorText(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a YAML config file (default: ./"+config.DefaultFile+" when present)")
}

// loadConfig reads the config named by --config plus environment overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	return config.Load(path)
}

func newLogger(cfg config.Config) *slog.Logger {
	logger := logging.New(logging.ParseLevel(cfg.Logging.Level), cfg.Logging.Format)
	slog.SetDefault(logger)
	return logger
}
