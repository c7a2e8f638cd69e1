package main

import (
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wolfpad/wolfpad"
	"github.com/wolfpad/wolfpad/internal/presentation/tui"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of wolfpad",
	Run: func(cmd *cobra.Command, args []string) {
		version := strings.TrimSpace(wolfpad.Version)
		if tui.IsTerminal(os.Stdout) {
			tui.PrintBanner(os.Stdout, version)
			return
		}
		cmd.Printf("wolfpad version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
