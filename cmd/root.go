package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "harvestctl",
	Short: "A command-line client for the Harvest time-tracking service",
	Long: `harvestctl talks to the Harvest time-tracking API: it shows your
recorded time entries as per-day reports and can top short days up to a
target number of hours by creating filler entries interactively.

Run 'harvestctl login' once to store your account ID and personal
access token.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(adjustCmd)
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	rootCmd.Version = fmt.Sprintf("%s (commit %s, built %s)", version, commit, date)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
