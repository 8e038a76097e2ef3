// Package cli implements the monitorctl CLI commands.
package cli

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "monitorctl",
	Short: "Switch monitor inputs over DDC/CI",
	Long: `monitorctl reads and sets the active video input (VCP 0x60) of external
monitors. Input presets and per-monitor rules come from monitorctl.json.`,
	SilenceUsage: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Add subcommands (alphabetical)
	rootCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(getInputCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pickCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(setInputCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(versionCmd)
}
