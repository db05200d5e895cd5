// Package cmd wires the mazeball command line.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mazeball",
	Short: "Generate perfect mazes and play them as physics levels",
	Long: `mazeball generates perfect mazes with a randomized depth-first carve,
projects them into wall rectangles and serves them over HTTP.

Examples:
  mazeball print --rows 8 --cols 12 --seed 7
  mazeball view --rows 10 --cols 10 --collapse-after 20s
  mazeball serve`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
