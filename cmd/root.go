// Package cmd wires the fitcoach commands: the interactive TUI (default),
// one-shot questions, the HTTP API server, and version info.
package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "fitcoach",
	Short: "fitcoach - your terminal AI fitness coach",
	Long: `fitcoach is a terminal AI fitness coach built on Genkit.
Ask for workouts, meal plans, or general training advice; answers come
from a Gemini model routed through keyword-based plan requests.

Running fitcoach without arguments starts the interactive chat.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runChat(cmd, args)
	},
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
