package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "svtool",
	Short: "Svtool performs common tasks related to fixed-capacity containers.",
	Long: `Svtool performs common tasks related to fixed-capacity containers. ` +
		`It currently supports replaying operation scripts against a bounded ` +
		`vector (run), optionally recording the operation trace into a SQLite ` +
		`database.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
