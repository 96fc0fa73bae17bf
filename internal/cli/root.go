// Package cli provides the command-line interface for bitfiles.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/bitfiles/internal/logging"
)

// Version is set by the main package at startup
var Version = "dev"

// NewRootCmd creates the root command with every subcommand attached
func NewRootCmd() *cobra.Command {
	var debug bool

	rootCmd := &cobra.Command{
		Use:   "bitfiles",
		Short: "Inspect and edit the files of a download",
		Long: `bitfiles ` + Version + `
Lists the files of a download manifest as a tree, toggles which files are
skipped and renames files on disk. "bitfiles gui" opens the desktop view.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.EnableDebug(debug)
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug output")
	rootCmd.Version = Version

	rootCmd.AddCommand(newTreeCmd())
	rootCmd.AddCommand(newSkipCmd())
	rootCmd.AddCommand(newRenameCmd())
	rootCmd.AddCommand(newGUICmd())
	return rootCmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}

// commandLogger writes log lines to the command's error stream so they never
// mix with printed tables
func commandLogger(cmd *cobra.Command) *logging.Logger {
	if cmd.ErrOrStderr() == os.Stderr {
		return logging.NewLogger(logging.ModeGUI)
	}
	return logging.NewWriterLogger(cmd.ErrOrStderr())
}
