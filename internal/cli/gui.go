package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ytget/bitfiles/internal/gui"
	"github.com/ytget/bitfiles/internal/logging"
)

func newGUICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "gui [manifest]",
		Short: "Open the desktop view",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := gui.Options{Version: Version, Logger: logging.NewLogger(logging.ModeGUI)}
			if len(args) == 1 {
				opts.Manifest = args[0]
			}
			code, err := gui.Start(cmd.Context(), opts)
			if err != nil {
				return err
			}
			if code != 0 {
				os.Exit(code)
			}
			return nil
		},
	}
}
