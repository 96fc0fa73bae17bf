package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/namecell"
)

func newSkipCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "skip <manifest> <path>",
		Short: "Toggle whether a file or directory is downloaded",
		Long: `Toggle skipping like a click on the checkbox. A directory whose files are
all skipped becomes wanted; any other directory becomes skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, relPath := args[0], args[1]
			d, err := download.LoadManifest(manifest, commandLogger(cmd))
			if err != nil {
				return err
			}

			node, ok := d.Tree().Lookup(relPath)
			if !ok {
				return fmt.Errorf("no file or directory %q in %s", relPath, d.Name())
			}
			namecell.ToggleSkip(node)
			if err := d.SaveManifest(manifest); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", relPath, node.SkipState())
			return nil
		},
	}
}
