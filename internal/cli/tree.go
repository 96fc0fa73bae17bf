package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/namecell"
	"github.com/ytget/bitfiles/internal/textsurface"
)

func newTreeCmd() *cobra.Command {
	var (
		flat      bool
		icons     bool
		width     int
		collapse  []string
		obfuscate bool
	)

	cmd := &cobra.Command{
		Use:   "tree <manifest>",
		Short: "Print the files of a download",
		Long: `Print the name column of a download the way the desktop view draws it.
Skipped files show [ ], wanted files [x], finished files [#] and directories
with a mix of both [~].`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := commandLogger(cmd)
			d, err := download.LoadManifest(args[0], logger)
			if err != nil {
				return err
			}

			known := make(map[string]bool)
			for _, dir := range d.Tree().Directories() {
				known[dir] = true
			}
			collapsed := make(map[string]bool, len(collapse))
			for _, p := range collapse {
				if !known[p] {
					return fmt.Errorf("no directory %q in %s", p, d.Name())
				}
				collapsed[p] = true
			}
			printer := textsurface.NewPrinter(textsurface.PrinterOptions{
				Cell: namecell.Options{
					TreeMode: !flat,
					ShowIcon: icons,
				},
				Width:     width,
				Collapsed: collapsed,
				Obfuscate: obfuscate,
			}, logger)
			if err := printer.Print(cmd.OutOrStdout(), d); err != nil {
				return err
			}
			logger.Debug().Int("preferred_width", printer.PreferredWidth()).Msg("name column")
			return nil
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false, "List files without directories")
	cmd.Flags().BoolVar(&icons, "icons", false, "Show file type icons")
	cmd.Flags().IntVar(&width, "width", textsurface.DefaultWidth, "Name column width in characters")
	cmd.Flags().StringSliceVar(&collapse, "collapse", nil, "Directories to show collapsed")
	cmd.Flags().BoolVar(&obfuscate, "obfuscate", false, "Hide file names")
	return cmd
}
