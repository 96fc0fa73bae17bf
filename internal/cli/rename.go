package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ytget/bitfiles/internal/download"
	"github.com/ytget/bitfiles/internal/namecell"
	"github.com/ytget/bitfiles/internal/taskrun"
	"github.com/ytget/bitfiles/internal/ui"
)

// writerNotifier prints rename failures instead of showing a dialog
type writerNotifier struct {
	w            io.Writer
	localization *ui.Localization
	failed       bool
}

func (n *writerNotifier) ShowError(titleKey, textKey string) {
	n.failed = true
	fmt.Fprintf(n.w, "%s: %s\n", n.localization.GetText(titleKey), n.localization.GetText(textKey))
}

func newRenameCmd() *cobra.Command {
	var language string

	cmd := &cobra.Command{
		Use:   "rename <manifest> <path> <name>",
		Short: "Rename a file of a download",
		Long: `Rename a file on disk and record its new location in the manifest.
The download is paused while the file is moved.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, relPath, name := args[0], args[1], args[2]
			logger := commandLogger(cmd)
			d, err := download.LoadManifest(manifest, logger)
			if err != nil {
				return err
			}
			file, ok := d.File(relPath)
			if !ok {
				return fmt.Errorf("no file %q in %s", relPath, d.Name())
			}

			runner := taskrun.NewService(logger)
			defer runner.Close()

			localization := ui.NewLocalization()
			localization.SetLanguage(language)
			notifier := &writerNotifier{w: cmd.ErrOrStderr(), localization: localization}
			editor := namecell.NewEditor(runner, notifier, logger)

			current := file.Name()
			if !editor.Accept(file, current, name, false) || !editor.Accept(file, current, name, true) {
				return fmt.Errorf("%s: %s", localization.GetText(ui.KeyNameTaken), name)
			}
			if notifier.failed {
				return fmt.Errorf("rename of %s failed", relPath)
			}
			if err := d.SaveManifest(manifest); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), file.Path())
			return nil
		},
	}
	cmd.Flags().StringVar(&language, "lang", "en", "Language of messages")
	return cmd
}
