package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"github.com/ytget/bitfiles/internal/namecell"
)

// DialogNotifier shows rename failures as modal information dialogs
type DialogNotifier struct {
	window       fyne.Window
	localization *Localization
}

var _ namecell.Notifier = (*DialogNotifier)(nil)

// NewDialogNotifier creates a notifier for window
func NewDialogNotifier(window fyne.Window, localization *Localization) *DialogNotifier {
	return &DialogNotifier{window: window, localization: localization}
}

// ShowError shows the localized title and text
func (n *DialogNotifier) ShowError(titleKey, textKey string) {
	dialog.ShowInformation(n.localization.GetText(titleKey), n.localization.GetText(textKey), n.window)
}
